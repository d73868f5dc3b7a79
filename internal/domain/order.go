package domain

import (
	"time"

	"github.com/darji-master/orders-service/internal/catalog"
)

// Order is the central entity. JSON tags match the persisted wire format, so
// the whole struct round-trips through the blob store verbatim.
type Order struct {
	ID            string                               `json:"id"`
	CustomerID    string                               `json:"customerId"`
	CustomerName  string                               `json:"customerName"`
	Mobile        string                               `json:"mobile"`
	GarmentType   catalog.GarmentType                  `json:"garmentType"`
	Measurements  map[catalog.MeasurementField]float64 `json:"measurements"`
	MaterialNotes string                               `json:"materialNotes,omitempty"`
	MaterialImage string                               `json:"materialImage,omitempty"`
	OrderDate     time.Time                            `json:"orderDate"`
	DeliveryDate  time.Time                            `json:"deliveryDate"`
	Status        catalog.Status                       `json:"status"`
	AmountTotal   float64                              `json:"amountTotal"`
	AmountPaid    float64                              `json:"amountPaid"`
	PaymentMethod catalog.PaymentMethod                `json:"paymentMethod"`
	TrackingToken string                               `json:"trackingToken"`
}

// Balance is the outstanding amount; negative when over-paid.
func (o Order) Balance() float64 {
	return o.AmountTotal - o.AmountPaid
}
