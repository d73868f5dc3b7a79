package domain

import (
	"time"

	"github.com/darji-master/orders-service/internal/catalog"
)

// SeedOrders is the illustrative dataset used when no persisted collection is
// available. Newest first, dates anchored to now.
func SeedOrders(now time.Time) []Order {
	return []Order{
		{
			ID:           "ORD-001",
			CustomerID:   "CUST-1",
			CustomerName: "Rahul Sharma",
			Mobile:       "9876543210",
			GarmentType:  catalog.Sherwani,
			Measurements: map[catalog.MeasurementField]float64{
				catalog.Neck:      16,
				catalog.Shoulder:  18,
				catalog.Chest:     42,
				catalog.Waist:     36,
				catalog.SleeveLen: 25,
				catalog.ShirtLen:  44,
			},
			MaterialNotes: "Royal Blue Velvet with Gold embroidery",
			OrderDate:     now.Add(-5 * 24 * time.Hour),
			DeliveryDate:  now.Add(2 * 24 * time.Hour),
			Status:        catalog.StatusStitching,
			AmountTotal:   15000,
			AmountPaid:    5000,
			PaymentMethod: catalog.PayUPI,
			TrackingToken: "abc123xyz",
		},
		{
			ID:           "ORD-002",
			CustomerID:   "CUST-2",
			CustomerName: "Amit Patel",
			Mobile:       "9123456789",
			GarmentType:  catalog.Shirt,
			Measurements: map[catalog.MeasurementField]float64{
				catalog.Neck:      15.5,
				catalog.Shoulder:  17.5,
				catalog.Chest:     40,
				catalog.Waist:     34,
				catalog.SleeveLen: 24,
				catalog.ShirtLen:  28,
			},
			MaterialNotes: "White Linen",
			OrderDate:     now.Add(-2 * 24 * time.Hour),
			DeliveryDate:  now.Add(5 * 24 * time.Hour),
			Status:        catalog.StatusCutting,
			AmountTotal:   1200,
			AmountPaid:    1200,
			PaymentMethod: catalog.PayCreditCard,
			TrackingToken: "def456uvw",
		},
	}
}
