package presentation

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/darji-master/orders-service/internal/catalog"
	"github.com/darji-master/orders-service/internal/kafka"
	"github.com/darji-master/orders-service/internal/presentation/helpers"
	"github.com/darji-master/orders-service/internal/stats"
	"github.com/darji-master/orders-service/internal/store"
	"github.com/darji-master/orders-service/internal/stylist"
)

type OrdersHandler struct {
	svc     *store.Store
	stylist *stylist.Client
	events  *kafka.Producer
}

// NewOrdersHandler wires the API surface. events may be nil when Kafka is not
// configured; publishing degrades to a no-op.
func NewOrdersHandler(svc *store.Store, st *stylist.Client, events *kafka.Producer) *OrdersHandler {
	return &OrdersHandler{svc: svc, stylist: st, events: events}
}

func (h *OrdersHandler) Register(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
	r.Get("/orders", h.ListOrders)
	r.Post("/orders/{id}/status", h.UpdateStatus)
	r.Get("/dashboard", h.Dashboard)
	r.Get("/track/{token}", h.TrackOrder)
	r.Get("/catalog", h.Catalog)
	r.Post("/style/suggest", h.StyleSuggest)
}

// intakeRequest mirrors the order form. Amounts arrive as strings because the
// form never guarantees clean numbers; they are coerced, not rejected.
type intakeRequest struct {
	CustomerName  string                               `json:"customerName"`
	Mobile        string                               `json:"mobile"`
	GarmentType   catalog.GarmentType                  `json:"garmentType"`
	Measurements  map[catalog.MeasurementField]float64 `json:"measurements"`
	MaterialNotes string                               `json:"materialNotes"`
	MaterialImage string                               `json:"materialImage"`
	DeliveryDate  string                               `json:"deliveryDate"`
	AmountTotal   string                               `json:"amountTotal"`
	AmountPaid    string                               `json:"amountPaid"`
	PaymentMethod catalog.PaymentMethod                `json:"paymentMethod"`
}

func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req intakeRequest
	if err := helpers.DecodeJSON(r.Body, &req); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		helpers.HttpError(w, http.StatusBadRequest, "customerName is required")
		return
	}
	if strings.TrimSpace(req.Mobile) == "" {
		helpers.HttpError(w, http.StatusBadRequest, "mobile is required")
		return
	}
	if !catalog.ValidGarmentType(req.GarmentType) {
		helpers.HttpError(w, http.StatusBadRequest, "unknown garment type")
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = catalog.PayCash
	}
	if !catalog.ValidPaymentMethod(req.PaymentMethod) {
		helpers.HttpError(w, http.StatusBadRequest, "unknown payment method")
		return
	}

	ord := h.svc.Create(r.Context(), store.Intake{
		CustomerName:  req.CustomerName,
		Mobile:        req.Mobile,
		GarmentType:   req.GarmentType,
		Measurements:  req.Measurements,
		MaterialNotes: req.MaterialNotes,
		MaterialImage: req.MaterialImage,
		DeliveryDate:  parseDate(req.DeliveryDate),
		AmountTotal:   helpers.ParseAmount(req.AmountTotal),
		AmountPaid:    helpers.ParseAmount(req.AmountPaid),
		PaymentMethod: req.PaymentMethod,
	})

	go h.events.Publish(context.Background(), kafka.OrderEvent{
		Type:    kafka.EventOrderCreated,
		OrderID: ord.ID,
		Status:  ord.Status,
		At:      time.Now().UTC(),
	})

	helpers.WriteJSON(w, http.StatusCreated, map[string]any{
		"order":               ord,
		"missingMeasurements": catalog.MissingMeasurements(ord.GarmentType, ord.Measurements),
	})
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, h.svc.List())
}

type statusRequest struct {
	Status catalog.Status `json:"status"`
}

func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req statusRequest
	if err := helpers.DecodeJSON(r.Body, &req); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !catalog.ValidStatus(req.Status) {
		helpers.HttpError(w, http.StatusBadRequest, "unknown status")
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			helpers.HttpError(w, http.StatusNotFound, "order not found")
			return
		}
		helpers.HttpError(w, http.StatusInternalServerError, "failed to update status")
		return
	}

	go h.events.Publish(context.Background(), kafka.OrderEvent{
		Type:    kafka.EventStatusChanged,
		OrderID: id,
		Status:  req.Status,
		At:      time.Now().UTC(),
	})

	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"id":     id,
	})
}

func (h *OrdersHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, stats.Compute(h.svc.List(), time.Now()))
}

// trackingView is the customer-facing slice of an order: production progress
// and balance, no measurements or internal identifiers.
type trackingView struct {
	CustomerName string              `json:"customerName"`
	GarmentType  catalog.GarmentType `json:"garmentType"`
	GarmentLabel string              `json:"garmentLabel"`
	Status       catalog.Status      `json:"status"`
	OrderDate    time.Time           `json:"orderDate"`
	DeliveryDate time.Time           `json:"deliveryDate"`
	Balance      float64             `json:"balance"`
}

func (h *OrdersHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if strings.TrimSpace(token) == "" {
		helpers.HttpError(w, http.StatusBadRequest, "token is empty")
		return
	}

	ord, ok := h.svc.FindByToken(token)
	if !ok {
		helpers.HttpError(w, http.StatusNotFound, "no order for this token")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, trackingView{
		CustomerName: ord.CustomerName,
		GarmentType:  ord.GarmentType,
		GarmentLabel: catalog.GarmentLabel(ord.GarmentType),
		Status:       ord.Status,
		OrderDate:    ord.OrderDate,
		DeliveryDate: ord.DeliveryDate,
		Balance:      ord.Balance(),
	})
}

// Catalog serves the fixed enumerations that drive the order form: garment
// types with labels and their required measurement fields, the payment
// methods, and the advisory status flow.
func (h *OrdersHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	type garment struct {
		ID       catalog.GarmentType        `json:"id"`
		Label    string                     `json:"label"`
		Required []catalog.MeasurementField `json:"requiredMeasurements"`
	}

	garments := make([]garment, 0, len(catalog.GarmentTypes()))
	for _, gt := range catalog.GarmentTypes() {
		garments = append(garments, garment{
			ID:       gt,
			Label:    catalog.GarmentLabel(gt),
			Required: catalog.RequiredMeasurements(gt),
		})
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"garmentTypes":   garments,
		"paymentMethods": catalog.PaymentMethods(),
		"statusFlow":     catalog.StatusFlow(),
	})
}

type suggestRequest struct {
	EventType   string `json:"eventType"`
	Season      string `json:"season"`
	Preferences string `json:"preferences"`
}

// StyleSuggest proxies the AI stylist. The response is always 200 with a
// suggestion string; collaborator failures surface as the fallback message.
func (h *OrdersHandler) StyleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := helpers.DecodeJSON(r.Body, &req); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]string{
		"suggestion": h.stylist.Suggest(r.Context(), req.EventType, req.Season, req.Preferences),
	})
}

// parseDate accepts both RFC3339 timestamps and bare yyyy-mm-dd form values.
// Anything else yields the zero time; delivery dates are set once at intake.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
