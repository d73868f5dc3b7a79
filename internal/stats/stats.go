// Package stats derives dashboard figures from an order snapshot. Every
// function is pure and total: empty input yields zeros, malformed numerics
// count as zero, nothing here mutates or persists.
package stats

import (
	"math"
	"time"

	"github.com/darji-master/orders-service/internal/catalog"
	"github.com/darji-master/orders-service/internal/domain"
)

// StatusCount pairs a status with its order count. Snapshot and
// StatusHistogram emit one per status in canonical flow order so charts render
// stably.
type StatusCount struct {
	Status catalog.Status `json:"status"`
	Count  int            `json:"count"`
}

// Snapshot bundles everything the dashboard renders in one pass.
type Snapshot struct {
	TotalOrders    int           `json:"totalOrders"`
	ActiveOrders   int           `json:"activeOrders"`
	PendingRevenue float64       `json:"pendingRevenue"`
	DeliveriesDue  int           `json:"deliveriesDue"`
	ByStatus       []StatusCount `json:"byStatus"`
}

func TotalOrders(orders []domain.Order) int {
	return len(orders)
}

// ActiveOrders counts everything not yet delivered.
func ActiveOrders(orders []domain.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status != catalog.StatusDelivered {
			n++
		}
	}
	return n
}

// PendingRevenue sums amountTotal - amountPaid over all orders. Over-paid
// orders contribute negative amounts on purpose: billing anomalies should
// show up in the figure, not vanish under a clamp.
func PendingRevenue(orders []domain.Order) float64 {
	var sum float64
	for _, o := range orders {
		sum += num(o.AmountTotal) - num(o.AmountPaid)
	}
	return sum
}

// StatusHistogram returns one entry per status in canonical order, zeros
// included. Counts always sum to len(orders).
func StatusHistogram(orders []domain.Order) []StatusCount {
	flow := catalog.StatusFlow()
	counts := make(map[catalog.Status]int, len(flow))
	for _, o := range orders {
		counts[o.Status]++
	}
	out := make([]StatusCount, 0, len(flow))
	for _, st := range flow {
		out = append(out, StatusCount{Status: st, Count: counts[st]})
	}
	return out
}

// DeliveriesDue counts non-delivered orders whose delivery date is at or
// before asOf, flagging overdue-or-due-today work.
func DeliveriesDue(orders []domain.Order, asOf time.Time) int {
	n := 0
	for _, o := range orders {
		if o.Status == catalog.StatusDelivered {
			continue
		}
		if !o.DeliveryDate.After(asOf) {
			n++
		}
	}
	return n
}

func Compute(orders []domain.Order, asOf time.Time) Snapshot {
	return Snapshot{
		TotalOrders:    TotalOrders(orders),
		ActiveOrders:   ActiveOrders(orders),
		PendingRevenue: PendingRevenue(orders),
		DeliveriesDue:  DeliveriesDue(orders, asOf),
		ByStatus:       StatusHistogram(orders),
	}
}

func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
