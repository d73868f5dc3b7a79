package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/darji-master/orders-service/internal/catalog"
	"github.com/darji-master/orders-service/internal/domain"
)

func seed(t *testing.T) []domain.Order {
	t.Helper()
	return domain.SeedOrders(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
}

func TestSeedScenario(t *testing.T) {
	orders := seed(t)

	assert.Equal(t, 2, TotalOrders(orders))
	assert.Equal(t, 2, ActiveOrders(orders))
	assert.InDelta(t, 10000, PendingRevenue(orders), 1e-9)
}

func TestPendingRevenueIncludesNegativeContributions(t *testing.T) {
	orders := []domain.Order{
		{AmountTotal: 1000, AmountPaid: 1500},
		{AmountTotal: 2000, AmountPaid: 0},
	}
	assert.InDelta(t, 1500, PendingRevenue(orders), 1e-9)
}

func TestPendingRevenueTreatsNaNAsZero(t *testing.T) {
	orders := []domain.Order{
		{AmountTotal: math.NaN(), AmountPaid: 100},
		{AmountTotal: 500, AmountPaid: math.Inf(1)},
	}
	assert.InDelta(t, 400, PendingRevenue(orders), 1e-9)
}

func TestEmptyCollection(t *testing.T) {
	assert.Equal(t, 0, TotalOrders(nil))
	assert.Equal(t, 0, ActiveOrders(nil))
	assert.Zero(t, PendingRevenue(nil))
	assert.Equal(t, 0, DeliveriesDue(nil, time.Now()))

	hist := StatusHistogram(nil)
	assert.Len(t, hist, len(catalog.StatusFlow()))
	for _, sc := range hist {
		assert.Zero(t, sc.Count)
	}
}

func TestStatusHistogramCoversEveryStatusAndSums(t *testing.T) {
	orders := seed(t)
	orders = append(orders, domain.Order{ID: "ORD-003", Status: catalog.StatusDelivered})

	hist := StatusHistogram(orders)
	assert.Len(t, hist, 6)

	total := 0
	for i, sc := range hist {
		assert.Equal(t, catalog.StatusFlow()[i], sc.Status, "histogram must follow canonical order")
		total += sc.Count
	}
	assert.Equal(t, TotalOrders(orders), total)
}

func TestActiveOrdersAfterDelivery(t *testing.T) {
	orders := seed(t)
	orders[0].Status = catalog.StatusDelivered
	assert.Equal(t, 1, ActiveOrders(orders))
}

func TestDeliveriesDueBoundaries(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	order := domain.Order{Status: catalog.StatusStitching, DeliveryDate: due}

	// one day past due: counted
	assert.Equal(t, 1, DeliveriesDue([]domain.Order{order}, due.Add(24*time.Hour)))
	// exactly on the deadline: counted
	assert.Equal(t, 1, DeliveriesDue([]domain.Order{order}, due))
	// not yet due: not counted
	assert.Equal(t, 0, DeliveriesDue([]domain.Order{order}, due.Add(-time.Minute)))

	// delivered orders never count, however overdue
	order.Status = catalog.StatusDelivered
	assert.Equal(t, 0, DeliveriesDue([]domain.Order{order}, due.Add(24*time.Hour)))
}

func TestCompute(t *testing.T) {
	orders := seed(t)
	asOf := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	snap := Compute(orders, asOf)
	assert.Equal(t, 2, snap.TotalOrders)
	assert.Equal(t, 2, snap.ActiveOrders)
	assert.InDelta(t, 10000, snap.PendingRevenue, 1e-9)
	assert.Equal(t, 2, snap.DeliveriesDue) // both seed deliveries fall before asOf
	assert.Len(t, snap.ByStatus, 6)
}
