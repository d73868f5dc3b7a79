package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredMeasurementsNonEmptyForEveryGarment(t *testing.T) {
	for _, gt := range GarmentTypes() {
		fields := RequiredMeasurements(gt)
		require.NotEmpty(t, fields, "garment %s must have required measurements", gt)
	}
}

func TestRequiredMeasurementsStableOrder(t *testing.T) {
	first := RequiredMeasurements(Shirt)
	second := RequiredMeasurements(Shirt)
	assert.Equal(t, first, second)
	assert.Equal(t, []MeasurementField{Neck, Shoulder, Chest, Waist, SleeveLen, ShirtLen, Cuff, Biceps}, first)
}

func TestStatusFlowCanonicalOrder(t *testing.T) {
	flow := StatusFlow()
	assert.Equal(t, []Status{
		StatusMeasured,
		StatusCutting,
		StatusStitching,
		StatusFinishing,
		StatusReady,
		StatusDelivered,
	}, flow)
}

func TestEnumMembership(t *testing.T) {
	assert.True(t, ValidGarmentType(Sherwani))
	assert.False(t, ValidGarmentType("Saree"))

	assert.True(t, ValidStatus(StatusReady))
	assert.False(t, ValidStatus("Shipped"))

	assert.True(t, ValidPaymentMethod(PayUPI))
	assert.False(t, ValidPaymentMethod("Cheque"))
}

func TestGarmentLabel(t *testing.T) {
	assert.Equal(t, "Wedding Sherwani", GarmentLabel(Sherwani))
	assert.Equal(t, "Saree", GarmentLabel("Saree"))
}

func TestMissingMeasurements(t *testing.T) {
	m := map[MeasurementField]float64{
		Waist:   34,
		Hips:    38,
		PantLen: 40,
	}
	missing := MissingMeasurements(Pajama, m)
	assert.Equal(t, []MeasurementField{Cuff}, missing)

	m[Cuff] = 7.5
	assert.Empty(t, MissingMeasurements(Pajama, m))

	// zero counts as absent
	m[Cuff] = 0
	assert.Equal(t, []MeasurementField{Cuff}, MissingMeasurements(Pajama, m))
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	flow := StatusFlow()
	flow[0] = StatusDelivered
	assert.Equal(t, StatusMeasured, StatusFlow()[0])

	fields := RequiredMeasurements(Pant)
	fields[0] = Neck
	assert.Equal(t, Waist, RequiredMeasurements(Pant)[0])
}
