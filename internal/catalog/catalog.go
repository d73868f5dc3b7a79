// Package catalog is the single source of truth for the fixed enumerations of
// the tailoring domain and for the garment-type -> required-measurements table.
// Everything here is a constant lookup; nothing mutates at runtime.
package catalog

type GarmentType string

const (
	Shirt    GarmentType = "Shirt"
	Pant     GarmentType = "Pant"
	Kurta    GarmentType = "Kurta"
	Sherwani GarmentType = "Sherwani"
	Suit     GarmentType = "Suit"
	Pajama   GarmentType = "Pajama"
)

type Status string

const (
	StatusMeasured  Status = "Measured"
	StatusCutting   Status = "Cutting"
	StatusStitching Status = "Stitching"
	StatusFinishing Status = "Finishing"
	StatusReady     Status = "Ready"
	StatusDelivered Status = "Delivered"
)

type PaymentMethod string

const (
	PayCash       PaymentMethod = "Cash"
	PayCreditCard PaymentMethod = "Credit Card"
	PayDebitCard  PaymentMethod = "Debit Card"
	PayUPI        PaymentMethod = "UPI"
)

// MeasurementField is a closed set of measurement names; values are inches.
type MeasurementField string

const (
	Neck        MeasurementField = "neck"
	Shoulder    MeasurementField = "shoulder"
	Chest       MeasurementField = "chest"
	Waist       MeasurementField = "waist"
	Hips        MeasurementField = "hips"
	SleeveLen   MeasurementField = "sleeveLength"
	ShirtLen    MeasurementField = "shirtLength"
	PantLen     MeasurementField = "pantLength"
	Inseam      MeasurementField = "inseam"
	Thigh       MeasurementField = "thigh"
	Biceps      MeasurementField = "biceps"
	Cuff        MeasurementField = "cuff"
)

var garmentTypes = []GarmentType{Shirt, Pant, Kurta, Sherwani, Suit, Pajama}

var garmentLabels = map[GarmentType]string{
	Shirt:    "Formal Shirt",
	Pant:     "Formal Pant",
	Kurta:    "Traditional Kurta",
	Sherwani: "Wedding Sherwani",
	Suit:     "3-Piece Suit",
	Pajama:   "Pajama / Churidar",
}

var statusFlow = []Status{
	StatusMeasured,
	StatusCutting,
	StatusStitching,
	StatusFinishing,
	StatusReady,
	StatusDelivered,
}

var paymentMethods = []PaymentMethod{PayCash, PayCreditCard, PayDebitCard, PayUPI}

var requiredMeasurements = map[GarmentType][]MeasurementField{
	Shirt:    {Neck, Shoulder, Chest, Waist, SleeveLen, ShirtLen, Cuff, Biceps},
	Pant:     {Waist, Hips, PantLen, Inseam, Thigh, Cuff},
	Kurta:    {Neck, Shoulder, Chest, Waist, SleeveLen, ShirtLen},
	Sherwani: {Neck, Shoulder, Chest, Waist, Hips, SleeveLen, ShirtLen},
	Suit:     {Neck, Shoulder, Chest, Waist, Hips, SleeveLen, ShirtLen, PantLen, Inseam},
	Pajama:   {Waist, Hips, PantLen, Cuff},
}

// GarmentTypes returns every garment type in declaration order.
func GarmentTypes() []GarmentType {
	out := make([]GarmentType, len(garmentTypes))
	copy(out, garmentTypes)
	return out
}

// GarmentLabel returns the human-facing label for a garment type, or the raw
// value when the type is unknown.
func GarmentLabel(gt GarmentType) string {
	if l, ok := garmentLabels[gt]; ok {
		return l
	}
	return string(gt)
}

// StatusFlow returns the canonical forward production sequence. It is advisory
// metadata for rendering; no store operation enforces it.
func StatusFlow() []Status {
	out := make([]Status, len(statusFlow))
	copy(out, statusFlow)
	return out
}

// PaymentMethods returns every payment method in declaration order.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// RequiredMeasurements returns the ordered measurement fields a garment type
// needs. Every garment type maps to a non-empty list.
func RequiredMeasurements(gt GarmentType) []MeasurementField {
	fields := requiredMeasurements[gt]
	out := make([]MeasurementField, len(fields))
	copy(out, fields)
	return out
}

func ValidGarmentType(gt GarmentType) bool {
	_, ok := requiredMeasurements[gt]
	return ok
}

func ValidStatus(s Status) bool {
	for _, v := range statusFlow {
		if v == s {
			return true
		}
	}
	return false
}

func ValidPaymentMethod(pm PaymentMethod) bool {
	for _, v := range paymentMethods {
		if v == pm {
			return true
		}
	}
	return false
}

// MissingMeasurements reports which required fields for gt are absent or
// non-positive in the given sparse mapping. The data layer never rejects an
// order over this; callers surface it as advice.
func MissingMeasurements(gt GarmentType, m map[MeasurementField]float64) []MeasurementField {
	var missing []MeasurementField
	for _, f := range requiredMeasurements[gt] {
		if v, ok := m[f]; !ok || v <= 0 {
			missing = append(missing, f)
		}
	}
	return missing
}
