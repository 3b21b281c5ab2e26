package domain

// Weight units.
const (
	UnitKg = "kg"
	UnitLb = "lb"
)

const (
	kgToLb    = 2.2046226218
	cmPerInch = 2.54
)

// ConvertWeight converts a weight value between "kg" and "lb".
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertWeight(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	if from == UnitKg && to == UnitLb {
		return v * kgToLb
	}
	if from == UnitLb && to == UnitKg {
		return v / kgToLb
	}
	return v
}

// ConvertHeight converts a height value between "cm" and "inches".
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertHeight(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	if from == UnitInches && to == UnitCM {
		return v * cmPerInch
	}
	if from == UnitCM && to == UnitInches {
		return v / cmPerInch
	}
	return v
}
