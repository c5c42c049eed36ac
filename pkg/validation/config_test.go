package validation

import "testing"

func TestValidateSellerScenario(t *testing.T) {
	tests := []struct {
		name             string
		mlsPrice         float64
		directOffers     []float64
		expectedWarnings int
	}{
		{"Valid scenario", 950000, []float64{850000, 875000}, 0},
		{"Negative MLS price", -100, []float64{850000}, 1},
		{"No direct offers", 950000, nil, 1},
		{"Negative offer", 950000, []float64{850000, -1}, 1},
		{"Everything wrong", -1, nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateSellerScenario("test deal", tt.mlsPrice, tt.directOffers)
			if len(warnings) != tt.expectedWarnings {
				t.Errorf("got %d warnings, expected %d: %v", len(warnings), tt.expectedWarnings, warnings)
			}
		})
	}
}

func TestValidateFlipScenario(t *testing.T) {
	tests := []struct {
		name               string
		purchasePrice      float64
		downPaymentPercent float64
		interestRate       float64
		remodelCost        float64
		holdingMonths      int
		salePrices         []float64
		expectedWarnings   int
	}{
		{"Valid scenario", 900000, 10, 6.0, 100000, 4, []float64{1100000}, 0},
		{"Negative purchase price", -1, 10, 6.0, 0, 4, []float64{1100000}, 1},
		{"Down payment out of range", 900000, 150, 6.0, 0, 4, []float64{1100000}, 1},
		{"Negative interest", 900000, 10, -1, 0, 4, []float64{1100000}, 1},
		{"Negative remodel", 900000, 10, 6.0, -500, 4, []float64{1100000}, 1},
		{"Negative holding months", 900000, 10, 6.0, 0, -4, []float64{1100000}, 1},
		{"No sale prices", 900000, 10, 6.0, 0, 4, nil, 1},
		{"Negative sale price", 900000, 10, 6.0, 0, 4, []float64{1100000, -5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateFlipScenario("test deal", tt.purchasePrice, tt.downPaymentPercent,
				tt.interestRate, tt.remodelCost, tt.holdingMonths, tt.salePrices)
			if len(warnings) != tt.expectedWarnings {
				t.Errorf("got %d warnings, expected %d: %v", len(warnings), tt.expectedWarnings, warnings)
			}
		})
	}
}
