package validation

import "fmt"

// ValidateSellerScenario checks a seller scenario's prices and returns
// warnings. Out-of-domain values are surfaced here so a config problem is
// reported before it fails a calculation.
func ValidateSellerScenario(dealName string, mlsPrice float64, directOffers []float64) []string {
	var warnings []string

	if mlsPrice < 0 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has a negative MLS price (%.2f)", dealName, mlsPrice))
	}
	for i, offer := range directOffers {
		if offer < 0 {
			warnings = append(warnings, fmt.Sprintf("Deal '%s' direct offer #%d is negative (%.2f)", dealName, i+1, offer))
		}
	}
	if len(directOffers) == 0 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' seller scenario has no direct offers to compare against the MLS sale", dealName))
	}

	return warnings
}

// ValidateFlipScenario checks a flip scenario's parameters and returns
// warnings.
func ValidateFlipScenario(dealName string, purchasePrice, downPaymentPercent, interestRatePercent, remodelCost float64, holdingMonths int, salePrices []float64) []string {
	var warnings []string

	if purchasePrice < 0 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has a negative purchase price (%.2f)", dealName, purchasePrice))
	}
	if downPaymentPercent < 0 || downPaymentPercent > 100 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' down payment percent %.2f is outside [0, 100]", dealName, downPaymentPercent))
	}
	if interestRatePercent < 0 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has a negative interest rate (%.2f)", dealName, interestRatePercent))
	}
	if remodelCost < 0 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has a negative remodel cost (%.2f)", dealName, remodelCost))
	}
	if holdingMonths < 0 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has negative holding months (%d)", dealName, holdingMonths))
	}
	for i, price := range salePrices {
		if price < 0 {
			warnings = append(warnings, fmt.Sprintf("Deal '%s' sale price #%d is negative (%.2f)", dealName, i+1, price))
		}
	}
	if len(salePrices) == 0 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' flip scenario has no sale prices configured", dealName))
	}

	return warnings
}
