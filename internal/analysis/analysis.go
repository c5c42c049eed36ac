// Package analysis runs the deal calculators over a configuration and
// assembles the structured results rendered by the CLI and the server.
package analysis

import (
	"fmt"

	"github.com/iwvelando/deal-analyzer/internal/config"
	"github.com/iwvelando/deal-analyzer/pkg/dealcalc"
	"github.com/iwvelando/deal-analyzer/pkg/format"
	"github.com/iwvelando/deal-analyzer/pkg/mathutil"
	"go.uber.org/zap"
)

// Rating classifies a flip deal by its best-case ROI.
type Rating string

const (
	RatingNegative Rating = "negative"
	RatingMarginal Rating = "marginal"
	RatingDecent   Rating = "decent"
	RatingStrong   Rating = "strong"
)

// ROI percent thresholds separating the ratings.
const (
	marginalROIPercent = 10.0
	decentROIPercent   = 20.0
)

// Assessment summarizes whether a flip deal is worth pursuing based on the
// best outcome across the configured sale prices.
type Assessment struct {
	Rating         Rating  `json:"rating"`
	BestROIPercent float64 `json:"bestRoiPercent"`
	BestProfit     float64 `json:"bestProfit"`
	Message        string  `json:"message"`
}

// OfferOutcome holds the seller result for one direct offer and its gap
// against the MLS net proceeds.
type OfferOutcome struct {
	Result          dealcalc.SellerNetResult `json:"result"`
	DifferenceVsMLS float64                  `json:"differenceVsMls"`
}

// SellerComparison contrasts a traditional MLS listing with direct offers.
type SellerComparison struct {
	MLS                 dealcalc.SellerNetResult `json:"mls"`
	Offers              []OfferOutcome           `json:"offers"`
	DirectSaleSavings   float64                  `json:"directSaleSavings"`
	BestOfferGap        float64                  `json:"bestOfferGap"`
	BestOfferGapPercent float64                  `json:"bestOfferGapPercent"`
}

// FlipScenarioResult pairs a sale price with its profit outcome.
type FlipScenarioResult struct {
	SalePrice float64                   `json:"salePrice"`
	Result    dealcalc.FlipProfitResult `json:"result"`
}

// FlipAnalysis holds the acquisition costs, the profit outcomes per sale
// price, the breakeven estimate, and the overall assessment.
type FlipAnalysis struct {
	Costs              dealcalc.BuyerCostResult `json:"costs"`
	Scenarios          []FlipScenarioResult     `json:"scenarios"`
	BreakevenSalePrice float64                  `json:"breakevenSalePrice"`
	Assessment         *Assessment              `json:"assessment,omitempty"`
}

// Analysis holds all results for one configured deal.
type Analysis struct {
	Name     string            `json:"name"`
	Property *config.Property  `json:"property,omitempty"`
	Seller   *SellerComparison `json:"seller,omitempty"`
	Flip     *FlipAnalysis     `json:"flip,omitempty"`
}

// Run executes the configured analyses for every deal.
func Run(logger *zap.Logger, conf config.Configuration) ([]Analysis, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Analysis, 0, len(conf.Deals))
	for _, deal := range conf.Deals {
		result := Analysis{Name: deal.Name, Property: deal.Property}

		if deal.Seller != nil {
			comparison, err := runSeller(conf.Assumptions, deal.Name, *deal.Seller)
			if err != nil {
				return results, err
			}
			result.Seller = comparison
		}

		if deal.Flip != nil {
			flip, err := runFlip(conf.Assumptions, deal.Name, *deal.Flip)
			if err != nil {
				return results, err
			}
			result.Flip = flip
		}

		logger.Debug(fmt.Sprintf("analyzed deal %s", deal.Name),
			zap.String("op", "analysis.Run"),
		)
		results = append(results, result)
	}

	return results, nil
}

func runSeller(assumptions dealcalc.Assumptions, dealName string, scenario config.SellerScenario) (*SellerComparison, error) {
	mls, err := assumptions.SellerNet(scenario.MLSPrice, true)
	if err != nil {
		return nil, fmt.Errorf("deal %s: MLS scenario: %w", dealName, err)
	}

	comparison := SellerComparison{
		MLS: mls,
		// The costs a direct sale skips entirely.
		DirectSaleSavings: mls.BuyerAgentFee + mls.PrepCosts + mls.HoldingCosts,
	}

	for i, offer := range scenario.DirectOffers {
		net, err := assumptions.SellerNet(offer, false)
		if err != nil {
			return nil, fmt.Errorf("deal %s: direct offer #%d: %w", dealName, i+1, err)
		}
		outcome := OfferOutcome{
			Result:          net,
			DifferenceVsMLS: net.NetProceeds - mls.NetProceeds,
		}
		if i == 0 || outcome.DifferenceVsMLS > comparison.BestOfferGap {
			comparison.BestOfferGap = outcome.DifferenceVsMLS
		}
		comparison.Offers = append(comparison.Offers, outcome)
	}
	comparison.BestOfferGapPercent = mathutil.CalculatePercentage(comparison.BestOfferGap, mls.NetProceeds)

	return &comparison, nil
}

func runFlip(assumptions dealcalc.Assumptions, dealName string, scenario config.FlipScenario) (*FlipAnalysis, error) {
	costs, err := assumptions.BuyerCosts(scenario.PurchasePrice, scenario.DownPaymentPercent,
		scenario.InterestRatePercent, scenario.RemodelCost, scenario.HoldingMonths)
	if err != nil {
		return nil, fmt.Errorf("deal %s: buyer costs: %w", dealName, err)
	}

	flip := FlipAnalysis{
		Costs:              costs,
		BreakevenSalePrice: assumptions.BreakevenSalePrice(costs),
	}

	for i, salePrice := range scenario.SalePrices {
		outcome, err := assumptions.FlipProfit(costs, salePrice)
		if err != nil {
			return nil, fmt.Errorf("deal %s: sale price #%d: %w", dealName, i+1, err)
		}
		flip.Scenarios = append(flip.Scenarios, FlipScenarioResult{SalePrice: salePrice, Result: outcome})
	}
	flip.Assessment = assess(flip.Scenarios)

	return &flip, nil
}

// assess classifies the flip by its best ROI across scenarios. Returns nil
// when no sale prices are configured.
func assess(scenarios []FlipScenarioResult) *Assessment {
	if len(scenarios) == 0 {
		return nil
	}

	best := scenarios[0].Result
	for _, scenario := range scenarios[1:] {
		if scenario.Result.ROIPercent > best.ROIPercent {
			best = scenario.Result
		}
	}

	assessment := Assessment{
		BestROIPercent: best.ROIPercent,
		BestProfit:     best.Profit,
	}
	switch {
	case best.ROIPercent < 0:
		assessment.Rating = RatingNegative
		assessment.Message = fmt.Sprintf("all scenarios show negative returns; highest ROI is %s", format.Percent(best.ROIPercent))
	case best.ROIPercent < marginalROIPercent:
		assessment.Rating = RatingMarginal
		assessment.Message = fmt.Sprintf("best ROI is %s with profit of %s; risk versus reward may not justify the deal",
			format.Percent(best.ROIPercent), format.WholeCurrency(best.Profit))
	case best.ROIPercent < decentROIPercent:
		assessment.Rating = RatingDecent
		assessment.Message = fmt.Sprintf("best ROI is %s with profit of %s; reasonable margins",
			format.Percent(best.ROIPercent), format.WholeCurrency(best.Profit))
	default:
		assessment.Rating = RatingStrong
		assessment.Message = fmt.Sprintf("best ROI is %s with profit of %s; excellent margins",
			format.Percent(best.ROIPercent), format.WholeCurrency(best.Profit))
	}

	return &assessment
}
