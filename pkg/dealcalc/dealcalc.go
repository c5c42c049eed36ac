// Package dealcalc provides the pure deal calculation functions: seller net
// proceeds, buyer acquisition costs, and flip profit/ROI. Every function is a
// total, side-effect-free mapping from an input record to an output record;
// out-of-domain inputs are rejected up front rather than clamped. Rate-derived
// dollar amounts are rounded to whole cents.
package dealcalc

import (
	"errors"
	"fmt"

	"github.com/iwvelando/deal-analyzer/pkg/constants"
	"github.com/iwvelando/deal-analyzer/pkg/mathutil"
)

var (
	// ErrInvalidInput indicates an input outside its stated domain constraint.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionByZero indicates an ROI computation with zero cash invested.
	ErrDivisionByZero = errors.New("division by zero")
)

// Assumptions holds the fee model behind every calculation. Rates are
// fractional (0.03 means 3%); fixed fees are dollar amounts. Zero-valued
// fields fall back to the recognized defaults via ApplyDefaults.
type Assumptions struct {
	ListingAgentRate        float64 `yaml:"listingAgentRate,omitempty"`
	BuyerAgentRate          float64 `yaml:"buyerAgentRate,omitempty"`
	MLSPrepCosts            float64 `yaml:"mlsPrepCosts,omitempty"`
	MLSHoldingCosts         float64 `yaml:"mlsHoldingCosts,omitempty"`
	TransferTaxRate         float64 `yaml:"transferTaxRate,omitempty"`
	EscrowFee               float64 `yaml:"escrowFee,omitempty"`
	LoanOriginationRate     float64 `yaml:"loanOriginationRate,omitempty"`
	BuyerClosingFixedFees   float64 `yaml:"buyerClosingFixedFees,omitempty"`
	SellerAgentRate         float64 `yaml:"sellerAgentRate,omitempty"`
	MonthlyHoldingFixed     float64 `yaml:"monthlyHoldingFixed,omitempty"`
	ResaleCommissionRate    float64 `yaml:"resaleCommissionRate,omitempty"`
	ResaleTransferFixedFee  float64 `yaml:"resaleTransferFixedFee,omitempty"`
	BreakevenReferencePrice float64 `yaml:"breakevenReferencePrice,omitempty"`
	DefaultHoldingMonths    int     `yaml:"defaultHoldingMonths,omitempty"`
}

// DefaultAssumptions returns the recognized default fee model.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		ListingAgentRate:        0.03,
		BuyerAgentRate:          0.02,
		MLSPrepCosts:            25000, // paint, clean, repairs, staging, landscaping
		MLSHoldingCosts:         2933,  // two months of property tax, utilities, insurance
		TransferTaxRate:         0.0011,
		EscrowFee:               1500,
		LoanOriginationRate:     0.01,
		BuyerClosingFixedFees:   4300, // appraisal, inspection, title, recording, misc
		SellerAgentRate:         0.03,
		MonthlyHoldingFixed:     1467, // property tax, utilities, insurance per month
		ResaleCommissionRate:    0.04,
		ResaleTransferFixedFee:  3000,
		BreakevenReferencePrice: 1000000,
		DefaultHoldingMonths:    4,
	}
}

// ApplyDefaults fills zero-valued fields with the recognized defaults so a
// configuration may override only the fields it cares about.
func (a Assumptions) ApplyDefaults() Assumptions {
	defaults := DefaultAssumptions()
	if a.ListingAgentRate == 0 {
		a.ListingAgentRate = defaults.ListingAgentRate
	}
	if a.BuyerAgentRate == 0 {
		a.BuyerAgentRate = defaults.BuyerAgentRate
	}
	if a.MLSPrepCosts == 0 {
		a.MLSPrepCosts = defaults.MLSPrepCosts
	}
	if a.MLSHoldingCosts == 0 {
		a.MLSHoldingCosts = defaults.MLSHoldingCosts
	}
	if a.TransferTaxRate == 0 {
		a.TransferTaxRate = defaults.TransferTaxRate
	}
	if a.EscrowFee == 0 {
		a.EscrowFee = defaults.EscrowFee
	}
	if a.LoanOriginationRate == 0 {
		a.LoanOriginationRate = defaults.LoanOriginationRate
	}
	if a.BuyerClosingFixedFees == 0 {
		a.BuyerClosingFixedFees = defaults.BuyerClosingFixedFees
	}
	if a.SellerAgentRate == 0 {
		a.SellerAgentRate = defaults.SellerAgentRate
	}
	if a.MonthlyHoldingFixed == 0 {
		a.MonthlyHoldingFixed = defaults.MonthlyHoldingFixed
	}
	if a.ResaleCommissionRate == 0 {
		a.ResaleCommissionRate = defaults.ResaleCommissionRate
	}
	if a.ResaleTransferFixedFee == 0 {
		a.ResaleTransferFixedFee = defaults.ResaleTransferFixedFee
	}
	if a.BreakevenReferencePrice == 0 {
		a.BreakevenReferencePrice = defaults.BreakevenReferencePrice
	}
	if a.DefaultHoldingMonths == 0 {
		a.DefaultHoldingMonths = defaults.DefaultHoldingMonths
	}
	return a
}

// SellerNetResult breaks down the costs of a sale and the seller's net
// proceeds. NetProceeds is always Price minus TotalCosts.
type SellerNetResult struct {
	Price            float64 `json:"price"`
	ListingAgentFee  float64 `json:"listingAgentFee"`
	BuyerAgentFee    float64 `json:"buyerAgentFee"`
	PrepCosts        float64 `json:"prepCosts"`
	HoldingCosts     float64 `json:"holdingCosts"`
	TransactionCosts float64 `json:"transactionCosts"`
	TotalCosts       float64 `json:"totalCosts"`
	NetProceeds      float64 `json:"netProceeds"`
}

// BuyerCostResult breaks down the cash required to acquire, carry, and
// remodel a property. DownPayment plus LoanAmount equals PurchasePrice;
// TotalCashInvested is CashToAcquire plus HoldingCosts plus RemodelCost.
type BuyerCostResult struct {
	PurchasePrice     float64 `json:"purchasePrice"`
	DownPayment       float64 `json:"downPayment"`
	LoanAmount        float64 `json:"loanAmount"`
	ClosingCosts      float64 `json:"closingCosts"`
	SellerAgentFee    float64 `json:"sellerAgentFee"`
	CashToAcquire     float64 `json:"cashToAcquire"`
	InterestCost      float64 `json:"interestCost"`
	HoldingCosts      float64 `json:"holdingCosts"`
	RemodelCost       float64 `json:"remodelCost"`
	TotalCashInvested float64 `json:"totalCashInvested"`
}

// FlipProfitResult breaks down the outcome of reselling a property acquired
// with a BuyerCostResult.
type FlipProfitResult struct {
	SalePrice    float64 `json:"salePrice"`
	Commission   float64 `json:"commission"`
	TransferFees float64 `json:"transferFees"`
	NetProceeds  float64 `json:"netProceeds"`
	Profit       float64 `json:"profit"`
	ROIPercent   float64 `json:"roiPercent"`
}

// SellerNet computes the seller's net proceeds for a sale at the given price.
// A sale listed on the market carries the buyer-agent commission plus the
// marketing-prep and holding costs; a direct off-market sale skips them. The
// listing-agent fee and transaction costs apply either way.
func (a Assumptions) SellerNet(price float64, listedOnMarket bool) (SellerNetResult, error) {
	if price < 0 {
		return SellerNetResult{}, fmt.Errorf("%w: price must be >= 0, got %.2f", ErrInvalidInput, price)
	}

	result := SellerNetResult{Price: price}
	result.ListingAgentFee = mathutil.Round(price * a.ListingAgentRate)
	if listedOnMarket {
		result.BuyerAgentFee = mathutil.Round(price * a.BuyerAgentRate)
		result.PrepCosts = a.MLSPrepCosts
		result.HoldingCosts = a.MLSHoldingCosts
	}
	result.TransactionCosts = mathutil.Round(price*a.TransferTaxRate + a.EscrowFee)
	result.TotalCosts = result.ListingAgentFee + result.BuyerAgentFee +
		result.PrepCosts + result.HoldingCosts + result.TransactionCosts
	result.NetProceeds = price - result.TotalCosts

	return result, nil
}

// BuyerCosts computes the all-in cash required for a leveraged purchase held
// for the given number of months before resale.
func (a Assumptions) BuyerCosts(purchasePrice, downPaymentPercent, annualInterestRatePercent, remodelCost float64, holdingMonths int) (BuyerCostResult, error) {
	switch {
	case purchasePrice < 0:
		return BuyerCostResult{}, fmt.Errorf("%w: purchase price must be >= 0, got %.2f", ErrInvalidInput, purchasePrice)
	case downPaymentPercent < 0 || downPaymentPercent > 100:
		return BuyerCostResult{}, fmt.Errorf("%w: down payment percent must be within [0, 100], got %.2f", ErrInvalidInput, downPaymentPercent)
	case annualInterestRatePercent < 0:
		return BuyerCostResult{}, fmt.Errorf("%w: annual interest rate percent must be >= 0, got %.2f", ErrInvalidInput, annualInterestRatePercent)
	case remodelCost < 0:
		return BuyerCostResult{}, fmt.Errorf("%w: remodel cost must be >= 0, got %.2f", ErrInvalidInput, remodelCost)
	case holdingMonths <= 0:
		return BuyerCostResult{}, fmt.Errorf("%w: holding months must be > 0, got %d", ErrInvalidInput, holdingMonths)
	}

	result := BuyerCostResult{PurchasePrice: purchasePrice, RemodelCost: remodelCost}
	result.DownPayment = mathutil.Round(mathutil.ApplyPercentage(purchasePrice, downPaymentPercent))
	result.LoanAmount = purchasePrice - result.DownPayment
	result.ClosingCosts = mathutil.Round(result.LoanAmount*a.LoanOriginationRate + a.BuyerClosingFixedFees)
	result.SellerAgentFee = mathutil.Round(purchasePrice * a.SellerAgentRate)
	result.CashToAcquire = result.DownPayment + result.ClosingCosts + result.SellerAgentFee

	monthlyInterest := result.LoanAmount * (annualInterestRatePercent / constants.PercentageMultiplier) / constants.MonthsPerYear
	result.InterestCost = mathutil.Round(monthlyInterest * float64(holdingMonths))
	result.HoldingCosts = result.InterestCost + a.MonthlyHoldingFixed*float64(holdingMonths)
	result.TotalCashInvested = result.CashToAcquire + result.HoldingCosts + result.RemodelCost

	return result, nil
}

// FlipProfit computes the profit and ROI from reselling at the given sale
// price. Returns ErrDivisionByZero when the buyer's total cash invested is
// zero, rather than propagating an infinite or NaN ROI.
func (a Assumptions) FlipProfit(costs BuyerCostResult, salePrice float64) (FlipProfitResult, error) {
	if salePrice < 0 {
		return FlipProfitResult{}, fmt.Errorf("%w: sale price must be >= 0, got %.2f", ErrInvalidInput, salePrice)
	}
	if mathutil.IsZero(costs.TotalCashInvested) {
		return FlipProfitResult{}, fmt.Errorf("%w: total cash invested is zero, ROI is undefined", ErrDivisionByZero)
	}

	result := FlipProfitResult{SalePrice: salePrice}
	result.Commission = mathutil.Round(salePrice * a.ResaleCommissionRate)
	result.TransferFees = mathutil.Round(salePrice*a.TransferTaxRate + a.ResaleTransferFixedFee)
	// The loan principal was never part of cash invested, so the payoff is
	// subtracted from sale proceeds rather than added to cash invested.
	result.NetProceeds = salePrice - result.Commission - result.TransferFees - costs.LoanAmount
	result.Profit = result.NetProceeds - costs.TotalCashInvested
	result.ROIPercent = mathutil.CalculatePercentage(result.Profit, costs.TotalCashInvested)

	return result, nil
}

// BreakevenSalePrice estimates the sale price at which a flip's profit is
// zero. The fixed resale fee is folded in as a fraction of the reference
// price, so the estimate is only exact near that price; it is not an exact
// algebraic inverse of FlipProfit for arbitrary sale prices.
func (a Assumptions) BreakevenSalePrice(costs BuyerCostResult) float64 {
	totalAllIn := costs.TotalCashInvested + costs.LoanAmount
	sellingCostFraction := a.ResaleCommissionRate + a.TransferTaxRate +
		a.ResaleTransferFixedFee/a.BreakevenReferencePrice
	return totalAllIn / (1 - sellingCostFraction)
}
