// Package output provides utilities for formatting and displaying analysis results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/deal-analyzer/internal/analysis"
	"github.com/iwvelando/deal-analyzer/pkg/dealcalc"
	"github.com/iwvelando/deal-analyzer/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(results []analysis.Analysis) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		fmt.Printf("--- Results for deal %s ---\n", result.Name)
		if prop := result.Property; prop != nil {
			_, _ = p.Printf("Property: %dbd/%dba, %d sqft, built %d\n", prop.Beds, prop.Baths, prop.Sqft, prop.YearBuilt)
			if prop.Notes != "" {
				fmt.Printf("Notes: %s\n", prop.Notes)
			}
		}

		if result.Seller != nil {
			printSellerComparison(result.Seller)
		}
		if result.Flip != nil {
			printFlipAnalysis(result.Flip)
		}
		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

func printSellerComparison(seller *analysis.SellerComparison) {
	fmt.Printf("\nSeller net proceeds: MLS listing vs. direct sale\n")
	fmt.Printf("%-24s | %14s", "Cost Item", "MLS")
	for i := range seller.Offers {
		fmt.Printf(" | %14s", fmt.Sprintf("Offer #%d", i+1))
	}
	fmt.Printf("\n")

	rows := []struct {
		label  string
		mls    float64
		offer  func(o analysis.OfferOutcome) float64
		negate bool
	}{
		{"Gross Sale Price", seller.MLS.Price, func(o analysis.OfferOutcome) float64 { return o.Result.Price }, false},
		{"Listing Agent", seller.MLS.ListingAgentFee, func(o analysis.OfferOutcome) float64 { return o.Result.ListingAgentFee }, true},
		{"Buyer Agent", seller.MLS.BuyerAgentFee, func(o analysis.OfferOutcome) float64 { return o.Result.BuyerAgentFee }, true},
		{"Prep Costs", seller.MLS.PrepCosts, func(o analysis.OfferOutcome) float64 { return o.Result.PrepCosts }, true},
		{"Holding Costs", seller.MLS.HoldingCosts, func(o analysis.OfferOutcome) float64 { return o.Result.HoldingCosts }, true},
		{"Transaction Costs", seller.MLS.TransactionCosts, func(o analysis.OfferOutcome) float64 { return o.Result.TransactionCosts }, true},
		{"TOTAL COSTS", seller.MLS.TotalCosts, func(o analysis.OfferOutcome) float64 { return o.Result.TotalCosts }, true},
		{"NET TO SELLER", seller.MLS.NetProceeds, func(o analysis.OfferOutcome) float64 { return o.Result.NetProceeds }, false},
		{"Difference vs MLS", 0, func(o analysis.OfferOutcome) float64 { return o.DifferenceVsMLS }, false},
	}

	for _, row := range rows {
		fmt.Printf("%-24s | %14s", row.label, signedCurrency(row.mls, row.negate))
		for _, offer := range seller.Offers {
			fmt.Printf(" | %14s", signedCurrency(row.offer(offer), row.negate))
		}
		fmt.Printf("\n")
	}

	fmt.Printf("\nCost savings with a direct sale: %s\n", format.Currency(seller.DirectSaleSavings))
	fmt.Printf("Best offer gap vs MLS: %s (%s)\n",
		format.Currency(seller.BestOfferGap), format.Percent(seller.BestOfferGapPercent))
}

func printFlipAnalysis(flip *analysis.FlipAnalysis) {
	costs := flip.Costs
	fmt.Printf("\nFlip acquisition and investment\n")
	fmt.Printf("Purchase Price: %s | Down Payment: %s | Loan Amount: %s\n",
		format.Currency(costs.PurchasePrice), format.Currency(costs.DownPayment), format.Currency(costs.LoanAmount))
	fmt.Printf("Cash to Acquire: %s | Remodel Cost: %s | Total Cash Invested: %s\n",
		format.Currency(costs.CashToAcquire), format.Currency(costs.RemodelCost), format.Currency(costs.TotalCashInvested))

	fmt.Printf("\nProfit scenarios\n")
	fmt.Printf("%-14s | %14s | %14s | %14s | %14s | %8s\n",
		"Sale Price", "Commission", "Fees", "Net Proceeds", "Profit", "ROI")
	for _, scenario := range flip.Scenarios {
		r := scenario.Result
		fmt.Printf("%14s | %14s | %14s | %14s | %14s | %8s\n",
			format.Currency(r.SalePrice), format.Currency(r.Commission), format.Currency(r.TransferFees),
			format.Currency(r.NetProceeds), format.Currency(r.Profit), format.Percent(r.ROIPercent))
	}

	fmt.Printf("\nBreakeven sale price: %s\n", format.WholeCurrency(flip.BreakevenSalePrice))
	if flip.Assessment != nil {
		fmt.Printf("Assessment (%s): %s\n", flip.Assessment.Rating, flip.Assessment.Message)
	}
}

func signedCurrency(amount float64, negate bool) string {
	if negate && amount != 0 {
		return format.Currency(-amount)
	}
	return format.Currency(amount)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []analysis.Analysis) {
	fmt.Print(CsvString(results))
}

// CsvString renders the analysis results in comma-separated value format.
// One row per seller scenario and per flip sale price, plus a breakeven row
// for every flip.
func CsvString(results []analysis.Analysis) string {
	var builder strings.Builder

	builder.WriteString(`"deal","section","label","price","totalCosts","cashInvested","net","profit","roiPercent"` + "\n")
	for _, result := range results {
		if result.Seller != nil {
			writeSellerRow(&builder, result.Name, "MLS", result.Seller.MLS)
			for i, offer := range result.Seller.Offers {
				writeSellerRow(&builder, result.Name, fmt.Sprintf("offer %d", i+1), offer.Result)
			}
		}
		if result.Flip != nil {
			for _, scenario := range result.Flip.Scenarios {
				r := scenario.Result
				fmt.Fprintf(&builder, `"%s","flip","sale","%.2f","","%.2f","%.2f","%.2f","%.2f"`+"\n",
					result.Name, r.SalePrice, result.Flip.Costs.TotalCashInvested, r.NetProceeds, r.Profit, r.ROIPercent)
			}
			fmt.Fprintf(&builder, `"%s","flip","breakeven","%.2f","","%.2f","","",""`+"\n",
				result.Name, result.Flip.BreakevenSalePrice, result.Flip.Costs.TotalCashInvested)
		}
	}

	return builder.String()
}

func writeSellerRow(builder *strings.Builder, dealName, label string, r dealcalc.SellerNetResult) {
	fmt.Fprintf(builder, `"%s","seller","%s","%.2f","%.2f","","%.2f","",""`+"\n",
		dealName, label, r.Price, r.TotalCosts, r.NetProceeds)
}
