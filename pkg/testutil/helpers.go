// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/deal-analyzer/internal/analysis"
)

// FindAnalysis finds a deal analysis by name in the results slice.
// Returns a pointer to the analysis if found, nil otherwise.
func FindAnalysis(results []analysis.Analysis, name string) *analysis.Analysis {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
