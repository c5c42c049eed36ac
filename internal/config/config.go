// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/deal-analyzer/pkg/dealcalc"
	"github.com/iwvelando/deal-analyzer/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for deal-analyzer.
type Configuration struct {
	Assumptions dealcalc.Assumptions `yaml:"assumptions,omitempty"`
	Deals       []Deal               `yaml:"deals"`
	Logging     LoggingConfig        `yaml:"logging,omitempty"`
	Output      OutputConfig         `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Property describes a tracked property.
type Property struct {
	Name      string `yaml:"name" json:"name"`
	Beds      int    `yaml:"beds,omitempty" json:"beds,omitempty"`
	Baths     int    `yaml:"baths,omitempty" json:"baths,omitempty"`
	Sqft      int    `yaml:"sqft,omitempty" json:"sqft,omitempty"`
	YearBuilt int    `yaml:"yearBuilt,omitempty" json:"yearBuilt,omitempty"`
	Notes     string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// SellerScenario holds the expected MLS sale price and the competing direct
// offers to compare against it.
type SellerScenario struct {
	MLSPrice     float64   `yaml:"mlsPrice"`
	DirectOffers []float64 `yaml:"directOffers,omitempty"`
}

// FlipScenario holds the acquisition parameters and the candidate sale prices
// for a fix-and-flip analysis. HoldingMonths of zero falls back to the
// assumptions' default.
type FlipScenario struct {
	PurchasePrice       float64   `yaml:"purchasePrice"`
	DownPaymentPercent  float64   `yaml:"downPaymentPercent"`
	InterestRatePercent float64   `yaml:"interestRatePercent"`
	RemodelCost         float64   `yaml:"remodelCost,omitempty"`
	HoldingMonths       int       `yaml:"holdingMonths,omitempty"`
	SalePrices          []float64 `yaml:"salePrices,omitempty"`
}

// Deal couples a property descriptor with the analyses to run for it. Either
// scenario block may be omitted.
type Deal struct {
	Name     string          `yaml:"name"`
	Property *Property       `yaml:"property,omitempty"`
	Seller   *SellerScenario `yaml:"seller,omitempty"`
	Flip     *FlipScenario   `yaml:"flip,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory reader; used by the HTTP server for uploaded and editor-supplied
// configs.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// applyDefaults fills the unset assumption fields with the recognized
// defaults and resolves each flip's holding months.
func (conf *Configuration) applyDefaults() {
	conf.Assumptions = conf.Assumptions.ApplyDefaults()
	for i := range conf.Deals {
		if flip := conf.Deals[i].Flip; flip != nil && flip.HoldingMonths == 0 {
			flip.HoldingMonths = conf.Assumptions.DefaultHoldingMonths
		}
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Deals) == 0 {
		warnings = append(warnings, "Configuration contains no deals")
	}

	for _, deal := range conf.Deals {
		if deal.Seller == nil && deal.Flip == nil {
			warnings = append(warnings, fmt.Sprintf("Deal '%s' has neither a seller nor a flip scenario", deal.Name))
			continue
		}
		if deal.Seller != nil {
			warnings = append(warnings, validation.ValidateSellerScenario(deal.Name, deal.Seller.MLSPrice, deal.Seller.DirectOffers)...)
		}
		if deal.Flip != nil {
			warnings = append(warnings, validation.ValidateFlipScenario(deal.Name, deal.Flip.PurchasePrice,
				deal.Flip.DownPaymentPercent, deal.Flip.InterestRatePercent, deal.Flip.RemodelCost,
				deal.Flip.HoldingMonths, deal.Flip.SalePrices)...)
		}
	}

	return warnings
}
