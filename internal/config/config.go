package config

import (
	"fmt"

	"propertyroi/internal/domain"

	"github.com/spf13/viper"
)

// Load builds the boundary ParamSet from the baked-in defaults, optionally
// overridden by a YAML file. An empty path means defaults only; a named
// file must exist. Engine internals never read configuration; this record
// is consumed once at input construction.
func Load(path string) (*domain.ParamSet, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	params := &domain.ParamSet{}
	if err := v.Unmarshal(params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return params, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("price", 250_000.0)
	v.SetDefault("notary_pct", 7.5)
	v.SetDefault("agency_pct", 3.0)
	v.SetDefault("renovation_costs", 10_000.0)
	v.SetDefault("extra_fees", 2_000.0)

	v.SetDefault("loan_rate", 4.0)
	v.SetDefault("loan_years", 25)
	v.SetDefault("down_payment", 50_000.0)

	v.SetDefault("property_tax", 1_200.0)
	v.SetDefault("other_taxes", 0.0)
	v.SetDefault("insurance_rate", 0.25)
	v.SetDefault("condo_fees", 1_200.0)
	v.SetDefault("condo_fees_growth", 2.0)
	v.SetDefault("maintenance_rate", 1.0)
	v.SetDefault("maintenance_flat", 0.0)

	v.SetDefault("price_growth_rate", 2.0)
	v.SetDefault("inflation_rate", 2.0)
	v.SetDefault("purchase_year", 2026)
	v.SetDefault("sale_year", 2036)

	v.SetDefault("benchmark_return_rate", 5.0)
	v.SetDefault("benchmark_monthly_rent", 800.0)

	v.SetDefault("occupancy_rate", 0.92)
	v.SetDefault("monthly_rent", 1_100.0)
	v.SetDefault("rent_growth_rate", 2.0)
	v.SetDefault("management_fee_rate", 6.0)
	v.SetDefault("rental_tax_rate", 30.0)

	v.SetDefault("selling_fees_rate", 5.0)
	v.SetDefault("capital_gains_rate", 0.0)
	v.SetDefault("include_early_repayment_penalty", false)

	v.SetDefault("discount_rate", 2.0)
}
