// Package config loads economic constants from a live YAML source, falling
// back to the fixed defaults field by field.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"parcel-econ-lab/internal/domain"
)

// fileConfig mirrors domain.EconomicConfig with pointer fields so an absent
// key is distinguishable from an explicit zero.
type fileConfig struct {
	TaxRateNumerator       *int64   `yaml:"tax_rate_numerator"`
	TimeSpeed              *int64   `yaml:"time_speed"`
	LinearDecaySeconds     *int64   `yaml:"linear_decay_seconds"`
	DropRate               *int64   `yaml:"drop_rate"`
	RateDenominator        *int64   `yaml:"rate_denominator"`
	ScalingFactor          *int64   `yaml:"scaling_factor"`
	AuctionDurationSeconds *int64   `yaml:"auction_duration_seconds"`
	DurationCapHours       *float64 `yaml:"duration_cap_hours"`
}

// Load reads economic config from path. An empty path or a missing file
// yields the defaults — the live source being down must not stop the
// engine. A present but malformed file is an error.
func Load(path string) (domain.EconomicConfig, error) {
	cfg := domain.DefaultEconomicConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return merge(cfg, fc), nil
}

// merge overlays present file fields onto base.
func merge(base domain.EconomicConfig, fc fileConfig) domain.EconomicConfig {
	if fc.TaxRateNumerator != nil {
		base.TaxRateNumerator = *fc.TaxRateNumerator
	}
	if fc.TimeSpeed != nil {
		base.TimeSpeed = *fc.TimeSpeed
	}
	if fc.LinearDecaySeconds != nil {
		base.LinearDecaySeconds = *fc.LinearDecaySeconds
	}
	if fc.DropRate != nil {
		base.DropRate = *fc.DropRate
	}
	if fc.RateDenominator != nil {
		base.RateDenominator = *fc.RateDenominator
	}
	if fc.ScalingFactor != nil {
		base.ScalingFactor = *fc.ScalingFactor
	}
	if fc.AuctionDurationSeconds != nil {
		base.AuctionDurationSeconds = *fc.AuctionDurationSeconds
	}
	if fc.DurationCapHours != nil {
		base.DurationCapHours = *fc.DurationCapHours
	}
	return base
}
