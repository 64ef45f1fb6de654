// Package config loads default planning parameters from the environment
// (and an optional .env file), the way giia-core-engine's pkg/config wraps
// viper. The planner itself never reads configuration directly; callers
// use this package to seed entities.PlanningParameters before overriding
// per-request fields from a parsed Request.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the narrow contract planning callers read defaults through.
type Config interface {
	GetFloat64(key string) float64
	GetInt(key string) int
	GetBool(key string) bool
	GetString(key string) string
	IsSet(key string) bool
	Validate(requiredKeys []string) error
}

// ViperConfig is the production Config implementation.
type ViperConfig struct {
	viper *viper.Viper
}

// New builds a ViperConfig seeded with the spec §3 defaults, reading an
// optional ".env" file from the working directory and environment
// variables prefixed with envPrefix (e.g. "MRP_SAFETY_MARGIN_PERCENT").
func New(envPrefix string) (*ViperConfig, error) {
	v := viper.New()

	v.SetConfigType("env")
	v.SetConfigName(".env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	if envPrefix != "" {
		v.SetEnvPrefix(envPrefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &ViperConfig{viper: v}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("safety_margin_percent", 8.0)
	v.SetDefault("safety_days", 2)
	v.SetDefault("minimum_stock_percent", 0.0)
	v.SetDefault("max_gap_days", 999)
	v.SetDefault("max_batch_multiplier", 2.0)
	v.SetDefault("stockout_cost_multiplier", 2.5)
	v.SetDefault("operational_efficiency_weight", 1.0)
	v.SetDefault("service_level", 0.95)
	v.SetDefault("enable_consolidation", true)
	v.SetDefault("enable_eoq_optimization", true)
	v.SetDefault("log_level", "info")
}

func (c *ViperConfig) GetFloat64(key string) float64 { return c.viper.GetFloat64(key) }
func (c *ViperConfig) GetInt(key string) int          { return c.viper.GetInt(key) }
func (c *ViperConfig) GetBool(key string) bool        { return c.viper.GetBool(key) }
func (c *ViperConfig) GetString(key string) string    { return c.viper.GetString(key) }
func (c *ViperConfig) IsSet(key string) bool          { return c.viper.IsSet(key) }

func (c *ViperConfig) Validate(requiredKeys []string) error {
	var missing []string
	for _, key := range requiredKeys {
		if !c.IsSet(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration keys: %s", strings.Join(missing, ", "))
	}
	return nil
}
