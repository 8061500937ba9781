// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`

	SnapshotDriver   string `mapstructure:"SNAPSHOT_DRIVER"` // "json" or "postgres"
	SnapshotFile     string `mapstructure:"SNAPSHOT_FILE"`
	SnapshotDBSource string `mapstructure:"SNAPSHOT_DB_SOURCE"`

	PriceTickInterval   time.Duration `mapstructure:"PRICE_TICK_INTERVAL"`
	PriceUpProbability  float64       `mapstructure:"PRICE_UP_PROBABILITY"`
	PriceMaxStep        int64         `mapstructure:"PRICE_MAX_STEP"`
	PaymentTickInterval time.Duration `mapstructure:"PAYMENT_TICK_INTERVAL"`

	NudgePriceOnTrade bool  `mapstructure:"NUDGE_PRICE_ON_TRADE"`
	TradeNudgeBound   int64 `mapstructure:"TRADE_NUDGE_BOUND"`

	Environement string `mapstructure:"GO_ENV"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
