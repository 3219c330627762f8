package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/tdex-network/linear-pool/pkg/marketmaking/formula"
)

const (
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// FeeKey is the default fee fraction of the curve, in range [0, 1)
	FeeKey = "FEE"
	// RateKey is the default exchange rate from wrapped to main asset
	RateKey = "RATE"
	// LowerTargetKey is the default lower target of the curve
	LowerTargetKey = "LOWER_TARGET"
	// UpperTargetKey is the default upper target of the curve
	UpperTargetKey = "UPPER_TARGET"
	// BatchConcurrencyKey is the max number of quotes evaluated in parallel
	// for a batch
	BatchConcurrencyKey = "BATCH_CONCURRENCY"
	// StatsFileKey is the path of the file where metrics are dumped
	StatsFileKey = "STATS_FILE"

	envPrefix = "LINEAR"
)

var vip *viper.Viper

// InitConfig (re)loads the configuration from the environment.
func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix(envPrefix)
	vip.AutomaticEnv()

	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(FeeKey, "0")
	vip.SetDefault(RateKey, "1")
	vip.SetDefault(LowerTargetKey, "0")
	vip.SetDefault(UpperTargetKey, "0")
	vip.SetDefault(BatchConcurrencyKey, 8)
	vip.SetDefault(StatsFileKey, "stats")

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}
	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetDecimal returns the value of the given key parsed as decimal. Invalid
// values are caught at init.
func GetDecimal(key string) decimal.Decimal {
	d, _ := decimal.NewFromString(strings.TrimSpace(vip.GetString(key)))
	return d
}

// GetParams returns the default curve params.
func GetParams() formula.Params {
	return formula.Params{
		Fee:         GetDecimal(FeeKey),
		Rate:        GetDecimal(RateKey),
		LowerTarget: GetDecimal(LowerTargetKey),
		UpperTarget: GetDecimal(UpperTargetKey),
	}
}

func validate() error {
	for _, key := range []string{FeeKey, RateKey, LowerTargetKey, UpperTargetKey} {
		if _, err := decimal.NewFromString(strings.TrimSpace(vip.GetString(key))); err != nil {
			return fmt.Errorf("%s must be a decimal number", key)
		}
	}

	if err := GetParams().Validate(); err != nil {
		return err
	}

	if GetInt(BatchConcurrencyKey) <= 0 {
		return fmt.Errorf("%s must be greater than zero", BatchConcurrencyKey)
	}

	level := GetInt(LogLevelKey)
	if level < 0 || level > 6 {
		return fmt.Errorf("%s must be in range [0, 6]", LogLevelKey)
	}
	return nil
}
