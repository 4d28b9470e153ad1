package sessionconfig

import (
	"os"
	"strings"

	"github.com/golobby/cast"
)

// EnvPrefix is the prefix every overridable environment variable carries.
const EnvPrefix = "NAUTILUS_"

// ApplyEnvOverrides layers environment variables onto cfg, using
// golobby/cast for type coercion from the string environment into the
// config's typed fields. Recognized variables:
//
//	NAUTILUS_TRADER_ID
//	NAUTILUS_CLOCK_MODE
//	NAUTILUS_RISK_MAX_ORDER_QTY
//	NAUTILUS_RISK_MAX_POSITION_QTY
//
// Unrecognized NAUTILUS_-prefixed variables are ignored: this is a small,
// fixed override surface, not a generic reflection-based binder.
func ApplyEnvOverrides(cfg *TraderConfig) error {
	return applyEnvOverrides(cfg, os.Environ())
}

func applyEnvOverrides(cfg *TraderConfig, environ []string) error {
	lookup := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		lookup[k] = v
	}

	if v, ok := lookup[EnvPrefix+"TRADER_ID"]; ok {
		s, err := cast.ToString(v)
		if err != nil {
			return err
		}
		cfg.TraderID = s
	}
	if v, ok := lookup[EnvPrefix+"CLOCK_MODE"]; ok {
		s, err := cast.ToString(v)
		if err != nil {
			return err
		}
		cfg.ClockMode = s
	}
	if v, ok := lookup[EnvPrefix+"RISK_MAX_ORDER_QTY"]; ok {
		f, err := cast.ToFloat64(v)
		if err != nil {
			return err
		}
		cfg.RiskLimits.MaxOrderQty = f
	}
	if v, ok := lookup[EnvPrefix+"RISK_MAX_POSITION_QTY"]; ok {
		f, err := cast.ToFloat64(v)
		if err != nil {
			return err
		}
		cfg.RiskLimits.MaxPositionQty = f
	}
	return nil
}
