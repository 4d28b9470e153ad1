// Package sessionconfig loads the one configuration surface the runtime
// itself needs to boot a trading session: which trader, which venues and
// instruments, which clock mode, and the risk-limit fields a live session
// may hot-reload. It is deliberately thin — a general config framework is
// out of scope — but still layered the way the teacher layers its module
// configs: a file as the base source (TOML, with YAML accepted for
// interop), overridable by environment variables.
package sessionconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for a file extension that is
// neither .toml nor .yaml/.yml.
var ErrUnsupportedFormat = errors.New("sessionconfig: unsupported file format")

// VenueConfig describes one ExecutionClient this session will construct.
type VenueConfig struct {
	Name     string `toml:"name" yaml:"name"`
	ClientID string `toml:"client_id" yaml:"client_id"`
	OmsType  string `toml:"oms_type" yaml:"oms_type"`
}

// RiskLimits are the fields eligible for hot-reload via Watch.
type RiskLimits struct {
	MaxOrderQty    float64 `toml:"max_order_qty" yaml:"max_order_qty"`
	MaxPositionQty float64 `toml:"max_position_qty" yaml:"max_position_qty"`
}

// TraderConfig is the full session-level configuration.
type TraderConfig struct {
	TraderID    string        `toml:"trader_id" yaml:"trader_id"`
	ClockMode   string        `toml:"clock_mode" yaml:"clock_mode"` // "test" or "live"
	Instruments []string      `toml:"instruments" yaml:"instruments"`
	Venues      []VenueConfig `toml:"venues" yaml:"venues"`
	RiskLimits  RiskLimits    `toml:"risk_limits" yaml:"risk_limits"`
}

// Load reads a TraderConfig from path, dispatching on file extension.
func Load(path string) (*TraderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(data, path)
}

func decode(data []byte, path string) (*TraderConfig, error) {
	var cfg TraderConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnsupportedFormat
	}
	return &cfg, nil
}
