package sessionconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
trader_id = "TRADER-001"
clock_mode = "live"
instruments = ["BTCUSDT.SIM", "ETHUSDT.SIM"]

[[venues]]
name = "SIM"
client_id = "SIM"
oms_type = "NETTING"

[risk_limits]
max_order_qty = 10.0
max_position_qty = 100.0
`

const sampleYAML = `
trader_id: TRADER-002
clock_mode: test
instruments:
  - BTCUSDT.SIM
venues:
  - name: SIM
    client_id: SIM
    oms_type: HEDGING
risk_limits:
  max_order_qty: 5
  max_position_qty: 50
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeTemp(t, "session.toml", sampleTOML)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "TRADER-001", cfg.TraderID)
	assert.Equal(t, "live", cfg.ClockMode)
	require.Len(t, cfg.Venues, 1)
	assert.Equal(t, "SIM", cfg.Venues[0].Name)
	assert.Equal(t, 10.0, cfg.RiskLimits.MaxOrderQty)
}

func TestLoad_YAML(t *testing.T) {
	path := writeTemp(t, "session.yaml", sampleYAML)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "TRADER-002", cfg.TraderID)
	assert.Equal(t, "test", cfg.ClockMode)
	assert.Equal(t, "HEDGING", cfg.Venues[0].OmsType)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "session.json", `{}`)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := &TraderConfig{TraderID: "TRADER-001", ClockMode: "live"}
	err := applyEnvOverrides(cfg, []string{
		"NAUTILUS_TRADER_ID=TRADER-OVERRIDDEN",
		"NAUTILUS_RISK_MAX_ORDER_QTY=25.5",
		"UNRELATED=ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "TRADER-OVERRIDDEN", cfg.TraderID)
	assert.Equal(t, 25.5, cfg.RiskLimits.MaxOrderQty)
	assert.Equal(t, "live", cfg.ClockMode) // untouched
}

func TestWatcher_ReloadsRiskLimitsOnWrite(t *testing.T) {
	path := writeTemp(t, "session.toml", sampleTOML)

	reloaded := make(chan RiskLimits, 1)
	w, err := NewWatcher(path, func(rl RiskLimits) { reloaded <- rl }, nil)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	updated := sampleTOML + "\n" // trivial rewrite triggers a write event
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	select {
	case rl := <-reloaded:
		assert.Equal(t, 10.0, rl.MaxOrderQty)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
