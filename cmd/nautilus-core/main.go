// Command nautilus-core boots one live trading session: a LiveClock, a
// MessageBus, a component registry, an ExecutionClient per configured venue,
// the reconciliation scheduler, and the read-only admin HTTP surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JoeTonDev/nautilus-trader/bus"
	"github.com/JoeTonDev/nautilus-trader/clock"
	"github.com/JoeTonDev/nautilus-trader/component"
	"github.com/JoeTonDev/nautilus-trader/events"
	"github.com/JoeTonDev/nautilus-trader/execution"
	"github.com/JoeTonDev/nautilus-trader/httpapi"
	"github.com/JoeTonDev/nautilus-trader/ids"
	"github.com/JoeTonDev/nautilus-trader/logging"
	"github.com/JoeTonDev/nautilus-trader/reconcile"
	"github.com/JoeTonDev/nautilus-trader/sessionconfig"
)

func main() {
	configPath := flag.String("config", "", "path to a session config file (.toml or .yaml)")
	adminAddr := flag.String("admin-addr", ":8080", "address the read-only admin HTTP surface listens on")
	flag.Parse()

	logger, err := logging.Init(logging.Config{Level: logging.LevelInfo, Output: os.Stdout})
	if err != nil {
		fmt.Fprintln(os.Stderr, "nautilus-core: logging init:", err)
		os.Exit(1)
	}

	if err := run(*configPath, *adminAddr, logger); err != nil {
		logger.Error("session exited with error", "error", err)
		os.Exit(1)
	}
}

func run(configPath, adminAddr string, logger logging.Logger) error {
	cfg := &sessionconfig.TraderConfig{
		TraderID:  "TRADER-001",
		ClockMode: "live",
		Venues: []sessionconfig.VenueConfig{
			{Name: "SIM", ClientID: "SIM", OmsType: "NETTING"},
		},
	}
	if configPath != "" {
		loaded, err := sessionconfig.Load(configPath)
		if err != nil {
			return fmt.Errorf("load session config: %w", err)
		}
		cfg = loaded
	}
	if err := sessionconfig.ApplyEnvOverrides(cfg); err != nil {
		return fmt.Errorf("apply env overrides: %w", err)
	}

	traderID, err := ids.NewTraderId(cfg.TraderID)
	if err != nil {
		return fmt.Errorf("trader id: %w", err)
	}

	handlers := bus.NewHandlerRegistry(nil)
	b := bus.New(handlers)
	clk := clock.NewLiveClock()
	registry := component.NewRegistry()

	clients := make(map[string]*execution.ExecutionClient, len(cfg.Venues))
	// scheduler is wired here for every concrete venue adapter a deployment
	// registers; this command only constructs bare ExecutionClients (§1
	// leaves venue adapters out of scope), so no AddVenue calls happen below.
	scheduler := reconcile.New(logger)

	for _, v := range cfg.Venues {
		omsType, err := parseOmsType(v.OmsType)
		if err != nil {
			return fmt.Errorf("venue %s: %w", v.Name, err)
		}
		clientID, err := ids.NewClientId(v.ClientID)
		if err != nil {
			return fmt.Errorf("venue %s: client id: %w", v.Name, err)
		}

		identity := execution.Identity{
			ClientID: clientID,
			Venue:    &v.Name,
			OmsType:  omsType,
			TraderID: traderID,
		}
		client, err := execution.New(v.ClientID, identity, b, clk)
		if err != nil {
			return fmt.Errorf("venue %s: new execution client: %w", v.Name, err)
		}
		if err := registry.Register(client.Component); err != nil {
			return fmt.Errorf("venue %s: register component: %w", v.Name, err)
		}
		clients[v.Name] = client
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk.Start(ctx)
	scheduler.Start()

	for name, client := range clients {
		if err := client.Apply(component.Initialize); err != nil {
			return fmt.Errorf("venue %s: initialize: %w", name, err)
		}
		if err := client.Apply(component.Start); err != nil {
			return fmt.Errorf("venue %s: start: %w", name, err)
		}
		if err := client.Apply(component.StartCompleted); err != nil {
			return fmt.Errorf("venue %s: start_completed: %w", name, err)
		}
		logger.Info("execution client running", "venue", name, "client_id", client.ClientID().String())
	}

	server := httpapi.NewServer(registry, b)
	httpServer := &http.Server{Addr: adminAddr, Handler: server}
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("admin http server failed", "error", err)
		}
	}()
	logger.Info("admin http surface listening", "addr", adminAddr)

	<-ctx.Done()
	logger.Info("shutting down session")

	scheduler.Stop()
	clk.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("admin http server shutdown", "error", err)
	}

	for name, client := range clients {
		if err := client.Apply(component.Stop); err != nil {
			logger.Warn("venue stop", "venue", name, "error", err)
			continue
		}
		if err := client.Apply(component.StopCompleted); err != nil {
			logger.Warn("venue stop_completed", "venue", name, "error", err)
		}
	}

	return nil
}

func parseOmsType(s string) (events.OmsType, error) {
	switch s {
	case "NETTING":
		return events.OmsTypeNetting, nil
	case "HEDGING":
		return events.OmsTypeHedging, nil
	default:
		return events.OmsTypeNone, fmt.Errorf("unknown oms_type %q", s)
	}
}
