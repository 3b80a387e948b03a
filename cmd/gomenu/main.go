package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/gomenu/pkg/menu"
	"github.com/mchmarny/gomenu/pkg/metric"
	"github.com/mchmarny/gomenu/pkg/server"
)

var (
	version = "v0.0.0" // Set at build time via -ldflags "-X main.version=version"

	port = flag.Int("port", server.DefaultPort, "Port for the metrics/health sidecar")
)

func main() {
	// Parse command-line flags
	flag.Parse()

	// Build the menu and its items
	m := makeMenu()

	ctx := context.Background()

	// Run the interactive session with the observability sidecar
	if err := m.Run(ctx, server.WithPort(*port)); err != nil {
		slog.Error("session error", "error", err)
	}
}

// makeMenu constructs the demo menu tree. Replace the actions and
// sub-menus with your own to build a different session.
func makeMenu() *menu.Menu {
	m := menu.New(fmt.Sprintf("Main (v%s)", version),
		menu.WithRoot(),
		menu.WithEventCounter(metric.NewMenuEventCounter(prometheus.DefaultRegisterer)),
	)

	// Arguments are bound by the closure at build time.
	m.AddAction("Say Hello", func() error {
		return greet("World")
	})

	settings := menu.New("Settings")
	settings.AddAction("Volume up", func() error {
		fmt.Println("Volume increased")
		return nil
	})
	settings.AddAction("Volume down", func() error {
		fmt.Println("Volume decreased")
		return nil
	})

	m.AddSubMenu(settings)

	return m
}

// greet prints a greeting for the given name.
func greet(name string) error {
	if name == "" {
		return fmt.Errorf("nothing to greet")
	}

	fmt.Printf("Hello, %s!\n", name)

	return nil
}
