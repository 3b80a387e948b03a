package menu

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/gomenu/pkg/logger"
	"github.com/mchmarny/gomenu/pkg/metric"
	"github.com/mchmarny/gomenu/pkg/server"
)

var (
	version = "dev"     // Set at build time via -ldflags "-X .../pkg/menu.version=version"
	commit  = "none"    // Set at build time via -ldflags "-X .../pkg/menu.commit=commit"
	date    = "unknown" // Set at build time via -ldflags "-X .../pkg/menu.date=date"
)

// Run drives a root menu session and blocks until the user exits the loop.
// It installs the default structured logger and serves the observability
// sidecar (metrics and health endpoints) beside the interactive loop; the
// sidecar shuts down once the loop returns. Callers that want the bare
// loop without the sidecar use Execute directly.
func (m *Menu) Run(ctx context.Context, opt ...server.Option) error {
	logger.SetDefaultLogger("gomenu", version)
	slog.Info("starting menu session", "menu", m.title, "commit", commit, "date", date)

	if opt == nil {
		opt = []server.Option{}
	}

	opt = append(opt,
		server.WithSimpleHealth(),
		server.WithHandler("/metrics", metric.GetHandler()),
	)

	sessionCtx, done := context.WithCancel(ctx)
	defer done()

	g, gCtx := errgroup.WithContext(sessionCtx)

	// Interactive loop: blocks on console input, ends on the 0 selection.
	g.Go(func() error {
		defer done()

		_, err := m.Execute()
		slog.Info("menu session ended", "menu", m.title)

		return err
	})

	// Observability sidecar: serves until the loop cancels the context.
	g.Go(func() error {
		return server.New(opt...).Serve(gCtx)
	})

	return g.Wait()
}
