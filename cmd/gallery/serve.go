package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	galleryerrors "github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/internal/server"
)

func serveCmd(c *cli) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gallery HTTP server",
		Long: `Start the gallery HTTP server.

The server stops gracefully on SIGINT or SIGTERM, waiting up to
server.shutdownTimeout for in-flight requests.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("host") {
				c.cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				c.cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.serve(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "override server.host")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "override server.port")

	return cmd
}

func (c *cli) serve(ctx context.Context) error {
	a, err := c.newApp(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			c.logger.Warn("close failed", "error", err)
		}
	}()

	if a.pages.Len() == 0 {
		c.logger.Warn("page registry is empty")
	}
	if components, err := a.components(ctx); err == nil {
		if gaps := a.pages.Missing(components); len(gaps) > 0 {
			c.logger.Info("components without showcase", "count", len(gaps), "slugs", gaps)
		}
	} else {
		c.logger.Warn("catalog not reachable at startup", "error", err)
	}

	srv, err := server.New(c.cfg, server.Deps{
		Provider: a.client,
		Cache:    a.client,
		Sections: a.sections,
		Pages:    a.pages,
		Metrics:  a.metrics,
		Logger:   c.logger,
	})
	if err != nil {
		return err
	}

	if sub := c.subscriber(a); sub != nil {
		subCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := sub.Run(subCtx); err != nil && !errors.Is(err, context.Canceled) {
				c.logger.Error("realtime subscriber stopped", "error", err)
			}
		}()
		defer func() {
			cancel()
			<-done
		}()
	}

	if err := srv.Run(ctx); err != nil {
		return galleryerrors.New("E142").Wrap(err)
	}
	return nil
}
