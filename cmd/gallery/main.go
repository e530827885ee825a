package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/gallery/internal/config"
	galleryerrors "github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/internal/logging"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cli carries the state shared by every command once the root command's
// pre-run has loaded configuration.
type cli struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		galleryerrors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "gallery",
		Short: "Design-system component gallery",
		Long: `Gallery serves a design-system documentation site.

Catalog metadata comes from a configurable provider (embedded seed, REST
backend, SQLite, MongoDB or an S3 snapshot). Each component renders through
its registered showcase, or a generic detail view built from metadata.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (gallery.json or gallery.toml)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override log.level")

	root.AddCommand(
		serveCmd(c),
		registryCmd(c),
		renderCmd(c),
		versionCmd(),
	)
	return root
}

func (c *cli) load(logOut io.Writer) error {
	if c.configPath != "" {
		if _, err := os.Stat(c.configPath); err != nil {
			return galleryerrors.New("E140").WithDetailf("%s does not exist", c.configPath).Wrap(err)
		}
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	c.cfg = cfg
	c.logger = logging.New(logOut, cfg.Log)
	slog.SetDefault(c.logger)
	return nil
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
