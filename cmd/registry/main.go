package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/deppfellow/registry/internal/config"
	"github.com/deppfellow/registry/internal/logger"
	"github.com/deppfellow/registry/internal/repository"
	"github.com/deppfellow/registry/internal/server"
	"github.com/deppfellow/registry/internal/service"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "registry",
		Short:        "Registry - director and business lookups",
		Long:         `Registry serves read-only lookups over directors, businesses and the links between them.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd(), newQueryCmd())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "registry %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is everything a command needs once configuration is loaded.
type app struct {
	server   *server.Server
	services *service.Services
}

// bootstrap loads configuration, builds the logger writing to logOut and
// connects to the database.
func bootstrap(logOut io.Writer) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability, logOut)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return nil, err
	}

	repos := repository.NewRepositories(srv.DB.Pool)

	return &app{
		server:   srv,
		services: service.NewServices(srv, repos),
	}, nil
}
