// Command draftserv serves a decoded drawing's query and edit tools over
// HTTP.
package main

import (
	"flag"
	"os"

	"github.com/draftkit/draftkit"
	"github.com/draftkit/draftkit/internal/httpapi"
	"github.com/draftkit/draftkit/internal/observability"
)

func main() {
	configPath := flag.String("config", "draftserv.toml", "path to the server config file")
	flag.Parse()

	logger := observability.InitLogger("draftserv")

	cfg, err := loadServerConfig(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("config load failed")
		os.Exit(1)
	}

	var opts []draftkit.Option
	if cfg.AdjacencyFraction > 0 {
		opts = append(opts, draftkit.WithAdjacencyFraction(cfg.AdjacencyFraction))
	}
	if cfg.BetweenMargin > 0 {
		opts = append(opts, draftkit.WithBetweenMargin(cfg.BetweenMargin))
	}

	session, err := draftkit.Open(cfg.Drawing, opts...)
	if err != nil {
		logger.Error().Err(err).Str("drawing", cfg.Drawing).Msg("drawing load failed")
		os.Exit(1)
	}
	summary := session.Summary()
	logger.Info().
		Str("drawing", cfg.Drawing).
		Int("layers", summary.LayerCount).
		Int("entities", summary.EntityCount).
		Msg("drawing loaded")

	server := httpapi.New(session, logger)
	logger.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := server.Listen(cfg.Addr); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
