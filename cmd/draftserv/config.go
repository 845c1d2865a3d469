package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type serverConfig struct {
	Addr              string
	Drawing           string
	AdjacencyFraction float64
	BetweenMargin     float64
}

func defaultServerConfig() serverConfig {
	return serverConfig{
		Addr: ":8080",
	}
}

type fileConfig struct {
	Addr              string  `toml:"addr"`
	Drawing           string  `toml:"drawing"`
	AdjacencyFraction float64 `toml:"adjacency_fraction"`
	BetweenMargin     float64 `toml:"between_margin"`
}

func loadServerConfig(path string) (serverConfig, error) {
	cfg := defaultServerConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return serverConfig{}, fmt.Errorf("load server config: %w", err)
	}

	if meta.IsDefined("addr") {
		addr := strings.TrimSpace(raw.Addr)
		if addr != "" {
			cfg.Addr = addr
		}
	}
	if meta.IsDefined("drawing") {
		cfg.Drawing = strings.TrimSpace(raw.Drawing)
	}
	if meta.IsDefined("adjacency_fraction") {
		if raw.AdjacencyFraction <= 0 {
			return serverConfig{}, fmt.Errorf("adjacency_fraction must be positive, got %g", raw.AdjacencyFraction)
		}
		cfg.AdjacencyFraction = raw.AdjacencyFraction
	}
	if meta.IsDefined("between_margin") {
		if raw.BetweenMargin < 0 {
			return serverConfig{}, fmt.Errorf("between_margin must not be negative, got %g", raw.BetweenMargin)
		}
		cfg.BetweenMargin = raw.BetweenMargin
	}

	// PORT takes precedence so container platforms can rebind the listener.
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Addr = ":" + port
	}

	if cfg.Drawing == "" {
		return serverConfig{}, fmt.Errorf("config %s missing required key: drawing", path)
	}
	return cfg, nil
}
