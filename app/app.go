// Package app wires configuration, logging and use cases for a root directory.
package app

import (
	"log/slog"
	"path/filepath"

	"github.com/aalvaropc/domainmodel/domain"
	"github.com/aalvaropc/domainmodel/internal/infra/config"
	"github.com/aalvaropc/domainmodel/internal/infra/logger"
	"github.com/aalvaropc/domainmodel/internal/infra/rootfinder"
	"github.com/aalvaropc/domainmodel/ports"
	"github.com/aalvaropc/domainmodel/usecase"
)

type App struct {
	Root   string
	Config domain.Config
	Logger *slog.Logger

	// LogPath is empty when the log file could not be opened.
	LogPath string

	HouseholdReport *usecase.HouseholdReport
}

type Option func(*options)

type options struct {
	loader ports.ConfigLoader
	debug  bool
}

// WithConfigLoader replaces the YAML loader.
func WithConfigLoader(l ports.ConfigLoader) Option {
	return func(o *options) {
		if l != nil {
			o.loader = l
		}
	}
}

// WithDebug forces debug logging regardless of the config file.
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// New resolves the root from start (the nearest parent holding domainmodel.yaml,
// else start itself), loads its config and starts the file logger. The returned
// cleanup closes the log file; it is never nil.
func New(start string, opts ...Option) (*App, func() error, error) {
	o := options{loader: config.NewLoader()}
	for _, opt := range opts {
		opt(&o)
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		abs = start
	}
	if root, ferr := rootfinder.NewFinder().FindRoot(abs); ferr == nil && root != "" {
		abs = root
	}

	cfg, err := o.loader.LoadConfig(abs)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	if o.debug {
		cfg.Logging.Debug = true
	}

	// A logger that cannot open its file falls back to discarding.
	cleanup, _ := logger.Setup(logger.FromDomain(abs, cfg.Logging))
	if cleanup == nil {
		cleanup = func() error { return nil }
	}

	l := logger.L()
	l.Debug("app.config",
		"root", abs,
		"annual_hours", cfg.Household.AnnualHours,
		"base_currency", cfg.Household.BaseCurrency.String(),
	)

	return &App{
		Root:            abs,
		Config:          cfg,
		Logger:          l,
		LogPath:         logger.Path(),
		HouseholdReport: usecase.NewHouseholdReport(cfg, usecase.WithLogger(l)),
	}, cleanup, nil
}
