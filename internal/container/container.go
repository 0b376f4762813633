// Package container wires the application's dependencies explicitly:
// configuration, logger, category catalog, ledger, session controller,
// advisor, and exporter. Nothing in the core reaches for ambient global
// state; everything is passed down from here.
package container

import (
	"fmt"
	"time"

	"wealthai/internal/advisor"
	"wealthai/internal/auth"
	"wealthai/internal/config"
	"wealthai/internal/export"
	"wealthai/internal/ledger"
	"wealthai/internal/logging"
	"wealthai/internal/registry"
	"wealthai/internal/session"
	"wealthai/internal/store"
)

// Container holds all wired application dependencies. It is immutable after
// creation; components are reached through getters.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	registry   *registry.Registry
	ledger     *ledger.Ledger
	controller *session.Controller
	advisor    *advisor.Advisor
	exporter   *export.Exporter
}

// Options overrides default boundary implementations, mostly for tests.
// Nil fields fall back to the in-memory implementations.
type Options struct {
	Authenticator session.Authenticator
	LedgerSource  session.LedgerSource
	AIClient      advisor.AIClient
}

// NewContainer creates and wires all application dependencies from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(cfg, Options{})
}

// NewContainerWithOptions is NewContainer with boundary overrides.
func NewContainerWithOptions(cfg *config.Config, opts Options) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	reg := registry.Default()
	if cfg.Categories.File != "" {
		loaded, err := registry.LoadFile(cfg.Categories.File)
		if err != nil {
			logger.WithError(err).Warn("Failed to load category file, using built-in catalog",
				logging.Field{Key: logging.FieldFile, Value: cfg.Categories.File})
		} else {
			reg = loaded
		}
	}

	led := ledger.New(reg, ledger.DefaultSeed(), logger)

	authenticator := opts.Authenticator
	if authenticator == nil {
		authenticator = auth.NewMemoryAuthenticator()
	}
	source := opts.LedgerSource
	if source == nil {
		source = store.NewMemoryStore()
	}

	controller := session.NewController(led, authenticator, source, logger)
	controller.Start()

	aiClient := opts.AIClient
	if aiClient == nil && cfg.AI.Enabled && cfg.AI.APIKey != "" {
		aiClient = advisor.NewGeminiClient(
			cfg.AI.APIKey,
			cfg.AI.Model,
			time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
			logger,
		)
		logger.Info("AI advisor enabled", logging.Field{Key: "model", Value: cfg.AI.Model})
	}
	if aiClient == nil {
		logger.Info("AI advisor not configured")
	}

	delimiter := ','
	if cfg.Export.Delimiter != "" {
		delimiter = []rune(cfg.Export.Delimiter)[0]
	}

	return &Container{
		logger:     logger,
		config:     cfg,
		registry:   reg,
		ledger:     led,
		controller: controller,
		advisor:    advisor.New(aiClient, logger),
		exporter:   export.New(reg, delimiter, logger),
	}, nil
}

// Close releases resources held by the container.
func (c *Container) Close() {
	c.controller.Close()
}

// Logger returns the application logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the application configuration.
func (c *Container) Config() *config.Config { return c.config }

// Registry returns the category catalog.
func (c *Container) Registry() *registry.Registry { return c.registry }

// Ledger returns the session ledger.
func (c *Container) Ledger() *ledger.Ledger { return c.ledger }

// Controller returns the session/mode controller.
func (c *Container) Controller() *session.Controller { return c.controller }

// Advisor returns the AI advisor.
func (c *Container) Advisor() *advisor.Advisor { return c.advisor }

// Exporter returns the CSV exporter.
func (c *Container) Exporter() *export.Exporter { return c.exporter }
