package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/snapcode/internal/app/render"
	"github.com/alexisbeaulieu97/snapcode/internal/config"
	"github.com/alexisbeaulieu97/snapcode/internal/fonts"
	"github.com/alexisbeaulieu97/snapcode/internal/logger"
	"github.com/alexisbeaulieu97/snapcode/internal/theme"
)

// appContext bundles the services one command invocation needs.
type appContext struct {
	cfg     *config.Config
	log     *logger.Logger
	themes  *theme.Registry
	service *render.Service
}

// newAppContext loads configuration, applies flag overrides and wires the
// render service. Logs go to the command's stderr.
func newAppContext(cmd *cobra.Command, root *rootFlags, override func(*config.Config)) (*appContext, error) {
	cfg, err := config.Load(root.configPath)
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(cfg)
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}

	level := "info"
	if root.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}
	if cfg.Source != "" {
		log.Debug("loaded config " + cfg.Source)
	}

	themes := theme.Default()
	if cfg.ThemesDir != "" {
		custom, err := theme.LoadDir(cfg.ThemesDir)
		if err != nil {
			return nil, err
		}
		themes = themes.With(custom...)
	}

	svc := render.NewService(render.Dependencies{
		Themes: themes,
		Loader: fonts.NewLoader(cfg.FontCacheDir, nil, log),
		Logger: log,
	})

	return &appContext{cfg: cfg, log: log, themes: themes, service: svc}, nil
}
