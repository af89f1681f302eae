// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/mcslp/internal/config"
	"github.com/H0llyW00dzZ/mcslp/internal/logging"
	"github.com/H0llyW00dzZ/mcslp/src/mojang"
	"github.com/H0llyW00dzZ/mcslp/src/slp"
)

// app holds the state shared by all commands.
type app struct {
	configPath string
	flags      config.Config // values bound to flags
	cfg        config.Config // effective configuration
	logger     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{flags: config.Default()}

	root := &cobra.Command{
		Use:           "mcslp",
		Short:         "Legacy Minecraft server list ping and Mojang status checker",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.flags.Log.Level, "log-level", a.flags.Log.Level, "log level (debug, info, warn, error)")
	pf.BoolVar(&a.flags.Log.Console, "log-console", a.flags.Log.Console, "human readable logs instead of JSON")
	pf.StringVarP(&a.flags.Markup, "markup", "m", a.flags.Markup, "output markup: irc, ansi or plain")
	pf.DurationVar(&a.flags.ConnectTimeout, "connect-timeout", a.flags.ConnectTimeout, "TCP connect timeout")
	pf.DurationVar(&a.flags.ReadTimeout, "read-timeout", a.flags.ReadTimeout, "time allowed for the ping exchange")
	pf.IntVar(&a.flags.Concurrency, "concurrency", a.flags.Concurrency, "maximum concurrent pings")
	pf.StringVar(&a.flags.Resolver, "resolver", a.flags.Resolver, "DNS server for SRV lookups (default: system)")
	pf.StringVar(&a.flags.StatusURL, "status-url", a.flags.StatusURL, "service status feed URL")
	pf.DurationVar(&a.flags.FetchTimeout, "fetch-timeout", a.flags.FetchTimeout, "status feed timeout")

	root.AddCommand(
		newPingCmd(a),
		newStatusCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads the configuration file, applies flags given on the
// command line over it and initializes logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	override := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	override("log-level", func() { cfg.Log.Level = a.flags.Log.Level })
	override("log-console", func() { cfg.Log.Console = a.flags.Log.Console })
	override("markup", func() { cfg.Markup = a.flags.Markup })
	override("connect-timeout", func() { cfg.ConnectTimeout = a.flags.ConnectTimeout })
	override("read-timeout", func() { cfg.ReadTimeout = a.flags.ReadTimeout })
	override("concurrency", func() { cfg.Concurrency = a.flags.Concurrency })
	override("resolver", func() { cfg.Resolver = a.flags.Resolver })
	override("status-url", func() { cfg.StatusURL = a.flags.StatusURL })
	override("fetch-timeout", func() { cfg.FetchTimeout = a.flags.FetchTimeout })
	override("list", func() { cfg.ListMode = a.flags.ListMode })
	override("bold-banner", func() { cfg.BoldBanner = a.flags.BoldBanner })
	override("listen", func() { cfg.Listen = a.flags.Listen })

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.InitWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Console)
	return nil
}

func (a *app) client() *slp.Client {
	return slp.New(
		slp.WithConnectTimeout(a.cfg.ConnectTimeout),
		slp.WithReadTimeout(a.cfg.ReadTimeout),
		slp.WithConcurrency(a.cfg.Concurrency),
		slp.WithResolver(a.cfg.Resolver),
		slp.WithLogger(logging.Component("slp")),
	)
}

func (a *app) aggregator() *mojang.Aggregator {
	return mojang.New(
		mojang.WithURL(a.cfg.StatusURL),
		mojang.WithTimeout(a.cfg.FetchTimeout),
		mojang.WithLabels(a.cfg.Labels),
		mojang.WithMarkup(a.cfg.MarkupRenderer()),
		mojang.WithLogger(logging.Component("mojang")),
	)
}
