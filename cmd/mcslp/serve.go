// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/mcslp/internal/logging"
	"github.com/H0llyW00dzZ/mcslp/internal/metrics"
	"github.com/H0llyW00dzZ/mcslp/src/mojang"
	"github.com/H0llyW00dzZ/mcslp/src/slp"
)

const metricsPath = "/metrics"

func newServeCmd(a *app) *cobra.Command {
	var noFeed bool

	cmd := &cobra.Command{
		Use:   "serve [host[:port]...]",
		Short: "Expose ping and service status metrics for Prometheus",
		Long: `Serve Prometheus metrics on /metrics. Every scrape pings the targets
given as arguments (or listed under "targets" in the configuration file)
and fetches the service status feed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := append(append([]string(nil), a.cfg.Targets...), args...)

			handler, err := a.metricsHandler(targets, !noFeed)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              a.cfg.Listen,
				Handler:           newRouter(handler),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info().
					Str("listen", a.cfg.Listen).
					Int("targets", len(targets)).
					Msg("serving metrics")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
			}

			a.logger.Info().Msg("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&a.flags.Listen, "listen", a.flags.Listen, "address to serve metrics on")
	cmd.Flags().BoolVar(&noFeed, "no-status-feed", false, "do not fetch the service status feed")

	return cmd
}

// newRouter serves metrics on /metrics and redirects / there.
func newRouter(metrics http.Handler) *mux.Router {
	router := mux.NewRouter()
	router.Handle(metricsPath, metrics).Methods(http.MethodGet)
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, metricsPath, http.StatusFound)
	}).Methods(http.MethodGet)
	return router
}

// metricsHandler returns the /metrics handler for targets.
func (a *app) metricsHandler(targets []string, feed bool) (http.Handler, error) {
	addrs := make([]slp.ServerAddress, 0, len(targets))
	for _, t := range targets {
		addr, err := slp.ParseAddress(t)
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", t, err)
		}
		addrs = append(addrs, addr)
	}

	// A scrape may wait for a ping and a fetch.
	timeout := a.cfg.ConnectTimeout + a.cfg.ReadTimeout + a.cfg.FetchTimeout
	var agg *mojang.Aggregator
	if feed {
		agg = a.aggregator()
	}
	collector := metrics.NewCollector(a.client(), agg, addrs, timeout, logging.Component("metrics"))

	registry := prometheus.NewRegistry()
	if err := registry.Register(collector); err != nil {
		return nil, err
	}

	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), nil
}
