// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package metrics exposes ping and status feed results to Prometheus.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/H0llyW00dzZ/mcslp/src/mojang"
	"github.com/H0llyW00dzZ/mcslp/src/slp"
)

const namespace = "mcslp"

// Collector pings every target and fetches the status feed on each
// scrape. Nothing is kept between scrapes.
type Collector struct {
	client     *slp.Client
	aggregator *mojang.Aggregator
	targets    []slp.ServerAddress
	timeout    time.Duration
	logger     zerolog.Logger

	up            *prometheus.Desc
	playersOnline *prometheus.Desc
	playersMax    *prometheus.Desc
	pingDuration  *prometheus.Desc
	serviceUp     *prometheus.Desc
	statusFeedUp  *prometheus.Desc
}

// NewCollector creates a collector. aggregator may be nil to skip the
// status feed. timeout bounds a whole scrape.
func NewCollector(client *slp.Client, aggregator *mojang.Aggregator, targets []slp.ServerAddress, timeout time.Duration, logger zerolog.Logger) *Collector {
	return &Collector{
		client:     client,
		aggregator: aggregator,
		targets:    targets,
		timeout:    timeout,
		logger:     logger,
		up: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "up"),
			"Whether the last ping of the server succeeded (1=up, 0=down)",
			[]string{"target", "version"},
			nil,
		),
		playersOnline: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "players", "online"),
			"Players online as reported by the server",
			[]string{"target"},
			nil,
		),
		playersMax: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "players", "max"),
			"Player slots as reported by the server",
			[]string{"target"},
			nil,
		),
		pingDuration: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "ping", "duration_seconds"),
			"Duration of the ping exchange",
			[]string{"target"},
			nil,
		),
		serviceUp: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "service", "up"),
			"Service state from the status feed (1=green, 0=other)",
			[]string{"service"},
			nil,
		),
		statusFeedUp: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "status_feed", "up"),
			"Whether the status feed could be fetched and parsed",
			nil,
			nil,
		),
	}
}

// Describe implements prometheus.Collector interface
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.up
	ch <- c.playersOnline
	ch <- c.playersMax
	ch <- c.pingDuration
	ch <- c.serviceUp
	ch <- c.statusFeedUp
}

// Collect implements prometheus.Collector interface
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	c.collectPings(ctx, ch)
	if c.aggregator != nil {
		c.collectFeed(ctx, ch)
	}
}

func (c *Collector) collectPings(ctx context.Context, ch chan<- prometheus.Metric) {
	if len(c.targets) == 0 {
		return
	}

	results, _ := c.client.PingAll(ctx, c.targets...)
	seen := make(map[string]struct{}, len(results))
	for _, r := range results {
		target := r.Address.String()
		if _, dup := seen[target]; dup {
			continue
		}
		seen[target] = struct{}{}

		if r.Error != nil {
			c.logger.Warn().Err(r.Error).Str("target", target).Msg("ping failed")
			ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 0, target, "")
			continue
		}

		ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 1, target, r.Response.Version)
		ch <- prometheus.MustNewConstMetric(c.playersOnline, prometheus.GaugeValue, float64(r.Response.Online), target)
		ch <- prometheus.MustNewConstMetric(c.playersMax, prometheus.GaugeValue, float64(r.Response.Max), target)
		ch <- prometheus.MustNewConstMetric(c.pingDuration, prometheus.GaugeValue, r.Latency.Seconds(), target)
	}
}

func (c *Collector) collectFeed(ctx context.Context, ch chan<- prometheus.Metric) {
	statuses, err := c.aggregator.Fetch(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", c.aggregator.URL()).Msg("status feed unavailable")
		ch <- prometheus.MustNewConstMetric(c.statusFeedUp, prometheus.GaugeValue, 0)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.statusFeedUp, prometheus.GaugeValue, 1)

	// A registry rejects duplicate label sets; the first entry wins.
	seen := make(map[string]struct{}, len(statuses))
	for _, s := range mojang.ApplyLabels(statuses, c.aggregator.Labels()) {
		if _, dup := seen[s.Name]; dup {
			continue
		}
		seen[s.Name] = struct{}{}

		value := 0.0
		if s.State == mojang.Online {
			value = 1
		}
		ch <- prometheus.MustNewConstMetric(c.serviceUp, prometheus.GaugeValue, value, s.Name)
	}
}
