// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/mcslp/src/slp"
)

const (
	bannerTitle = "Minecraft Status"
	downMessage = "Status checker is down! Maybe other Minecraft/Mojang services are affected too."
)

func newStatusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the status of the Minecraft/Mojang services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			markup := a.cfg.MarkupRenderer()
			b := banner(markup, a.cfg.BoldBanner)
			out := cmd.OutOrStdout()

			summary, err := a.aggregator().Summary(cmd.Context(), a.cfg.Policy())
			if err != nil {
				a.logger.Warn().Err(err).Str("url", a.cfg.StatusURL).Msg("status feed unavailable")
				fmt.Fprintf(out, "%s %s\n", b, downMessage)
				return nil
			}

			fmt.Fprintln(out, strings.TrimSpace(b+" "+summary.Text))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&a.flags.ListMode, "list", "l", a.flags.ListMode, "group services into online and offline lists")
	cmd.Flags().BoolVar(&a.flags.BoldBanner, "bold-banner", a.flags.BoldBanner, "print the banner in bold")

	return cmd
}

// banner returns "[Minecraft Status]", with the title in bold when asked.
func banner(m slp.Markup, bold bool) string {
	title := bannerTitle
	if bold {
		title = m.Span(slp.StyleBold, title)
	}
	return "[" + title + "]"
}
