// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/mcslp/internal/report"
	"github.com/H0llyW00dzZ/mcslp/src/slp"
)

// errPingFailed makes the command exit non-zero when a server is down.
var errPingFailed = errors.New("one or more servers could not be pinged")

func newPingCmd(a *app) *cobra.Command {
	var (
		table    bool
		xlsxPath string
		noSRV    bool
	)

	cmd := &cobra.Command{
		Use:   "ping host[:port]...",
		Short: "Ask Minecraft servers for their MOTD, version and player counts",
		Long: `Ping one or more servers with the legacy (pre-1.7) server list ping.

Without an explicit port the _minecraft._tcp SRV record of the host is
used when it exists, and port 25565 otherwise.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := a.client()

			addrs := make([]slp.ServerAddress, 0, len(args))
			for _, arg := range args {
				addr, err := slp.ParseAddress(arg)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}

				if !noSRV && !strings.Contains(arg, ":") && net.ParseIP(addr.Host) == nil {
					// The fallback address is fine when there is no record.
					addr, _ = client.Resolve(cmd.Context(), addr.Host)
				}
				addrs = append(addrs, addr)
			}

			results, err := client.PingAll(cmd.Context(), addrs...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if table {
				report.WriteTable(out, results)
			} else {
				markup := a.cfg.MarkupRenderer()
				for i, r := range results {
					if r.Error != nil {
						fmt.Fprintf(out, "%s: %s\n", args[i], describeError(r.Error))
						continue
					}
					fmt.Fprintf(out, "%s: %s\n", args[i], r.Response.Describe(markup))
				}
			}

			if xlsxPath != "" {
				if err := report.WriteXLSX(xlsxPath, results); err != nil {
					return err
				}
				a.logger.Info().Str("file", xlsxPath).Int("results", len(results)).Msg("report written")
			}

			for _, r := range results {
				if r.Error != nil {
					return errPingFailed
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&table, "table", "t", false, "print the results as a table")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also save the results to an Excel file")
	cmd.Flags().BoolVar(&noSRV, "no-srv", false, "skip the SRV lookup for hosts without a port")

	return cmd
}

// describeError turns a ping error into the short message shown to users.
func describeError(err error) string {
	switch {
	case errors.Is(err, slp.ErrInvalidPort):
		return "Invalid port."
	case errors.Is(err, slp.ErrUnexpectedMarker), errors.Is(err, slp.ErrMalformedPayload):
		return "Server error or not a Minecraft server."
	case errors.Is(err, slp.ErrConnectionFailed), errors.Is(err, slp.ErrTruncatedResponse):
		return "Couldn't connect to server."
	default:
		return err.Error()
	}
}
