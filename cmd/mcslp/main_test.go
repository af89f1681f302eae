// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"bytes"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/mcslp/internal/config"
	"github.com/H0llyW00dzZ/mcslp/src/slp"
)

// run executes the root command with args and returns what it printed
// on stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), err
}

// startLegacyServer answers every connection with reply after draining
// the handshake and returns its "host:port".
func startLegacyServer(t *testing.T, reply []byte) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	size := len(slp.EncodeHandshake("127.0.0.1", 0, slp.DefaultProtocolVersion, slp.DefaultPingToken))
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func() {
				defer conn.Close()
				_ = conn.SetDeadline(time.Now().Add(5 * time.Second))
				if _, err := io.ReadFull(conn, make([]byte, size)); err != nil {
					return
				}
				_, _ = conn.Write(reply)
				_, _ = conn.Read(make([]byte, 1))
			}()
		}
	}()

	return ln.Addr().String()
}

func closedAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func startFeed(t *testing.T, code int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

const feedBody = `[{"minecraft.net":"green"},{"auth.mojang.com":"red"}]`

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mcslp "+version)
}

func TestPing(t *testing.T) {
	addr := startLegacyServer(t, slp.EncodeResponse("§1\x0078\x001.6.4\x00§aLobby\x003\x0020"))

	out, err := run(t, "ping", "--markup", "plain", addr)
	require.NoError(t, err)
	assert.Equal(t, addr+": Lobby - 1.6.4 - 3/20 players\n", out)
}

func TestPingIRC(t *testing.T) {
	addr := startLegacyServer(t, slp.EncodeResponse("§aLobby§3§20"))

	out, err := run(t, "ping", "-m", "irc", addr)
	require.NoError(t, err)
	assert.Equal(t, addr+": \x0309Lobby - 3/20 players\n", out)
}

func TestPingFailures(t *testing.T) {
	notMinecraft := startLegacyServer(t, []byte("HTTP/1.1 400 Bad Request\r\n\r\n"))
	refused := closedAddress(t)

	out, err := run(t, "ping", "--connect-timeout", "1s", "127.0.0.1:abc", refused, notMinecraft)
	require.ErrorIs(t, err, errPingFailed)

	assert.Contains(t, out, "127.0.0.1:abc: Invalid port.\n")
	assert.Contains(t, out, refused+": Couldn't connect to server.\n")
	assert.Contains(t, out, notMinecraft+": Server error or not a Minecraft server.\n")
}

func TestPingInvalidHost(t *testing.T) {
	_, err := run(t, "ping", ":25565")
	assert.ErrorIs(t, err, slp.ErrInvalidHost)
}

func TestPingTableAndXLSX(t *testing.T) {
	addr := startLegacyServer(t, slp.EncodeResponse("Classic§1§8"))
	path := filepath.Join(t.TempDir(), "ping.xlsx")

	out, err := run(t, "ping", "--table", "--xlsx", path, addr)
	require.NoError(t, err)
	assert.Contains(t, out, "Classic")
	assert.Contains(t, out, "1/8")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestStatus(t *testing.T) {
	url := startFeed(t, http.StatusOK, feedBody)

	t.Run("inline", func(t *testing.T) {
		out, err := run(t, "status", "-m", "plain", "--status-url", url)
		require.NoError(t, err)
		assert.Equal(t, "[Minecraft Status] Website | Legacy Auth\n", out)
	})

	t.Run("grouped", func(t *testing.T) {
		out, err := run(t, "status", "-m", "plain", "--status-url", url, "--list")
		require.NoError(t, err)
		assert.Equal(t, "[Minecraft Status] Online: Website - Offline: Legacy Auth\n", out)
	})

	t.Run("irc bold banner", func(t *testing.T) {
		out, err := run(t, "status", "-m", "irc", "--status-url", url, "--list")
		require.NoError(t, err)
		assert.Equal(t, "[\x02Minecraft Status\x02] \x0303Online\x03: Website - \x0304Offline\x03: Legacy Auth\n", out)
	})

	t.Run("plain banner", func(t *testing.T) {
		out, err := run(t, "status", "-m", "irc", "--status-url", url, "--bold-banner=false")
		require.NoError(t, err)
		assert.Equal(t, "[Minecraft Status] \x0303Website\x03 | \x0304Legacy Auth\x03\n", out)
	})
}

func TestStatusDown(t *testing.T) {
	url := startFeed(t, http.StatusServiceUnavailable, "")

	out, err := run(t, "status", "-m", "plain", "--status-url", url)
	require.NoError(t, err, "a down feed is reported, not returned")
	assert.Equal(t, "[Minecraft Status] "+downMessage+"\n", out)
}

func TestConfigFileAndFlags(t *testing.T) {
	url := startFeed(t, http.StatusOK, feedBody)

	path := filepath.Join(t.TempDir(), "mcslp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
status_url: `+url+`
list_mode: true
bold_banner: false
markup: irc
labels:
  minecraft.net: Site
`), 0o600))

	// The file selects grouped output with custom labels; the flag
	// switches the markup.
	out, err := run(t, "status", "--config", path, "--markup", "plain")
	require.NoError(t, err)
	assert.Equal(t, "[Minecraft Status] Online: Site - Offline: Legacy Auth\n", out)
}

func TestInvalidMarkup(t *testing.T) {
	_, err := run(t, "status", "--markup", "html")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestMetricsHandler(t *testing.T) {
	target := startLegacyServer(t, slp.EncodeResponse("§1\x0078\x001.6.4\x00Lobby\x007\x0050"))
	url := startFeed(t, http.StatusOK, feedBody)

	cfg := config.Default()
	cfg.StatusURL = url
	a := &app{cfg: cfg}

	handler, err := a.metricsHandler([]string{target}, true)
	require.NoError(t, err)

	srv := httptest.NewServer(newRouter(handler))
	defer srv.Close()

	// The root redirects to /metrics.
	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, metricsPath, resp.Request.URL.Path)
	assert.Contains(t, string(body), `mcslp_up{target="`+target+`",version="1.6.4"} 1`)
	assert.Contains(t, string(body), `mcslp_players_online{target="`+target+`"} 7`)
	assert.Contains(t, string(body), `mcslp_service_up{service="Website"} 1`)
	assert.Contains(t, string(body), `mcslp_status_feed_up 1`)
}

func TestRouterRejectsOtherMethods(t *testing.T) {
	srv := httptest.NewServer(newRouter(http.NotFoundHandler()))
	defer srv.Close()

	resp, err := http.Post(srv.URL+metricsPath, "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestMetricsHandlerBadTarget(t *testing.T) {
	a := &app{cfg: config.Default()}
	_, err := a.metricsHandler([]string{""}, false)
	assert.ErrorIs(t, err, slp.ErrInvalidHost)
}
