// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package slp

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strings"

	"github.com/miekg/dns"
)

const (
	srvPrefix        = "_minecraft._tcp."
	resolvConf       = "/etc/resolv.conf"
	fallbackResolver = "127.0.0.1:53"
)

// systemResolver returns the first nameserver of /etc/resolv.conf.
func systemResolver() string {
	conf, err := dns.ClientConfigFromFile(resolvConf)
	if err != nil || len(conf.Servers) == 0 {
		return fallbackResolver
	}
	return net.JoinHostPort(conf.Servers[0], conf.Port)
}

// Resolve looks up the _minecraft._tcp SRV record of host and returns
// the address it points to.
//
// When the record is missing or the lookup fails, Resolve returns host
// on [DefaultPort] together with an error matching [ErrNoSRVRecord];
// callers that only want the best address can ignore that error.
// An empty or invalid host returns [ErrInvalidHost].
func (c *Client) Resolve(ctx context.Context, host string) (ServerAddress, error) {
	host, err := normalizeHost(host)
	if err != nil {
		return ServerAddress{}, err
	}
	fallback := ServerAddress{Host: host, Port: DefaultPort}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(srvPrefix+host), dns.TypeSRV)
	msg.RecursionDesired = true

	resp, _, err := c.dnsClient.ExchangeContext(ctx, msg, c.resolver)
	if err != nil {
		c.logger.Debug().Err(err).Str("host", host).Msg("srv lookup failed")
		return fallback, fmt.Errorf("%w: %s: %v", ErrNoSRVRecord, host, err)
	}

	record, ok := bestSRV(resp)
	if !ok {
		return fallback, fmt.Errorf("%w: %s", ErrNoSRVRecord, host)
	}

	addr := ServerAddress{
		Host: strings.TrimSuffix(record.Target, "."),
		Port: int(record.Port),
	}
	c.logger.Debug().Str("host", host).Str("target", addr.String()).Msg("srv record found")
	return addr, nil
}

// bestSRV picks the record with the lowest priority, then the highest
// weight. A "." target means the service is explicitly unavailable.
func bestSRV(msg *dns.Msg) (*dns.SRV, bool) {
	if msg == nil || msg.Rcode != dns.RcodeSuccess {
		return nil, false
	}

	var records []*dns.SRV
	for _, rr := range msg.Answer {
		if srv, ok := rr.(*dns.SRV); ok && srv.Target != "." {
			records = append(records, srv)
		}
	}
	if len(records) == 0 {
		return nil, false
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Priority != records[j].Priority {
			return records[i].Priority < records[j].Priority
		}
		return records[i].Weight > records[j].Weight
	})
	return records[0], true
}
