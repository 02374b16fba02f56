package dns

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/miekg/dns"
	"github.com/resistanceisuseless/subsearch/internal/config"
)

// Resolver answers "does this name have an A record" against a rotating set
// of upstream servers. Every failure mode reads as false.
type Resolver struct {
	client    *dns.Client
	tcpClient *dns.Client
	servers   []string
	next      atomic.Uint64
}

func New(cfg *config.Config) *Resolver {
	return NewWithServers(cfg.DNS.Servers, cfg.DNSTimeout())
}

func NewWithServers(servers []string, timeout time.Duration) *Resolver {
	return &Resolver{
		client: &dns.Client{
			Net:     "udp",
			Timeout: timeout,
		},
		tcpClient: &dns.Client{
			Net:     "tcp",
			Timeout: timeout,
		},
		servers: servers,
	}
}

// IsResolvable reports whether host resolves to at least one A record.
// NXDOMAIN, empty answers, timeouts and transport errors all return false;
// there are no retries. A truncated UDP answer is re-asked once over TCP.
func (r *Resolver) IsResolvable(ctx context.Context, host string) bool {
	if len(r.servers) == 0 {
		return false
	}
	server := r.servers[(r.next.Add(1)-1)%uint64(len(r.servers))]

	msg := &dns.Msg{}
	msg.SetQuestion(dns.Fqdn(host), dns.TypeA)
	msg.RecursionDesired = true
	msg.SetEdns0(4096, false)

	resp, _, err := r.client.ExchangeContext(ctx, msg, server)
	if err != nil || resp == nil {
		return false
	}
	if resp.Truncated {
		resp, _, err = r.tcpClient.ExchangeContext(ctx, msg, server)
		if err != nil || resp == nil {
			return false
		}
	}
	if resp.Rcode != dns.RcodeSuccess {
		return false
	}

	for _, ans := range resp.Answer {
		if _, ok := ans.(*dns.A); ok {
			return true
		}
	}
	return false
}
