// utils/dns.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/valyala/fasthttp"

	"sniperlink/models"
)

var (
	ErrDNSStatus  = errors.New("dns resolver returned a non-success HTTP status")
	ErrDNSPayload = errors.New("dns resolver returned a malformed body")
)

// MXLookup queries mail exchange records for a domain
type MXLookup interface {
	LookupMX(ctx context.Context, domain string) (*models.DNSResponse, error)
}

// DoHClient queries a DNS-over-HTTPS JSON endpoint such as Cloudflare's
type DoHClient struct {
	Endpoint string
	client   *fasthttp.Client
}

// NewDoHClient creates a DNS-over-HTTPS client. A zero timeout leaves requests
// bounded only by the caller's context deadline.
func NewDoHClient(endpoint string, timeout time.Duration) *DoHClient {
	return &DoHClient{
		Endpoint: endpoint,
		client: &fasthttp.Client{
			Name:                     "sniperlink",
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			NoDefaultUserAgentHeader: true,
		},
	}
}

func (d *DoHClient) LookupMX(ctx context.Context, domain string) (*models.DNSResponse, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(d.Endpoint + "?name=" + url.QueryEscape(domain) + "&type=MX")
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/dns-json")

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = d.client.DoDeadline(req, resp, deadline)
	} else {
		err = d.client.Do(req, resp)
	}
	if err != nil {
		return nil, fmt.Errorf("doh query for %s: %w", domain, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrDNSStatus, resp.StatusCode())
	}

	var out models.DNSResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDNSPayload, err)
	}
	return &out, nil
}

// WireClient queries a classic DNS server over UDP, retrying over TCP when the
// answer is truncated.
type WireClient struct {
	Server string
	client *dns.Client
}

func NewWireClient(server string, timeout time.Duration) *WireClient {
	return &WireClient{
		Server: server,
		client: &dns.Client{Timeout: timeout},
	}
}

func (w *WireClient) LookupMX(ctx context.Context, domain string) (*models.DNSResponse, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), dns.TypeMX)

	in, _, err := w.client.ExchangeContext(ctx, m, w.Server)
	if err == nil && in != nil && in.Truncated {
		tcp := &dns.Client{Net: "tcp", Timeout: w.client.Timeout}
		in, _, err = tcp.ExchangeContext(ctx, m, w.Server)
	}
	if err != nil {
		return nil, fmt.Errorf("dns query for %s: %w", domain, err)
	}

	out := &models.DNSResponse{Status: in.Rcode}
	for _, rr := range in.Answer {
		mx, ok := rr.(*dns.MX)
		if !ok {
			continue
		}
		out.Answer = append(out.Answer, models.DNSAnswer{
			Name: mx.Hdr.Name,
			Type: models.DNSTypeMX,
			TTL:  int(mx.Hdr.Ttl),
			Data: strconv.Itoa(int(mx.Preference)) + " " + mx.Mx,
		})
	}
	return out, nil
}

// ParseMxRecords keeps the MX entries of a DNS answer and splits their data into
// priority and exchange host. Entries with an empty host or a non-numeric
// priority are dropped.
func ParseMxRecords(answer []models.DNSAnswer) []models.MxRecord {
	records := make([]models.MxRecord, 0, len(answer))
	for _, a := range answer {
		if a.Type != models.DNSTypeMX {
			continue
		}
		prio, host, ok := strings.Cut(a.Data, " ")
		if !ok {
			continue
		}
		priority, err := strconv.ParseUint(prio, 10, 16)
		if err != nil {
			continue
		}
		host = strings.ToLower(strings.TrimSuffix(host, "."))
		if host == "" {
			continue
		}
		records = append(records, models.MxRecord{Priority: uint16(priority), Exchange: host})
	}
	return records
}
