package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/resistanceisuseless/subsearch/internal/config"
)

var (
	// ErrUnexpectedStatus is returned when a provider answers with anything but 200.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	// ErrBodyTooLarge is returned when a response exceeds the client's size cap.
	ErrBodyTooLarge = errors.New("response body too large")
)

// DefaultMaxBodySize caps a single provider response.
const DefaultMaxBodySize = 256 << 20

// Source is a passive provider of hostnames for a domain.
type Source interface {
	Name() string
	Fetch(ctx context.Context, domain string) ([]string, error)
}

// Client issues the single GET each source makes.
type Client struct {
	httpClient  *http.Client
	userAgent   string
	maxBodySize int64
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout(),
		},
		userAgent:   cfg.HTTP.UserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) > c.maxBodySize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, c.maxBodySize)
	}
	return body, nil
}

// Defaults returns the built-in providers in run order.
func Defaults(cfg *config.Config) []Source {
	client := NewClient(cfg)
	return []Source{
		NewCrtSh(client),
		NewHackerTarget(client),
		NewAlienVault(client),
		NewURLScan(client, cfg.Sources.URLScanSize),
	}
}

// hostSet collects names without duplicates.
type hostSet map[string]struct{}

func (s hostSet) add(name string) {
	if name != "" {
		s[name] = struct{}{}
	}
}

func (s hostSet) list() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
