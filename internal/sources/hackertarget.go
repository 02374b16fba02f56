package sources

import (
	"context"
	"fmt"
	"strings"
)

// HackerTarget queries the hostsearch API, which answers in host,ip lines.
type HackerTarget struct {
	client   *Client
	endpoint string
}

func NewHackerTarget(client *Client) *HackerTarget {
	return &HackerTarget{client: client, endpoint: "https://api.hackertarget.com"}
}

func (h *HackerTarget) Name() string { return "HackerTarget" }

func (h *HackerTarget) Fetch(ctx context.Context, domain string) ([]string, error) {
	url := fmt.Sprintf("%s/hostsearch/?q=%s", h.endpoint, domain)

	body, err := h.client.get(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseHackerTarget(body), nil
}

func parseHackerTarget(body []byte) []string {
	names := hostSet{}
	for _, line := range strings.Split(string(body), "\n") {
		if line == "" {
			continue
		}
		host, _, _ := strings.Cut(line, ",")
		names.add(host)
	}
	return names.list()
}
