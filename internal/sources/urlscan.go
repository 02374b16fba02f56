package sources

import (
	"context"
	"encoding/json"
	"fmt"
)

// URLScan searches urlscan.io for scanned pages on the domain. Only the first
// page of results is read.
type URLScan struct {
	client   *Client
	endpoint string
	size     int
}

type urlscanSearch struct {
	Results []struct {
		Page struct {
			Domain string `json:"domain"`
		} `json:"page"`
	} `json:"results"`
}

func NewURLScan(client *Client, size int) *URLScan {
	return &URLScan{client: client, endpoint: "https://urlscan.io", size: size}
}

func (u *URLScan) Name() string { return "urlscan.io" }

func (u *URLScan) Fetch(ctx context.Context, domain string) ([]string, error) {
	url := fmt.Sprintf("%s/api/v1/search/?q=domain:%s&size=%d", u.endpoint, domain, u.size)

	body, err := u.client.get(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseURLScan(body)
}

func parseURLScan(body []byte) ([]string, error) {
	var resp urlscanSearch
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode urlscan.io response: %w", err)
	}

	names := hostSet{}
	for _, result := range resp.Results {
		names.add(result.Page.Domain)
	}
	return names.list(), nil
}
