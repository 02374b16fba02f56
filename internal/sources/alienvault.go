package sources

import (
	"context"
	"encoding/json"
	"fmt"
)

// AlienVault reads passive DNS observations from AlienVault OTX.
type AlienVault struct {
	client   *Client
	endpoint string
}

type otxPassiveDNS struct {
	PassiveDNS []struct {
		Hostname string `json:"hostname"`
		Address  string `json:"address"`
		Type     string `json:"record_type"`
	} `json:"passive_dns"`
}

func NewAlienVault(client *Client) *AlienVault {
	return &AlienVault{client: client, endpoint: "https://otx.alienvault.com"}
}

func (a *AlienVault) Name() string { return "AlienVault" }

func (a *AlienVault) Fetch(ctx context.Context, domain string) ([]string, error) {
	url := fmt.Sprintf("%s/api/v1/indicators/domain/%s/passive_dns", a.endpoint, domain)

	body, err := a.client.get(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseAlienVault(body)
}

func parseAlienVault(body []byte) ([]string, error) {
	var resp otxPassiveDNS
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode AlienVault response: %w", err)
	}

	names := hostSet{}
	for _, entry := range resp.PassiveDNS {
		names.add(entry.Hostname)
	}
	return names.list(), nil
}
