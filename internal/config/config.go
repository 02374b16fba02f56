package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// WordlistPath is the brute-force wordlist, read from the working directory.
const WordlistPath = "subdomains.txt"

const (
	DefaultWorkers     = 10
	DefaultOutputFile  = "subdomains_found.txt"
	DefaultURLScanSize = 1000
	DefaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/110.0.0.0 Safari/537.36"
)

func Default() *Config {
	config := &Config{}

	config.BruteForce.Workers = DefaultWorkers
	config.DNS.Servers = []string{
		"8.8.8.8:53",        // Google
		"8.8.4.4:53",        // Google
		"1.1.1.1:53",        // Cloudflare
		"1.0.0.1:53",        // Cloudflare
		"208.67.222.222:53", // OpenDNS
		"208.67.220.220:53", // OpenDNS
	}
	config.DNS.TimeoutMs = 2000
	config.HTTP.TimeoutSeconds = 10
	config.HTTP.UserAgent = DefaultUserAgent
	config.Sources.URLScanSize = DefaultURLScanSize
	config.Output.File = DefaultOutputFile

	return config
}

// Load returns the defaults, overridden by the YAML file at configPath when
// one is given.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.BruteForce.Workers <= 0 {
		return fmt.Errorf("bruteforce.workers must be positive, got %d", c.BruteForce.Workers)
	}
	if c.BruteForce.RateLimit < 0 {
		return fmt.Errorf("bruteforce.rate_limit must not be negative, got %d", c.BruteForce.RateLimit)
	}
	if len(c.DNS.Servers) == 0 {
		return fmt.Errorf("dns.servers must list at least one server")
	}
	if c.DNS.TimeoutMs <= 0 {
		return fmt.Errorf("dns.timeout_ms must be positive, got %d", c.DNS.TimeoutMs)
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be positive, got %d", c.HTTP.TimeoutSeconds)
	}
	if c.Sources.URLScanSize <= 0 {
		return fmt.Errorf("sources.urlscan_size must be positive, got %d", c.Sources.URLScanSize)
	}
	return nil
}

func (c *Config) DNSTimeout() time.Duration {
	return time.Duration(c.DNS.TimeoutMs) * time.Millisecond
}

func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}
