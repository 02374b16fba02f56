package config

type Config struct {
	BruteForce struct {
		Workers        int  `yaml:"workers"`
		RateLimit      int  `yaml:"rate_limit"`
		DetectWildcard bool `yaml:"detect_wildcard"`
	} `yaml:"bruteforce"`

	DNS struct {
		Servers   []string `yaml:"servers"`
		TimeoutMs int      `yaml:"timeout_ms"`
	} `yaml:"dns"`

	HTTP struct {
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		UserAgent      string `yaml:"user_agent"`
	} `yaml:"http"`

	Sources struct {
		URLScanSize int `yaml:"urlscan_size"`
	} `yaml:"sources"`

	Output struct {
		File string `yaml:"file"`
	} `yaml:"output"`

	Progress bool `yaml:"progress"`
}
