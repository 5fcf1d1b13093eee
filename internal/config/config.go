package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

const DefaultPort = 13732

// LatencyRange describes the bounds of the artificial response delay in
// milliseconds. The delay is drawn uniformly from [MinMs, MaxMs).
type LatencyRange struct {
	MinMs int `yaml:"min_ms"`
	MaxMs int `yaml:"max_ms"`
}

type Config struct {
	Port    int `yaml:"port"`
	Latency struct {
		Classifier LatencyRange `yaml:"classifier"`
		Enrichment LatencyRange `yaml:"enrichment"`
	} `yaml:"latency"`
}

// Default reproduces the upstream mock service's behavior: port 13732,
// classifier delay 1.5-2.5s, enrichment delay 0.4-0.9s.
func Default() *Config {
	cfg := &Config{Port: DefaultPort}
	cfg.Latency.Classifier = LatencyRange{MinMs: 1500, MaxMs: 2500}
	cfg.Latency.Enrichment = LatencyRange{MinMs: 400, MaxMs: 900}
	return cfg
}

// Load reads the configuration from a YAML file. A missing file is not an
// error: the server starts with the defaults, like the original script.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Environment variables take precedence over the file when set
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value: %v", err)
		}
		cfg.Port = p
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	for name, r := range map[string]LatencyRange{
		"classifier": c.Latency.Classifier,
		"enrichment": c.Latency.Enrichment,
	} {
		if r.MinMs < 0 {
			return fmt.Errorf("latency.%s: min_ms must not be negative", name)
		}
		if r.MaxMs <= r.MinMs {
			return fmt.Errorf("latency.%s: max_ms must be greater than min_ms", name)
		}
	}
	return nil
}
