package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"cookbook/internal/cookbook"
)

type Config struct {
	Server   ServerConfig         `yaml:"server" json:"server"`
	Log      LogConfig            `yaml:"log" json:"log"`
	Resolver ResolverConfig       `yaml:"resolver" json:"resolver"`
	Seed     []cookbook.Candidate `yaml:"seed" json:"seed"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

type LogConfig struct {
	JSON bool `yaml:"json" json:"json"`
}

type ResolverConfig struct {
	// MaxDepth bounds requirement-graph expansion. Zero means unbounded;
	// cycle detection still applies either way.
	MaxDepth int `yaml:"max_depth" json:"max_depth"`
}

func (c *Config) ApplyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8044"
	}
}

func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// Load reads a yaml config file. A missing file is not an error; defaults
// apply.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
