package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v2"

	"github.com/puppygraph/puppygraph-go/pkg/puppygraph"
)

// PuppyGraphConfig holds the connection settings for the PuppyGraph server.
type PuppyGraphConfig struct {
	IP            string `yaml:"ip"`
	Username      string `yaml:"username"`
	Password      string `yaml:"password"`
	QueryLanguage string `yaml:"query_language"`

	HTTPPort    int `yaml:"http_port,omitempty"`
	BoltPort    int `yaml:"bolt_port,omitempty"`
	GremlinPort int `yaml:"gremlin_port,omitempty"`
}

// HostConfig converts the YAML settings into the client host configuration.
// Unset fields fall back to the client package defaults.
func (c PuppyGraphConfig) HostConfig() puppygraph.HostConfig {
	return puppygraph.HostConfig{
		IP:          c.IP,
		Username:    c.Username,
		Password:    c.Password,
		HTTPPort:    c.HTTPPort,
		BoltPort:    c.BoltPort,
		GremlinPort: c.GremlinPort,
	}
}

type App struct {
	Port      int    `yaml:"port"`
	DebugHTTP bool   `yaml:"debug_http,omitempty"` // Log full request/response bodies
	LogLevel  string `yaml:"log_level,omitempty"`  // debug, info, warn, error (default: info)
}

type Config struct {
	PuppyGraph PuppyGraphConfig `yaml:"puppygraph"`
	App        App              `yaml:"app"`
}

// expandEnvVars expands environment variables in the given string
// Supports formats: ${VAR}, $VAR, ${VAR:-default}
func expandEnvVars(s string) string {
	// Pattern for ${VAR:-default} or ${VAR}
	reBraces := regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)
	s = reBraces.ReplaceAllStringFunc(s, func(match string) string {
		parts := reBraces.FindStringSubmatch(match)
		if len(parts) >= 2 {
			varName := parts[1]
			defaultValue := ""
			if len(parts) >= 4 {
				defaultValue = parts[3]
			}
			if val, ok := os.LookupEnv(varName); ok {
				return val
			}
			return defaultValue
		}
		return match
	})

	// Pattern for $VAR (without braces)
	reSimple := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = reSimple.ReplaceAllStringFunc(s, func(match string) string {
		parts := reSimple.FindStringSubmatch(match)
		if len(parts) >= 2 {
			varName := parts[1]
			if val, ok := os.LookupEnv(varName); ok {
				return val
			}
			return match
		}
		return match
	})

	return s
}

func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables so credentials can stay out of the file
	data = []byte(expandEnvVars(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.App.Port == 0 {
		cfg.App.Port = 8080
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.PuppyGraph.QueryLanguage {
	case puppygraph.QueryLanguageGremlin, puppygraph.QueryLanguageCypher:
		return nil
	case "":
		// Defaulted here so the adapter never sees an empty value
		c.PuppyGraph.QueryLanguage = puppygraph.QueryLanguageGremlin
		return nil
	default:
		return fmt.Errorf("%w, got %q", puppygraph.ErrInvalidQueryLanguage, c.PuppyGraph.QueryLanguage)
	}
}
