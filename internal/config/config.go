// Package config resolves giteadm's settings: instance credentials and the
// saved UI theme. Credentials come from the environment first, then the
// config file, then an existing tea CLI login, so users of the official
// Gitea CLI need no extra setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the resolved settings.
type Config struct {
	URL   string
	Token string
	Theme string
}

// HasCredentials reports whether both the URL and token are set.
func (c Config) HasCredentials() bool {
	return c.URL != "" && c.Token != ""
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "GITEADM_CONFIG"

// URLEnvVar and TokenEnvVar override the stored credentials.
const (
	URLEnvVar   = "GITEA_URL"
	TokenEnvVar = "GITEA_TOKEN"
)

func configPath() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "giteadm", "config.yaml")
}

// Load resolves the configuration. Resolution order for credentials:
// environment variables, then the giteadm config file, then the default
// login of the tea CLI config. Missing credentials are not an error; the
// caller decides whether to prompt.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("theme", "dark")
	v.SetConfigType("yaml")
	v.SetConfigFile(configPath())

	// A missing file just means nothing saved yet.
	_ = v.ReadInConfig()

	cfg := Config{
		URL:   v.GetString("url"),
		Token: v.GetString("token"),
		Theme: v.GetString("theme"),
	}

	if env := os.Getenv(URLEnvVar); env != "" {
		cfg.URL = env
	}
	if env := os.Getenv(TokenEnvVar); env != "" {
		cfg.Token = env
	}

	if cfg.URL == "" || cfg.Token == "" {
		if login, ok := teaLoginFromFile(teaConfigPath()); ok {
			if cfg.URL == "" {
				cfg.URL = login.URL
			}
			if cfg.Token == "" {
				cfg.Token = login.Token
			}
		}
	}

	cfg.URL = NormalizeURL(cfg.URL)
	return cfg, nil
}

// Save writes the configuration to the config file, creating the directory
// if needed. The token is stored in plain text; prefer env vars on shared
// machines.
func Save(cfg Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("url", NormalizeURL(cfg.URL))
	v.Set("token", cfg.Token)
	v.Set("theme", cfg.Theme)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// NormalizeURL strips the trailing slash so paths concatenate cleanly.
func NormalizeURL(url string) string {
	return strings.TrimRight(url, "/")
}

// teaLogin is one entry of the tea CLI's config.yml.
type teaLogin struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Token   string `yaml:"token"`
	Default bool   `yaml:"default"`
}

func teaConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tea", "config.yml")
}

// pickTeaLogin prefers the login marked default, falling back to the first.
func pickTeaLogin(logins []teaLogin) (teaLogin, bool) {
	if len(logins) == 0 {
		return teaLogin{}, false
	}
	for _, l := range logins {
		if l.Default {
			return l, true
		}
	}
	return logins[0], true
}

func teaLoginFromFile(path string) (teaLogin, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return teaLogin{}, false
	}
	var parsed struct {
		Logins []teaLogin `yaml:"logins"`
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return teaLogin{}, false
	}
	return pickTeaLogin(parsed.Logins)
}
