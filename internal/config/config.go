package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v2"
)

var CfgPath = os.ExpandEnv("$HOME/.config/univserv/")
var CfgFile = filepath.Join(CfgPath, "config.yaml")

// Config holds everything needed to reach the services database. It is
// loaded once in main and handed to the db.Provider by pointer; nothing
// reads the environment after startup.
type Config struct {
	Driver   string `yaml:"driver"` // mysql, postgres, sqlite or oracle
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	Style    Style  `yaml:"style"`
}

type Style struct {
	Accent string `yaml:"accent_color"`
}

func defaultConfig() *Config {
	return &Config{
		Driver: "mysql",
		Host:   "localhost",
		Port:   3306,
	}
}

// Load reads the YAML config file (creating a blank one on first run) and
// then applies environment overrides on top of it.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("Creating blank config file at", CfgFile)
			if err := cfg.Save(); err != nil {
				return nil, err
			}
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) Save() error {
	err := os.MkdirAll(CfgPath, 0755)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(CfgFile, data, 0644)
}

// applyEnv layers environment variables over the file values. The MYSQL_*
// names are the ones the office already has in its .env files, so both
// spellings are accepted; UNIVSERV_* wins when both are set.
func (c *Config) applyEnv() {
	setString(&c.Driver, "MYSQL_DRIVER", "UNIVSERV_DRIVER")
	setString(&c.Host, "MYSQL_HOST", "UNIVSERV_HOST")
	setString(&c.User, "MYSQL_USER", "UNIVSERV_USER")
	setString(&c.Password, "MYSQL_PASSWORD", "UNIVSERV_PASSWORD")
	setString(&c.Database, "MYSQL_DATABASE", "UNIVSERV_DATABASE")

	for _, key := range []string{"MYSQL_PORT", "UNIVSERV_PORT"} {
		if v := os.Getenv(key); v != "" {
			if port, err := strconv.Atoi(v); err == nil {
				c.Port = port
			}
		}
	}
}

func setString(dst *string, keys ...string) {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
}
