package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig      `yaml:"server"`
	Database   DatabaseConfig    `yaml:"database"`
	Site       SiteConfig        `yaml:"site"`
	Switches   FileConfig        `yaml:"switches"`
	Navigation FileConfig        `yaml:"navigation"`
	Properties map[string]string `yaml:"properties"`
	LogLevel   string            `yaml:"log_level"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// SiteConfig holds the site-wide URLs surfaced to the rendering client.
type SiteConfig struct {
	AjaxURL    string `yaml:"ajax_url"`
	SiteURL    string `yaml:"site_url"`
	BeaconURL  string `yaml:"beacon_url"`
	SupportURL string `yaml:"support_url"`
}

type FileConfig struct {
	Path string `yaml:"path"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15 * time.Second
	}
	if c.Site.SiteURL == "" {
		c.Site.SiteURL = "http://localhost:8080"
	}
	if c.Site.AjaxURL == "" {
		c.Site.AjaxURL = c.Site.SiteURL
	}
	if c.Site.BeaconURL == "" {
		c.Site.BeaconURL = "//beacon.localhost"
	}
	if c.Site.SupportURL == "" {
		c.Site.SupportURL = "https://support.localhost"
	}
	if c.Switches.Path == "" {
		c.Switches.Path = "switches.yaml"
	}
	if c.Navigation.Path == "" {
		c.Navigation.Path = "navigation.yaml"
	}
	if c.Properties == nil {
		c.Properties = map[string]string{}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
