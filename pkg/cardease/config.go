// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package cardease

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/basekit/cardease/pkg/transport"
)

// Config is the root configuration structure loaded from YAML.
//
// Environment variables in the file are expanded with ${VAR} or $VAR
// syntax, so terminal credentials can be injected at runtime:
//
//	servers:
//	  - url: https://live.cardeasexml.com/generic.cex
//	  - url: https://live2.cardeasexml.com/generic.cex
//	    timeout: 60s
//	proxy:
//	  host: proxy.internal
//	  port: 3128
//	  username: ${PROXY_USER}
//	  password: ${PROXY_PASSWORD}
type Config struct {
	Servers []ServerConfig `yaml:"servers"`
	Proxy   ProxyConfig    `yaml:"proxy"`
}

// ServerConfig holds one payment-server entry.
type ServerConfig struct {
	URL     string   `yaml:"url"`
	Timeout Duration `yaml:"timeout"`
}

// Duration decodes Go duration strings ("45s", "1m30s") from YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// ProxyConfig holds outbound HTTP proxy settings. A proxy is used only
// when Host is set.
type ProxyConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// LoadConfig reads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cardease: reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("cardease: parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("cardease: validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	for i := range c.Servers {
		if c.Servers[i].Timeout == 0 {
			c.Servers[i].Timeout = Duration(DefaultEndpointTimeout)
		}
	}
	if c.Proxy.Host != "" && c.Proxy.Port == 0 {
		c.Proxy.Port = 8080
	}
}

func (c *Config) validate() error {
	if len(c.Servers) == 0 {
		return fmt.Errorf("at least one server is required")
	}

	for i, srv := range c.Servers {
		if srv.URL == "" {
			return fmt.Errorf("servers[%d].url is required", i)
		}
		if time.Duration(srv.Timeout) < MinEndpointTimeout {
			return fmt.Errorf("servers[%d].timeout %v is below the %v minimum", i, time.Duration(srv.Timeout), MinEndpointTimeout)
		}
	}

	return nil
}

// NewClient builds a ready Client from the configuration.
func (c *Config) NewClient(logger *slog.Logger) (*Client, error) {
	endpoints := make([]Endpoint, 0, len(c.Servers))
	for _, srv := range c.Servers {
		ep, err := NewEndpoint(srv.URL, time.Duration(srv.Timeout))
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, ep)
	}

	httpsConfig := transport.DefaultHTTPSConfig()
	httpsConfig.ProxyHost = c.Proxy.Host
	httpsConfig.ProxyPort = c.Proxy.Port
	httpsConfig.ProxyUserName = c.Proxy.Username
	httpsConfig.ProxyPassword = c.Proxy.Password

	return NewClient(&ClientConfig{
		Endpoints:   endpoints,
		HTTPSConfig: httpsConfig,
		Logger:      logger,
	})
}
