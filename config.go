package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	transportSSE   = "sse"
	transportStdio = "stdio"

	backendPdf     = "pdf"
	backendDocconv = "docconv"
)

type Config struct {
	LogFile       string `yaml:"log"`
	ServerAddr    string `yaml:"server_addr"`
	Transport     string `yaml:"transport"`
	DownloadDir   string `yaml:"download_dir"`
	PdfBackend    string `yaml:"pdf_backend"`
	HttpTimeoutMs int    `yaml:"http_timeout_ms"`

	UniqueTempNames bool `yaml:"unique_temp_names"`
}

func defaultConfig() *Config {
	return &Config{
		ServerAddr: "localhost:8080",
		Transport:  transportSSE,
		PdfBackend: backendPdf,
	}
}

func (c *Config) HttpTimeout() time.Duration {
	return time.Duration(c.HttpTimeoutMs) * time.Millisecond
}

// readConfig loads cfgPath over the defaults. A missing file is accepted
// unless required is set.
func readConfig(cfgPath string, required bool) (*Config, error) {
	cfg := defaultConfig()

	cfgFile, err := os.Open(cfgPath)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open config file: %w", err)
	}
	defer cfgFile.Close()

	dec := yaml.NewDecoder(cfgFile)
	err = dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	err = cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Transport != transportSSE && c.Transport != transportStdio {
		return fmt.Errorf("unsupported transport: %s", c.Transport)
	}

	if c.PdfBackend != backendPdf && c.PdfBackend != backendDocconv {
		return fmt.Errorf("unsupported pdf backend: %s", c.PdfBackend)
	}

	if c.HttpTimeoutMs < 0 {
		return fmt.Errorf("http_timeout_ms must not be negative: %d", c.HttpTimeoutMs)
	}

	return nil
}
