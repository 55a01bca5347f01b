// Package config loads the immutable server configuration at startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds everything the server needs to run. It is built once in
// main and injected into handlers; nothing mutates it afterwards.
type Config struct {
	// DataDir is the absolute path of the browsed root directory.
	DataDir string
	// RootName is the display name of the root, used as page title and
	// as the first breadcrumb.
	RootName string
	// TemplateDir contains the HTML views.
	TemplateDir string
	// AuthUser and AuthPassword enable the basic-auth guard when both
	// are set. Left empty, the server is open (the default).
	AuthUser     string
	AuthPassword string
}

// Load reads the configuration from the environment, applying defaults
// for anything unset. The data directory is resolved to an absolute
// path so request paths can be checked against it.
func Load() (*Config, error) {
	cfg := &Config{
		DataDir:      getEnv("CLOUD_DATA_DIR", "data"),
		RootName:     getEnv("CLOUD_ROOT_NAME", "Files"),
		TemplateDir:  getEnv("CLOUD_TEMPLATE_DIR", "views"),
		AuthUser:     os.Getenv("CLOUD_AUTH_USER"),
		AuthPassword: os.Getenv("CLOUD_AUTH_PASSWORD"),
	}

	dataDir, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}
	cfg.DataDir = dataDir

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
