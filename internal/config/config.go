package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = 3000
	DefaultStaticDir       = "public"
	DefaultIndexPath       = "views/index.html"
	DefaultShutdownTimeout = 5 * time.Second

	// PortEnv names the environment variable holding the listen port
	PortEnv = "PORT"
)

// Config holds process settings, resolved once at startup
type Config struct {
	Port            int
	StaticDir       string
	IndexPath       string
	ShutdownTimeout time.Duration
}

// Addr returns the listen address for Port on all interfaces
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads .env from the working directory, if present, and then the
// process environment.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit env file. Variables already set in the
// environment take precedence over the file.
func LoadFrom(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	port, err := parsePort(os.Getenv(PortEnv))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            port,
		StaticDir:       DefaultStaticDir,
		IndexPath:       DefaultIndexPath,
		ShutdownTimeout: DefaultShutdownTimeout,
	}, nil
}

func parsePort(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", PortEnv, raw, err)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("invalid %s %q: out of range", PortEnv, raw)
	}

	return port, nil
}
