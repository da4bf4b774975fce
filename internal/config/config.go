// Package config loads runtime settings from defaults, an optional YAML file
// and environment variables, in that order of precedence (last wins).
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"validation-sample/internal/demo"
	"validation-sample/internal/fibonacci"
	"validation-sample/internal/geometry"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "sample.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	ServiceName string          `yaml:"service_name"`
	HTTP        HTTPConfig      `yaml:"http"`
	Telemetry   TelemetryConfig `yaml:"telemetry"`
	Logging     LoggingConfig   `yaml:"logging"`
	Demo        DemoConfig      `yaml:"demo"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// TelemetryConfig toggles the OTLP exporters. Endpoints come from the
// standard OTEL_EXPORTER_OTLP_* variables.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
	// Logs additionally ships zap output over OTLP.
	Logs bool `yaml:"logs"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DemoConfig overrides the driver inputs.
type DemoConfig struct {
	Radius    float64 `yaml:"radius"`
	Fibonacci int     `yaml:"fibonacci"`
	Numbers   []int   `yaml:"numbers"`
	Threshold int     `yaml:"threshold"`
}

// Default returns the built-in settings.
func Default() *Config {
	d := demo.DefaultOptions()

	return &Config{
		ServiceName: "validation-sample",
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Demo: DemoConfig{
			Radius:    d.Radius,
			Fibonacci: d.FibonacciN,
			Numbers:   d.Numbers,
			Threshold: d.Threshold,
		},
	}
}

// Load reads path over the defaults and applies environment overrides. A
// missing file is not an error; the defaults are used instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		c.ServiceName = v
	}
	if v := os.Getenv("SAMPLE_HTTP_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv("SAMPLE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv("SAMPLE_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SAMPLE_SHUTDOWN_TIMEOUT: %w", err)
		}
		c.HTTP.ShutdownTimeout = d
	}

	for name, dst := range map[string]*bool{
		"SAMPLE_TELEMETRY_ENABLED": &c.Telemetry.Enabled,
		"SAMPLE_TELEMETRY_LOGS":    &c.Telemetry.Logs,
		"SAMPLE_LOG_DEVELOPMENT":   &c.Logging.Development,
	} {
		if v := os.Getenv(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = b
		}
	}

	if v := os.Getenv("SAMPLE_DEMO_RADIUS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("SAMPLE_DEMO_RADIUS: %w", err)
		}
		c.Demo.Radius = f
	}
	if v := os.Getenv("SAMPLE_DEMO_FIBONACCI"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SAMPLE_DEMO_FIBONACCI: %w", err)
		}
		c.Demo.Fibonacci = n
	}

	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("%w: http.addr is empty", ErrInvalid)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: http.shutdown_timeout must be positive", ErrInvalid)
	}
	if _, err := zap.ParseAtomicLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	if math.IsNaN(c.Demo.Radius) || math.IsInf(c.Demo.Radius, 0) {
		return fmt.Errorf("%w: demo.radius must be finite", ErrInvalid)
	}
	if c.Demo.Radius < 0 {
		return fmt.Errorf("%w: demo.radius must be non-negative", ErrInvalid)
	}
	if math.IsInf(geometry.CircleArea(c.Demo.Radius), 0) {
		return fmt.Errorf("%w: demo.radius %g overflows the circle area", ErrInvalid, c.Demo.Radius)
	}
	if c.Demo.Fibonacci < 0 || c.Demo.Fibonacci > fibonacci.MaxRecursive {
		return fmt.Errorf("%w: demo.fibonacci must be within [0, %d]", ErrInvalid, fibonacci.MaxRecursive)
	}
	return nil
}

// DemoOptions converts the demo section into driver options.
func (c *Config) DemoOptions() demo.Options {
	opts := demo.DefaultOptions()
	opts.Radius = c.Demo.Radius
	opts.FibonacciN = c.Demo.Fibonacci
	opts.Numbers = append([]int(nil), c.Demo.Numbers...)
	opts.Threshold = c.Demo.Threshold
	return opts
}
