// Package config loads the adcpcfg tool configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/banshee-data/adcp-config/internal/adcp"
	"github.com/banshee-data/adcp-config/internal/device"
	"github.com/banshee-data/adcp-config/internal/serialmux"
)

// DefaultConfigPath is read when no --config flag is given and the file exists.
const DefaultConfigPath = "adcpcfg.json"

const (
	defaultDBPath = "adcp.db"
	defaultListen = "localhost:8080"
)

// ToolConfig is the JSON configuration of the command line tool. Unset
// fields fall back to the defaults returned by the Get* methods, so partial
// files are valid.
type ToolConfig struct {
	// Serial connection
	Port     *string `json:"port,omitempty"`
	BaudRate *int    `json:"baud_rate,omitempty"`
	DataBits *int    `json:"data_bits,omitempty"`
	StopBits *int    `json:"stop_bits,omitempty"`
	Parity   *string `json:"parity,omitempty"`

	// Instrument identity used when decoding
	SerialNumber *string `json:"serial_number,omitempty"`

	// Device session timing, duration strings like "5s"
	CaptureTimeout *string `json:"capture_timeout,omitempty"`
	QuietPeriod    *string `json:"quiet_period,omitempty"`
	CommandDelay   *string `json:"command_delay,omitempty"`

	DBPath *string `json:"db_path,omitempty"`
	Listen *string `json:"listen,omitempty"`
}

// LoadToolConfig loads a ToolConfig from a JSON file.
// The file must have a .json extension and be under 1MB.
func LoadToolConfig(path string) (*ToolConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &ToolConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields that are set.
func (c *ToolConfig) Validate() error {
	if _, err := c.GetPortOptions().Normalize(); err != nil {
		return err
	}

	if c.SerialNumber != nil && *c.SerialNumber != "" {
		if _, err := adcp.ParseSerialNumber(*c.SerialNumber); err != nil {
			return fmt.Errorf("serial_number: %w", err)
		}
	}

	for name, d := range map[string]*string{
		"capture_timeout": c.CaptureTimeout,
		"quiet_period":    c.QuietPeriod,
		"command_delay":   c.CommandDelay,
	} {
		if d == nil || *d == "" {
			continue
		}
		v, err := time.ParseDuration(*d)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", name, *d, err)
		}
		if v < 0 {
			return fmt.Errorf("%s must be non-negative, got %s", name, *d)
		}
	}
	return nil
}

// GetPort returns the serial port path, empty when none is configured.
func (c *ToolConfig) GetPort() string {
	if c.Port == nil {
		return ""
	}
	return *c.Port
}

// GetPortOptions returns the serial line settings. Zero values are filled
// in by serialmux.PortOptions.Normalize.
func (c *ToolConfig) GetPortOptions() serialmux.PortOptions {
	var o serialmux.PortOptions
	if c.BaudRate != nil {
		o.BaudRate = *c.BaudRate
	}
	if c.DataBits != nil {
		o.DataBits = *c.DataBits
	}
	if c.StopBits != nil {
		o.StopBits = *c.StopBits
	}
	if c.Parity != nil {
		o.Parity = *c.Parity
	}
	return o
}

// GetSerialNumber returns the configured serial number or the all-empty
// default.
func (c *ToolConfig) GetSerialNumber() adcp.SerialNumber {
	if c.SerialNumber == nil {
		return adcp.DefaultSerialNumber()
	}
	return adcp.NewSerialNumber(*c.SerialNumber)
}

func getDuration(s *string, def time.Duration) time.Duration {
	if s == nil || *s == "" {
		return def
	}
	d, err := time.ParseDuration(*s)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func (c *ToolConfig) GetCaptureTimeout() time.Duration {
	return getDuration(c.CaptureTimeout, device.DefaultCaptureTimeout)
}

func (c *ToolConfig) GetQuietPeriod() time.Duration {
	return getDuration(c.QuietPeriod, device.DefaultQuietPeriod)
}

func (c *ToolConfig) GetCommandDelay() time.Duration {
	return getDuration(c.CommandDelay, 0)
}

// GetDBPath returns the snapshot database path or the default.
func (c *ToolConfig) GetDBPath() string {
	if c.DBPath == nil || *c.DBPath == "" {
		return defaultDBPath
	}
	return *c.DBPath
}

// GetListen returns the debug server address or the default.
func (c *ToolConfig) GetListen() string {
	if c.Listen == nil || *c.Listen == "" {
		return defaultListen
	}
	return *c.Listen
}
