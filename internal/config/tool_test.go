package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestEmptyToolConfigDefaults(t *testing.T) {
	cfg := &ToolConfig{}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty config should validate: %v", err)
	}
	if got := cfg.GetPort(); got != "" {
		t.Errorf("GetPort() = %q, want empty", got)
	}
	if got := cfg.GetPortOptions().String(); got != "115200 8N1" {
		t.Errorf("GetPortOptions() = %q, want 115200 8N1", got)
	}
	if !cfg.GetSerialNumber().IsEmpty() {
		t.Errorf("GetSerialNumber() should have no subsystems")
	}
	if got := cfg.GetCaptureTimeout(); got != 5*time.Second {
		t.Errorf("GetCaptureTimeout() = %v, want 5s", got)
	}
	if got := cfg.GetQuietPeriod(); got != 500*time.Millisecond {
		t.Errorf("GetQuietPeriod() = %v, want 500ms", got)
	}
	if got := cfg.GetCommandDelay(); got != 0 {
		t.Errorf("GetCommandDelay() = %v, want 0", got)
	}
	if got := cfg.GetDBPath(); got != "adcp.db" {
		t.Errorf("GetDBPath() = %q, want adcp.db", got)
	}
	if got := cfg.GetListen(); got != "localhost:8080" {
		t.Errorf("GetListen() = %q, want localhost:8080", got)
	}
}

func TestLoadToolConfig(t *testing.T) {
	serial := "01" + "23" + strings.Repeat("0", 13) + strings.Repeat("0", 9) + "00000042"
	path := writeConfig(t, "adcpcfg.json", `{
  "port": "/dev/ttyUSB0",
  "baud_rate": 9600,
  "parity": "even",
  "serial_number": "`+serial+`",
  "capture_timeout": "10s",
  "command_delay": "50ms",
  "db_path": "/var/lib/adcp/snapshots.db"
}`)

	cfg, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if got := cfg.GetPort(); got != "/dev/ttyUSB0" {
		t.Errorf("GetPort() = %q", got)
	}
	if got := cfg.GetPortOptions().String(); got != "9600 8E1" {
		t.Errorf("GetPortOptions() = %q, want 9600 8E1", got)
	}
	if got := cfg.GetSerialNumber().String(); got != serial {
		t.Errorf("GetSerialNumber() = %q, want %q", got, serial)
	}
	if got := len(cfg.GetSerialNumber().SubSystemsList()); got != 2 {
		t.Errorf("expected 2 subsystems, got %d", got)
	}
	if got := cfg.GetCaptureTimeout(); got != 10*time.Second {
		t.Errorf("GetCaptureTimeout() = %v, want 10s", got)
	}
	if got := cfg.GetQuietPeriod(); got != 500*time.Millisecond {
		t.Errorf("GetQuietPeriod() = %v, want default 500ms", got)
	}
	if got := cfg.GetCommandDelay(); got != 50*time.Millisecond {
		t.Errorf("GetCommandDelay() = %v, want 50ms", got)
	}
	if got := cfg.GetDBPath(); got != "/var/lib/adcp/snapshots.db" {
		t.Errorf("GetDBPath() = %q", got)
	}
}

func TestLoadToolConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		want string
	}{
		{"wrong extension", "adcpcfg.yaml", `{}`, ".json extension"},
		{"bad json", "adcpcfg.json", `{"port":`, "failed to parse"},
		{"bad baud", "adcpcfg.json", `{"baud_rate": 1234}`, "unsupported baud rate"},
		{"bad stop bits", "adcpcfg.json", `{"stop_bits": 3}`, "stop bits"},
		{"bad serial", "adcpcfg.json", `{"serial_number": "short"}`, "serial_number"},
		{"bad duration", "adcpcfg.json", `{"capture_timeout": "soon"}`, "capture_timeout"},
		{"negative duration", "adcpcfg.json", `{"quiet_period": "-1s"}`, "non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadToolConfig(writeConfig(t, tt.file, tt.body))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadToolConfigMissingFile(t *testing.T) {
	if _, err := LoadToolConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadToolConfigTooLarge(t *testing.T) {
	path := writeConfig(t, "big.json", `{"port":"`+strings.Repeat("x", 1024*1024)+`"}`)
	_, err := LoadToolConfig(path)
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Errorf("expected size error, got %v", err)
	}
}
