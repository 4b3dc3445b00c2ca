package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/banshee-data/adcp-config/internal/adcp"
	"github.com/banshee-data/adcp-config/internal/config"
	"github.com/banshee-data/adcp-config/internal/db"
	"github.com/banshee-data/adcp-config/internal/device"
	"github.com/banshee-data/adcp-config/internal/monitoring"
	"github.com/banshee-data/adcp-config/internal/serialmux"
)

// openPort is replaced in tests.
var openPort serialmux.Opener = serialmux.OpenSerialPort

type rootOptions struct {
	configPath string
	port       string
	baudRate   int
	serial     string
	dbPath     string
	quiet      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "adcpcfg",
		Short:         "Decode, store and apply ADCP configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.quiet {
				monitoring.SetLogger(nil)
			}
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "JSON configuration file (default "+config.DefaultConfigPath+" when present)")
	f.StringVarP(&opts.port, "port", "p", "", "Serial port of the instrument")
	f.IntVarP(&opts.baudRate, "baud", "b", 0, "Serial baud rate")
	f.StringVarP(&opts.serial, "serial", "s", "", "Instrument serial number used to resolve CEPO codes")
	f.StringVar(&opts.dbPath, "db", "", "Snapshot database path")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress diagnostic logging")

	cmd.AddCommand(
		newDecodeCmd(opts),
		newShowCmd(opts),
		newApplyCmd(opts),
		newHistoryCmd(opts),
		newSerialCmd(),
		newServeCmd(opts),
		newPortsCmd(),
		newVersionCmd(),
	)
	return cmd
}

// load reads the configuration file and applies flag overrides.
func (o *rootOptions) load() (*config.ToolConfig, error) {
	cfg := &config.ToolConfig{}
	path := o.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultConfigPath); err == nil {
			path = config.DefaultConfigPath
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if path != "" {
		var err error
		if cfg, err = config.LoadToolConfig(path); err != nil {
			return nil, err
		}
	}

	if o.port != "" {
		cfg.Port = &o.port
	}
	if o.baudRate != 0 {
		cfg.BaudRate = &o.baudRate
	}
	if o.serial != "" {
		if _, err := adcp.ParseSerialNumber(o.serial); err != nil {
			return nil, fmt.Errorf("--serial: %w", err)
		}
		cfg.SerialNumber = &o.serial
	}
	if o.dbPath != "" {
		cfg.DBPath = &o.dbPath
	}
	return cfg, cfg.Validate()
}

// connect opens the configured serial port, starts its monitor and returns a
// session on it. The returned function stops the monitor and closes the port.
func connect(ctx context.Context, cfg *config.ToolConfig) (*device.Session, func(), error) {
	if cfg.GetPort() == "" {
		return nil, nil, errors.New("no serial port configured: use --port or \"port\" in the config file")
	}
	mux, err := serialmux.Open(openPort, cfg.GetPort(), cfg.GetPortOptions())
	if err != nil {
		return nil, nil, err
	}
	monitorCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := mux.Monitor(monitorCtx); err != nil && !errors.Is(err, context.Canceled) {
			monitoring.Logf("failed to monitor serial port: %v", err)
		}
	}()

	s := newSession(mux, cfg)
	return s, func() {
		cancel()
		mux.Close()
		<-done
	}, nil
}

func newSession(m serialmux.Mux, cfg *config.ToolConfig) *device.Session {
	s := device.NewSession(m)
	s.CaptureTimeout = cfg.GetCaptureTimeout()
	s.QuietPeriod = cfg.GetQuietPeriod()
	s.CommandDelay = cfg.GetCommandDelay()
	return s
}

func openDB(cfg *config.ToolConfig) (*db.DB, error) {
	d, err := db.NewDB(cfg.GetDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return d, nil
}
