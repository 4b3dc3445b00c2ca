package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/banshee-data/adcp-config/internal/adcp"
	"github.com/banshee-data/adcp-config/internal/cshow"
	"github.com/banshee-data/adcp-config/internal/monitoring"
)

const (
	formatCSHOW    = "cshow"
	formatCommands = "commands"
	formatSummary  = "summary"
)

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	var (
		format string
		record bool
	)
	cmd := &cobra.Command{
		Use:   "decode <file|->",
		Short: "Decode a saved CSHOW reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			raw, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			dec := cshow.Decoder{Logf: monitoring.Prefixed("cshow")}
			decoded := dec.Decode(raw, cfg.GetSerialNumber())

			if record {
				d, err := openDB(cfg)
				if err != nil {
					return err
				}
				defer d.Close()
				snap, err := d.RecordSnapshot(cmd.Context(), raw, args[0], decoded)
				if err != nil {
					return err
				}
				monitoring.Logf("recorded snapshot %s", snap.ID)
			}
			return printConfiguration(cmd.OutOrStdout(), decoded, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatCSHOW, "Output format: cshow, commands or summary")
	cmd.Flags().BoolVar(&record, "record", false, "Store the decoded reply in the snapshot database")
	return cmd
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(b), nil
}

func printConfiguration(w io.Writer, cfg *adcp.AdcpConfiguration, format string) error {
	switch format {
	case formatCSHOW:
		_, err := io.WriteString(w, cshow.Format(cfg))
		return err
	case formatCommands:
		_, err := io.WriteString(w, strings.Join(cfg.CommandList(), "\n")+"\n")
		return err
	case formatSummary:
		fmt.Fprintf(w, "Serial number: %s\n", cfg.SerialNumber)
		fmt.Fprintf(w, "CEPO:          %s\n", cfg.Commands.CEPO())
		for _, slot := range cfg.Configs() {
			c := slot.Commands
			fmt.Fprintf(w, "%s: blank %gm, %d bins of %gm, %d pings\n",
				slot.Label(), c.CWPBL(), c.CWPBN(), c.CWPBS(), c.CWPP())
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q: expected %s, %s or %s", format, formatCSHOW, formatCommands, formatSummary)
	}
}
