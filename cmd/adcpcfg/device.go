package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/banshee-data/adcp-config/internal/cshow"
	"github.com/banshee-data/adcp-config/internal/monitoring"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var (
		format   string
		noRecord bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Read the configuration from the attached instrument",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			s, closePort, err := connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closePort()

			decoded, raw, err := s.ReadConfiguration(cmd.Context(), cfg.GetSerialNumber())
			if err != nil {
				return err
			}
			if !noRecord {
				d, err := openDB(cfg)
				if err != nil {
					return err
				}
				defer d.Close()
				snap, err := d.RecordSnapshot(cmd.Context(), raw, cfg.GetPort(), decoded)
				if err != nil {
					return err
				}
				monitoring.Logf("recorded snapshot %s", snap.ID)
			}
			return printConfiguration(cmd.OutOrStdout(), decoded, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatCSHOW, "Output format: cshow, commands or summary")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not store the reply in the snapshot database")
	return cmd
}

func newApplyCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "apply <file|->",
		Short: "Write the configuration in a CSHOW file to the instrument",
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

			if dryRun {
				return printConfiguration(cmd.OutOrStdout(), decoded, formatCommands)
			}

			s, closePort, err := connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closePort()
			if err := s.Apply(cmd.Context(), decoded); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent %d commands to %s\n", len(decoded.CommandList()), cfg.GetPort())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the commands instead of sending them")
	return cmd
}

