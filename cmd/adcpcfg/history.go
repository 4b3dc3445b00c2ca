package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			d, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer d.Close()

			serial := ""
			if cfg.SerialNumber != nil {
				serial = cfg.GetSerialNumber().String()
			}
			snaps, err := d.Snapshots(cmd.Context(), serial, limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tSERIAL\tCEPO\tSOURCE")
			for _, s := range snaps {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					s.ID[:8], s.CreatedAt.Local().Format(time.DateTime), s.SerialNumber, s.CEPO, s.Source)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of snapshots to list")

	cmd.AddCommand(newHistoryShowCmd(opts), newHistoryDeleteCmd(opts))
	return cmd
}

func newHistoryShowCmd(opts *rootOptions) *cobra.Command {
	var (
		raw    bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			d, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer d.Close()

			snap, err := d.Snapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if raw {
				_, err := io.WriteString(cmd.OutOrStdout(), snap.Raw)
				return err
			}
			return printConfiguration(cmd.OutOrStdout(), snap.Configuration(), format)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the reply exactly as received")
	cmd.Flags().StringVarP(&format, "format", "f", formatCSHOW, "Output format: cshow, commands or summary")
	return cmd
}

func newHistoryDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			d, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer d.Close()

			snap, err := d.Snapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := d.DeleteSnapshot(cmd.Context(), snap.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", snap.ID)
			return nil
		},
	}
}
