package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/banshee-data/adcp-config/internal/adcp"
)

func newSerialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serial",
		Short: "Inspect and edit instrument serial numbers",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "info <serial>",
			Short: "Describe the subsystems of a serial number",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				sn, err := adcp.ParseSerialNumber(args[0])
				if err != nil {
					return err
				}
				printSerial(cmd.OutOrStdout(), sn)
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <serial> <code>",
			Short: "Add a subsystem code to the first free slot",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				sn, code, err := serialAndCode(args)
				if err != nil {
					return err
				}
				if !sn.AddSubsystem(adcp.NewSubsystem(code, 0)) {
					return fmt.Errorf("cannot add subsystem %q: invalid code or no free slot", code)
				}
				printSerial(cmd.OutOrStdout(), sn)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <serial> <code> [index]",
			Short: "Remove a subsystem; index picks among repeated codes",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				sn, code, err := serialAndCode(args)
				if err != nil {
					return err
				}
				ss, err := pickSubsystem(sn, code, args[2:])
				if err != nil {
					return err
				}
				if !sn.RemoveSubsystem(ss) {
					return fmt.Errorf("subsystem %c at index %d not found", ss.Code, ss.Index)
				}
				printSerial(cmd.OutOrStdout(), sn)
				return nil
			},
		},
		newSerialSetCmd(),
	)
	return cmd
}

func newSerialSetCmd() *cobra.Command {
	var (
		base, subsystems, spare string
		system                  int64
	)
	cmd := &cobra.Command{
		Use:   "set [serial]",
		Short: "Replace fields of a serial number, starting from the empty one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sn := adcp.DefaultSerialNumber()
			if len(args) == 1 {
				var err error
				if sn, err = adcp.ParseSerialNumber(args[0]); err != nil {
					return err
				}
			}
			f := cmd.Flags()
			if f.Changed("base") && !sn.SetBaseHardware(base) {
				return fmt.Errorf("invalid base hardware %q: want %d alphanumerics", base, adcp.BaseHardwareWidth)
			}
			if f.Changed("subsystems") && !sn.SetSubsystems(subsystems) {
				return fmt.Errorf("invalid subsystems %q: want at most %d alphanumerics", subsystems, adcp.SubsystemsWidth)
			}
			if f.Changed("spare") && !sn.SetSpare(spare) {
				return fmt.Errorf("invalid spare %q: want at most %d alphanumerics", spare, adcp.SpareWidth)
			}
			if f.Changed("system") && (system < 0 || system > 1<<32-1 || !sn.SetSystemSerialNumber(uint32(system))) {
				return fmt.Errorf("invalid system serial number %d", system)
			}
			printSerial(cmd.OutOrStdout(), sn)
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "Base hardware code")
	cmd.Flags().StringVar(&subsystems, "subsystems", "", "Subsystem codes")
	cmd.Flags().StringVar(&spare, "spare", "", "Spare field")
	cmd.Flags().Int64Var(&system, "system", 0, "System serial number")
	return cmd
}

func serialAndCode(args []string) (adcp.SerialNumber, byte, error) {
	sn, err := adcp.ParseSerialNumber(args[0])
	if err != nil {
		return sn, 0, err
	}
	if len(args[1]) != 1 {
		return sn, 0, fmt.Errorf("subsystem code must be a single character, got %q", args[1])
	}
	return sn, args[1][0], nil
}

// pickSubsystem finds the subsystem with code. An explicit index is the
// position in the subsystem list; without one the code must be unique.
func pickSubsystem(sn adcp.SerialNumber, code byte, rest []string) (adcp.Subsystem, error) {
	if len(rest) == 1 {
		idx, err := strconv.Atoi(rest[0])
		if err != nil {
			return adcp.Subsystem{}, fmt.Errorf("invalid index %q: %w", rest[0], err)
		}
		return adcp.NewSubsystem(code, idx), nil
	}
	matches := sn.SubsystemsWithCode(code)
	switch len(matches) {
	case 0:
		return adcp.Subsystem{}, fmt.Errorf("serial number has no subsystem %c", code)
	case 1:
		return matches[0], nil
	default:
		return adcp.Subsystem{}, fmt.Errorf("subsystem %c appears %d times: pass an index", code, len(matches))
	}
}

func printSerial(w io.Writer, sn adcp.SerialNumber) {
	fmt.Fprintf(w, "Serial number: %s\n", sn)
	fmt.Fprintf(w, "Base hardware: %s\n", sn.BaseHardware())
	fmt.Fprintf(w, "System serial: %d\n", sn.SystemSerialNumber())
	for _, ss := range sn.SubSystemsList() {
		fmt.Fprintf(w, "  [%d] %c  %s\n", ss.Index, ss.Code, ss.Description())
	}
}
