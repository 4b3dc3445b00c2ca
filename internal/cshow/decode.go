// Package cshow decodes the text an ADCP prints in reply to the CSHOW
// command into an adcp.AdcpConfiguration.
package cshow

import (
	"strings"

	"github.com/banshee-data/adcp-config/internal/adcp"
)

// Frame markers around a CSHOW dump. Both are optional.
const (
	StartMarker = "CSHOW"
	EndMarker   = "CSHOW END"
)

// Decoder turns a CSHOW dump into a configuration. The zero value is ready
// to use.
type Decoder struct {
	// Logf receives one message per skipped line. Nil discards them.
	Logf func(format string, v ...interface{})
}

// Decode decodes text with a zero Decoder.
func Decode(text string, sn adcp.SerialNumber) *adcp.AdcpConfiguration {
	var d Decoder
	return d.Decode(text, sn)
}

// Decode never fails. Unknown commands and malformed lines are skipped,
// values outside their valid range fall back to defaults and blocks that
// address a CEPO position which does not exist are ignored.
func (d *Decoder) Decode(text string, sn adcp.SerialNumber) *adcp.AdcpConfiguration {
	cfg := adcp.NewAdcpConfiguration(sn)
	lines := FrameLines(text)

	// CEPO decides how many slots exist, so it is applied before any
	// indexed line regardless of where it appears.
	cepo, ok := findCEPO(lines)
	if !ok {
		d.logf("no CEPO line, decoding globals only")
	}
	cfg.Commands.SetCEPO(cepo)

	slots := make([]*adcp.AdcpSubsystemConfig, 0, len(cfg.Commands.CEPO()))
	for _, ssc := range ResolveSlots(cfg.Commands.CEPO(), sn) {
		slot := adcp.NewAdcpSubsystemConfig(ssc)
		cfg.AddSubsystemConfig(slot)
		slots = append(slots, slot)
	}

	for _, raw := range lines {
		line, ok := ParseLine(raw)
		if !ok {
			d.logf("skipping malformed line %q", raw)
			continue
		}
		cmd, known := adcp.LookupCommand(line.Name)
		if !known {
			d.logf("skipping unknown command %q", line.Name)
			continue
		}
		switch {
		case cmd == adcp.CmdCEPO:
			// Already applied.
		case line.Indexed && cmd.IsSubsystem():
			d.applyBlocks(cmd, line.Blocks, slots)
		case !line.Indexed && !cmd.IsSubsystem():
			cfg.Commands.Decode(cmd, line.Values)
		default:
			d.logf("skipping %s: index brackets do not match command kind", cmd)
		}
	}
	return cfg
}

func (d *Decoder) applyBlocks(cmd adcp.Command, blocks []Block, slots []*adcp.AdcpSubsystemConfig) {
	for _, b := range blocks {
		if b.Index >= len(slots) {
			d.logf("skipping %s[%d]: only %d configurations", cmd, b.Index, len(slots))
			continue
		}
		slots[b.Index].Commands.Decode(cmd, b.Values)
	}
}

func (d *Decoder) logf(format string, v ...interface{}) {
	if d.Logf != nil {
		d.Logf(format, v...)
	}
}

// FrameLines splits a dump into trimmed, non-empty lines and drops anything
// outside the CSHOW markers when they are present.
func FrameLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	start := 0
	for i, l := range lines {
		if strings.EqualFold(l, StartMarker) {
			start = i + 1
			break
		}
	}
	lines = lines[start:]
	for i, l := range lines {
		if strings.EqualFold(l, EndMarker) {
			return lines[:i]
		}
	}
	return lines
}

func findCEPO(lines []string) (string, bool) {
	for _, raw := range lines {
		line, ok := ParseLine(raw)
		if !ok || line.Indexed {
			continue
		}
		if cmd, known := adcp.LookupCommand(line.Name); known && cmd == adcp.CmdCEPO {
			return line.Values.Str(0), true
		}
	}
	return "", false
}
