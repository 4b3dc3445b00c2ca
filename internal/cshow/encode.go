package cshow

import (
	"fmt"
	"strings"

	"github.com/banshee-data/adcp-config/internal/adcp"
)

// Format renders cfg the way an instrument prints it in reply to CSHOW:
// global lines first, then one line per configuration command holding a
// "[i] values" block for every slot. The output decodes back to an equal
// configuration.
func Format(cfg *adcp.AdcpConfiguration) string {
	var b strings.Builder
	b.WriteString(StartMarker + "\n")
	for _, line := range cfg.Commands.CommandList() {
		b.WriteString(line + "\n")
	}
	slots := cfg.Configs()
	if len(slots) > 0 {
		for _, cmd := range adcp.SubsystemCommands() {
			if !cmd.Emitted() {
				continue
			}
			b.WriteString(cmd.String())
			for i, slot := range slots {
				if i > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "[%d] %s", slot.SubsystemConfig.ArrayIndex,
					strings.Join(slot.Commands.Values(cmd), ","))
			}
			b.WriteByte('\n')
		}
	}
	b.WriteString(EndMarker + "\n")
	return b.String()
}
