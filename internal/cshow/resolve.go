package cshow

import "github.com/banshee-data/adcp-config/internal/adcp"

// ResolveSlots maps every CEPO position onto a physical subsystem of the
// serial number.
//
// Position i with code c is the k-th use of c in the CEPO string. It takes
// the k-th subsystem of the serial number carrying c. A CEPO string may use
// a subsystem more often than the serial number lists it (several ping
// rates on one transducer); those positions reuse the last matching
// subsystem. A code the serial number does not carry at all resolves to
// Subsystem{c, 0}.
func ResolveSlots(cepo string, sn adcp.SerialNumber) []adcp.SubsystemConfiguration {
	out := make([]adcp.SubsystemConfiguration, 0, len(cepo))
	seen := make(map[byte]int)
	for i := 0; i < len(cepo); i++ {
		code := cepo[i]
		k := seen[code]
		seen[code]++
		out = append(out, adcp.NewSubsystemConfiguration(resolveSubsystem(sn, code, k), i))
	}
	return out
}

func resolveSubsystem(sn adcp.SerialNumber, code byte, k int) adcp.Subsystem {
	candidates := sn.SubsystemsWithCode(code)
	switch {
	case len(candidates) == 0:
		return adcp.NewSubsystem(code, 0)
	case k < len(candidates):
		return candidates[k]
	default:
		return candidates[len(candidates)-1]
	}
}
