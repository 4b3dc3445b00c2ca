// Package adcp models the configuration command set of a multi-frequency
// acoustic Doppler current profiler: subsystem identity, serial numbers and
// the validated per-configuration and global command stores.
//
// Every setter in this package is total. A value that falls outside a
// field's range is replaced by that field's default rather than reported as
// an error, so data decoded from a partial or slightly malformed CSHOW dump
// still produces a usable configuration.
package adcp

import (
	"cmp"
	"fmt"
)

// FrequencyClass selects the default profile used by a subsystem.
type FrequencyClass int

const (
	FreqUnknown FrequencyClass = iota
	Freq2MHz
	Freq1200kHz
	Freq600kHz
	Freq300kHz
	Freq150kHz
	Freq75kHz
	Freq38kHz
	Freq20kHz
)

func (f FrequencyClass) String() string {
	switch f {
	case Freq2MHz:
		return "2 MHz"
	case Freq1200kHz:
		return "1.2 MHz"
	case Freq600kHz:
		return "600 kHz"
	case Freq300kHz:
		return "300 kHz"
	case Freq150kHz:
		return "150 kHz"
	case Freq75kHz:
		return "75 kHz"
	case Freq38kHz:
		return "38 kHz"
	case Freq20kHz:
		return "20 kHz"
	default:
		return "Unknown"
	}
}

// EmptyCode marks an unused slot in a serial number.
const EmptyCode byte = '0'

type codeInfo struct {
	class    FrequencyClass
	geometry string
}

const (
	geomPiston   = "4 beam 20 degree piston"
	geomOffset   = "4 beam 20 degree piston 45 degree heading offset"
	geomVertical = "vertical piston"
	descUnknown  = "Unknown"
	descEmpty    = "Empty"
)

var codeTable = map[byte]codeInfo{
	'1': {Freq2MHz, geomPiston},
	'2': {Freq1200kHz, geomPiston},
	'3': {Freq600kHz, geomPiston},
	'4': {Freq300kHz, geomPiston},
	'5': {Freq2MHz, geomOffset},
	'6': {Freq1200kHz, geomOffset},
	'7': {Freq600kHz, geomOffset},
	'8': {Freq300kHz, geomOffset},
	'9': {Freq2MHz, geomVertical},
	'A': {Freq1200kHz, geomVertical},
	'B': {Freq600kHz, geomVertical},
	'C': {Freq300kHz, geomVertical},
	'D': {Freq150kHz, geomPiston},
	'E': {Freq75kHz, geomPiston},
	'F': {Freq38kHz, geomPiston},
	'G': {Freq20kHz, geomPiston},
	'H': {Freq150kHz, geomOffset},
	'I': {Freq75kHz, geomOffset},
	'J': {Freq38kHz, geomOffset},
	'K': {Freq20kHz, geomOffset},
	'L': {Freq150kHz, geomVertical},
	'M': {Freq75kHz, geomVertical},
	'N': {Freq38kHz, geomVertical},
	'O': {Freq20kHz, geomVertical},
}

// IsKnownCode reports whether code appears in the subsystem code table.
func IsKnownCode(code byte) bool {
	_, ok := codeTable[code]
	return ok
}

// Subsystem identifies one physical acoustic sub-array. Index is the
// position of the sub-array in the serial number's subsystem list, which
// keeps repeated codes distinct.
type Subsystem struct {
	Code  byte `json:"code"`
	Index int  `json:"index"`
}

// NewSubsystem never fails; unknown codes describe as "Unknown".
func NewSubsystem(code byte, index int) Subsystem {
	return Subsystem{Code: code, Index: index}
}

// IsEmpty reports whether the subsystem is the empty placeholder code.
func (s Subsystem) IsEmpty() bool { return s.Code == EmptyCode }

// FrequencyClass returns the default profile class of the subsystem code.
func (s Subsystem) FrequencyClass() FrequencyClass {
	return codeTable[s.Code].class
}

// Description returns the human readable frequency and geometry of the code,
// e.g. "1.2 MHz 4 beam 20 degree piston".
func (s Subsystem) Description() string {
	if s.IsEmpty() {
		return descEmpty
	}
	info, ok := codeTable[s.Code]
	if !ok {
		return descUnknown
	}
	return info.class.String() + " " + info.geometry
}

// Compare orders subsystems by code then index.
func (s Subsystem) Compare(other Subsystem) int {
	if c := cmp.Compare(s.Code, other.Code); c != 0 {
		return c
	}
	return cmp.Compare(s.Index, other.Index)
}

func (s Subsystem) String() string {
	return fmt.Sprintf("%c_%d", s.Code, s.Index)
}
