package adcp

import (
	"slices"
	"strconv"
	"strings"
)

// TransmitPulseType is the water profile transmit pulse (CWPBB mode).
type TransmitPulseType int

const (
	PulseNarrowband                    TransmitPulseType = 0
	PulseBroadband                     TransmitPulseType = 1
	PulseNonCodedBroadbandPulseToPulse TransmitPulseType = 2
	PulseBroadbandPulseToPulse         TransmitPulseType = 3
	PulseNonCodedBroadband             TransmitPulseType = 4

	DefaultTransmitPulseType = PulseBroadband
)

var pulseTokens = map[TransmitPulseType]string{
	PulseNarrowband:                    "NB",
	PulseBroadband:                     "BB",
	PulseNonCodedBroadbandPulseToPulse: "NCBBP2P",
	PulseBroadbandPulseToPulse:         "BBP2P",
	PulseNonCodedBroadband:             "NCBB",
}

// TransmitPulseTypes lists every defined variant in wire code order.
func TransmitPulseTypes() []TransmitPulseType {
	return []TransmitPulseType{
		PulseNarrowband,
		PulseBroadband,
		PulseNonCodedBroadbandPulseToPulse,
		PulseBroadbandPulseToPulse,
		PulseNonCodedBroadband,
	}
}

// Code returns the integer wire code.
func (p TransmitPulseType) Code() int { return int(p) }

// Token returns the short name, e.g. "BB".
func (p TransmitPulseType) Token() string {
	if t, ok := pulseTokens[p]; ok {
		return t
	}
	return pulseTokens[DefaultTransmitPulseType]
}

func (p TransmitPulseType) String() string { return p.Token() }

// TransmitPulseTypeFromCode maps a wire code onto a variant.
func TransmitPulseTypeFromCode(code int) (TransmitPulseType, bool) {
	p := TransmitPulseType(code)
	_, ok := pulseTokens[p]
	return p, ok
}

// ParseTransmitPulseType accepts a token or an integer wire code. Anything
// else yields DefaultTransmitPulseType.
func ParseTransmitPulseType(token string) TransmitPulseType {
	token = strings.ToUpper(strings.TrimSpace(token))
	for p, t := range pulseTokens {
		if t == token {
			return p
		}
	}
	if n, err := strconv.Atoi(token); err == nil {
		if p, ok := TransmitPulseTypeFromCode(n); ok {
			return p
		}
	}
	return DefaultTransmitPulseType
}

// BottomTrackMode is the bottom track broadband mode (CBTBB mode). Codes 3
// and 5 are reserved by the firmware.
type BottomTrackMode int

const (
	BTNarrowbandLongRange       BottomTrackMode = 0
	BTBroadbandCoded            BottomTrackMode = 1
	BTBroadbandNonCoded         BottomTrackMode = 2
	BTReserved3                 BottomTrackMode = 3
	BTBroadbandNonCodedP2P      BottomTrackMode = 4
	BTReserved5                 BottomTrackMode = 5
	BTAutoSwitchNarrowbandNC    BottomTrackMode = 6
	BTAutoSwitchNarrowbandNCP2P BottomTrackMode = 7

	DefaultBottomTrackMode = BTAutoSwitchNarrowbandNCP2P
)

var btModeTokens = map[BottomTrackMode]string{
	BTNarrowbandLongRange:       "NBLR",
	BTBroadbandCoded:            "BBC",
	BTBroadbandNonCoded:         "BBNC",
	BTReserved3:                 "NA3",
	BTBroadbandNonCodedP2P:      "BBNCP2P",
	BTReserved5:                 "NA5",
	BTAutoSwitchNarrowbandNC:    "AUTONC",
	BTAutoSwitchNarrowbandNCP2P: "AUTONCP2P",
}

// BottomTrackModes lists every defined code, reserved ones included.
func BottomTrackModes() []BottomTrackMode {
	return []BottomTrackMode{
		BTNarrowbandLongRange,
		BTBroadbandCoded,
		BTBroadbandNonCoded,
		BTReserved3,
		BTBroadbandNonCodedP2P,
		BTReserved5,
		BTAutoSwitchNarrowbandNC,
		BTAutoSwitchNarrowbandNCP2P,
	}
}

func (m BottomTrackMode) Code() int { return int(m) }

// IsReserved reports whether the code is unused by the firmware.
func (m BottomTrackMode) IsReserved() bool {
	return m == BTReserved3 || m == BTReserved5
}

func (m BottomTrackMode) Token() string {
	if t, ok := btModeTokens[m]; ok {
		return t
	}
	return btModeTokens[DefaultBottomTrackMode]
}

func (m BottomTrackMode) String() string { return m.Token() }

func BottomTrackModeFromCode(code int) (BottomTrackMode, bool) {
	m := BottomTrackMode(code)
	_, ok := btModeTokens[m]
	return m, ok
}

// ParseBottomTrackMode accepts a token or an integer wire code. Anything else
// yields DefaultBottomTrackMode.
func ParseBottomTrackMode(token string) BottomTrackMode {
	token = strings.ToUpper(strings.TrimSpace(token))
	for m, t := range btModeTokens {
		if t == token {
			return m
		}
	}
	if n, err := strconv.Atoi(token); err == nil {
		if m, ok := BottomTrackModeFromCode(n); ok {
			return m
		}
	}
	return DefaultBottomTrackMode
}

// OutputMode is the ensemble output format (CEOUTPUT).
type OutputMode int

const (
	OutputDisabled OutputMode = 0
	OutputBinary   OutputMode = 1
	OutputDVL      OutputMode = 2

	DefaultOutputMode = OutputBinary
)

func (o OutputMode) Valid() bool { return o >= OutputDisabled && o <= OutputDVL }

// HeadingSource selects where heading is taken from (CHS).
type HeadingSource int

const (
	HeadingInternal HeadingSource = 1
	HeadingSerial   HeadingSource = 2

	DefaultHeadingSource = HeadingInternal
)

func (h HeadingSource) Valid() bool { return h == HeadingInternal || h == HeadingSerial }

// Mode is the operating mode reported on the CSHOW "Mode" line.
type Mode int

const (
	ModeProfile Mode = iota
	ModeDVL

	DefaultMode = ModeProfile
)

func (m Mode) String() string {
	if m == ModeDVL {
		return "DVL"
	}
	return "Profile"
}

// ParseMode returns DefaultMode for unrecognized tokens.
func ParseMode(token string) Mode {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "DVL":
		return ModeDVL
	case "PROFILE":
		return ModeProfile
	default:
		return DefaultMode
	}
}

// BaudRates lists the serial rates the instrument accepts.
var BaudRates = []int{2400, 4800, 9600, 19200, 38400, 115200, 230400, 460800, 921600}

// ValidBaudRate reports whether rate is one of BaudRates.
func ValidBaudRate(rate int) bool {
	return slices.Contains(BaudRates, rate)
}
