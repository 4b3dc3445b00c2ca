package adcp

import (
	"fmt"
	"strings"
	"time"
)

// Global command ranges and defaults.
const (
	MinCWS     = 0.0
	MaxCWS     = 100.0
	DefaultCWS = 35.0

	MinCWT     = -5.0
	MaxCWT     = 50.0
	DefaultCWT = 15.0

	MinCTD     = 0.0
	MaxCTD     = 10000.0
	DefaultCTD = 0.0

	MinCWSS     = 1400.0
	MaxCWSS     = 1600.0
	DefaultCWSS = 1490.0

	MinCHO     = -180.0
	MaxCHO     = 180.0
	DefaultCHO = 0.0

	MinCVSF     = 0.8
	MaxCVSF     = 1.2
	DefaultCVSF = 1.0

	DefaultC232B = 115200
	DefaultC485B = 460800
	DefaultC422B = 460800

	// DefaultCEPO is a single 1.2 MHz configuration.
	DefaultCEPO = "2"

	// ceTFPLayout is the CETFP wire layout, YYYY/MM/DD,HH:MM:SS.hh.
	ceTFPLayout = "2006/01/02,15:04:05.00"
)

// DefaultCEI is one ensemble per second.
var DefaultCEI = NewTimeValue(0, 0, 1, 0)

// DefaultCETFP is the time of first ping used when none was decoded.
var DefaultCETFP = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// AdcpCommands is the validated store of the global, non-subsystem commands.
// It follows the same rules as AdcpSubsystemCommands: out of range values
// reset the field to its default.
type AdcpCommands struct {
	cepo string

	cei   TimeValue
	cetfp time.Time

	ceRecordEnsemblePing bool
	ceRecordSinglePing   bool
	ceOutput             OutputMode

	cws  float64
	cwt  float64
	ctd  float64
	cwss float64
	cho  float64
	chs  HeadingSource
	cvsf float64

	c232b int
	c485b int
	c422b int

	mode Mode
	sim  bool
}

// NewAdcpCommands returns a store holding every default.
func NewAdcpCommands() *AdcpCommands {
	c := &AdcpCommands{}
	c.SetDefaults()
	return c
}

// SetDefaults resets every global field.
func (c *AdcpCommands) SetDefaults() {
	*c = AdcpCommands{
		cepo:                 DefaultCEPO,
		cei:                  DefaultCEI,
		cetfp:                DefaultCETFP,
		ceRecordEnsemblePing: true,
		ceRecordSinglePing:   false,
		ceOutput:             DefaultOutputMode,
		cws:                  DefaultCWS,
		cwt:                  DefaultCWT,
		ctd:                  DefaultCTD,
		cwss:                 DefaultCWSS,
		cho:                  DefaultCHO,
		chs:                  DefaultHeadingSource,
		cvsf:                 DefaultCVSF,
		c232b:                DefaultC232B,
		c485b:                DefaultC485B,
		c422b:                DefaultC422B,
		mode:                 DefaultMode,
	}
}

// CEPO is the configuration order: one subsystem code per slot.
func (c *AdcpCommands) CEPO() string { return c.cepo }

// SetCEPO keeps only alphanumeric codes. An empty result is stored as is and
// means there are no configuration slots.
func (c *AdcpCommands) SetCEPO(cepo string) {
	var b strings.Builder
	for i := 0; i < len(cepo); i++ {
		if isAlnum(cepo[i : i+1]) {
			b.WriteByte(cepo[i])
		}
	}
	c.cepo = b.String()
}

// CEI is the ensemble interval.
func (c *AdcpCommands) CEI() TimeValue { return c.cei }
func (c *AdcpCommands) SetCEI(t TimeValue) {
	c.cei = NewTimeValue(t.Hour, t.Minute, t.Second, t.HSec)
}

// CETFP is the time of first ping.
func (c *AdcpCommands) CETFP() time.Time { return c.cetfp }
func (c *AdcpCommands) SetCETFP(t time.Time) {
	if t.IsZero() {
		t = DefaultCETFP
	}
	c.cetfp = t.Truncate(10 * time.Millisecond)
}

// ParseCETFP reads YYYY/MM/DD,HH:MM:SS.hh. It reports false on malformed
// input.
func ParseCETFP(s string) (time.Time, bool) {
	t, err := time.Parse(ceTFPLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (c *AdcpCommands) CERecordEnsemblePing() bool     { return c.ceRecordEnsemblePing }
func (c *AdcpCommands) SetCERecordEnsemblePing(b bool) { c.ceRecordEnsemblePing = b }
func (c *AdcpCommands) CERecordSinglePing() bool       { return c.ceRecordSinglePing }
func (c *AdcpCommands) SetCERecordSinglePing(b bool)   { c.ceRecordSinglePing = b }

func (c *AdcpCommands) CEOutput() OutputMode { return c.ceOutput }
func (c *AdcpCommands) SetCEOutput(o OutputMode) {
	if !o.Valid() {
		o = DefaultOutputMode
	}
	c.ceOutput = o
}

// CWS is the salinity in ppt.
func (c *AdcpCommands) CWS() float64     { return c.cws }
func (c *AdcpCommands) SetCWS(v float64) { c.cws = boundFloat(v, MinCWS, MaxCWS, DefaultCWS) }

// CWT is the water temperature in degrees C.
func (c *AdcpCommands) CWT() float64     { return c.cwt }
func (c *AdcpCommands) SetCWT(v float64) { c.cwt = boundFloat(v, MinCWT, MaxCWT, DefaultCWT) }

// CTD is the transducer depth in meters.
func (c *AdcpCommands) CTD() float64     { return c.ctd }
func (c *AdcpCommands) SetCTD(v float64) { c.ctd = boundFloat(v, MinCTD, MaxCTD, DefaultCTD) }

// CWSS is the speed of sound in m/s.
func (c *AdcpCommands) CWSS() float64     { return c.cwss }
func (c *AdcpCommands) SetCWSS(v float64) { c.cwss = boundFloat(v, MinCWSS, MaxCWSS, DefaultCWSS) }

// CHO is the heading offset in degrees.
func (c *AdcpCommands) CHO() float64     { return c.cho }
func (c *AdcpCommands) SetCHO(v float64) { c.cho = boundFloat(v, MinCHO, MaxCHO, DefaultCHO) }

func (c *AdcpCommands) CHS() HeadingSource { return c.chs }
func (c *AdcpCommands) SetCHS(h HeadingSource) {
	if !h.Valid() {
		h = DefaultHeadingSource
	}
	c.chs = h
}

// CVSF is the velocity scale factor.
func (c *AdcpCommands) CVSF() float64     { return c.cvsf }
func (c *AdcpCommands) SetCVSF(v float64) { c.cvsf = boundFloat(v, MinCVSF, MaxCVSF, DefaultCVSF) }

func (c *AdcpCommands) C232B() int { return c.c232b }
func (c *AdcpCommands) SetC232B(b int) {
	c.c232b = boundBaud(b, DefaultC232B)
}

func (c *AdcpCommands) C485B() int { return c.c485b }
func (c *AdcpCommands) SetC485B(b int) {
	c.c485b = boundBaud(b, DefaultC485B)
}

func (c *AdcpCommands) C422B() int { return c.c422b }
func (c *AdcpCommands) SetC422B(b int) {
	c.c422b = boundBaud(b, DefaultC422B)
}

func boundBaud(b, def int) int {
	if ValidBaudRate(b) {
		return b
	}
	return def
}

func (c *AdcpCommands) Mode() Mode { return c.mode }
func (c *AdcpCommands) SetMode(m Mode) {
	if m != ModeProfile && m != ModeDVL {
		m = DefaultMode
	}
	c.mode = m
}

// Sim reports whether the instrument is running its simulator.
func (c *AdcpCommands) Sim() bool     { return c.sim }
func (c *AdcpCommands) SetSim(b bool) { c.sim = b }

type globalCodec struct {
	decode func(c *AdcpCommands, v Values)
	encode func(c *AdcpCommands) []string
}

var globalCodecs = map[Command]globalCodec{
	CmdCEPO: {
		decode: func(c *AdcpCommands, v Values) { c.SetCEPO(v.Str(0)) },
		encode: func(c *AdcpCommands) []string { return []string{c.cepo} },
	},
	CmdCEI: {
		decode: func(c *AdcpCommands, v Values) {
			t, ok := ParseTimeValue(v.Str(0))
			if !ok {
				t = DefaultCEI
			}
			c.SetCEI(t)
		},
		encode: func(c *AdcpCommands) []string { return []string{c.cei.String()} },
	},
	CmdCETFP: {
		decode: func(c *AdcpCommands, v Values) {
			// The date and time are separated by the same comma that
			// separates values.
			t, _ := ParseCETFP(strings.Join(v, ","))
			c.SetCETFP(t)
		},
		encode: func(c *AdcpCommands) []string { return []string{c.cetfp.Format(ceTFPLayout)} },
	},
	CmdCERECORD: {
		decode: func(c *AdcpCommands, v Values) {
			c.SetCERecordEnsemblePing(v.Bool(0, true))
			c.SetCERecordSinglePing(v.Bool(1, false))
		},
		encode: func(c *AdcpCommands) []string {
			return []string{formatBool(c.ceRecordEnsemblePing), formatBool(c.ceRecordSinglePing)}
		},
	},
	CmdCEOUTPUT: {
		decode: func(c *AdcpCommands, v Values) { c.SetCEOutput(OutputMode(v.Int(0))) },
		encode: func(c *AdcpCommands) []string { return []string{fmt.Sprint(int(c.ceOutput))} },
	},
	CmdCWS: {
		decode: func(c *AdcpCommands, v Values) { c.SetCWS(v.Float(0)) },
		encode: func(c *AdcpCommands) []string { return []string{formatFloat(c.cws)} },
	},
	CmdCWT: {
		decode: func(c *AdcpCommands, v Values) { c.SetCWT(v.Float(0)) },
		encode: func(c *AdcpCommands) []string { return []string{formatFloat(c.cwt)} },
	},
	CmdCTD: {
		decode: func(c *AdcpCommands, v Values) { c.SetCTD(v.Float(0)) },
		encode: func(c *AdcpCommands) []string { return []string{formatFloat(c.ctd)} },
	},
	CmdCWSS: {
		decode: func(c *AdcpCommands, v Values) { c.SetCWSS(v.Float(0)) },
		encode: func(c *AdcpCommands) []string { return []string{formatFloat(c.cwss)} },
	},
	CmdCHO: {
		decode: func(c *AdcpCommands, v Values) { c.SetCHO(v.Float(0)) },
		encode: func(c *AdcpCommands) []string { return []string{formatFloat(c.cho)} },
	},
	CmdCHS: {
		decode: func(c *AdcpCommands, v Values) { c.SetCHS(HeadingSource(v.Int(0))) },
		encode: func(c *AdcpCommands) []string { return []string{fmt.Sprint(int(c.chs))} },
	},
	CmdCVSF: {
		decode: func(c *AdcpCommands, v Values) { c.SetCVSF(v.Float(0)) },
		encode: func(c *AdcpCommands) []string { return []string{formatFloat(c.cvsf)} },
	},
	CmdC232B: {
		decode: func(c *AdcpCommands, v Values) { c.SetC232B(v.Int(0)) },
		encode: func(c *AdcpCommands) []string { return []string{fmt.Sprint(c.c232b)} },
	},
	CmdC485B: {
		decode: func(c *AdcpCommands, v Values) { c.SetC485B(v.Int(0)) },
		encode: func(c *AdcpCommands) []string { return []string{fmt.Sprint(c.c485b)} },
	},
	CmdC422B: {
		decode: func(c *AdcpCommands, v Values) { c.SetC422B(v.Int(0)) },
		encode: func(c *AdcpCommands) []string { return []string{fmt.Sprint(c.c422b)} },
	},
	CmdMode: {
		decode: func(c *AdcpCommands, v Values) { c.SetMode(ParseMode(v.Str(0))) },
		encode: func(c *AdcpCommands) []string { return []string{c.mode.String()} },
	},
	CmdSim: {
		decode: func(c *AdcpCommands, v Values) { c.SetSim(v.Bool(0, false)) },
		encode: func(c *AdcpCommands) []string { return []string{formatBool(c.sim)} },
	},
}

// Decode writes the values of a global command line. It reports false for
// per-configuration commands.
func (c *AdcpCommands) Decode(cmd Command, v Values) bool {
	codec, ok := globalCodecs[cmd]
	if !ok {
		return false
	}
	codec.decode(c, v)
	return true
}

// Values renders the current values of a global command.
func (c *AdcpCommands) Values(cmd Command) []string {
	codec, ok := globalCodecs[cmd]
	if !ok {
		return nil
	}
	return codec.encode(c)
}

// CommandString renders one global line, e.g. "CWSS 1490".
func (c *AdcpCommands) CommandString(cmd Command) string {
	vals := c.Values(cmd)
	if vals == nil {
		return ""
	}
	return cmd.String() + " " + strings.Join(vals, ",")
}

// CommandList renders every emitted global command in wire order.
func (c *AdcpCommands) CommandList() []string {
	var out []string
	for _, cmd := range GlobalCommands() {
		if cmd.Emitted() {
			out = append(out, c.CommandString(cmd))
		}
	}
	return out
}

func (c *AdcpCommands) String() string {
	return strings.Join(c.CommandList(), "\n")
}
