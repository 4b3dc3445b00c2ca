package adcp

import (
	"fmt"
	"strings"
)

// AdcpSubsystemCommands is the validated command store of one configuration
// slot. Every field is written through a setter that enforces the field's
// range; an out-of-range value resets the field to the slot's frequency
// class default instead of being clamped.
//
// The zero value is not usable; build one with NewAdcpSubsystemCommands.
// Copying the struct copies all state.
type AdcpSubsystemCommands struct {
	ssConfig SubsystemConfiguration
	def      SubsystemParams
	cur      SubsystemParams
}

// NewAdcpSubsystemCommands seeds every field with the defaults of the
// subsystem's frequency class.
func NewAdcpSubsystemCommands(ssConfig SubsystemConfiguration) *AdcpSubsystemCommands {
	def := DefaultsFor(ssConfig.Subsystem.FrequencyClass())
	return &AdcpSubsystemCommands{ssConfig: ssConfig, def: def, cur: def}
}

// SubsystemConfig returns the slot the commands belong to.
func (c *AdcpSubsystemCommands) SubsystemConfig() SubsystemConfiguration { return c.ssConfig }

// Defaults returns the frequency class defaults used for resets.
func (c *AdcpSubsystemCommands) Defaults() SubsystemParams { return c.def }

// Params returns a snapshot of every current value.
func (c *AdcpSubsystemCommands) Params() SubsystemParams { return c.cur }

// SetDefaults resets every field to its frequency class default.
func (c *AdcpSubsystemCommands) SetDefaults() { c.cur = c.def }

// Water profile

func (c *AdcpSubsystemCommands) CWPON() bool      { return c.cur.CWPON }
func (c *AdcpSubsystemCommands) SetCWPON(on bool) { c.cur.CWPON = on }

func (c *AdcpSubsystemCommands) CWPBBTransmitPulseType() TransmitPulseType {
	return c.cur.CWPBBTransmitPulseType
}

// SetCWPBBTransmitPulseType resets to the default for an undefined code.
func (c *AdcpSubsystemCommands) SetCWPBBTransmitPulseType(p TransmitPulseType) {
	if _, ok := TransmitPulseTypeFromCode(int(p)); !ok {
		p = c.def.CWPBBTransmitPulseType
	}
	c.cur.CWPBBTransmitPulseType = p
}

// SetCWPBBTransmitPulseTypeToken parses a token or wire code; an unknown
// token resets the field to its default.
func (c *AdcpSubsystemCommands) SetCWPBBTransmitPulseTypeToken(token string) {
	c.cur.CWPBBTransmitPulseType = ParseTransmitPulseType(token)
}

func (c *AdcpSubsystemCommands) CWPBBLagLength() float64 { return c.cur.CWPBBLagLength }
func (c *AdcpSubsystemCommands) SetCWPBBLagLength(v float64) {
	c.cur.CWPBBLagLength = boundFloat(v, MinCWPBBLagLength, MaxCWPBBLagLength, c.def.CWPBBLagLength)
}

func (c *AdcpSubsystemCommands) CWPAPNumPingsAvg() uint32 { return c.cur.CWPAPNumPingsAvg }

// SetCWPAPNumPingsAvg accepts 0, which disables adaptive ping averaging.
// Only values above the maximum reset the field.
func (c *AdcpSubsystemCommands) SetCWPAPNumPingsAvg(n uint32) {
	if n > MaxCWPAPNumPingsAvg {
		n = c.def.CWPAPNumPingsAvg
	}
	c.cur.CWPAPNumPingsAvg = n
}

func (c *AdcpSubsystemCommands) CWPAPLag() float64 { return c.cur.CWPAPLag }
func (c *AdcpSubsystemCommands) SetCWPAPLag(v float64) {
	c.cur.CWPAPLag = boundFloat(v, MinCWPAPLag, MaxCWPAPLag, c.def.CWPAPLag)
}

func (c *AdcpSubsystemCommands) CWPAPBlank() float64 { return c.cur.CWPAPBlank }
func (c *AdcpSubsystemCommands) SetCWPAPBlank(v float64) {
	c.cur.CWPAPBlank = boundFloat(v, MinCWPAPBlank, MaxCWPAPBlank, c.def.CWPAPBlank)
}

func (c *AdcpSubsystemCommands) CWPAPBinSize() float64 { return c.cur.CWPAPBinSize }
func (c *AdcpSubsystemCommands) SetCWPAPBinSize(v float64) {
	c.cur.CWPAPBinSize = boundFloat(v, MinCWPAPBinSize, MaxCWPAPBinSize, c.def.CWPAPBinSize)
}

func (c *AdcpSubsystemCommands) CWPAPStepSize() float64 { return c.cur.CWPAPStepSize }
func (c *AdcpSubsystemCommands) SetCWPAPStepSize(v float64) {
	c.cur.CWPAPStepSize = boundFloat(v, MinCWPAPStepSize, MaxCWPAPStepSize, c.def.CWPAPStepSize)
}

func (c *AdcpSubsystemCommands) CWPSTCorrelationThresh() float64 {
	return c.cur.CWPSTCorrelationThresh
}
func (c *AdcpSubsystemCommands) SetCWPSTCorrelationThresh(v float64) {
	c.cur.CWPSTCorrelationThresh = boundFloat(v, MinCorrelationThresh, MaxCorrelationThresh, c.def.CWPSTCorrelationThresh)
}

func (c *AdcpSubsystemCommands) CWPSTQVelocityThresh() float64 { return c.cur.CWPSTQVelocityThresh }
func (c *AdcpSubsystemCommands) SetCWPSTQVelocityThresh(v float64) {
	c.cur.CWPSTQVelocityThresh = boundFloat(v, MinVelocityThresh, MaxVelocityThresh, c.def.CWPSTQVelocityThresh)
}

func (c *AdcpSubsystemCommands) CWPSTVVelocityThresh() float64 { return c.cur.CWPSTVVelocityThresh }
func (c *AdcpSubsystemCommands) SetCWPSTVVelocityThresh(v float64) {
	c.cur.CWPSTVVelocityThresh = boundFloat(v, MinVelocityThresh, MaxVelocityThresh, c.def.CWPSTVVelocityThresh)
}

// CWPBL is the profile blank in meters.
func (c *AdcpSubsystemCommands) CWPBL() float64 { return c.cur.CWPBL }
func (c *AdcpSubsystemCommands) SetCWPBL(v float64) {
	c.cur.CWPBL = boundFloat(v, MinCWPBL, MaxCWPBL, c.def.CWPBL)
}

// CWPBS is the profile bin size in meters.
func (c *AdcpSubsystemCommands) CWPBS() float64 { return c.cur.CWPBS }
func (c *AdcpSubsystemCommands) SetCWPBS(v float64) {
	c.cur.CWPBS = boundFloat(v, MinCWPBS, MaxCWPBS, c.def.CWPBS)
}

func (c *AdcpSubsystemCommands) CWPX() float64 { return c.cur.CWPX }
func (c *AdcpSubsystemCommands) SetCWPX(v float64) {
	c.cur.CWPX = boundFloat(v, MinCWPX, MaxCWPX, c.def.CWPX)
}

// CWPBN is the number of profile bins.
func (c *AdcpSubsystemCommands) CWPBN() uint32 { return c.cur.CWPBN }
func (c *AdcpSubsystemCommands) SetCWPBN(n uint32) {
	c.cur.CWPBN = boundUint(n, MinCWPBN, MaxCWPBN, c.def.CWPBN)
}

// CWPP is the number of pings averaged per ensemble.
func (c *AdcpSubsystemCommands) CWPP() uint32 { return c.cur.CWPP }
func (c *AdcpSubsystemCommands) SetCWPP(n uint32) {
	c.cur.CWPP = boundUint(n, MinCWPP, MaxCWPP, c.def.CWPP)
}

func (c *AdcpSubsystemCommands) CWPBPBasePings() uint32 { return c.cur.CWPBPBasePings }
func (c *AdcpSubsystemCommands) SetCWPBPBasePings(n uint32) {
	c.cur.CWPBPBasePings = boundUint(n, MinCWPBPBasePings, MaxCWPBPBasePings, c.def.CWPBPBasePings)
}

func (c *AdcpSubsystemCommands) CWPBPTimeBetweenBasePings() float64 {
	return c.cur.CWPBPTimeBetweenBasePings
}
func (c *AdcpSubsystemCommands) SetCWPBPTimeBetweenBasePings(v float64) {
	c.cur.CWPBPTimeBetweenBasePings = boundFloat(v, MinCWPBPTimeBetweenBasePings, MaxCWPBPTimeBetweenBasePings, c.def.CWPBPTimeBetweenBasePings)
}

// CWPAI is the profile averaging interval.
func (c *AdcpSubsystemCommands) CWPAI() TimeValue { return c.cur.CWPAI }
func (c *AdcpSubsystemCommands) SetCWPAI(t TimeValue) {
	c.cur.CWPAI = NewTimeValue(t.Hour, t.Minute, t.Second, t.HSec)
}

// CWPTBP is the time between profile pings in seconds.
func (c *AdcpSubsystemCommands) CWPTBP() float64 { return c.cur.CWPTBP }
func (c *AdcpSubsystemCommands) SetCWPTBP(v float64) {
	c.cur.CWPTBP = boundFloat(v, MinTimeBetweenPings, MaxTimeBetweenPings, c.def.CWPTBP)
}

// Burst

func (c *AdcpSubsystemCommands) CBIBurstInterval() TimeValue { return c.cur.CBIBurstInterval }
func (c *AdcpSubsystemCommands) SetCBIBurstInterval(t TimeValue) {
	c.cur.CBIBurstInterval = NewTimeValue(t.Hour, t.Minute, t.Second, t.HSec)
}

func (c *AdcpSubsystemCommands) CBINumEnsembles() uint32 { return c.cur.CBINumEnsembles }
func (c *AdcpSubsystemCommands) SetCBINumEnsembles(n uint32) {
	c.cur.CBINumEnsembles = boundUint(n, MinCBINumEnsembles, MaxCBINumEnsembles, c.def.CBINumEnsembles)
}

// Bottom track

func (c *AdcpSubsystemCommands) CBTON() bool      { return c.cur.CBTON }
func (c *AdcpSubsystemCommands) SetCBTON(on bool) { c.cur.CBTON = on }

func (c *AdcpSubsystemCommands) CBTBBMode() BottomTrackMode { return c.cur.CBTBBMode }

// SetCBTBBMode resets to the default for an undefined code. Reserved codes
// are defined and kept.
func (c *AdcpSubsystemCommands) SetCBTBBMode(m BottomTrackMode) {
	if _, ok := BottomTrackModeFromCode(int(m)); !ok {
		m = c.def.CBTBBMode
	}
	c.cur.CBTBBMode = m
}

func (c *AdcpSubsystemCommands) SetCBTBBModeToken(token string) {
	c.cur.CBTBBMode = ParseBottomTrackMode(token)
}

func (c *AdcpSubsystemCommands) CBTBBPulseToPulseLag() float64 { return c.cur.CBTBBPulseToPulseLag }
func (c *AdcpSubsystemCommands) SetCBTBBPulseToPulseLag(v float64) {
	c.cur.CBTBBPulseToPulseLag = boundFloat(v, MinCBTBBPulseToPulseLag, MaxCBTBBPulseToPulseLag, c.def.CBTBBPulseToPulseLag)
}

func (c *AdcpSubsystemCommands) CBTSTCorrelationThresh() float64 {
	return c.cur.CBTSTCorrelationThresh
}
func (c *AdcpSubsystemCommands) SetCBTSTCorrelationThresh(v float64) {
	c.cur.CBTSTCorrelationThresh = boundFloat(v, MinCorrelationThresh, MaxCorrelationThresh, c.def.CBTSTCorrelationThresh)
}

func (c *AdcpSubsystemCommands) CBTSTQVelocityThresh() float64 { return c.cur.CBTSTQVelocityThresh }
func (c *AdcpSubsystemCommands) SetCBTSTQVelocityThresh(v float64) {
	c.cur.CBTSTQVelocityThresh = boundFloat(v, MinVelocityThresh, MaxVelocityThresh, c.def.CBTSTQVelocityThresh)
}

func (c *AdcpSubsystemCommands) CBTSTVVelocityThresh() float64 { return c.cur.CBTSTVVelocityThresh }
func (c *AdcpSubsystemCommands) SetCBTSTVVelocityThresh(v float64) {
	c.cur.CBTSTVVelocityThresh = boundFloat(v, MinVelocityThresh, MaxVelocityThresh, c.def.CBTSTVVelocityThresh)
}

func (c *AdcpSubsystemCommands) CBTBL() float64 { return c.cur.CBTBL }
func (c *AdcpSubsystemCommands) SetCBTBL(v float64) {
	c.cur.CBTBL = boundFloat(v, MinCBTBL, MaxCBTBL, c.def.CBTBL)
}

// CBTMX is the bottom track maximum depth in meters.
func (c *AdcpSubsystemCommands) CBTMX() float64 { return c.cur.CBTMX }
func (c *AdcpSubsystemCommands) SetCBTMX(v float64) {
	c.cur.CBTMX = boundFloat(v, MinCBTMX, MaxCBTMX, c.def.CBTMX)
}

func (c *AdcpSubsystemCommands) CBTTBP() float64 { return c.cur.CBTTBP }
func (c *AdcpSubsystemCommands) SetCBTTBP(v float64) {
	c.cur.CBTTBP = boundFloat(v, MinTimeBetweenPings, MaxTimeBetweenPings, c.def.CBTTBP)
}

func (c *AdcpSubsystemCommands) CBTTSNRShallow() float64 { return c.cur.CBTTSNRShallow }
func (c *AdcpSubsystemCommands) SetCBTTSNRShallow(v float64) {
	c.cur.CBTTSNRShallow = boundFloat(v, MinSNR, MaxSNR, c.def.CBTTSNRShallow)
}

func (c *AdcpSubsystemCommands) CBTTDepthSNR() float64 { return c.cur.CBTTDepthSNR }
func (c *AdcpSubsystemCommands) SetCBTTDepthSNR(v float64) {
	c.cur.CBTTDepthSNR = boundFloat(v, MinCBTTDepth, MaxCBTTDepth, c.def.CBTTDepthSNR)
}

func (c *AdcpSubsystemCommands) CBTTSNRDeep() float64 { return c.cur.CBTTSNRDeep }
func (c *AdcpSubsystemCommands) SetCBTTSNRDeep(v float64) {
	c.cur.CBTTSNRDeep = boundFloat(v, MinSNR, MaxSNR, c.def.CBTTSNRDeep)
}

func (c *AdcpSubsystemCommands) CBTTDepthGain() float64 { return c.cur.CBTTDepthGain }
func (c *AdcpSubsystemCommands) SetCBTTDepthGain(v float64) {
	c.cur.CBTTDepthGain = boundFloat(v, MinCBTTDepth, MaxCBTTDepth, c.def.CBTTDepthGain)
}

// CBTLR is the long range bottom track maximum depth. The current protocol
// no longer accepts it, so it is left out of CommandList.
func (c *AdcpSubsystemCommands) CBTLR() float64 { return c.cur.CBTLR }
func (c *AdcpSubsystemCommands) SetCBTLR(v float64) {
	c.cur.CBTLR = boundFloat(v, MinCBTLR, MaxCBTLR, c.def.CBTLR)
}

// Water track

func (c *AdcpSubsystemCommands) CWTON() bool      { return c.cur.CWTON }
func (c *AdcpSubsystemCommands) SetCWTON(on bool) { c.cur.CWTON = on }

func (c *AdcpSubsystemCommands) CWTBB() bool      { return c.cur.CWTBB }
func (c *AdcpSubsystemCommands) SetCWTBB(on bool) { c.cur.CWTBB = on }

func (c *AdcpSubsystemCommands) CWTBL() float64 { return c.cur.CWTBL }
func (c *AdcpSubsystemCommands) SetCWTBL(v float64) {
	c.cur.CWTBL = boundFloat(v, MinCWTBL, MaxCWTBL, c.def.CWTBL)
}

func (c *AdcpSubsystemCommands) CWTBS() float64 { return c.cur.CWTBS }
func (c *AdcpSubsystemCommands) SetCWTBS(v float64) {
	c.cur.CWTBS = boundFloat(v, MinCWTBS, MaxCWTBS, c.def.CWTBS)
}

func (c *AdcpSubsystemCommands) CWTTBP() float64 { return c.cur.CWTTBP }
func (c *AdcpSubsystemCommands) SetCWTTBP(v float64) {
	c.cur.CWTTBP = boundFloat(v, MinTimeBetweenPings, MaxTimeBetweenPings, c.def.CWTTBP)
}

// subsystemCodec binds a command name to the setters that decode its block
// and the getters that render it.
type subsystemCodec struct {
	decode func(c *AdcpSubsystemCommands, v Values)
	encode func(c *AdcpSubsystemCommands) []string
}

func setTime(v Values, def TimeValue, set func(TimeValue)) {
	t, ok := ParseTimeValue(v.Str(0))
	if !ok {
		t = def
	}
	set(t)
}

var subsystemCodecs = [firstGlobalCommand]subsystemCodec{
	CmdCWPON: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCWPON(v.Bool(0, c.def.CWPON)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatBool(c.cur.CWPON)} },
	},
	CmdCWPBB: {
		decode: func(c *AdcpSubsystemCommands, v Values) {
			c.SetCWPBBTransmitPulseTypeToken(v.Str(0))
			c.SetCWPBBLagLength(v.Float(1))
		},
		encode: func(c *AdcpSubsystemCommands) []string {
			return []string{fmt.Sprint(c.cur.CWPBBTransmitPulseType.Code()), formatFloat(c.cur.CWPBBLagLength)}
		},
	},
	CmdCWPAP: {
		decode: func(c *AdcpSubsystemCommands, v Values) {
			c.SetCWPAPNumPingsAvg(v.Uint(0))
			c.SetCWPAPLag(v.Float(1))
			c.SetCWPAPBlank(v.Float(2))
			c.SetCWPAPBinSize(v.Float(3))
			c.SetCWPAPStepSize(v.Float(4))
		},
		encode: func(c *AdcpSubsystemCommands) []string {
			return []string{
				formatUint(c.cur.CWPAPNumPingsAvg),
				formatFloat(c.cur.CWPAPLag),
				formatFloat(c.cur.CWPAPBlank),
				formatFloat(c.cur.CWPAPBinSize),
				formatFloat(c.cur.CWPAPStepSize),
			}
		},
	},
	CmdCWPST: {
		decode: func(c *AdcpSubsystemCommands, v Values) {
			c.SetCWPSTCorrelationThresh(v.Float(0))
			c.SetCWPSTQVelocityThresh(v.Float(1))
			c.SetCWPSTVVelocityThresh(v.Float(2))
		},
		encode: func(c *AdcpSubsystemCommands) []string {
			return []string{
				formatFloat(c.cur.CWPSTCorrelationThresh),
				formatFloat(c.cur.CWPSTQVelocityThresh),
				formatFloat(c.cur.CWPSTVVelocityThresh),
			}
		},
	},
	CmdCWPBL: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCWPBL(v.Float(0)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatFloat(c.cur.CWPBL)} },
	},
	CmdCWPBS: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCWPBS(v.Float(0)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatFloat(c.cur.CWPBS)} },
	},
	CmdCWPX: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCWPX(v.Float(0)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatFloat(c.cur.CWPX)} },
	},
	CmdCWPBN: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCWPBN(v.Uint(0)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatUint(c.cur.CWPBN)} },
	},
	CmdCWPP: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCWPP(v.Uint(0)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatUint(c.cur.CWPP)} },
	},
	CmdCWPBP: {
		decode: func(c *AdcpSubsystemCommands, v Values) {
			c.SetCWPBPBasePings(v.Uint(0))
			c.SetCWPBPTimeBetweenBasePings(v.Float(1))
		},
		encode: func(c *AdcpSubsystemCommands) []string {
			return []string{formatUint(c.cur.CWPBPBasePings), formatFloat(c.cur.CWPBPTimeBetweenBasePings)}
		},
	},
	CmdCWPAI: {
		decode: func(c *AdcpSubsystemCommands, v Values) { setTime(v, c.def.CWPAI, c.SetCWPAI) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{c.cur.CWPAI.String()} },
	},
	CmdCWPTBP: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCWPTBP(v.Float(0)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatFloat(c.cur.CWPTBP)} },
	},
	CmdCBI: {
		decode: func(c *AdcpSubsystemCommands, v Values) {
			setTime(v, c.def.CBIBurstInterval, c.SetCBIBurstInterval)
			c.SetCBINumEnsembles(v.Uint(1))
		},
		encode: func(c *AdcpSubsystemCommands) []string {
			return []string{c.cur.CBIBurstInterval.String(), formatUint(c.cur.CBINumEnsembles)}
		},
	},
	CmdCBTON: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCBTON(v.Bool(0, c.def.CBTON)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatBool(c.cur.CBTON)} },
	},
	CmdCBTBB: {
		decode: func(c *AdcpSubsystemCommands, v Values) {
			c.SetCBTBBModeToken(v.Str(0))
			c.SetCBTBBPulseToPulseLag(v.Float(1))
			// Older firmware reports the long range depth as a third value.
			if len(v) > 2 {
				c.SetCBTLR(v.Float(2))
			}
		},
		encode: func(c *AdcpSubsystemCommands) []string {
			return []string{fmt.Sprint(c.cur.CBTBBMode.Code()), formatFloat(c.cur.CBTBBPulseToPulseLag)}
		},
	},
	CmdCBTST: {
		decode: func(c *AdcpSubsystemCommands, v Values) {
			c.SetCBTSTCorrelationThresh(v.Float(0))
			c.SetCBTSTQVelocityThresh(v.Float(1))
			c.SetCBTSTVVelocityThresh(v.Float(2))
		},
		encode: func(c *AdcpSubsystemCommands) []string {
			return []string{
				formatFloat(c.cur.CBTSTCorrelationThresh),
				formatFloat(c.cur.CBTSTQVelocityThresh),
				formatFloat(c.cur.CBTSTVVelocityThresh),
			}
		},
	},
	CmdCBTBL: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCBTBL(v.Float(0)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatFloat(c.cur.CBTBL)} },
	},
	CmdCBTMX: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCBTMX(v.Float(0)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatFloat(c.cur.CBTMX)} },
	},
	CmdCBTTBP: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCBTTBP(v.Float(0)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatFloat(c.cur.CBTTBP)} },
	},
	CmdCBTT: {
		decode: func(c *AdcpSubsystemCommands, v Values) {
			c.SetCBTTSNRShallow(v.Float(0))
			c.SetCBTTDepthSNR(v.Float(1))
			c.SetCBTTSNRDeep(v.Float(2))
			c.SetCBTTDepthGain(v.Float(3))
		},
		encode: func(c *AdcpSubsystemCommands) []string {
			return []string{
				formatFloat(c.cur.CBTTSNRShallow),
				formatFloat(c.cur.CBTTDepthSNR),
				formatFloat(c.cur.CBTTSNRDeep),
				formatFloat(c.cur.CBTTDepthGain),
			}
		},
	},
	CmdCBTLR: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCBTLR(v.Float(0)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatFloat(c.cur.CBTLR)} },
	},
	CmdCWTON: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCWTON(v.Bool(0, c.def.CWTON)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatBool(c.cur.CWTON)} },
	},
	CmdCWTBB: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCWTBB(v.Bool(0, c.def.CWTBB)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatBool(c.cur.CWTBB)} },
	},
	CmdCWTBL: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCWTBL(v.Float(0)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatFloat(c.cur.CWTBL)} },
	},
	CmdCWTBS: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCWTBS(v.Float(0)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatFloat(c.cur.CWTBS)} },
	},
	CmdCWTTBP: {
		decode: func(c *AdcpSubsystemCommands, v Values) { c.SetCWTTBP(v.Float(0)) },
		encode: func(c *AdcpSubsystemCommands) []string { return []string{formatFloat(c.cur.CWTTBP)} },
	},
}

// Decode writes one block of values through the command's setters. It
// reports false for commands that are not per-configuration.
func (c *AdcpSubsystemCommands) Decode(cmd Command, v Values) bool {
	if !cmd.IsSubsystem() {
		return false
	}
	subsystemCodecs[cmd].decode(c, v)
	return true
}

// Values renders the current value list of cmd, or nil for commands that
// are not per-configuration.
func (c *AdcpSubsystemCommands) Values(cmd Command) []string {
	if !cmd.IsSubsystem() {
		return nil
	}
	return subsystemCodecs[cmd].encode(c)
}

// CommandString renders cmd at the slot's own array index, e.g.
// "CWPBL[0] 0.4".
func (c *AdcpSubsystemCommands) CommandString(cmd Command) string {
	return c.CommandStringAt(cmd, c.ssConfig.ArrayIndex)
}

// CommandStringAt renders cmd with an explicit bracket index.
func (c *AdcpSubsystemCommands) CommandStringAt(cmd Command, index int) string {
	vals := c.Values(cmd)
	if vals == nil {
		return ""
	}
	return fmt.Sprintf("%s[%d] %s", cmd, index, strings.Join(vals, ","))
}

// CommandList renders every emitted command at the slot's array index.
func (c *AdcpSubsystemCommands) CommandList() []string {
	out := make([]string, 0, firstGlobalCommand)
	for _, cmd := range SubsystemCommands() {
		if !cmd.Emitted() {
			continue
		}
		out = append(out, c.CommandString(cmd))
	}
	return out
}

// String joins CommandList with newlines.
func (c *AdcpSubsystemCommands) String() string {
	return strings.Join(c.CommandList(), "\n")
}
