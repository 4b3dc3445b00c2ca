package adcp

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommands(code byte) *AdcpSubsystemCommands {
	return NewAdcpSubsystemCommands(NewSubsystemConfiguration(NewSubsystem(code, 0), 0))
}

type floatField struct {
	name     string
	get      func(*AdcpSubsystemCommands) float64
	set      func(*AdcpSubsystemCommands, float64)
	min, max float64
}

var floatFields = []floatField{
	{"CWPBBLagLength", (*AdcpSubsystemCommands).CWPBBLagLength, (*AdcpSubsystemCommands).SetCWPBBLagLength, MinCWPBBLagLength, MaxCWPBBLagLength},
	{"CWPAPLag", (*AdcpSubsystemCommands).CWPAPLag, (*AdcpSubsystemCommands).SetCWPAPLag, MinCWPAPLag, MaxCWPAPLag},
	{"CWPAPBlank", (*AdcpSubsystemCommands).CWPAPBlank, (*AdcpSubsystemCommands).SetCWPAPBlank, MinCWPAPBlank, MaxCWPAPBlank},
	{"CWPAPBinSize", (*AdcpSubsystemCommands).CWPAPBinSize, (*AdcpSubsystemCommands).SetCWPAPBinSize, MinCWPAPBinSize, MaxCWPAPBinSize},
	{"CWPAPStepSize", (*AdcpSubsystemCommands).CWPAPStepSize, (*AdcpSubsystemCommands).SetCWPAPStepSize, MinCWPAPStepSize, MaxCWPAPStepSize},
	{"CWPSTCorrelationThresh", (*AdcpSubsystemCommands).CWPSTCorrelationThresh, (*AdcpSubsystemCommands).SetCWPSTCorrelationThresh, MinCorrelationThresh, MaxCorrelationThresh},
	{"CWPSTQVelocityThresh", (*AdcpSubsystemCommands).CWPSTQVelocityThresh, (*AdcpSubsystemCommands).SetCWPSTQVelocityThresh, MinVelocityThresh, MaxVelocityThresh},
	{"CWPSTVVelocityThresh", (*AdcpSubsystemCommands).CWPSTVVelocityThresh, (*AdcpSubsystemCommands).SetCWPSTVVelocityThresh, MinVelocityThresh, MaxVelocityThresh},
	{"CWPBL", (*AdcpSubsystemCommands).CWPBL, (*AdcpSubsystemCommands).SetCWPBL, MinCWPBL, MaxCWPBL},
	{"CWPBS", (*AdcpSubsystemCommands).CWPBS, (*AdcpSubsystemCommands).SetCWPBS, MinCWPBS, MaxCWPBS},
	{"CWPX", (*AdcpSubsystemCommands).CWPX, (*AdcpSubsystemCommands).SetCWPX, MinCWPX, MaxCWPX},
	{"CWPBPTimeBetweenBasePings", (*AdcpSubsystemCommands).CWPBPTimeBetweenBasePings, (*AdcpSubsystemCommands).SetCWPBPTimeBetweenBasePings, MinCWPBPTimeBetweenBasePings, MaxCWPBPTimeBetweenBasePings},
	{"CWPTBP", (*AdcpSubsystemCommands).CWPTBP, (*AdcpSubsystemCommands).SetCWPTBP, MinTimeBetweenPings, MaxTimeBetweenPings},
	{"CBTBBPulseToPulseLag", (*AdcpSubsystemCommands).CBTBBPulseToPulseLag, (*AdcpSubsystemCommands).SetCBTBBPulseToPulseLag, MinCBTBBPulseToPulseLag, MaxCBTBBPulseToPulseLag},
	{"CBTSTCorrelationThresh", (*AdcpSubsystemCommands).CBTSTCorrelationThresh, (*AdcpSubsystemCommands).SetCBTSTCorrelationThresh, MinCorrelationThresh, MaxCorrelationThresh},
	{"CBTSTQVelocityThresh", (*AdcpSubsystemCommands).CBTSTQVelocityThresh, (*AdcpSubsystemCommands).SetCBTSTQVelocityThresh, MinVelocityThresh, MaxVelocityThresh},
	{"CBTSTVVelocityThresh", (*AdcpSubsystemCommands).CBTSTVVelocityThresh, (*AdcpSubsystemCommands).SetCBTSTVVelocityThresh, MinVelocityThresh, MaxVelocityThresh},
	{"CBTBL", (*AdcpSubsystemCommands).CBTBL, (*AdcpSubsystemCommands).SetCBTBL, MinCBTBL, MaxCBTBL},
	{"CBTMX", (*AdcpSubsystemCommands).CBTMX, (*AdcpSubsystemCommands).SetCBTMX, MinCBTMX, MaxCBTMX},
	{"CBTTBP", (*AdcpSubsystemCommands).CBTTBP, (*AdcpSubsystemCommands).SetCBTTBP, MinTimeBetweenPings, MaxTimeBetweenPings},
	{"CBTTSNRShallow", (*AdcpSubsystemCommands).CBTTSNRShallow, (*AdcpSubsystemCommands).SetCBTTSNRShallow, MinSNR, MaxSNR},
	{"CBTTDepthSNR", (*AdcpSubsystemCommands).CBTTDepthSNR, (*AdcpSubsystemCommands).SetCBTTDepthSNR, MinCBTTDepth, MaxCBTTDepth},
	{"CBTTSNRDeep", (*AdcpSubsystemCommands).CBTTSNRDeep, (*AdcpSubsystemCommands).SetCBTTSNRDeep, MinSNR, MaxSNR},
	{"CBTTDepthGain", (*AdcpSubsystemCommands).CBTTDepthGain, (*AdcpSubsystemCommands).SetCBTTDepthGain, MinCBTTDepth, MaxCBTTDepth},
	{"CBTLR", (*AdcpSubsystemCommands).CBTLR, (*AdcpSubsystemCommands).SetCBTLR, MinCBTLR, MaxCBTLR},
	{"CWTBL", (*AdcpSubsystemCommands).CWTBL, (*AdcpSubsystemCommands).SetCWTBL, MinCWTBL, MaxCWTBL},
	{"CWTBS", (*AdcpSubsystemCommands).CWTBS, (*AdcpSubsystemCommands).SetCWTBS, MinCWTBS, MaxCWTBS},
	{"CWTTBP", (*AdcpSubsystemCommands).CWTTBP, (*AdcpSubsystemCommands).SetCWTTBP, MinTimeBetweenPings, MaxTimeBetweenPings},
}

func TestFloatFieldsKeepInRangeValues(t *testing.T) {
	for _, f := range floatFields {
		t.Run(f.name, func(t *testing.T) {
			c := newCommands('3')
			mid := f.min + (f.max-f.min)/3
			for _, v := range []float64{f.min, mid, f.max} {
				f.set(c, v)
				assert.Equal(t, v, f.get(c))
			}
		})
	}
}

func TestFloatFieldsResetOutOfRangeToClassDefault(t *testing.T) {
	for _, f := range floatFields {
		t.Run(f.name, func(t *testing.T) {
			c := newCommands('3')
			want := f.get(newCommands('3'))
			for _, v := range []float64{f.min - 1, f.max + 1, math.NaN(), math.Inf(1)} {
				// Move the field off its default first so a reset is visible.
				f.set(c, f.max)
				f.set(c, v)
				assert.Equal(t, want, f.get(c), "value %v", v)
			}
		})
	}
}

func TestCWPBBLagLength600kHz(t *testing.T) {
	c := newCommands('3')
	def := DefaultsFor(Freq600kHz).CWPBBLagLength
	require.Equal(t, 0.168, def)

	c.SetCWPBBLagLength(-10)
	assert.Equal(t, def, c.CWPBBLagLength())
	c.SetCWPBBLagLength(10)
	assert.Equal(t, def, c.CWPBBLagLength())
	c.SetCWPBBLagLength(MinCWPBBLagLength)
	assert.Equal(t, MinCWPBBLagLength, c.CWPBBLagLength())
	c.SetCWPBBLagLength(MaxCWPBBLagLength)
	assert.Equal(t, MaxCWPBBLagLength, c.CWPBBLagLength())
}

func TestDefaultsDependOnFrequencyClass(t *testing.T) {
	c1200 := newCommands('2')
	c600 := newCommands('3')
	c300 := newCommands('4')

	assert.Equal(t, 0.20, c1200.CWPBL())
	assert.Equal(t, 0.40, c600.CWPBL())
	assert.Equal(t, 0.80, c300.CWPBL())

	c600.SetCWPBL(-1)
	assert.Equal(t, 0.40, c600.CWPBL())
	c1200.SetCWPBL(-1)
	assert.Equal(t, 0.20, c1200.CWPBL())

	// Unknown codes fall back to the 1.2 MHz profile.
	assert.Equal(t, DefaultsFor(Freq1200kHz), newCommands('Z').Defaults())
}

func TestCWPAPNumPingsAvgAcceptsZero(t *testing.T) {
	c := newCommands('2')
	c.SetCWPAPNumPingsAvg(10)
	require.Equal(t, uint32(10), c.CWPAPNumPingsAvg())

	c.SetCWPAPNumPingsAvg(0)
	assert.Equal(t, uint32(0), c.CWPAPNumPingsAvg())

	c.SetCWPAPNumPingsAvg(MaxCWPAPNumPingsAvg)
	assert.Equal(t, uint32(MaxCWPAPNumPingsAvg), c.CWPAPNumPingsAvg())

	c.SetCWPAPNumPingsAvg(MaxCWPAPNumPingsAvg + 1)
	assert.Equal(t, c.Defaults().CWPAPNumPingsAvg, c.CWPAPNumPingsAvg())
}

func TestUintFieldBounds(t *testing.T) {
	tests := []struct {
		name     string
		get      func(*AdcpSubsystemCommands) uint32
		set      func(*AdcpSubsystemCommands, uint32)
		min, max uint32
	}{
		{"CWPBN", (*AdcpSubsystemCommands).CWPBN, (*AdcpSubsystemCommands).SetCWPBN, MinCWPBN, MaxCWPBN},
		{"CWPP", (*AdcpSubsystemCommands).CWPP, (*AdcpSubsystemCommands).SetCWPP, MinCWPP, MaxCWPP},
		{"CWPBPBasePings", (*AdcpSubsystemCommands).CWPBPBasePings, (*AdcpSubsystemCommands).SetCWPBPBasePings, MinCWPBPBasePings, MaxCWPBPBasePings},
		{"CBINumEnsembles", (*AdcpSubsystemCommands).CBINumEnsembles, (*AdcpSubsystemCommands).SetCBINumEnsembles, MinCBINumEnsembles, MaxCBINumEnsembles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCommands('2')
			want := tt.get(newCommands('2'))

			tt.set(c, tt.min)
			assert.Equal(t, tt.min, tt.get(c))
			tt.set(c, tt.max)
			assert.Equal(t, tt.max, tt.get(c))

			tt.set(c, tt.max+1)
			assert.Equal(t, want, tt.get(c))
			tt.set(c, math.MaxUint32)
			assert.Equal(t, want, tt.get(c))
			if tt.min > 0 {
				tt.set(c, tt.min-1)
				assert.Equal(t, want, tt.get(c))
			}
		})
	}
}

func TestTransmitPulseTypeSetters(t *testing.T) {
	c := newCommands('2')
	c.SetCWPBBTransmitPulseType(PulseNarrowband)
	assert.Equal(t, PulseNarrowband, c.CWPBBTransmitPulseType())

	c.SetCWPBBTransmitPulseType(TransmitPulseType(42))
	assert.Equal(t, DefaultTransmitPulseType, c.CWPBBTransmitPulseType())

	c.SetCWPBBTransmitPulseTypeToken("NCBB")
	assert.Equal(t, PulseNonCodedBroadband, c.CWPBBTransmitPulseType())

	c.SetCWPBBTransmitPulseTypeToken("garbage")
	assert.Equal(t, DefaultTransmitPulseType, c.CWPBBTransmitPulseType())
}

func TestBottomTrackModeSetters(t *testing.T) {
	c := newCommands('2')
	c.SetCBTBBMode(BTBroadbandCoded)
	assert.Equal(t, BTBroadbandCoded, c.CBTBBMode())

	c.SetCBTBBMode(BTReserved3)
	assert.Equal(t, BTReserved3, c.CBTBBMode())

	c.SetCBTBBMode(BottomTrackMode(-1))
	assert.Equal(t, DefaultBottomTrackMode, c.CBTBBMode())

	c.SetCBTBBModeToken("BBNC")
	assert.Equal(t, BTBroadbandNonCoded, c.CBTBBMode())

	c.SetCBTBBModeToken("garbage")
	assert.Equal(t, DefaultBottomTrackMode, c.CBTBBMode())
}

func TestTimeFieldsNormalize(t *testing.T) {
	c := newCommands('2')
	c.SetCWPAI(TimeValue{Hour: 0, Minute: 0, Second: 59, HSec: 150})
	assert.Equal(t, NewTimeValue(0, 1, 0, 50), c.CWPAI())

	c.SetCBIBurstInterval(TimeValue{Minute: 61})
	assert.Equal(t, NewTimeValue(1, 1, 0, 0), c.CBIBurstInterval())
}

func TestCommandStringUsesArrayIndex(t *testing.T) {
	ssc := SubsystemConfiguration{Subsystem: NewSubsystem('2', 0), CepoIndex: 1, ArrayIndex: 3}
	c := NewAdcpSubsystemCommands(ssc)
	c.SetCWPBL(0.1)

	assert.Equal(t, "CWPBL[3] 0.1", c.CommandString(CmdCWPBL))
	assert.Equal(t, "CWPBL[7] 0.1", c.CommandStringAt(CmdCWPBL, 7))
	assert.Empty(t, c.CommandString(CmdCWSS))
}

func TestCommandStringFormats(t *testing.T) {
	c := newCommands('2')
	c.SetCWPON(false)
	c.SetCWPSTCorrelationThresh(0.4)
	c.SetCWPSTQVelocityThresh(1)
	c.SetCWPSTVVelocityThresh(1.5)
	c.SetCWPAI(NewTimeValue(0, 0, 1, 5))
	c.SetCWPBBTransmitPulseType(PulseNarrowband)
	c.SetCWPBBLagLength(0.0123456789)

	assert.Equal(t, "CWPON[0] 0", c.CommandString(CmdCWPON))
	assert.Equal(t, "CWPST[0] 0.4,1,1.5", c.CommandString(CmdCWPST))
	assert.Equal(t, "CWPAI[0] 00:00:01.05", c.CommandString(CmdCWPAI))
	assert.Equal(t, "CWPBB[0] 0,0.0123456789", c.CommandString(CmdCWPBB))
}

func TestCommandListOmitsLongRangeDepth(t *testing.T) {
	c := newCommands('2')
	c.SetCBTLR(250)
	require.Equal(t, 250.0, c.CBTLR())

	list := c.CommandList()
	var names []string
	for _, line := range list {
		name, _, _ := strings.Cut(line, "[")
		names = append(names, name)
	}
	for _, cmd := range SubsystemCommands() {
		if cmd == CmdCBTLR {
			assert.NotContains(t, names, cmd.String())
			continue
		}
		assert.Contains(t, names, cmd.String())
	}
	assert.NotContains(t, c.String(), "CBTLR")
}

func TestDecodeBlock(t *testing.T) {
	c := newCommands('3')

	require.True(t, c.Decode(CmdCWPBB, SplitValues("BB, 0.5")))
	assert.Equal(t, PulseBroadband, c.CWPBBTransmitPulseType())
	assert.Equal(t, 0.5, c.CWPBBLagLength())

	require.True(t, c.Decode(CmdCWPAP, SplitValues("10,0.2,0.3,0.4,0.05")))
	assert.Equal(t, uint32(10), c.CWPAPNumPingsAvg())
	assert.Equal(t, 0.05, c.CWPAPStepSize())

	// Malformed tokens count as out of range.
	require.True(t, c.Decode(CmdCWPBL, SplitValues("abc")))
	assert.Equal(t, c.Defaults().CWPBL, c.CWPBL())

	require.True(t, c.Decode(CmdCBI, SplitValues("01:00:00.00,12")))
	assert.Equal(t, NewTimeValue(1, 0, 0, 0), c.CBIBurstInterval())
	assert.Equal(t, uint32(12), c.CBINumEnsembles())

	// Short blocks leave the missing values at their defaults.
	require.True(t, c.Decode(CmdCWPST, SplitValues("0.5")))
	assert.Equal(t, 0.5, c.CWPSTCorrelationThresh())
	assert.Equal(t, c.Defaults().CWPSTQVelocityThresh, c.CWPSTQVelocityThresh())

	assert.False(t, c.Decode(CmdCEI, SplitValues("00:00:01.00")))
}

func TestDecodeLegacyBottomTrackLongRange(t *testing.T) {
	c := newCommands('2')
	require.True(t, c.Decode(CmdCBTBB, SplitValues("1,4,300")))
	assert.Equal(t, BTBroadbandCoded, c.CBTBBMode())
	assert.Equal(t, 4.0, c.CBTBBPulseToPulseLag())
	assert.Equal(t, 300.0, c.CBTLR())
	assert.Equal(t, "CBTBB[0] 1,4", c.CommandString(CmdCBTBB))
}

func TestValuesRoundTripThroughDecode(t *testing.T) {
	src := newCommands('3')
	src.SetCWPBL(1.25)
	src.SetCWPAI(NewTimeValue(0, 0, 2, 50))
	src.SetCWTON(true)
	src.SetCBTBBMode(BTBroadbandNonCodedP2P)

	dst := newCommands('3')
	for _, cmd := range SubsystemCommands() {
		require.True(t, dst.Decode(cmd, Values(src.Values(cmd))), cmd.String())
	}
	assert.Equal(t, src.Params(), dst.Params())
}

func TestSetDefaultsRestoresClassProfile(t *testing.T) {
	c := newCommands('4')
	c.SetCWPBL(9)
	c.SetCWTON(true)
	c.SetDefaults()
	assert.Equal(t, DefaultsFor(Freq300kHz), c.Params())
}
