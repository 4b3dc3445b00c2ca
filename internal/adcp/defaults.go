package adcp

// Closed ranges of the bounded per-configuration fields. Values outside a
// range reset the field to its frequency class default.
const (
	MinCWPBBLagLength = 0.0
	MaxCWPBBLagLength = 5.0

	MaxCWPAPNumPingsAvg = 100
	MinCWPAPLag         = 0.0
	MaxCWPAPLag         = 5.0
	MinCWPAPBlank       = 0.0
	MaxCWPAPBlank       = 100.0
	MinCWPAPBinSize     = 0.01
	MaxCWPAPBinSize     = 64.0
	MinCWPAPStepSize    = 0.0
	MaxCWPAPStepSize    = 10.0

	MinCorrelationThresh = 0.0
	MaxCorrelationThresh = 1.0
	MinVelocityThresh    = 0.0
	MaxVelocityThresh    = 100.0

	MinCWPBL = 0.0
	MaxCWPBL = 100.0
	MinCWPBS = 0.01
	MaxCWPBS = 64.0
	MinCWPX  = 0.0
	MaxCWPX  = 100.0
	MinCWPBN = 1
	MaxCWPBN = 200
	MinCWPP  = 1
	MaxCWPP  = 10000

	MinCWPBPBasePings            = 1
	MaxCWPBPBasePings            = 100
	MinCWPBPTimeBetweenBasePings = 0.0
	MaxCWPBPTimeBetweenBasePings = 86400.0
	MinTimeBetweenPings          = 0.0
	MaxTimeBetweenPings          = 86400.0
	MinCBINumEnsembles           = 0
	MaxCBINumEnsembles           = 100000
	MinCBTBBPulseToPulseLag      = 0.0
	MaxCBTBBPulseToPulseLag      = 1000.0
	MinCBTBL                     = 0.0
	MaxCBTBL                     = 10.0
	MinCBTMX                     = 5.0
	MaxCBTMX                     = 10000.0
	MinCBTLR                     = 5.0
	MaxCBTLR                     = 10000.0
	MinSNR                       = 0.0
	MaxSNR                       = 100.0
	MinCBTTDepth                 = 0.0
	MaxCBTTDepth                 = 10000.0
	MinCWTBL                     = 0.0
	MaxCWTBL                     = 100.0
	MinCWTBS                     = 0.05
	MaxCWTBS                     = 64.0
)

// SubsystemParams holds one value for every per-configuration field. It is
// both the shape of a frequency class default profile and the storage of
// AdcpSubsystemCommands.
type SubsystemParams struct {
	CWPON bool

	CWPBBTransmitPulseType TransmitPulseType
	CWPBBLagLength         float64

	CWPAPNumPingsAvg uint32
	CWPAPLag         float64
	CWPAPBlank       float64
	CWPAPBinSize     float64
	CWPAPStepSize    float64

	CWPSTCorrelationThresh float64
	CWPSTQVelocityThresh   float64
	CWPSTVVelocityThresh   float64

	CWPBL  float64
	CWPBS  float64
	CWPX   float64
	CWPBN  uint32
	CWPP   uint32
	CWPAI  TimeValue
	CWPTBP float64

	CWPBPBasePings            uint32
	CWPBPTimeBetweenBasePings float64

	CBIBurstInterval TimeValue
	CBINumEnsembles  uint32

	CBTON                  bool
	CBTBBMode              BottomTrackMode
	CBTBBPulseToPulseLag   float64
	CBTSTCorrelationThresh float64
	CBTSTQVelocityThresh   float64
	CBTSTVVelocityThresh   float64
	CBTBL                  float64
	CBTMX                  float64
	CBTTBP                 float64
	CBTTSNRShallow         float64
	CBTTDepthSNR           float64
	CBTTSNRDeep            float64
	CBTTDepthGain          float64
	CBTLR                  float64

	CWTON  bool
	CWTBB  bool
	CWTBL  float64
	CWTBS  float64
	CWTTBP float64
}

// classProfile carries the values that scale with transducer frequency.
type classProfile struct {
	lag, blank, binSize float64
	bins                uint32
	pingTime            float64
	btLag, btBlank      float64
	btMaxDepth, btLR    float64
	btDepthSNR, btGain  float64
	wtBlank, wtBinSize  float64
}

var classProfiles = map[FrequencyClass]classProfile{
	Freq2MHz:    {lag: 0.042, blank: 0.10, binSize: 0.10, bins: 30, pingTime: 0.05, btLag: 4, btBlank: 0.02, btMaxDepth: 15, btLR: 30, btDepthSNR: 5, btGain: 2, wtBlank: 0.10, wtBinSize: 0.10},
	Freq1200kHz: {lag: 0.084, blank: 0.20, binSize: 0.25, bins: 30, pingTime: 0.10, btLag: 10, btBlank: 0.05, btMaxDepth: 50, btLR: 100, btDepthSNR: 15, btGain: 4, wtBlank: 0.20, wtBinSize: 0.25},
	Freq600kHz:  {lag: 0.168, blank: 0.40, binSize: 0.50, bins: 30, pingTime: 0.20, btLag: 20, btBlank: 0.10, btMaxDepth: 100, btLR: 200, btDepthSNR: 30, btGain: 8, wtBlank: 0.40, wtBinSize: 0.50},
	Freq300kHz:  {lag: 0.336, blank: 0.80, binSize: 1.00, bins: 30, pingTime: 0.40, btLag: 40, btBlank: 0.20, btMaxDepth: 200, btLR: 400, btDepthSNR: 60, btGain: 16, wtBlank: 0.80, wtBinSize: 1.00},
	Freq150kHz:  {lag: 0.672, blank: 1.60, binSize: 2.00, bins: 50, pingTime: 0.80, btLag: 80, btBlank: 0.40, btMaxDepth: 400, btLR: 800, btDepthSNR: 120, btGain: 32, wtBlank: 1.60, wtBinSize: 2.00},
	Freq75kHz:   {lag: 1.344, blank: 3.20, binSize: 4.00, bins: 50, pingTime: 1.60, btLag: 160, btBlank: 0.80, btMaxDepth: 800, btLR: 1600, btDepthSNR: 240, btGain: 64, wtBlank: 3.20, wtBinSize: 4.00},
	Freq38kHz:   {lag: 2.688, blank: 6.40, binSize: 8.00, bins: 50, pingTime: 3.20, btLag: 320, btBlank: 1.60, btMaxDepth: 1600, btLR: 3200, btDepthSNR: 480, btGain: 128, wtBlank: 6.40, wtBinSize: 8.00},
	Freq20kHz:   {lag: 4.800, blank: 10.0, binSize: 16.0, bins: 50, pingTime: 6.40, btLag: 600, btBlank: 3.20, btMaxDepth: 3000, btLR: 6000, btDepthSNR: 900, btGain: 256, wtBlank: 10.0, wtBinSize: 16.0},
}

// classDefaults is built once and only ever copied out.
var classDefaults = buildClassDefaults()

func buildClassDefaults() map[FrequencyClass]SubsystemParams {
	out := make(map[FrequencyClass]SubsystemParams, len(classProfiles))
	for class, p := range classProfiles {
		out[class] = p.defaults()
	}
	return out
}

func (p classProfile) defaults() SubsystemParams {
	return SubsystemParams{
		CWPON: true,

		CWPBBTransmitPulseType: DefaultTransmitPulseType,
		CWPBBLagLength:         p.lag,

		CWPAPNumPingsAvg: 0,
		CWPAPLag:         p.lag,
		CWPAPBlank:       p.blank,
		CWPAPBinSize:     p.binSize,
		CWPAPStepSize:    0.01,

		CWPSTCorrelationThresh: 0.4,
		CWPSTQVelocityThresh:   1.0,
		CWPSTVVelocityThresh:   1.0,

		CWPBL:  p.blank,
		CWPBS:  p.binSize,
		CWPX:   0,
		CWPBN:  p.bins,
		CWPP:   1,
		CWPAI:  NewTimeValue(0, 0, 1, 0),
		CWPTBP: p.pingTime,

		CWPBPBasePings:            1,
		CWPBPTimeBetweenBasePings: 0.02,

		CBIBurstInterval: TimeValue{},
		CBINumEnsembles:  0,

		CBTON:                  true,
		CBTBBMode:              DefaultBottomTrackMode,
		CBTBBPulseToPulseLag:   p.btLag,
		CBTSTCorrelationThresh: 0.9,
		CBTSTQVelocityThresh:   1.0,
		CBTSTVVelocityThresh:   1.0,
		CBTBL:                  p.btBlank,
		CBTMX:                  p.btMaxDepth,
		CBTTBP:                 0,
		CBTTSNRShallow:         15,
		CBTTDepthSNR:           p.btDepthSNR,
		CBTTSNRDeep:            5,
		CBTTDepthGain:          p.btGain,
		CBTLR:                  p.btLR,

		CWTON:  false,
		CWTBB:  false,
		CWTBL:  p.wtBlank,
		CWTBS:  p.wtBinSize,
		CWTTBP: 0,
	}
}

// DefaultsFor returns a copy of the default profile of a frequency class.
// Unknown classes use the 1.2 MHz profile.
func DefaultsFor(class FrequencyClass) SubsystemParams {
	if d, ok := classDefaults[class]; ok {
		return d
	}
	return classDefaults[Freq1200kHz]
}
