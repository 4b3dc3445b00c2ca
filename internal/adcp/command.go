package adcp

import "strings"

// Command is the closed set of command names the instrument reports in a
// CSHOW dump. Per-configuration commands come first, then global ones.
type Command int

const (
	CmdCWPON Command = iota
	CmdCWPBB
	CmdCWPAP
	CmdCWPST
	CmdCWPBL
	CmdCWPBS
	CmdCWPX
	CmdCWPBN
	CmdCWPP
	CmdCWPBP
	CmdCWPAI
	CmdCWPTBP
	CmdCBI
	CmdCBTON
	CmdCBTBB
	CmdCBTST
	CmdCBTBL
	CmdCBTMX
	CmdCBTTBP
	CmdCBTT
	CmdCBTLR
	CmdCWTON
	CmdCWTBB
	CmdCWTBL
	CmdCWTBS
	CmdCWTTBP

	CmdCEPO
	CmdCEI
	CmdCETFP
	CmdCERECORD
	CmdCEOUTPUT
	CmdCWS
	CmdCWT
	CmdCTD
	CmdCWSS
	CmdCHO
	CmdCHS
	CmdCVSF
	CmdC232B
	CmdC485B
	CmdC422B
	CmdMode
	CmdSim

	numCommands
)

const firstGlobalCommand = CmdCEPO

var commandNames = [numCommands]string{
	CmdCWPON:    "CWPON",
	CmdCWPBB:    "CWPBB",
	CmdCWPAP:    "CWPAP",
	CmdCWPST:    "CWPST",
	CmdCWPBL:    "CWPBL",
	CmdCWPBS:    "CWPBS",
	CmdCWPX:     "CWPX",
	CmdCWPBN:    "CWPBN",
	CmdCWPP:     "CWPP",
	CmdCWPBP:    "CWPBP",
	CmdCWPAI:    "CWPAI",
	CmdCWPTBP:   "CWPTBP",
	CmdCBI:      "CBI",
	CmdCBTON:    "CBTON",
	CmdCBTBB:    "CBTBB",
	CmdCBTST:    "CBTST",
	CmdCBTBL:    "CBTBL",
	CmdCBTMX:    "CBTMX",
	CmdCBTTBP:   "CBTTBP",
	CmdCBTT:     "CBTT",
	CmdCBTLR:    "CBTLR",
	CmdCWTON:    "CWTON",
	CmdCWTBB:    "CWTBB",
	CmdCWTBL:    "CWTBL",
	CmdCWTBS:    "CWTBS",
	CmdCWTTBP:   "CWTTBP",
	CmdCEPO:     "CEPO",
	CmdCEI:      "CEI",
	CmdCETFP:    "CETFP",
	CmdCERECORD: "CERECORD",
	CmdCEOUTPUT: "CEOUTPUT",
	CmdCWS:      "CWS",
	CmdCWT:      "CWT",
	CmdCTD:      "CTD",
	CmdCWSS:     "CWSS",
	CmdCHO:      "CHO",
	CmdCHS:      "CHS",
	CmdCVSF:     "CVSF",
	CmdC232B:    "C232B",
	CmdC485B:    "C485B",
	CmdC422B:    "C422B",
	CmdMode:     "Mode",
	CmdSim:      "Sim",
}

var commandsByName = func() map[string]Command {
	m := make(map[string]Command, numCommands)
	for c := Command(0); c < numCommands; c++ {
		m[strings.ToUpper(commandNames[c])] = c
	}
	return m
}()

// LookupCommand resolves a command name case-insensitively. Unknown names
// report false; callers skip them.
func LookupCommand(name string) (Command, bool) {
	c, ok := commandsByName[strings.ToUpper(strings.TrimSpace(name))]
	return c, ok
}

func (c Command) String() string {
	if c < 0 || c >= numCommands {
		return "UNKNOWN"
	}
	return commandNames[c]
}

// IsSubsystem reports whether the command carries one bracketed block per
// configuration slot.
func (c Command) IsSubsystem() bool { return c >= 0 && c < firstGlobalCommand }

// Emitted reports whether the command belongs in a serialized command list.
// CBTLR is still decoded and settable but the current protocol no longer
// accepts it. Mode and Sim are report-only lines.
func (c Command) Emitted() bool {
	switch c {
	case CmdCBTLR, CmdMode, CmdSim:
		return false
	}
	return c >= 0 && c < numCommands
}

// SubsystemCommands lists the per-configuration commands in wire order.
func SubsystemCommands() []Command {
	out := make([]Command, 0, firstGlobalCommand)
	for c := Command(0); c < firstGlobalCommand; c++ {
		out = append(out, c)
	}
	return out
}

// GlobalCommands lists the global commands in wire order.
func GlobalCommands() []Command {
	out := make([]Command, 0, numCommands-firstGlobalCommand)
	for c := firstGlobalCommand; c < numCommands; c++ {
		out = append(out, c)
	}
	return out
}
