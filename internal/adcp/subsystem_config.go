package adcp

import "fmt"

// SubsystemConfiguration identifies one configuration slot. CepoIndex is the
// slot's position in the CEPO string; ArrayIndex is the bracket index used
// when rendering commands. The two are equal for every instrument seen so
// far but are stored separately.
type SubsystemConfiguration struct {
	Subsystem  Subsystem `json:"subsystem"`
	CepoIndex  int       `json:"cepo_index"`
	ArrayIndex int       `json:"array_index"`
}

// NewSubsystemConfiguration uses cepoIndex as the array index.
func NewSubsystemConfiguration(ss Subsystem, cepoIndex int) SubsystemConfiguration {
	return SubsystemConfiguration{Subsystem: ss, CepoIndex: cepoIndex, ArrayIndex: cepoIndex}
}

// Description is "[<cepo>] <subsystem description>".
func (s SubsystemConfiguration) Description() string {
	return fmt.Sprintf("[%d] %s", s.CepoIndex, s.Subsystem.Description())
}

func (s SubsystemConfiguration) String() string {
	return fmt.Sprintf("%s cepo=%d array=%d", s.Subsystem, s.CepoIndex, s.ArrayIndex)
}

// AdcpSubsystemConfig pairs a configuration slot with its command store.
type AdcpSubsystemConfig struct {
	SubsystemConfig SubsystemConfiguration
	Commands        *AdcpSubsystemCommands
}

// NewAdcpSubsystemConfig seeds the command store with the defaults of the
// slot's frequency class.
func NewAdcpSubsystemConfig(ssConfig SubsystemConfiguration) *AdcpSubsystemConfig {
	return &AdcpSubsystemConfig{
		SubsystemConfig: ssConfig,
		Commands:        NewAdcpSubsystemCommands(ssConfig),
	}
}

// Label is the display name of the slot.
func (a *AdcpSubsystemConfig) Label() string {
	return a.SubsystemConfig.Description()
}

// Key returns the ordered map key of the slot.
func (a *AdcpSubsystemConfig) Key() ConfigKey {
	return ConfigKey{Code: a.SubsystemConfig.Subsystem.Code, CepoIndex: a.SubsystemConfig.CepoIndex}
}

// Clone returns a deep copy.
func (a *AdcpSubsystemConfig) Clone() *AdcpSubsystemConfig {
	c := *a.Commands
	return &AdcpSubsystemConfig{SubsystemConfig: a.SubsystemConfig, Commands: &c}
}

func (a *AdcpSubsystemConfig) String() string { return a.Label() }

// ConfigKey identifies a configuration slot inside an AdcpConfiguration.
type ConfigKey struct {
	Code      byte
	CepoIndex int
}

func (k ConfigKey) String() string {
	return fmt.Sprintf("%c[%d]", k.Code, k.CepoIndex)
}
