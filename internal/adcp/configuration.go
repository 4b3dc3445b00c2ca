package adcp

// AdcpConfiguration is the decoded configuration of one instrument: the
// global commands plus one AdcpSubsystemConfig per CEPO position, iterated
// in CEPO order.
type AdcpConfiguration struct {
	SerialNumber     SerialNumber
	Commands         *AdcpCommands
	SubsystemConfigs *OrderedMap[ConfigKey, *AdcpSubsystemConfig]
}

// NewAdcpConfiguration returns a configuration with default global commands
// and no configuration slots.
func NewAdcpConfiguration(sn SerialNumber) *AdcpConfiguration {
	return &AdcpConfiguration{
		SerialNumber:     sn,
		Commands:         NewAdcpCommands(),
		SubsystemConfigs: NewOrderedMap[ConfigKey, *AdcpSubsystemConfig](),
	}
}

// AddSubsystemConfig appends a slot. A slot with the same key replaces the
// existing one in place.
func (a *AdcpConfiguration) AddSubsystemConfig(cfg *AdcpSubsystemConfig) {
	a.SubsystemConfigs.Set(cfg.Key(), cfg)
}

// Configs returns the slots in CEPO order.
func (a *AdcpConfiguration) Configs() []*AdcpSubsystemConfig {
	return a.SubsystemConfigs.Values()
}

// ConfigAt returns the slot at a CEPO position.
func (a *AdcpConfiguration) ConfigAt(cepoIndex int) (*AdcpSubsystemConfig, bool) {
	for _, cfg := range a.SubsystemConfigs.All() {
		if cfg.SubsystemConfig.CepoIndex == cepoIndex {
			return cfg, true
		}
	}
	return nil, false
}

// CommandList renders the global commands followed by every slot's commands
// in CEPO order.
func (a *AdcpConfiguration) CommandList() []string {
	out := a.Commands.CommandList()
	for _, cfg := range a.SubsystemConfigs.All() {
		out = append(out, cfg.Commands.CommandList()...)
	}
	return out
}

// Clone returns a deep copy that shares no state with a.
func (a *AdcpConfiguration) Clone() *AdcpConfiguration {
	cmds := *a.Commands
	out := &AdcpConfiguration{
		SerialNumber:     a.SerialNumber,
		Commands:         &cmds,
		SubsystemConfigs: NewOrderedMap[ConfigKey, *AdcpSubsystemConfig](),
	}
	for k, cfg := range a.SubsystemConfigs.All() {
		out.SubsystemConfigs.Set(k, cfg.Clone())
	}
	return out
}
