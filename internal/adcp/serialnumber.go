package adcp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Serial number layout.
const (
	BaseHardwareWidth = 2
	SubsystemsWidth   = 15
	SpareWidth        = 9
	SystemSerialWidth = 8

	SerialNumberWidth = BaseHardwareWidth + SubsystemsWidth + SpareWidth + SystemSerialWidth

	subsystemsOffset   = BaseHardwareWidth
	spareOffset        = subsystemsOffset + SubsystemsWidth
	systemSerialOffset = spareOffset + SpareWidth

	maxSystemSerial = 99999999

	defaultBaseHardware = "01"
)

// ErrSerialNumber is returned by the strict serial number constructor.
var ErrSerialNumber = errors.New("malformed serial number")

// SerialNumber is the fixed width identity string of an instrument. The
// subsystem list is derived from the code field on every change.
type SerialNumber struct {
	baseHardware string
	subsystems   string
	spare        string
	systemSerial string

	list []Subsystem
}

// DefaultSerialNumber returns the all-empty serial number.
func DefaultSerialNumber() SerialNumber {
	sn := SerialNumber{
		baseHardware: defaultBaseHardware,
		subsystems:   strings.Repeat(string(EmptyCode), SubsystemsWidth),
		spare:        strings.Repeat("0", SpareWidth),
		systemSerial: strings.Repeat("0", SystemSerialWidth),
	}
	sn.deriveList()
	return sn
}

// NewSerialNumber decodes s on a best-effort basis. Input with the wrong
// width or charset yields DefaultSerialNumber.
func NewSerialNumber(s string) SerialNumber {
	sn, err := ParseSerialNumber(s)
	if err != nil {
		return DefaultSerialNumber()
	}
	return sn
}

// ParseSerialNumber is the strict constructor.
func ParseSerialNumber(s string) (SerialNumber, error) {
	s = strings.TrimSpace(s)
	if len(s) != SerialNumberWidth {
		return SerialNumber{}, fmt.Errorf("%w: width %d, want %d", ErrSerialNumber, len(s), SerialNumberWidth)
	}
	if !isAlnum(s[:systemSerialOffset]) {
		return SerialNumber{}, fmt.Errorf("%w: invalid character in %q", ErrSerialNumber, s)
	}
	if !isDigits(s[systemSerialOffset:]) {
		return SerialNumber{}, fmt.Errorf("%w: system serial %q is not decimal", ErrSerialNumber, s[systemSerialOffset:])
	}
	sn := SerialNumber{
		baseHardware: s[:subsystemsOffset],
		subsystems:   s[subsystemsOffset:spareOffset],
		spare:        s[spareOffset:systemSerialOffset],
		systemSerial: s[systemSerialOffset:],
	}
	sn.deriveList()
	return sn, nil
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// deriveList rebuilds the subsystem list: the n-th non-empty code becomes
// Subsystem{code, n}. A fresh slice is built so value copies never share it.
func (sn *SerialNumber) deriveList() {
	list := make([]Subsystem, 0, SubsystemsWidth)
	for i := 0; i < len(sn.subsystems); i++ {
		c := sn.subsystems[i]
		if c == EmptyCode {
			continue
		}
		list = append(list, NewSubsystem(c, len(list)))
	}
	sn.list = list
}

func (sn SerialNumber) String() string {
	if sn.subsystems == "" {
		return DefaultSerialNumber().String()
	}
	return sn.baseHardware + sn.subsystems + sn.spare + sn.systemSerial
}

func (sn SerialNumber) BaseHardware() string { return sn.baseHardware }

// SubsystemsString returns the raw 15 character code field.
func (sn SerialNumber) SubsystemsString() string { return sn.subsystems }

func (sn SerialNumber) Spare() string { return sn.spare }

// SystemSerialNumber returns the decimal system serial number.
func (sn SerialNumber) SystemSerialNumber() uint32 {
	n, _ := strconv.ParseUint(sn.systemSerial, 10, 32)
	return uint32(n)
}

// SubSystemsList returns a copy of the derived subsystem list.
func (sn SerialNumber) SubSystemsList() []Subsystem {
	out := make([]Subsystem, len(sn.list))
	copy(out, sn.list)
	return out
}

// IsEmpty holds iff the code field has no non-zero code.
func (sn SerialNumber) IsEmpty() bool { return len(sn.list) == 0 }

// SubsystemsWithCode returns the subsystems carrying code, in list order.
func (sn SerialNumber) SubsystemsWithCode(code byte) []Subsystem {
	var out []Subsystem
	for _, ss := range sn.list {
		if ss.Code == code {
			out = append(out, ss)
		}
	}
	return out
}

// SetBaseHardware replaces the base hardware field. It returns false and
// leaves the field unchanged if hw is not exactly two alphanumerics.
func (sn *SerialNumber) SetBaseHardware(hw string) bool {
	if len(hw) != BaseHardwareWidth || !isAlnum(hw) {
		return false
	}
	sn.ensure()
	sn.baseHardware = hw
	return true
}

// SetSubsystems replaces the code field. Shorter input is padded with empty
// codes; longer input is rejected.
func (sn *SerialNumber) SetSubsystems(codes string) bool {
	if len(codes) > SubsystemsWidth || !isAlnum(codes) {
		return false
	}
	sn.ensure()
	sn.subsystems = codes + strings.Repeat(string(EmptyCode), SubsystemsWidth-len(codes))
	sn.deriveList()
	return true
}

// SetSpare replaces the spare field, padding short input with '0'.
func (sn *SerialNumber) SetSpare(spare string) bool {
	if len(spare) > SpareWidth || !isAlnum(spare) {
		return false
	}
	sn.ensure()
	sn.spare = spare + strings.Repeat("0", SpareWidth-len(spare))
	return true
}

// SetSystemSerialNumber re-encodes the eight digit system serial number.
func (sn *SerialNumber) SetSystemSerialNumber(n uint32) bool {
	if n > maxSystemSerial {
		return false
	}
	sn.ensure()
	sn.systemSerial = fmt.Sprintf("%0*d", SystemSerialWidth, n)
	return true
}

// AddSubsystem stores ss.Code in the first empty slot. The index of ss is
// ignored; indices are re-derived from position. It returns false when all
// slots are used or the code is not a single alphanumeric.
func (sn *SerialNumber) AddSubsystem(ss Subsystem) bool {
	if ss.Code == EmptyCode || !isAlnum(string(ss.Code)) {
		return false
	}
	sn.ensure()
	i := strings.IndexByte(sn.subsystems, EmptyCode)
	if i < 0 {
		return false
	}
	b := []byte(sn.subsystems)
	b[i] = ss.Code
	sn.subsystems = string(b)
	sn.deriveList()
	return true
}

// RemoveSubsystem removes the entry matching both code and index and closes
// the gap, so every later entry moves down one index. A pair that does not
// match an entry leaves the serial number unchanged.
func (sn *SerialNumber) RemoveSubsystem(ss Subsystem) bool {
	sn.ensure()
	found := -1
	for i, cur := range sn.list {
		if cur == ss {
			found = i
			break
		}
	}
	if found < 0 {
		return false
	}
	codes := make([]byte, 0, SubsystemsWidth)
	for i, cur := range sn.list {
		if i != found {
			codes = append(codes, cur.Code)
		}
	}
	sn.subsystems = string(codes) + strings.Repeat(string(EmptyCode), SubsystemsWidth-len(codes))
	sn.deriveList()
	return true
}

// ensure upgrades a zero value SerialNumber to the empty default.
func (sn *SerialNumber) ensure() {
	if sn.subsystems == "" {
		*sn = DefaultSerialNumber()
	}
}
