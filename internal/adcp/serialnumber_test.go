package adcp

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serialWith builds a well formed serial number string carrying codes.
func serialWith(codes string) string {
	return "01" + codes + strings.Repeat("0", SubsystemsWidth-len(codes)) + "000000000" + "00000123"
}

func TestSubsystemDescription(t *testing.T) {
	tests := []struct {
		code byte
		want string
	}{
		{'2', "1.2 MHz 4 beam 20 degree piston"},
		{'3', "600 kHz 4 beam 20 degree piston"},
		{'A', "1.2 MHz vertical piston"},
		{'7', "600 kHz 4 beam 20 degree piston 45 degree heading offset"},
		{'0', "Empty"},
		{'z', "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewSubsystem(tt.code, 0).Description(), "code %c", tt.code)
	}
}

func TestSubsystemEqualityAndOrder(t *testing.T) {
	a := NewSubsystem('2', 0)
	assert.Equal(t, a, Subsystem{Code: '2', Index: 0})
	assert.NotEqual(t, a, NewSubsystem('2', 1))

	list := []Subsystem{NewSubsystem('3', 0), NewSubsystem('2', 1), NewSubsystem('2', 0)}
	slices.SortFunc(list, Subsystem.Compare)
	want := []Subsystem{NewSubsystem('2', 0), NewSubsystem('2', 1), NewSubsystem('3', 0)}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("sorted subsystems mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "2_1", NewSubsystem('2', 1).String())
}

func TestParseSerialNumber(t *testing.T) {
	sn, err := ParseSerialNumber(serialWith("23"))
	require.NoError(t, err)

	assert.Equal(t, "01", sn.BaseHardware())
	assert.Equal(t, "230000000000000", sn.SubsystemsString())
	assert.Equal(t, "000000000", sn.Spare())
	assert.Equal(t, uint32(123), sn.SystemSerialNumber())
	assert.False(t, sn.IsEmpty())
	assert.Equal(t, serialWith("23"), sn.String())

	want := []Subsystem{NewSubsystem('2', 0), NewSubsystem('3', 1)}
	if diff := cmp.Diff(want, sn.SubSystemsList()); diff != "" {
		t.Errorf("SubSystemsList mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSerialNumberRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"01",
		serialWith("2") + "0",
		strings.Replace(serialWith("2"), "2", "#", 1),
		serialWith("2")[:26] + "0000012x",
	} {
		_, err := ParseSerialNumber(s)
		assert.True(t, errors.Is(err, ErrSerialNumber), "input %q", s)
	}
}

func TestNewSerialNumberDegradesToEmpty(t *testing.T) {
	sn := NewSerialNumber("not a serial number")
	assert.True(t, sn.IsEmpty())
	assert.Equal(t, DefaultSerialNumber().String(), sn.String())
	assert.Len(t, sn.String(), SerialNumberWidth)
}

func TestSerialNumberRepeatedCodes(t *testing.T) {
	sn := NewSerialNumber(serialWith("2020"))
	want := []Subsystem{NewSubsystem('2', 0), NewSubsystem('2', 1)}
	if diff := cmp.Diff(want, sn.SubsystemsWithCode('2')); diff != "" {
		t.Errorf("SubsystemsWithCode mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, sn.SubsystemsWithCode('3'))
}

func TestSerialNumberFieldSetters(t *testing.T) {
	sn := NewSerialNumber(serialWith("2"))
	orig := sn.String()

	assert.False(t, sn.SetBaseHardware("123"))
	assert.False(t, sn.SetSubsystems(strings.Repeat("2", SubsystemsWidth+1)))
	assert.False(t, sn.SetSpare(strings.Repeat("1", SpareWidth+1)))
	assert.False(t, sn.SetSystemSerialNumber(100000000))
	assert.Equal(t, orig, sn.String())

	require.True(t, sn.SetBaseHardware("0A"))
	require.True(t, sn.SetSpare("7"))
	require.True(t, sn.SetSystemSerialNumber(42))
	require.True(t, sn.SetSubsystems("34"))

	assert.Equal(t, "0A"+"340000000000000"+"700000000"+"00000042", sn.String())
	assert.Equal(t, []Subsystem{NewSubsystem('3', 0), NewSubsystem('4', 1)}, sn.SubSystemsList())
}

func TestSerialNumberEmptiness(t *testing.T) {
	sn := DefaultSerialNumber()
	assert.True(t, sn.IsEmpty())

	require.True(t, sn.SetSystemSerialNumber(99))
	require.True(t, sn.SetSpare("ABC"))
	assert.True(t, sn.IsEmpty())

	require.True(t, sn.AddSubsystem(NewSubsystem('2', 0)))
	assert.False(t, sn.IsEmpty())
}

func TestAddSubsystem(t *testing.T) {
	sn := NewSerialNumber(serialWith("203"))

	require.True(t, sn.AddSubsystem(NewSubsystem('2', 9)))
	assert.Equal(t, "223000000000000", sn.SubsystemsString())
	assert.Equal(t, []Subsystem{NewSubsystem('2', 0), NewSubsystem('2', 1), NewSubsystem('3', 2)}, sn.SubSystemsList())

	assert.False(t, sn.AddSubsystem(NewSubsystem(EmptyCode, 0)))

	full := NewSerialNumber(serialWith(strings.Repeat("2", SubsystemsWidth)))
	assert.False(t, full.AddSubsystem(NewSubsystem('3', 0)))
}

func TestRemoveSubsystem(t *testing.T) {
	sn := NewSerialNumber(serialWith("2323"))

	assert.False(t, sn.RemoveSubsystem(NewSubsystem('2', 1)))
	assert.False(t, sn.RemoveSubsystem(NewSubsystem('4', 0)))
	assert.Equal(t, "232300000000000", sn.SubsystemsString())

	require.True(t, sn.RemoveSubsystem(NewSubsystem('3', 1)))
	assert.Equal(t, "223000000000000", sn.SubsystemsString())
	want := []Subsystem{NewSubsystem('2', 0), NewSubsystem('2', 1), NewSubsystem('3', 2)}
	if diff := cmp.Diff(want, sn.SubSystemsList()); diff != "" {
		t.Errorf("SubSystemsList mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialNumberCopiesAreIndependent(t *testing.T) {
	a := NewSerialNumber(serialWith("2"))
	b := a
	require.True(t, b.AddSubsystem(NewSubsystem('3', 0)))

	assert.Len(t, a.SubSystemsList(), 1)
	assert.Len(t, b.SubSystemsList(), 2)
}

func TestZeroSerialNumber(t *testing.T) {
	var sn SerialNumber
	assert.True(t, sn.IsEmpty())
	assert.Equal(t, DefaultSerialNumber().String(), sn.String())

	require.True(t, sn.AddSubsystem(NewSubsystem('2', 0)))
	assert.Equal(t, "01", sn.BaseHardware())
}
