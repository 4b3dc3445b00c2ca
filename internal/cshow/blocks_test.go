package cshow

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/adcp-config/internal/adcp"
)

func TestParseBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Block
	}{
		{
			name: "three blocks",
			in:   "[0] 0.10 [1] 0.11 [2] 0.22",
			want: []Block{
				{Index: 0, Values: adcp.Values{"0.10"}},
				{Index: 1, Values: adcp.Values{"0.11"}},
				{Index: 2, Values: adcp.Values{"0.22"}},
			},
		},
		{
			name: "csv values",
			in:   "[0] 0.4,1.0,1.0  [1]0.5, 2.0,3.0",
			want: []Block{
				{Index: 0, Values: adcp.Values{"0.4", "1.0", "1.0"}},
				{Index: 1, Values: adcp.Values{"0.5", "2.0", "3.0"}},
			},
		},
		{
			name: "empty block",
			in:   "[0] [1] 1",
			want: []Block{
				{Index: 0},
				{Index: 1, Values: adcp.Values{"1"}},
			},
		},
		{
			name: "stops at malformed index",
			in:   "[0] 1 [x] 2 [2] 3",
			want: []Block{{Index: 0, Values: adcp.Values{"1"}}},
		},
		{
			name: "unterminated bracket",
			in:   "[0] 1 [1 2",
			want: []Block{{Index: 0, Values: adcp.Values{"1"}}},
		},
		{
			name: "no brackets",
			in:   "0.1",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseBlocks(tt.in)); diff != "" {
				t.Errorf("ParseBlocks(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	line, ok := ParseLine("  CWPBL[0] 0.10 [1] 0.11")
	require.True(t, ok)
	assert.Equal(t, "CWPBL", line.Name)
	assert.True(t, line.Indexed)
	assert.Len(t, line.Blocks, 2)

	line, ok = ParseLine("CWPBL [0] 0.10")
	require.True(t, ok)
	assert.True(t, line.Indexed)

	line, ok = ParseLine("CETFP 2024/06/01,12:00:00.00")
	require.True(t, ok)
	assert.False(t, line.Indexed)
	assert.Equal(t, adcp.Values{"2024/06/01", "12:00:00.00"}, line.Values)

	line, ok = ParseLine("Mode Profile")
	require.True(t, ok)
	assert.Equal(t, "Mode", line.Name)

	_, ok = ParseLine("=== banner ===")
	assert.False(t, ok)
}

func TestFrameLines(t *testing.T) {
	assert.Equal(t, []string{"CEPO 2", "CWSS 1500"}, FrameLines("noise\r\nCSHOW\r\n  CEPO 2\r\n\r\n    CWSS 1500\r\nCSHOW END\r\ntrailer"))
	assert.Equal(t, []string{"CEPO 2"}, FrameLines("CEPO 2\n"))
	assert.Nil(t, FrameLines(" \n\n"))
}

func TestResolveSlots(t *testing.T) {
	sn := serialWith("2020")
	slots := ResolveSlots("2222", sn)
	require.Len(t, slots, 4)

	want := []adcp.Subsystem{
		adcp.NewSubsystem('2', 0),
		adcp.NewSubsystem('2', 1),
		adcp.NewSubsystem('2', 1),
		adcp.NewSubsystem('2', 1),
	}
	for i, slot := range slots {
		assert.Equal(t, want[i], slot.Subsystem)
		assert.Equal(t, i, slot.CepoIndex)
	}
	assert.Empty(t, ResolveSlots("", sn))
}
