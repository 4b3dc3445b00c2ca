package adcp

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeValue is an interval in hours, minutes, seconds and hundredths of a
// second. Values are always kept normalized: HSec < 100, Second < 60 and
// Minute < 60, with overflow carried upward. Hours have no upper bound.
type TimeValue struct {
	Hour   uint32 `json:"hour"`
	Minute uint32 `json:"minute"`
	Second uint32 `json:"second"`
	HSec   uint32 `json:"hsec"`
}

// NewTimeValue builds a normalized TimeValue, so that
// NewTimeValue(1, 60, 3, 4) == NewTimeValue(2, 0, 3, 4).
func NewTimeValue(hour, minute, second, hsec uint32) TimeValue {
	second += hsec / 100
	hsec %= 100
	minute += second / 60
	second %= 60
	hour += minute / 60
	minute %= 60
	return TimeValue{Hour: hour, Minute: minute, Second: second, HSec: hsec}
}

// TimeValueFromDuration rounds d down to hundredths of a second.
func TimeValueFromDuration(d time.Duration) TimeValue {
	if d < 0 {
		return TimeValue{}
	}
	return NewTimeValue(0, 0, 0, uint32(d/(10*time.Millisecond)))
}

// Duration converts the interval to a time.Duration.
func (t TimeValue) Duration() time.Duration {
	return time.Duration(t.Hour)*time.Hour +
		time.Duration(t.Minute)*time.Minute +
		time.Duration(t.Second)*time.Second +
		time.Duration(t.HSec)*10*time.Millisecond
}

// String renders the wire form HH:MM:SS.hh.
func (t TimeValue) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%02d", t.Hour, t.Minute, t.Second, t.HSec)
}

// ParseTimeValue parses HH:MM:SS.hh. The hundredths part is optional and a
// single digit is read as tenths, so "00:00:01.5" is 1.50 seconds.
func ParseTimeValue(s string) (TimeValue, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return TimeValue{}, false
	}
	h, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return TimeValue{}, false
	}
	m, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return TimeValue{}, false
	}
	secPart, hsecPart, hasFrac := strings.Cut(parts[2], ".")
	sec, err := strconv.ParseUint(secPart, 10, 32)
	if err != nil {
		return TimeValue{}, false
	}
	var hsec uint64
	if hasFrac {
		if len(hsecPart) == 0 || len(hsecPart) > 2 {
			return TimeValue{}, false
		}
		hsec, err = strconv.ParseUint(hsecPart, 10, 32)
		if err != nil {
			return TimeValue{}, false
		}
		if len(hsecPart) == 1 {
			hsec *= 10
		}
	}
	return NewTimeValue(uint32(h), uint32(m), uint32(sec), uint32(hsec)), true
}
