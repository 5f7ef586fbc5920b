// Package timeslot implements wall-clock interval arithmetic for bookings.
// Times are "HH:MM" 24-hour strings; "24:00" is accepted as an exclusive
// end-of-day sentinel. All intervals are half-open: [start, end).
package timeslot

import (
	"fmt"
	"strconv"
	"time"
)

// EndOfDay is the exclusive end-of-day sentinel.
const EndOfDay = "24:00"

// Slot is an occupied [Start, End) interval within one day.
type Slot struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// Parse converts "HH:MM" to minutes from midnight. "24:00" parses to 1440.
func Parse(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, fmt.Errorf("timeslot: malformed clock %q", clock)
	}
	h, err := strconv.Atoi(clock[:2])
	if err != nil {
		return 0, fmt.Errorf("timeslot: malformed clock %q", clock)
	}
	m, err := strconv.Atoi(clock[3:])
	if err != nil {
		return 0, fmt.Errorf("timeslot: malformed clock %q", clock)
	}
	if m < 0 || m > 59 || h < 0 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("timeslot: clock %q out of range", clock)
	}
	return h*60 + m, nil
}

// Format is the inverse of Parse. 1440 formats as "24:00".
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Duration returns end-start in minutes, or 0 if either side is malformed.
func Duration(start, end string) int {
	s, err := Parse(start)
	if err != nil {
		return 0
	}
	e, err := Parse(end)
	if err != nil {
		return 0
	}
	if e < s {
		return 0
	}
	return e - s
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// An empty range (start == end) never overlaps anything. If any operand is
// empty or malformed no check is performed and the result is false; callers
// must require complete input before trusting a negative answer.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	as, err := Parse(aStart)
	if err != nil {
		return false
	}
	ae, err := Parse(aEnd)
	if err != nil {
		return false
	}
	bs, err := Parse(bStart)
	if err != nil {
		return false
	}
	be, err := Parse(bEnd)
	if err != nil {
		return false
	}
	if as == ae || bs == be {
		return false
	}
	return as < be && ae > bs
}

// IsPointBooked reports whether t falls inside any slot, treating each slot
// as [start, end). Ends are exclusive, so t equal to a slot's end is free.
func IsPointBooked(t string, slots []Slot) bool {
	p, err := Parse(t)
	if err != nil {
		return false
	}
	for _, s := range slots {
		start, err := Parse(s.Start)
		if err != nil {
			continue
		}
		end, err := Parse(s.End)
		if err != nil {
			continue
		}
		if p >= start && p < end {
			return true
		}
	}
	return false
}

// IsRangeOverlapping reports whether [start, end) intersects any slot.
func IsRangeOverlapping(start, end string, slots []Slot) bool {
	for _, s := range slots {
		if Overlaps(start, end, s.Start, s.End) {
			return true
		}
	}
	return false
}

// Generate enumerates selectable clock times from 00:00 up to but not past
// 23:45 at the given step, then appends the "24:00" sentinel. Steps in use
// are 30 (meeting rooms) and 15 (pods).
func Generate(stepMinutes int) []string {
	if stepMinutes <= 0 {
		stepMinutes = 30
	}
	out := make([]string, 0, 24*60/stepMinutes+1)
	for m := 0; m < 24*60; m += stepMinutes {
		out = append(out, Format(m))
	}
	return append(out, EndOfDay)
}

// FilterFrom keeps options at or after now+lookAhead within now's day.
// Used for same-day bookings so users cannot pick a start in the immediate
// past; the observed look-ahead buffer is 15 minutes.
func FilterFrom(options []string, now time.Time, lookAhead time.Duration) []string {
	cutoff := now.Add(lookAhead)
	if cutoff.Day() != now.Day() {
		return nil
	}
	cm := cutoff.Hour()*60 + cutoff.Minute()
	out := make([]string, 0, len(options))
	for _, opt := range options {
		m, err := Parse(opt)
		if err != nil {
			continue
		}
		if m >= cm {
			out = append(out, opt)
		}
	}
	return out
}

// EndOptions keeps only options strictly after the chosen start time.
func EndOptions(options []string, start string) []string {
	sm, err := Parse(start)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(options))
	for _, opt := range options {
		m, err := Parse(opt)
		if err != nil {
			continue
		}
		if m > sm {
			out = append(out, opt)
		}
	}
	return out
}
