// File: services/voice/timeslot.go
package voice

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Clock supplies wall-clock time. Injected so slot arithmetic is testable.
type Clock func() time.Time

// MinLeadSlots is the minimum preparation lead time expressed in slots
// (2 slots = 30 minutes).
const MinLeadSlots = 2

// SlotMinutes is the width of a pickup slot.
const SlotMinutes = 15

// CurrentSlot returns the slot index of the given wall-clock time:
// minutes since midnight divided by the slot width, floored.
func CurrentSlot(now time.Time) int {
	minutes := now.Hour()*60 + now.Minute()
	return minutes / SlotMinutes
}

// SlotToClock renders a slot index as a zero-padded "HH:MM" string.
func SlotToClock(slot int) string {
	totalMinutes := slot * SlotMinutes
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// timePattern recognizes spoken times such as "per le 7:15", "alle 19:30"
// or "7 e 15". Groups 1/3/5 capture hours, 2/4/6 minutes.
var timePattern = regexp.MustCompile(`(?i)per\s+le\s+(\d{1,2})(?::(\d{1,2}))?|\s+alle\s+(\d{1,2})(?::(\d{1,2}))?|\s+(\d{1,2})[:\s][eE]?\s*(\d{1,2})?\s`)

// ExtractSlotFromSpeech scans the transcript for a time expression and
// converts it to a slot index. Hours between 1 and 11 are promoted to PM
// when the current wall-clock hour is already past noon, since callers
// never say AM or PM. Without a match it returns a slot 30 minutes ahead;
// this function never fails.
func ExtractSlotFromSpeech(text string, now time.Time) int {
	slot, ok := slotFromSpeech(text, now)
	if !ok {
		return CurrentSlot(now) + MinLeadSlots
	}
	return slot
}

func slotFromSpeech(text string, now time.Time) (int, bool) {
	// Padding lets the whitespace-anchored alternatives match at the
	// transcript boundaries.
	m := timePattern.FindStringSubmatch(" " + text + " ")
	if m == nil {
		return 0, false
	}

	hours := firstNumber(m[1], m[3], m[5])
	minutes := firstNumber(m[2], m[4], m[6])

	if hours >= 1 && hours <= 11 && now.Hour() >= 12 {
		hours += 12
	}

	return (hours*60 + minutes) / SlotMinutes, true
}

func firstNumber(groups ...string) int {
	for _, g := range groups {
		if g == "" {
			continue
		}
		n, err := strconv.Atoi(g)
		if err != nil {
			continue
		}
		return n
	}
	return 0
}
