// File: services/voice/timeslot_test.go
package voice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestCurrentSlot(t *testing.T) {
	assert.Equal(t, 0, CurrentSlot(at(0, 7)))
	assert.Equal(t, 48, CurrentSlot(at(12, 0)))
	assert.Equal(t, 60, CurrentSlot(at(15, 0)))
	assert.Equal(t, 95, CurrentSlot(at(23, 59)))
}

func TestSlotToClock(t *testing.T) {
	assert.Equal(t, "00:00", SlotToClock(0))
	assert.Equal(t, "18:30", SlotToClock(74))
	assert.Equal(t, "19:00", SlotToClock(76))
}

func TestExtractSlotPerLe(t *testing.T) {
	slot := ExtractSlotFromSpeech("vorrei ritirare per le 7", at(15, 0))
	// 7 spoken in the afternoon means 19:00.
	assert.Equal(t, 76, slot)
}

func TestExtractSlotAlleWithMinutes(t *testing.T) {
	slot := ExtractSlotFromSpeech("passo alle 18:30", at(10, 0))
	assert.Equal(t, 74, slot)
}

func TestExtractSlotBareHourAndMinutes(t *testing.T) {
	slot := ExtractSlotFromSpeech("7 e 30", at(10, 0))
	assert.Equal(t, 30, slot)
}

func TestExtractSlotNoPromotionInTheMorning(t *testing.T) {
	slot := ExtractSlotFromSpeech("vorrei ritirare per le 11", at(9, 0))
	assert.Equal(t, 44, slot)
}

func TestExtractSlotDefaultsThirtyMinutesAhead(t *testing.T) {
	slot := ExtractSlotFromSpeech("appena possibile grazie", at(12, 0))
	assert.Equal(t, CurrentSlot(at(12, 0))+MinLeadSlots, slot)
}
