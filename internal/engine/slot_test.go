package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/campus-facility-reservation/internal/model"
)

func slot(id string, startHour, endHour int) model.TimeSlot {
	return model.TimeSlot{
		ID:           id,
		Label:        id,
		StartMinutes: startHour * 60,
		EndMinutes:   endHour * 60,
	}
}

func TestSlotsOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b model.TimeSlot
		want bool
	}{
		{"identical", slot("9-10", 9, 10), slot("9-10", 9, 10), true},
		{"partial overlap", slot("9-11", 9, 11), slot("10-12", 10, 12), true},
		{"contained", slot("9-13", 9, 13), slot("10-11", 10, 11), true},
		{"touching boundaries", slot("9-10", 9, 10), slot("10-11", 10, 11), false},
		{"disjoint", slot("9-10", 9, 10), slot("14-16", 14, 16), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotsOverlap(tt.a, tt.b))
			assert.Equal(t, tt.want, SlotsOverlap(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestSlotsListOverlap(t *testing.T) {
	tests := []struct {
		name  string
		slots []model.TimeSlot
		want  bool
	}{
		{"empty", nil, false},
		{"single", []model.TimeSlot{slot("9-10", 9, 10)}, false},
		{"disjoint pair", []model.TimeSlot{slot("9-11", 9, 11), slot("11-13", 11, 13)}, false},
		{"overlapping pair", []model.TimeSlot{slot("13-15", 13, 15), slot("14-16", 14, 16)}, true},
		{"overlap later in list", []model.TimeSlot{slot("9-10", 9, 10), slot("13-15", 13, 15), slot("14-16", 14, 16)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotsListOverlap(tt.slots))
		})
	}
}

func TestSlotDurationHours(t *testing.T) {
	assert.Equal(t, 1.0, SlotDurationHours(slot("9-10", 9, 10)))
	assert.Equal(t, 2.0, SlotDurationHours(slot("13-15", 13, 15)))

	// 90 minutes must come out fractional, not truncated.
	ninety := model.TimeSlot{ID: "x", StartMinutes: 9 * 60, EndMinutes: 9*60 + 90}
	assert.Equal(t, 1.5, SlotDurationHours(ninety))
}

func TestIsWithinOperatingHours(t *testing.T) {
	tests := []struct {
		name string
		s    model.TimeSlot
		want bool
	}{
		{"opening slot", slot("9-10", 9, 10), true},
		{"closing slot", slot("17-18", 17, 18), true},
		{"full day window", slot("9-18", 9, 18), true},
		{"starts too early", slot("8-9", 8, 9), false},
		{"ends too late", slot("17-19", 17, 19), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithinOperatingHours(tt.s))
		})
	}
}
