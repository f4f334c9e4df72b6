package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/campus-facility-reservation/internal/engine"
	"github.com/iliyamo/campus-facility-reservation/internal/model"
)

func TestMeetingSlots(t *testing.T) {
	slots := MeetingSlots()
	require.Len(t, slots, 9)

	assert.Equal(t, "9-10", slots[0].ID)
	assert.Equal(t, "09:00 ~ 10:00", slots[0].Label)
	assert.Equal(t, "17-18", slots[8].ID)

	for _, s := range slots {
		assert.True(t, engine.IsWithinOperatingHours(s), "slot %s outside operating hours", s.ID)
		assert.Equal(t, 1.0, engine.SlotDurationHours(s))
	}
	assert.False(t, engine.SlotsListOverlap(slots), "hourly meeting slots must not overlap")
}

func TestReadingSlots(t *testing.T) {
	slots := ReadingSlots()
	require.Len(t, slots, 8)

	assert.Equal(t, "9-11", slots[0].ID)
	assert.Equal(t, "16-18", slots[7].ID)

	for _, s := range slots {
		assert.True(t, engine.IsWithinOperatingHours(s))
		assert.Equal(t, 2.0, engine.SlotDurationHours(s))
	}
	// consecutive start hours make adjacent reading windows overlap;
	// the engine filters overlapping picks per request
	assert.True(t, engine.SlotsOverlap(slots[0], slots[1]))
}

func TestSlotByID(t *testing.T) {
	s, ok := SlotByID(model.FacilityMeeting, "13-14")
	require.True(t, ok)
	assert.Equal(t, 13*60, s.StartMinutes)

	_, ok = SlotByID(model.FacilityMeeting, "13-15")
	assert.False(t, ok, "reading slot ids are not valid meeting slots")

	_, ok = SlotByID(model.FacilityReading, "13-15")
	assert.True(t, ok)

	_, ok = SlotByID(model.FacilityKind("LOUNGE"), "9-10")
	assert.False(t, ok)
}
