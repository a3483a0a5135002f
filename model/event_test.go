package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventMode(t *testing.T) {
	t.Parallel()
	mode, ok := ParseEventMode("Online")
	assert.True(t, ok)
	assert.Equal(t, EventModeOnline, mode)

	mode, ok = ParseEventMode(" HYBRID ")
	assert.True(t, ok)
	assert.Equal(t, EventModeHybrid, mode)

	_, ok = ParseEventMode("in-person")
	assert.False(t, ok)
}

func TestNormalizeEvent_ModeAlwaysInSet(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		name string
		raw  map[string]any
		want EventMode
	}{
		{"pascal upper", map[string]any{"Mode": "ONLINE"}, EventModeOnline},
		{"snake mixed", map[string]any{"mode": "Hybrid"}, EventModeHybrid},
		{"missing defaults offline", map[string]any{}, EventModeOffline},
		{"garbage defaults offline", map[string]any{"mode": "teleport"}, EventModeOffline},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			ev := NormalizeEvent(tc.raw)
			assert.Equal(t, tc.want, ev.Mode)
			assert.True(t, ev.Mode.Valid())
		})
	}
}

func TestNormalizeEvent_StatusDefaultsToPublished(t *testing.T) {
	t.Parallel()
	ev := NormalizeEvent(map[string]any{"Title": "Pelatihan"})
	assert.Equal(t, EventStatusPublished, ev.Status)

	ev = NormalizeEvent(map[string]any{"status": "draft"})
	assert.Equal(t, EventStatusDraft, ev.Status)
}

func TestNormalizeEvent_PascalFields(t *testing.T) {
	t.Parallel()
	ev := NormalizeEvent(map[string]any{
		"ID":       "ev-1",
		"Title":    "Workshop Isyarat",
		"Mode":     "Offline",
		"Location": "Jakarta",
		"StartsAt": "2026-09-01T09:00:00Z",
		"Capacity": float64(40),
	})
	assert.Equal(t, "ev-1", ev.ID)
	assert.Equal(t, "Workshop Isyarat", ev.Title)
	assert.Equal(t, EventModeOffline, ev.Mode)
	assert.Equal(t, "Jakarta", ev.Location)
	assert.Equal(t, 40, ev.Capacity)
}

func TestNormalizeEvent_Idempotent(t *testing.T) {
	t.Parallel()
	first := NormalizeEvent(map[string]any{
		"ID":    "ev-2",
		"Title": "Seminar",
		"Mode":  "ONLINE",
	})

	data, err := json.Marshal(first)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, first, NormalizeEvent(raw))
}
