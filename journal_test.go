package main

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gripgear/designer/internal/configurator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionJournalRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "selections.jsonl")
	j := newSelectionJournal(path, "session-1", "sam")
	fixed := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	j.now = func() time.Time { return fixed }

	j.Record(configurator.TemplateChanged{TemplateID: 3})
	j.Record(configurator.ColorChanged{Channel: configurator.ChannelBackground, Color: "#E4002B"})
	j.Record(configurator.LogoChanged{Logos: configurator.LogoSelection{Left: "a.png", Full: "b.png"}})
	j.Record(configurator.QuantityBlurred{})

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []journalEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e journalEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, entries, 4)

	assert.Equal(t, journalEntry{
		SessionID:  "session-1",
		UserID:     "sam",
		Timestamp:  fixed,
		Event:      "template_changed",
		TemplateID: 3,
	}, entries[0])
	assert.Equal(t, "background", entries[1].Channel)
	assert.Equal(t, "#E4002B", entries[1].Color)
	assert.Equal(t, "a.png", entries[2].LeftLogo)
	assert.Equal(t, "b.png", entries[2].FullLogo)
	assert.Equal(t, "quantity_blurred", entries[3].Event)
}

func TestNilJournalIsSafe(t *testing.T) {
	var j *selectionJournal
	assert.NotPanics(t, func() { j.Record(configurator.QuantityBlurred{}) })
}

func TestNewSessionIDIsUnique(t *testing.T) {
	a, b := newSessionID(), newSessionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
