package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gripgear/designer/internal/configurator"
)

// journalEntry is one committed selection. cmd/journalsummary reads the same
// shape back.
type journalEntry struct {
	SessionID  string    `json:"session_id"`
	UserID     string    `json:"user_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Event      string    `json:"event"`
	Panel      string    `json:"panel,omitempty"`
	TemplateID int       `json:"template_id,omitempty"`
	Channel    string    `json:"channel,omitempty"`
	Color      string    `json:"color,omitempty"`
	LeftLogo   string    `json:"left_logo,omitempty"`
	RightLogo  string    `json:"right_logo,omitempty"`
	FullLogo   string    `json:"full_logo,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
}

type selectionJournal struct {
	path      string
	sessionID string
	userID    string
	now       func() time.Time
	mu        sync.Mutex
}

func newSelectionJournal(path, sessionID, userID string) *selectionJournal {
	dir := filepath.Dir(path)
	_ = os.MkdirAll(dir, 0o755)
	return &selectionJournal{
		path:      path,
		sessionID: strings.TrimSpace(sessionID),
		userID:    strings.TrimSpace(userID),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func journalEntryFor(e configurator.Event) journalEntry {
	entry := journalEntry{Event: string(e.Kind())}
	switch ev := e.(type) {
	case configurator.PanelToggled:
		entry.Panel = string(ev.Panel)
	case configurator.TemplateChanged:
		entry.TemplateID = ev.TemplateID
	case configurator.ColorChanged:
		entry.Channel = string(ev.Channel)
		entry.Color = ev.Color.String()
	case configurator.LogoChanged:
		entry.LeftLogo = ev.Logos.Left
		entry.RightLogo = ev.Logos.Right
		entry.FullLogo = ev.Logos.Full
	case configurator.QuantityChanged:
		entry.Quantity = ev.Quantity
	}
	return entry
}

func (j *selectionJournal) Record(e configurator.Event) {
	if j == nil || e == nil {
		return
	}
	entry := journalEntryFor(e)
	entry.SessionID = j.sessionID
	entry.UserID = j.userID
	entry.Timestamp = j.now()

	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(data)
}

func newSessionID() string {
	return uuid.NewString()
}

func resolveJournalUserID() string {
	candidates := []string{
		os.Getenv("GRIPGEAR_CUSTOMER_ID"),
		os.Getenv("USER"),
		os.Getenv("USERNAME"),
	}
	for _, candidate := range candidates {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
