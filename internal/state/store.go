// Package state implements the in-memory moderation state store.
//
// The Store owns every piece of mutable process state: usage counters, the
// active-user set, the bounded flagged-message log, the bounded message
// history, and the focus-mode timer. A single mutex serializes all reads and
// writes so multi-field snapshots (notably the focus snapshot combining the
// active flag, start time, and accumulated duration) are never torn. Lock
// hold times are O(1) except for the bounded-log eviction trim.
//
// Nothing is persisted; all state lives and dies with the process.
package state

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/safespace-labs/SafeSpace_Backend/internal/constants"
	"github.com/safespace-labs/SafeSpace_Backend/internal/models"
)

// Store holds all mutable moderation state behind one mutex.
type Store struct {
	mu sync.Mutex

	// now is the clock used for timestamps and focus accounting. Tests
	// replace it to get deterministic durations.
	now func() time.Time

	totalMessages   int64
	flaggedMessages int64
	activeUsers     map[string]struct{}

	flagged []models.FlaggedMessage
	history []models.MessageRecord

	focusActive    bool
	focusStartedAt time.Time
	blockedSites   []string
	totalFocusTime time.Duration
}

// NewStore creates an empty store using the real clock.
func NewStore() *Store {
	return &Store{
		now:         func() time.Time { return time.Now().UTC() },
		activeUsers: make(map[string]struct{}),
	}
}

// SetClock replaces the store's clock. Intended for tests only; not safe to
// call once the store is shared between goroutines.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// RecordMessage records the outcome of one moderated message.
//
// Parameters:
//   - user: the sender identity; empty is allowed and excluded from the
//     active-user set
//   - flagged: whether the message was flagged
//
// It increments the usage counters, remembers the user, and appends a record
// to the bounded message history, evicting the oldest entry once the history
// exceeds its limit.
func (s *Store) RecordMessage(user string, flagged bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalMessages++
	if flagged {
		s.flaggedMessages++
	}
	if user != "" {
		s.activeUsers[user] = struct{}{}
	}

	recordedUser := user
	if recordedUser == "" {
		recordedUser = constants.UnknownUser
	}
	s.history = append(s.history, models.MessageRecord{
		User:      recordedUser,
		Flagged:   flagged,
		Timestamp: s.now(),
	})
	if len(s.history) > constants.MessageHistoryLimit {
		s.history = s.history[1:]
	}
}

// RecordFlagged appends an entry to the flagged-message log, evicting the
// oldest entry once the log exceeds its limit.
func (s *Store) RecordFlagged(user, text string, categories map[string]bool) {
	if user == "" {
		user = constants.UnknownUser
	}

	cats := make(map[string]bool, len(categories))
	for name, matched := range categories {
		cats[name] = matched
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.flagged = append(s.flagged, models.FlaggedMessage{
		User:       user,
		Text:       text,
		Categories: cats,
		Timestamp:  s.now(),
	})
	if len(s.flagged) > constants.FlaggedHistoryLimit {
		s.flagged = s.flagged[1:]
	}
}

// FlaggedMessages returns a copy of the retained flagged-message log, oldest
// first.
func (s *Store) FlaggedMessages() []models.FlaggedMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.FlaggedMessage, len(s.flagged))
	copy(out, s.flagged)
	return out
}

// MessageHistory returns a copy of the retained message history, oldest
// first.
func (s *Store) MessageHistory() []models.MessageRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.MessageRecord, len(s.history))
	copy(out, s.history)
	return out
}

// FocusStart begins a focus session, or updates the blocked-site list of the
// running one.
//
// Parameters:
//   - sites: blocked sites for the session; deduplicated and lowercased
//
// Returns:
//   - The focus snapshot after the change
//
// Starting while already active is idempotent for the timer: the original
// start time is kept. The blocked-site list is always replaced — last call
// wins, previous sites are not merged in.
func (s *Store) FocusStart(sites []string) models.FocusStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.focusActive {
		s.focusActive = true
		s.focusStartedAt = s.now()
	}
	s.blockedSites = normalizeSites(sites)

	return s.focusSnapshotLocked()
}

// FocusStop ends the running focus session, folding its elapsed time into
// the accumulated total. Stopping while inactive is a no-op.
func (s *Store) FocusStop() models.FocusStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.focusActive && !s.focusStartedAt.IsZero() {
		s.totalFocusTime += s.now().Sub(s.focusStartedAt)
	}
	s.focusActive = false
	s.focusStartedAt = time.Time{}

	return s.focusSnapshotLocked()
}

// FocusSnapshot returns the current focus state: active flag, start time (nil
// when inactive), accumulated duration in whole seconds including the running
// session, and the blocked-site list.
func (s *Store) FocusSnapshot() models.FocusStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.focusSnapshotLocked()
}

// focusSnapshotLocked computes the focus snapshot. Callers must hold s.mu.
func (s *Store) focusSnapshotLocked() models.FocusStatus {
	total := s.totalFocusTime
	if s.focusActive && !s.focusStartedAt.IsZero() {
		total += s.now().Sub(s.focusStartedAt)
	}

	var startedAt *time.Time
	if s.focusActive && !s.focusStartedAt.IsZero() {
		t := s.focusStartedAt
		startedAt = &t
	}

	return models.FocusStatus{
		Active:          s.focusActive,
		StartedAt:       startedAt,
		DurationSeconds: int64(total / time.Second),
		BlockedSites:    append([]string{}, s.blockedSites...),
	}
}

// StatsSnapshot returns the aggregate usage statistics. Totals come from the
// raw monotonic counters, not the bounded history, so they stay correct past
// the history retention limit.
func (s *Store) StatsSnapshot() models.UsageStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	focus := s.focusSnapshotLocked()
	return models.UsageStats{
		TotalMessages:        s.totalMessages,
		FlaggedMessages:      s.flaggedMessages,
		ActiveUsers:          len(s.activeUsers),
		FlaggedRecent:        len(s.flagged),
		FocusActive:          focus.Active,
		FocusDurationSeconds: focus.DurationSeconds,
	}
}

// normalizeSites deduplicates and lowercases a blocked-site list, dropping
// blanks. The result is sorted so snapshots are stable for clients and tests.
func normalizeSites(sites []string) []string {
	seen := make(map[string]struct{}, len(sites))
	for _, site := range sites {
		normalized := strings.ToLower(strings.TrimSpace(site))
		if normalized == "" {
			continue
		}
		seen[normalized] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for site := range seen {
		out = append(out, site)
	}
	sort.Strings(out)
	return out
}
