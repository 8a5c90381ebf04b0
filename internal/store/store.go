// Package store is the single source of truth for the whole application
// state: notes, user templates, settings and the cached entitlement flag.
// Every mutation goes through the line codec, produces a fresh state value
// (copy-on-write, readers never see a half-updated note) and notifies the
// persistence hook with the new snapshot.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"notted/internal/linecodec"
	"notted/internal/templates"
)

// SchemaVersion is stamped into every persisted state record. Version 0
// (or a missing field) marks the legacy per-item object model.
const SchemaVersion = 1

// ThemeMode selects the app color scheme.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// Note is a single user note. Content carries the line-codec encoding;
// Mode is fixed at creation and selects how content is edited (a text
// note that happens to contain a "- " line stays a text note).
type Note struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Mode      linecodec.Mode `json:"mode"`
	CreatedAt int64          `json:"createdAt"`
	UpdatedAt int64          `json:"updatedAt"`
}

// Template is a user-saved content preset. Built-in templates ship as
// static data (package templates) and never appear here.
type Template struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	IsBuiltIn bool   `json:"isBuiltIn"`
	CreatedAt int64  `json:"createdAt"`
}

// State is the whole persisted application state, one record under one
// storage key.
type State struct {
	Notes               []Note     `json:"notes"`
	Templates           []Template `json:"templates"`
	ActiveNoteID        string     `json:"activeNoteId"`
	IsPremium           bool       `json:"isPremium"`
	PurchaseEmail       string     `json:"purchaseEmail"`
	ThemeMode           ThemeMode  `json:"themeMode"`
	Language            string     `json:"language"`
	HapticsEnabled      bool       `json:"hapticsEnabled"`
	ShakeToClearEnabled bool       `json:"shakeToClearEnabled"`
	HasSeenOnboarding   bool       `json:"hasSeenOnboarding"`
	DrawerPeekHeight    int        `json:"drawerPeekHeight"`
	SchemaVersion       int        `json:"schemaVersion"`
}

// DefaultState returns the state used on first launch.
func DefaultState() State {
	return State{
		Notes:               []Note{},
		Templates:           []Template{},
		ThemeMode:           ThemeSystem,
		HapticsEnabled:      true,
		ShakeToClearEnabled: true,
		DrawerPeekHeight:    80,
		SchemaVersion:       SchemaVersion,
	}
}

// Store wraps a State with mutation operations. The onChange hook is
// called with a snapshot after every mutation, outside the store lock;
// callers wire it to the persistence adapter.
type Store struct {
	mu       sync.RWMutex
	state    State
	onChange func(State)
	now      func() int64
}

// New builds a store around an initial state. onChange may be nil.
func New(initial State, onChange func(State)) *Store {
	if initial.Notes == nil {
		initial.Notes = []Note{}
	}
	if initial.Templates == nil {
		initial.Templates = []Template{}
	}
	initial.SchemaVersion = SchemaVersion
	return &Store{
		state:    initial,
		onChange: onChange,
		now:      func() int64 { return time.Now().UnixMilli() },
	}
}

func (s *Store) notify(snap State) {
	if s.onChange != nil {
		s.onChange(snap)
	}
}

// snapshotLocked copies the state so callers can never alias the store's
// slices. Must be called with the lock held.
func (s *Store) snapshotLocked() State {
	snap := s.state
	snap.Notes = make([]Note, len(s.state.Notes))
	copy(snap.Notes, s.state.Notes)
	snap.Templates = make([]Template, len(s.state.Templates))
	copy(snap.Templates, s.state.Templates)
	return snap
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Notes returns a copy of all notes, in creation order.
func (s *Store) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	notes := make([]Note, len(s.state.Notes))
	copy(notes, s.state.Notes)
	return notes
}

// Note returns the note with the given id.
func (s *Store) Note(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.state.Notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// ActiveNoteID returns the current active note pointer. The pointer may
// dangle after a delete from another path; consumers treat an unknown id
// as "no note".
func (s *Store) ActiveNoteID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ActiveNoteID
}

// IsPremium reports the cached entitlement flag.
func (s *Store) IsPremium() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsPremium
}

// PurchaseEmail returns the email last used for a successful restore.
func (s *Store) PurchaseEmail() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.PurchaseEmail
}

// CreateNote appends a new empty note and makes it active. Non-premium
// installs are capped at one note: past the cap the first note's id is
// returned and nothing is created. The cap is re-checked on every call,
// so unlocking premium mid-session takes effect immediately.
func (s *Store) CreateNote(mode linecodec.Mode) string {
	s.mu.Lock()
	if !s.state.IsPremium && len(s.state.Notes) >= 1 {
		id := s.state.Notes[0].ID
		s.mu.Unlock()
		return id
	}

	ts := s.now()
	note := Note{
		ID:        uuid.NewString(),
		Mode:      mode,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	s.state.Notes = append(append([]Note{}, s.state.Notes...), note)
	s.state.ActiveNoteID = note.ID
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return note.ID
}

// CreateNoteFromTemplate creates a note from a built-in payload or a
// user template looked up by id, with the same free-tier gating as
// CreateNote. When neither resolves the note starts empty. Template
// notes are list mode.
func (s *Store) CreateNoteFromTemplate(templateID string, builtIn *templates.BuiltIn) string {
	s.mu.Lock()
	if !s.state.IsPremium && len(s.state.Notes) >= 1 {
		id := s.state.Notes[0].ID
		s.mu.Unlock()
		return id
	}

	var title, content string
	if builtIn != nil {
		title = builtIn.Title
		content = builtIn.Content
	} else {
		for _, t := range s.state.Templates {
			if t.ID == templateID {
				title = t.Title
				content = t.Content
				break
			}
		}
	}

	ts := s.now()
	note := Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Mode:      linecodec.ModeList,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	s.state.Notes = append(append([]Note{}, s.state.Notes...), note)
	s.state.ActiveNoteID = note.ID
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return note.ID
}

// DeleteNote removes a note. When the active note is deleted the pointer
// moves to the first remaining note, or clears when none remain. Unknown
// ids are a no-op.
func (s *Store) DeleteNote(id string) {
	s.mu.Lock()
	kept := make([]Note, 0, len(s.state.Notes))
	found := false
	for _, n := range s.state.Notes {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		s.mu.Unlock()
		return
	}
	s.state.Notes = kept
	if s.state.ActiveNoteID == id {
		if len(kept) > 0 {
			s.state.ActiveNoteID = kept[0].ID
		} else {
			s.state.ActiveNoteID = ""
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// SetActiveNote updates the active note pointer without validating that
// the id exists.
func (s *Store) SetActiveNote(id string) {
	s.mu.Lock()
	s.state.ActiveNoteID = id
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// updateNote applies fn to the note with the given id, refreshing
// updatedAt. Unknown ids are silently ignored.
func (s *Store) updateNote(id string, fn func(*Note)) {
	s.mu.Lock()
	idx := -1
	for i, n := range s.state.Notes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	notes := make([]Note, len(s.state.Notes))
	copy(notes, s.state.Notes)
	fn(&notes[idx])
	notes[idx].UpdatedAt = s.now()
	s.state.Notes = notes
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// UpdateNoteTitle replaces a note's title.
func (s *Store) UpdateNoteTitle(id, title string) {
	s.updateNote(id, func(n *Note) { n.Title = title })
}

// UpdateContent replaces a note's content verbatim. Normalization
// happens at FinishEditing, not per keystroke.
func (s *Store) UpdateContent(id, content string) {
	s.updateNote(id, func(n *Note) { n.Content = content })
}

// SetNoteMode switches a note between text and list editing.
func (s *Store) SetNoteMode(id string, mode linecodec.Mode) {
	s.updateNote(id, func(n *Note) { n.Mode = mode })
}

// ToggleLine flips the checked state of one checklist line.
func (s *Store) ToggleLine(noteID string, lineIndex int) {
	s.updateNote(noteID, func(n *Note) {
		n.Content = linecodec.Toggle(n.Content, lineIndex)
	})
}

// ClearCheckedItems removes every checked line from a note.
func (s *Store) ClearCheckedItems(noteID string) {
	s.updateNote(noteID, func(n *Note) {
		n.Content = linecodec.ClearChecked(n.Content)
	})
}

// UpdateLine rewrites one line's text, deleting the line when the new
// text is blank.
func (s *Store) UpdateLine(noteID string, lineIndex int, text string) {
	s.updateNote(noteID, func(n *Note) {
		n.Content = linecodec.UpdateLine(n.Content, lineIndex, text)
	})
}

// AddLine inserts a line at the given index (or appends when at is
// negative), honoring the note's mode.
func (s *Store) AddLine(noteID, text string, at int) {
	s.updateNote(noteID, func(n *Note) {
		n.Content = linecodec.InsertLine(n.Content, text, at, n.Mode)
	})
}

// isEmpty is the prune rule: blank title and no meaningful content for
// the note's mode.
func isEmpty(n Note) bool {
	return strings.TrimSpace(n.Title) == "" && linecodec.IsBlank(n.Content, n.Mode)
}

// FinishEditing commits an edit session: content is normalized and an
// empty note is pruned. Returns true when the note was deleted.
func (s *Store) FinishEditing(id string) bool {
	s.mu.Lock()
	idx := -1
	for i, n := range s.state.Notes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	notes := make([]Note, len(s.state.Notes))
	copy(notes, s.state.Notes)
	notes[idx].Content = linecodec.Normalize(notes[idx].Content)

	pruned := isEmpty(notes[idx])
	if pruned {
		notes = append(notes[:idx], notes[idx+1:]...)
		if s.state.ActiveNoteID == id {
			if len(notes) > 0 {
				s.state.ActiveNoteID = notes[0].ID
			} else {
				s.state.ActiveNoteID = ""
			}
		}
	}
	s.state.Notes = notes
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return pruned
}

// Templates returns a copy of the user templates.
func (s *Store) Templates() []Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Template, len(s.state.Templates))
	copy(out, s.state.Templates)
	return out
}

// SaveAsTemplate snapshots a note as a user template with every checked
// item reset to unchecked. Empty notes are not saved. Returns the new
// template id, or "" when nothing was saved.
func (s *Store) SaveAsTemplate(noteID string) string {
	s.mu.Lock()
	var note *Note
	for i := range s.state.Notes {
		if s.state.Notes[i].ID == noteID {
			note = &s.state.Notes[i]
			break
		}
	}
	if note == nil || isEmpty(*note) {
		s.mu.Unlock()
		return ""
	}

	title := note.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled Template"
	}
	tpl := Template{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   linecodec.ResetChecked(note.Content),
		CreatedAt: s.now(),
	}
	s.state.Templates = append(append([]Template{}, s.state.Templates...), tpl)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return tpl.ID
}

// DeleteTemplate removes a user template. A template flagged IsBuiltIn
// is never removed.
func (s *Store) DeleteTemplate(id string) {
	s.mu.Lock()
	kept := make([]Template, 0, len(s.state.Templates))
	found := false
	for _, t := range s.state.Templates {
		if t.ID == id && !t.IsBuiltIn {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		s.mu.Unlock()
		return
	}
	s.state.Templates = kept
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// SetPremium updates the entitlement flag; a non-empty email is recorded
// as the purchase email (verified restores pass one, deep-link unlocks
// do not).
func (s *Store) SetPremium(isPremium bool, email string) {
	s.mu.Lock()
	s.state.IsPremium = isPremium
	if email != "" {
		s.state.PurchaseEmail = email
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

func (s *Store) setField(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// SetThemeMode updates the theme setting.
func (s *Store) SetThemeMode(mode ThemeMode) {
	s.setField(func(st *State) { st.ThemeMode = mode })
}

// SetLanguage updates the language override; empty means device default.
func (s *Store) SetLanguage(lang string) {
	s.setField(func(st *State) { st.Language = lang })
}

// SetHapticsEnabled toggles haptic feedback.
func (s *Store) SetHapticsEnabled(enabled bool) {
	s.setField(func(st *State) { st.HapticsEnabled = enabled })
}

// SetShakeToClearEnabled toggles shake-to-clear.
func (s *Store) SetShakeToClearEnabled(enabled bool) {
	s.setField(func(st *State) { st.ShakeToClearEnabled = enabled })
}

// SetHasSeenOnboarding records that onboarding was shown.
func (s *Store) SetHasSeenOnboarding(seen bool) {
	s.setField(func(st *State) { st.HasSeenOnboarding = seen })
}

// SetDrawerPeekHeight stores the legacy drawer peek height.
func (s *Store) SetDrawerPeekHeight(height int) {
	s.setField(func(st *State) { st.DrawerPeekHeight = height })
}

// ResetAllData wipes everything back to first-launch defaults, including
// the premium flag.
func (s *Store) ResetAllData() {
	s.mu.Lock()
	s.state = DefaultState()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}
