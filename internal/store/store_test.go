package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notted/internal/linecodec"
	"notted/internal/templates"
)

func newTestStore(t *testing.T) (*Store, *int) {
	t.Helper()
	changes := 0
	s := New(DefaultState(), func(State) { changes++ })
	return s, &changes
}

func TestCreateNoteFreeTierCap(t *testing.T) {
	s, _ := newTestStore(t)

	first := s.CreateNote(linecodec.ModeList)
	require.NotEmpty(t, first)
	require.Len(t, s.Notes(), 1)

	// Second creation is silently denied and returns the existing note.
	again := s.CreateNote(linecodec.ModeList)
	assert.Equal(t, first, again)
	assert.Len(t, s.Notes(), 1)

	fromTpl := s.CreateNoteFromTemplate("whatever", nil)
	assert.Equal(t, first, fromTpl)
	assert.Len(t, s.Notes(), 1)
}

func TestCreateNotePremiumRemovesCap(t *testing.T) {
	s, _ := newTestStore(t)

	first := s.CreateNote(linecodec.ModeText)
	s.SetPremium(true, "")

	// The cap is re-checked per call, so flipping premium mid-session
	// takes effect immediately.
	second := s.CreateNote(linecodec.ModeText)
	assert.NotEqual(t, first, second)
	assert.Len(t, s.Notes(), 2)
	assert.Equal(t, second, s.ActiveNoteID())
}

func TestCreateNoteFromBuiltInTemplate(t *testing.T) {
	s, _ := newTestStore(t)

	builtIn, ok := templates.Lookup(templates.ShoppingListID)
	require.True(t, ok)

	id := s.CreateNoteFromTemplate(builtIn.ID, &builtIn)
	note, ok := s.Note(id)
	require.True(t, ok)
	assert.Equal(t, builtIn.Title, note.Title)
	assert.Equal(t, builtIn.Content, note.Content)
	assert.Equal(t, linecodec.ModeList, note.Mode)
}

func TestCreateNoteFromUserTemplate(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetPremium(true, "")

	src := s.CreateNote(linecodec.ModeList)
	s.UpdateNoteTitle(src, "Groceries")
	s.UpdateContent(src, "+ milk\n- eggs")
	tplID := s.SaveAsTemplate(src)
	require.NotEmpty(t, tplID)

	id := s.CreateNoteFromTemplate(tplID, nil)
	note, ok := s.Note(id)
	require.True(t, ok)
	assert.Equal(t, "Groceries", note.Title)
	// Checked items were reset when the template was saved.
	assert.Equal(t, "- milk\n- eggs", note.Content)
}

func TestCreateNoteFromUnknownTemplateIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.CreateNoteFromTemplate("no-such-template", nil)
	note, ok := s.Note(id)
	require.True(t, ok)
	assert.Empty(t, note.Title)
	assert.Empty(t, note.Content)
}

func TestDeleteNoteRepointsActive(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetPremium(true, "")

	a := s.CreateNote(linecodec.ModeList)
	b := s.CreateNote(linecodec.ModeList)
	require.Equal(t, b, s.ActiveNoteID())

	s.DeleteNote(b)
	assert.Equal(t, a, s.ActiveNoteID())

	s.DeleteNote(a)
	assert.Empty(t, s.ActiveNoteID())
	assert.Empty(t, s.Notes())

	// Deleting a nonexistent id is a no-op.
	s.DeleteNote("gone")
	assert.Empty(t, s.Notes())
}

func TestDeleteInactiveNoteKeepsActive(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetPremium(true, "")

	a := s.CreateNote(linecodec.ModeList)
	b := s.CreateNote(linecodec.ModeList)
	s.SetActiveNote(a)

	s.DeleteNote(b)
	assert.Equal(t, a, s.ActiveNoteID())
}

func TestSetActiveNoteDoesNotValidate(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetActiveNote("dangling")
	assert.Equal(t, "dangling", s.ActiveNoteID())
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	s, _ := newTestStore(t)

	ts := int64(1000)
	s.now = func() int64 { ts++; return ts }

	id := s.CreateNote(linecodec.ModeList)
	before, _ := s.Note(id)

	s.UpdateContent(id, "- milk")
	after, _ := s.Note(id)
	assert.Greater(t, after.UpdatedAt, before.UpdatedAt)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestMutationsIgnoreUnknownIDs(t *testing.T) {
	s, changes := newTestStore(t)

	s.UpdateNoteTitle("missing", "x")
	s.UpdateContent("missing", "y")
	s.ToggleLine("missing", 0)
	s.ClearCheckedItems("missing")
	assert.Zero(t, *changes)
}

func TestToggleAndClearDelegateToCodec(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.CreateNote(linecodec.ModeList)
	s.UpdateContent(id, "- buy milk\n+ call mom\nfoo")

	s.ToggleLine(id, 0)
	note, _ := s.Note(id)
	assert.Equal(t, "+ buy milk\n+ call mom\nfoo", note.Content)

	s.ClearCheckedItems(id)
	note, _ = s.Note(id)
	assert.Equal(t, "foo", note.Content)
}

func TestAddAndUpdateLine(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.CreateNote(linecodec.ModeList)
	s.AddLine(id, "milk", -1)
	s.AddLine(id, "eggs", -1)
	s.UpdateLine(id, 0, "oat milk")

	note, _ := s.Note(id)
	assert.Equal(t, "- oat milk\n- eggs", note.Content)
}

func TestFinishEditingPrunesEmptyNote(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.CreateNote(linecodec.ModeList)
	s.UpdateContent(id, "- \n+  \n")

	pruned := s.FinishEditing(id)
	assert.True(t, pruned)
	assert.Empty(t, s.Notes())
	assert.Empty(t, s.ActiveNoteID())
}

func TestFinishEditingNormalizesKeptNote(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.CreateNote(linecodec.ModeList)
	s.UpdateContent(id, "- milk\n\n- eggs\n")

	pruned := s.FinishEditing(id)
	assert.False(t, pruned)
	note, _ := s.Note(id)
	assert.Equal(t, "- milk\n- eggs", note.Content)
}

func TestFinishEditingKeepsTitledNote(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.CreateNote(linecodec.ModeText)
	s.UpdateNoteTitle(id, "Ideas")

	assert.False(t, s.FinishEditing(id))
	assert.Len(t, s.Notes(), 1)
}

func TestEmptinessRuleIsModeAware(t *testing.T) {
	// A list note whose lines are all blank items is empty; the same
	// content in text mode is not, because the raw prefixes are text.
	assert.True(t, isEmpty(Note{Mode: linecodec.ModeList, Content: "- \n+ "}))
	assert.False(t, isEmpty(Note{Mode: linecodec.ModeText, Content: "- \n+ "}))
	assert.True(t, isEmpty(Note{Mode: linecodec.ModeText, Content: "  \n "}))
	assert.False(t, isEmpty(Note{Mode: linecodec.ModeList, Title: "t"}))
}

func TestSaveAsTemplate(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.CreateNote(linecodec.ModeList)
	s.UpdateContent(id, "+ done\n- open")

	tplID := s.SaveAsTemplate(id)
	require.NotEmpty(t, tplID)

	tpls := s.Templates()
	require.Len(t, tpls, 1)
	assert.Equal(t, "Untitled Template", tpls[0].Title)
	assert.Equal(t, "- done\n- open", tpls[0].Content)
	assert.False(t, tpls[0].IsBuiltIn)
}

func TestSaveAsTemplateSkipsEmptyNote(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.CreateNote(linecodec.ModeList)
	assert.Empty(t, s.SaveAsTemplate(id))
	assert.Empty(t, s.Templates())

	assert.Empty(t, s.SaveAsTemplate("missing"))
}

func TestDeleteTemplate(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.CreateNote(linecodec.ModeList)
	s.UpdateContent(id, "- a")
	tplID := s.SaveAsTemplate(id)

	s.DeleteTemplate(tplID)
	assert.Empty(t, s.Templates())
}

func TestDeleteTemplateSparesBuiltIns(t *testing.T) {
	st := DefaultState()
	st.Templates = []Template{{ID: "b1", Title: "x", IsBuiltIn: true}}
	s := New(st, nil)

	s.DeleteTemplate("b1")
	assert.Len(t, s.Templates(), 1)
}

func TestSetPremiumKeepsEmailUnlessProvided(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetPremium(true, "user@example.com")
	assert.True(t, s.IsPremium())
	assert.Equal(t, "user@example.com", s.PurchaseEmail())

	// A deep-link unlock passes no email; the recorded one stays.
	s.SetPremium(true, "")
	assert.Equal(t, "user@example.com", s.PurchaseEmail())
}

func TestResetAllData(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetPremium(true, "user@example.com")
	s.CreateNote(linecodec.ModeList)
	s.SetThemeMode(ThemeDark)

	s.ResetAllData()

	snap := s.Snapshot()
	assert.Empty(t, snap.Notes)
	assert.False(t, snap.IsPremium)
	assert.Empty(t, snap.PurchaseEmail)
	assert.Equal(t, ThemeSystem, snap.ThemeMode)
	assert.Equal(t, SchemaVersion, snap.SchemaVersion)
}

func TestOnChangeFiresPerMutation(t *testing.T) {
	s, changes := newTestStore(t)

	s.CreateNote(linecodec.ModeList)
	s.SetThemeMode(ThemeLight)
	s.SetHapticsEnabled(false)
	assert.Equal(t, 3, *changes)

	// Denied creation does not mutate and does not notify.
	s.CreateNote(linecodec.ModeList)
	assert.Equal(t, 3, *changes)
}

func TestSnapshotIsDetached(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.CreateNote(linecodec.ModeList)

	snap := s.Snapshot()
	snap.Notes[0].Title = "mutated"

	note, _ := s.Note(id)
	assert.Empty(t, note.Title)
}
