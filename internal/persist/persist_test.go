package persist

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notted/internal/linecodec"
	"notted/internal/store"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	a := NewMemory()

	state, err := a.Load()
	require.NoError(t, err)
	assert.Empty(t, state.Notes)
	assert.Empty(t, state.Templates)
	assert.Equal(t, store.ThemeSystem, state.ThemeMode)
	assert.True(t, state.HapticsEnabled)
	assert.Equal(t, store.SchemaVersion, state.SchemaVersion)
}

func TestFlushLoadRoundTrip(t *testing.T) {
	a := NewMemory()

	state := store.DefaultState()
	state.Notes = []store.Note{{
		ID:        "n1",
		Title:     "Groceries",
		Content:   "- milk\n+ eggs",
		Mode:      linecodec.ModeList,
		CreatedAt: 100,
		UpdatedAt: 200,
	}}
	state.Templates = []store.Template{{ID: "t1", Title: "T", Content: "- a", CreatedAt: 50}}
	state.ActiveNoteID = "n1"
	state.IsPremium = true
	state.PurchaseEmail = "user@example.com"
	state.ThemeMode = store.ThemeDark
	state.Language = "sv"

	require.NoError(t, a.Flush(state))

	loaded, err := a.Load()
	require.NoError(t, err)
	assert.Equal(t, state.Notes, loaded.Notes)
	assert.Equal(t, state.Templates, loaded.Templates)
	assert.Equal(t, "n1", loaded.ActiveNoteID)
	assert.True(t, loaded.IsPremium)
	assert.Equal(t, "user@example.com", loaded.PurchaseEmail)
	assert.Equal(t, store.ThemeDark, loaded.ThemeMode)
	assert.Equal(t, "sv", loaded.Language)
}

func TestLoadNormalizesBlankLines(t *testing.T) {
	a := NewMemory()

	state := store.DefaultState()
	state.Notes = []store.Note{{ID: "n1", Content: "- a\n\n- \n- b", Mode: linecodec.ModeList}}
	require.NoError(t, a.Flush(state))

	loaded, err := a.Load()
	require.NoError(t, err)
	assert.Equal(t, "- a\n- b", loaded.Notes[0].Content)
}

func TestLoadCorruptRecordIsAnError(t *testing.T) {
	a := NewMemory()
	require.NoError(t, afero.WriteFile(a.fs, a.Path(), []byte("{not json"), 0644))

	_, err := a.Load()
	assert.Error(t, err)
}

func TestMigrateLegacyItems(t *testing.T) {
	legacy := []byte(`{
		"notes": [{
			"id": "n1",
			"title": "old",
			"items": [{"text": "x", "checked": true}, {"text": "y", "checked": false}],
			"textContent": "note",
			"createdAt": 1,
			"updatedAt": 2
		}]
	}`)

	out, changed := Migrate(legacy)
	require.True(t, changed)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))

	notes := doc["notes"].([]any)
	note := notes[0].(map[string]any)
	assert.Equal(t, "note\n+ x\n- y", note["content"])
	assert.NotContains(t, note, "items")
	assert.NotContains(t, note, "textContent")
	assert.Equal(t, "list", note["mode"])

	// A templates array is added when absent.
	assert.Equal(t, []any{}, doc["templates"])
}

func TestMigrateItemsOnly(t *testing.T) {
	legacy := []byte(`{"notes":[{"id":"n1","items":[{"text":"x","checked":true}]}],"templates":[]}`)

	out, changed := Migrate(legacy)
	require.True(t, changed)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	note := doc["notes"].([]any)[0].(map[string]any)
	assert.Equal(t, "+ x", note["content"])
}

func TestMigrateIsIdempotent(t *testing.T) {
	legacy := []byte(`{"notes":[{"id":"n1","items":[{"text":"x","checked":true}],"textContent":"note"}]}`)

	once, changed := Migrate(legacy)
	require.True(t, changed)

	twice, changedAgain := Migrate(once)
	assert.False(t, changedAgain)
	assert.JSONEq(t, string(once), string(twice))
}

func TestMigratePassesThroughUnknownShapes(t *testing.T) {
	// Fields that do not match the legacy shape survive untouched
	// instead of failing the load.
	record := []byte(`{
		"notes": [
			"not-an-object",
			{"id": "n1", "content": "- kept", "mode": "list"},
			{"id": "n2", "items": "not-an-array"}
		],
		"mystery": {"nested": true}
	}`)

	out, changed := Migrate(record)
	require.True(t, changed) // templates array was added

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	notes := doc["notes"].([]any)
	assert.Equal(t, "not-an-object", notes[0])
	assert.Equal(t, "- kept", notes[1].(map[string]any)["content"])
	assert.Equal(t, "not-an-array", notes[2].(map[string]any)["items"])
	assert.Contains(t, doc, "mystery")
}

func TestLoadMigratesLegacyRecordEndToEnd(t *testing.T) {
	a := NewMemory()
	legacy := []byte(`{
		"notes": [{
			"id": "n1",
			"title": "Trip",
			"items": [{"text": "passport", "checked": false}],
			"textContent": "",
			"createdAt": 1,
			"updatedAt": 2
		}],
		"isPremium": true
	}`)
	require.NoError(t, afero.WriteFile(a.fs, a.Path(), legacy, 0644))

	state, err := a.Load()
	require.NoError(t, err)
	require.Len(t, state.Notes, 1)
	assert.Equal(t, "- passport", state.Notes[0].Content)
	assert.Equal(t, linecodec.ModeList, state.Notes[0].Mode)
	assert.True(t, state.IsPremium)
	assert.NotNil(t, state.Templates)
	assert.Equal(t, store.SchemaVersion, state.SchemaVersion)
}
