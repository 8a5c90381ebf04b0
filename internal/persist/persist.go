// Package persist stores the whole application state as one JSON record
// at a fixed path, with a one-time migration from the legacy per-item
// object model. It is built on afero so tests run against an in-memory
// filesystem.
//
// Writes are explicit: callers invoke Flush after each mutation (the
// server wires the store's onChange hook to it). Load runs once at
// startup and falls back to defaults when no record exists.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"notted/internal/linecodec"
	"notted/internal/store"
)

// StateFile is the single storage record, one JSON document under the
// data directory.
const StateFile = "notted.json"

// Adapter reads and writes the persisted application state.
type Adapter struct {
	fs      afero.Fs
	baseDir string
}

// New creates an adapter rooted at baseDir. If baseDir is empty, the
// NOTTED_DATA_DIR environment variable is used, defaulting to "data".
func New(baseDir string) *Adapter {
	if baseDir == "" {
		baseDir = os.Getenv("NOTTED_DATA_DIR")
		if baseDir == "" {
			baseDir = "data"
		}
	}

	fs := afero.NewOsFs()
	if err := fs.MkdirAll(baseDir, 0755); err != nil {
		// Fall back to memory fs so the app still runs; state will not
		// survive a restart.
		zap.L().Warn("Falling back to in-memory state storage", zap.Error(err))
		fs = afero.NewMemMapFs()
	}

	return &Adapter{fs: fs, baseDir: baseDir}
}

// NewMemory creates an adapter backed by memory (useful for testing).
func NewMemory() *Adapter {
	return &Adapter{fs: afero.NewMemMapFs(), baseDir: "data"}
}

// Path returns the full path of the state record.
func (a *Adapter) Path() string {
	return filepath.Join(a.baseDir, StateFile)
}

// DataDir returns the base data directory.
func (a *Adapter) DataDir() string {
	return a.baseDir
}

// Fs exposes the underlying filesystem for collaborators (backup).
func (a *Adapter) Fs() afero.Fs {
	return a.fs
}

// Load reads the persisted state, migrating legacy records and dropping
// blank content lines. A missing record yields first-launch defaults; a
// record that cannot be parsed at all is an error so a corrupt file is
// never silently overwritten with defaults.
func (a *Adapter) Load() (store.State, error) {
	raw, err := afero.ReadFile(a.fs, a.Path())
	if os.IsNotExist(err) {
		return store.DefaultState(), nil
	}
	if err != nil {
		return store.State{}, fmt.Errorf("read state: %w", err)
	}

	migrated, didMigrate := Migrate(raw)

	var state store.State
	if err := json.Unmarshal(migrated, &state); err != nil {
		return store.State{}, fmt.Errorf("decode state: %w", err)
	}

	if state.Notes == nil {
		state.Notes = []store.Note{}
	}
	if state.Templates == nil {
		state.Templates = []store.Template{}
	}
	for i := range state.Notes {
		state.Notes[i].Content = linecodec.Normalize(state.Notes[i].Content)
		if state.Notes[i].Mode == "" {
			state.Notes[i].Mode = linecodec.ModeList
		}
	}
	state.SchemaVersion = store.SchemaVersion

	if didMigrate {
		zap.L().Info("Migrated legacy state record",
			zap.Int("notes", len(state.Notes)),
		)
	}
	return state, nil
}

// Flush serializes the state and writes it to the record path.
func (a *Adapter) Flush(state store.State) error {
	state.SchemaVersion = store.SchemaVersion
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := a.fs.MkdirAll(a.baseDir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := afero.WriteFile(a.fs, a.Path(), data, 0644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// Migrate rewrites a legacy-shaped record (notes holding an items array
// plus a textContent string) into the current content-string model and
// ensures a templates array exists. It works on the raw JSON so fields
// it does not understand pass through untouched, and it is idempotent:
// already-migrated notes have no "items" field and are returned as-is.
// The second return reports whether anything was rewritten.
func Migrate(raw []byte) ([]byte, bool) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Not an object; let the typed decode report the problem.
		return raw, false
	}

	changed := false
	if _, ok := doc["templates"]; !ok {
		doc["templates"] = []any{}
		changed = true
	}

	if notes, ok := doc["notes"].([]any); ok {
		for i, v := range notes {
			note, ok := v.(map[string]any)
			if !ok {
				continue
			}
			items, ok := note["items"].([]any)
			if !ok {
				// Already the content-string model.
				continue
			}

			itemLines := make([]string, 0, len(items))
			for _, iv := range items {
				item, ok := iv.(map[string]any)
				if !ok {
					continue
				}
				text, _ := item["text"].(string)
				checked, _ := item["checked"].(bool)
				prefix := linecodec.UncheckedPrefix
				if checked {
					prefix = linecodec.CheckedPrefix
				}
				itemLines = append(itemLines, prefix+text)
			}

			textContent, _ := note["textContent"].(string)
			content := strings.Join(itemLines, "\n")
			if strings.TrimSpace(textContent) != "" {
				if content != "" {
					content = textContent + "\n" + content
				} else {
					content = textContent
				}
			}

			note["content"] = content
			delete(note, "items")
			delete(note, "textContent")
			if _, ok := note["mode"]; !ok {
				note["mode"] = string(linecodec.ModeList)
			}
			notes[i] = note
			changed = true
		}
		doc["notes"] = notes
	}

	if !changed {
		return raw, false
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return raw, false
	}
	return out, true
}
