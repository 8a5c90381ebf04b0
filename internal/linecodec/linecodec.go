// Package linecodec implements the line-oriented checklist encoding used
// for note content. A note body is a single string: lines starting with
// "- " are unchecked checklist items, lines starting with "+ " are checked
// items, and everything else is plain text. All functions are pure; every
// mutation re-splits and re-joins the whole string, which is fine for
// note-sized content.
package linecodec

import (
	"iter"
	"strings"
)

// Prefixes for checklist lines. The item text is everything after the
// two-character prefix.
const (
	UncheckedPrefix = "- "
	CheckedPrefix   = "+ "
)

// Mode selects how a note's content is edited and how new lines are added.
type Mode string

const (
	ModeText Mode = "text"
	ModeList Mode = "list"
)

// Kind classifies a parsed line.
type Kind string

const (
	KindPlain         Kind = "plain"
	KindChecklistItem Kind = "checklist_item"
)

// Line is the transient parse result of one content line. It is never
// persisted; storage always keeps the encoded string.
type Line struct {
	Kind    Kind   `json:"kind"`
	Checked bool   `json:"checked"`
	Text    string `json:"text"`
}

// IsChecklistItem reports whether a raw line carries a checklist prefix.
func IsChecklistItem(line string) bool {
	return strings.HasPrefix(line, UncheckedPrefix) || strings.HasPrefix(line, CheckedPrefix)
}

// IsChecked reports whether a raw line is a checked checklist item.
func IsChecked(line string) bool {
	return strings.HasPrefix(line, CheckedPrefix)
}

// ItemText returns the display text of a raw line, stripping a checklist
// prefix when present.
func ItemText(line string) string {
	if IsChecklistItem(line) {
		return line[len(UncheckedPrefix):]
	}
	return line
}

func decode(raw string) Line {
	if IsChecklistItem(raw) {
		return Line{Kind: KindChecklistItem, Checked: IsChecked(raw), Text: raw[2:]}
	}
	return Line{Kind: KindPlain, Text: raw}
}

// Lines returns a lazy, restartable view of the content as typed lines,
// keyed by line index. Unknown prefixes degrade to plain lines; parsing
// never fails.
func Lines(content string) iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		if content == "" {
			return
		}
		for i, raw := range strings.Split(content, "\n") {
			if !yield(i, decode(raw)) {
				return
			}
		}
	}
}

// Parse decodes the whole content into a slice of lines. Empty content
// yields an empty slice.
func Parse(content string) []Line {
	if content == "" {
		return []Line{}
	}
	raws := strings.Split(content, "\n")
	lines := make([]Line, len(raws))
	for i, raw := range raws {
		lines[i] = decode(raw)
	}
	return lines
}

// Toggle flips the checked state of the checklist item at lineIndex by
// swapping its prefix. Plain lines and out-of-range indexes are left
// untouched.
func Toggle(content string, lineIndex int) string {
	lines := strings.Split(content, "\n")
	if lineIndex < 0 || lineIndex >= len(lines) {
		return content
	}
	line := lines[lineIndex]
	switch {
	case strings.HasPrefix(line, UncheckedPrefix):
		lines[lineIndex] = CheckedPrefix + line[2:]
	case strings.HasPrefix(line, CheckedPrefix):
		lines[lineIndex] = UncheckedPrefix + line[2:]
	}
	return strings.Join(lines, "\n")
}

// ClearChecked removes every checked line, preserving the order and text
// of the rest. Idempotent.
func ClearChecked(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !IsChecked(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// ResetChecked rewrites every checked item as unchecked. Used when
// snapshotting a note into a template.
func ResetChecked(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, CheckedPrefix) {
			lines[i] = UncheckedPrefix + line[2:]
		}
	}
	return strings.Join(lines, "\n")
}

// UpdateLine replaces the text of the line at lineIndex, keeping its
// checklist prefix. A line whose new text trims to empty is deleted
// rather than kept blank. Out-of-range indexes are a no-op.
func UpdateLine(content string, lineIndex int, newText string) string {
	lines := strings.Split(content, "\n")
	if lineIndex < 0 || lineIndex >= len(lines) {
		return content
	}
	if strings.TrimSpace(newText) == "" {
		lines = append(lines[:lineIndex], lines[lineIndex+1:]...)
		return strings.Join(lines, "\n")
	}
	line := lines[lineIndex]
	switch {
	case strings.HasPrefix(line, CheckedPrefix):
		lines[lineIndex] = CheckedPrefix + newText
	case strings.HasPrefix(line, UncheckedPrefix):
		lines[lineIndex] = UncheckedPrefix + newText
	default:
		lines[lineIndex] = newText
	}
	return strings.Join(lines, "\n")
}

// AddLine appends a new line: an unchecked checklist item in list mode,
// raw text in text mode.
func AddLine(content, text string, mode Mode) string {
	return InsertLine(content, text, -1, mode)
}

// InsertLine inserts a new line at the given index, or appends when the
// index is negative or past the end. In list mode the line becomes an
// unchecked checklist item.
func InsertLine(content, text string, at int, mode Mode) string {
	line := text
	if mode == ModeList {
		line = UncheckedPrefix + text
	}
	if content == "" {
		return line
	}
	lines := strings.Split(content, "\n")
	if at < 0 || at >= len(lines) {
		lines = append(lines, line)
	} else {
		lines = append(lines[:at], append([]string{line}, lines[at:]...)...)
	}
	return strings.Join(lines, "\n")
}

// Normalize drops lines that are blank after trimming, so empty rows do
// not accumulate across edit sessions. Applied on load and when an edit
// session is committed, not on every keystroke.
func Normalize(content string) string {
	if content == "" {
		return ""
	}
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(ItemText(line)) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// IsBlank reports whether content has no meaningful text in the given
// mode: text notes are blank when the whole body trims to empty, list
// notes when every line's item text trims to empty.
func IsBlank(content string, mode Mode) bool {
	if mode == ModeText {
		return strings.TrimSpace(content) == ""
	}
	for _, line := range Parse(content) {
		if strings.TrimSpace(line.Text) != "" {
			return false
		}
	}
	return true
}
