package linecodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Line
	}{
		{
			name:    "mixed checklist and plain",
			content: "- buy milk\n+ call mom\nfoo",
			want: []Line{
				{Kind: KindChecklistItem, Checked: false, Text: "buy milk"},
				{Kind: KindChecklistItem, Checked: true, Text: "call mom"},
				{Kind: KindPlain, Text: "foo"},
			},
		},
		{
			name:    "empty content",
			content: "",
			want:    []Line{},
		},
		{
			name:    "unknown prefix degrades to plain",
			content: "* not an item\n-missing space",
			want: []Line{
				{Kind: KindPlain, Text: "* not an item"},
				{Kind: KindPlain, Text: "-missing space"},
			},
		},
		{
			name:    "prefix only",
			content: "- ",
			want: []Line{
				{Kind: KindChecklistItem, Checked: false, Text: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.content))
		})
	}
}

func TestLinesIsRestartable(t *testing.T) {
	seq := Lines("- a\n+ b")

	for range 2 {
		var got []Line
		for _, line := range seq {
			got = append(got, line)
		}
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].Text)
		assert.True(t, got[1].Checked)
	}
}

func TestLinesEarlyBreak(t *testing.T) {
	count := 0
	for i := range Lines("a\nb\nc") {
		count++
		if i == 0 {
			break
		}
	}
	assert.Equal(t, 1, count)
}

func TestToggle(t *testing.T) {
	content := "- buy milk\n+ call mom\nfoo"

	assert.Equal(t, "+ buy milk\n+ call mom\nfoo", Toggle(content, 0))
	assert.Equal(t, "- buy milk\n- call mom\nfoo", Toggle(content, 1))

	// Plain lines are untouched.
	assert.Equal(t, content, Toggle(content, 2))

	// Out of range is a no-op.
	assert.Equal(t, content, Toggle(content, -1))
	assert.Equal(t, content, Toggle(content, 3))
}

func TestToggleTwiceRestoresLine(t *testing.T) {
	content := "- buy milk\n+ call mom\nfoo"
	for i := range 3 {
		assert.Equal(t, content, Toggle(Toggle(content, i), i))
	}
}

func TestClearChecked(t *testing.T) {
	content := "- buy milk\n+ call mom\nfoo"
	cleared := ClearChecked(content)
	assert.Equal(t, "- buy milk\nfoo", cleared)

	// Idempotent.
	assert.Equal(t, cleared, ClearChecked(cleared))
}

func TestResetChecked(t *testing.T) {
	assert.Equal(t, "- a\n- b\nplain", ResetChecked("+ a\n- b\nplain"))
}

func TestUpdateLine(t *testing.T) {
	content := "- buy milk\n+ call mom\nfoo"

	assert.Equal(t, "- buy oat milk\n+ call mom\nfoo", UpdateLine(content, 0, "buy oat milk"))
	assert.Equal(t, "- buy milk\n+ call dad\nfoo", UpdateLine(content, 1, "call dad"))
	assert.Equal(t, "- buy milk\n+ call mom\nbar", UpdateLine(content, 2, "bar"))

	// Empty text deletes the line instead of keeping it blank.
	assert.Equal(t, "- buy milk\nfoo", UpdateLine(content, 1, "   "))

	// Out of range is a no-op.
	assert.Equal(t, content, UpdateLine(content, 5, "x"))
}

func TestAddLine(t *testing.T) {
	assert.Equal(t, "- eggs", AddLine("", "eggs", ModeList))
	assert.Equal(t, "- milk\n- eggs", AddLine("- milk", "eggs", ModeList))
	assert.Equal(t, "hello\nworld", AddLine("hello", "world", ModeText))
}

func TestInsertLine(t *testing.T) {
	content := "- a\n- c"
	assert.Equal(t, "- b\n- a\n- c", InsertLine(content, "b", 0, ModeList))
	assert.Equal(t, "- a\n- b\n- c", InsertLine(content, "b", 1, ModeList))
	assert.Equal(t, "- a\n- c\n- b", InsertLine(content, "b", 7, ModeList))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"drops blank lines", "- a\n\n  \n- b", "- a\n- b"},
		{"drops blank checklist items", "- a\n- \n+   \nfoo", "- a\nfoo"},
		{"empty stays empty", "", ""},
		{"all blank collapses", "\n\n", ""},
		{"already clean", "- a\nfoo", "- a\nfoo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.content))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Content produced by codec mutations re-parses to the same lines.
	content := ""
	content = AddLine(content, "buy milk", ModeList)
	content = AddLine(content, "call mom", ModeList)
	content = Toggle(content, 1)
	content = UpdateLine(content, 0, "buy oat milk")

	want := []Line{
		{Kind: KindChecklistItem, Checked: false, Text: "buy oat milk"},
		{Kind: KindChecklistItem, Checked: true, Text: "call mom"},
	}
	assert.Equal(t, want, Parse(content))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank("", ModeText))
	assert.True(t, IsBlank("  \n ", ModeText))
	assert.False(t, IsBlank("hello", ModeText))

	assert.True(t, IsBlank("", ModeList))
	assert.True(t, IsBlank("- \n+  ", ModeList))
	assert.False(t, IsBlank("- milk", ModeList))
}
