package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"notted/internal/linecodec"
	"notted/internal/store"
)

type NoteResponse struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Mode      linecodec.Mode   `json:"mode"`
	Lines     []linecodec.Line `json:"lines"`
	CreatedAt int64            `json:"created_at"`
	UpdatedAt int64            `json:"updated_at"`
}

func noteToResponse(n store.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Mode:      n.Mode,
		Lines:     linecodec.Parse(n.Content),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

type CreateNoteRequest struct {
	Mode linecodec.Mode `json:"mode"`
}

type UpdateNoteRequest struct {
	Title   *string         `json:"title"`
	Content *string         `json:"content"`
	Mode    *linecodec.Mode `json:"mode"`
}

// ListNotes returns all notes, newest change first. An optional q
// parameter filters on title and content.
func (h *Handler) ListNotes(c echo.Context) error {
	notes := h.store.Notes()

	if search := c.QueryParam("q"); search != "" {
		needle := strings.ToLower(search)
		filtered := notes[:0]
		for _, n := range notes {
			if strings.Contains(strings.ToLower(n.Title), needle) ||
				strings.Contains(strings.ToLower(n.Content), needle) {
				filtered = append(filtered, n)
			}
		}
		notes = filtered
	}

	// Order by updated_at desc for chronological grouping
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt > notes[j].UpdatedAt
	})

	response := make([]NoteResponse, len(notes))
	for i, n := range notes {
		response[i] = noteToResponse(n)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateNote creates a new empty note. Past the free-tier cap the store
// silently returns the existing note; the created flag tells the client
// whether to show the paywall.
func (h *Handler) CreateNote(c echo.Context) error {
	var req CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	mode := req.Mode
	if mode != linecodec.ModeText {
		mode = linecodec.ModeList
	}

	before := len(h.store.Notes())
	id := h.store.CreateNote(mode)
	created := len(h.store.Notes()) > before

	note, ok := h.store.Note(id)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "note not found after create"})
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, map[string]any{
		"created": created,
		"note":    noteToResponse(note),
	})
}

func (h *Handler) GetNote(c echo.Context) error {
	note, ok := h.store.Note(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "note not found"})
	}
	return c.JSON(http.StatusOK, noteToResponse(note))
}

func (h *Handler) UpdateNote(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.Note(id); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "note not found"})
	}

	var req UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if req.Title != nil {
		h.store.UpdateNoteTitle(id, *req.Title)
	}
	if req.Content != nil {
		h.store.UpdateContent(id, *req.Content)
	}
	if req.Mode != nil {
		if *req.Mode != linecodec.ModeText && *req.Mode != linecodec.ModeList {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid mode"})
		}
		h.store.SetNoteMode(id, *req.Mode)
	}

	note, _ := h.store.Note(id)
	return c.JSON(http.StatusOK, noteToResponse(note))
}

func (h *Handler) DeleteNote(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.Note(id); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "note not found"})
	}
	h.store.DeleteNote(id)
	return c.NoContent(http.StatusNoContent)
}

type ToggleLineRequest struct {
	LineIndex int `json:"line_index"`
}

// ToggleLine flips one checklist line. An out-of-range index is a no-op
// on the content, mirroring the codec.
func (h *Handler) ToggleLine(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.Note(id); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "note not found"})
	}

	var req ToggleLineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	h.store.ToggleLine(id, req.LineIndex)
	note, _ := h.store.Note(id)
	return c.JSON(http.StatusOK, noteToResponse(note))
}

func (h *Handler) ClearCheckedItems(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.Note(id); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "note not found"})
	}

	h.store.ClearCheckedItems(id)
	note, _ := h.store.Note(id)
	return c.JSON(http.StatusOK, noteToResponse(note))
}

type AddLineRequest struct {
	Text string `json:"text"`
	At   *int   `json:"at"`
}

func (h *Handler) AddLine(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.Note(id); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "note not found"})
	}

	var req AddLineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	at := -1
	if req.At != nil {
		at = *req.At
	}
	h.store.AddLine(id, req.Text, at)
	note, _ := h.store.Note(id)
	return c.JSON(http.StatusOK, noteToResponse(note))
}

type UpdateLineRequest struct {
	LineIndex int    `json:"line_index"`
	Text      string `json:"text"`
}

func (h *Handler) UpdateLine(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.Note(id); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "note not found"})
	}

	var req UpdateLineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	h.store.UpdateLine(id, req.LineIndex, req.Text)
	note, _ := h.store.Note(id)
	return c.JSON(http.StatusOK, noteToResponse(note))
}

// FinishEditing commits an edit session: blank lines are dropped and an
// empty note is pruned, matching the navigate-away behavior of the app.
func (h *Handler) FinishEditing(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.Note(id); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "note not found"})
	}

	pruned := h.store.FinishEditing(id)
	return c.JSON(http.StatusOK, map[string]any{"pruned": pruned})
}

// GetActiveNote resolves the active pointer; a dangling or empty pointer
// reads as no note.
func (h *Handler) GetActiveNote(c echo.Context) error {
	id := h.store.ActiveNoteID()
	if id == "" {
		return c.JSON(http.StatusOK, map[string]any{"note": nil})
	}
	note, ok := h.store.Note(id)
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"note": nil})
	}
	return c.JSON(http.StatusOK, map[string]any{"note": noteToResponse(note)})
}

type SetActiveNoteRequest struct {
	ID string `json:"id"`
}

func (h *Handler) SetActiveNote(c echo.Context) error {
	var req SetActiveNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	h.store.SetActiveNote(req.ID)
	return c.NoContent(http.StatusNoContent)
}
