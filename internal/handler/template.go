package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"notted/internal/store"
	"notted/internal/templates"
)

type TemplateResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	IsBuiltIn bool   `json:"is_built_in"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

func templateToResponse(t store.Template) TemplateResponse {
	return TemplateResponse{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		IsBuiltIn: t.IsBuiltIn,
		CreatedAt: t.CreatedAt,
	}
}

// ListTemplates returns the built-in presets followed by user-saved
// templates.
func (h *Handler) ListTemplates(c echo.Context) error {
	response := []TemplateResponse{}
	for _, b := range templates.All() {
		response = append(response, TemplateResponse{
			ID:        b.ID,
			Title:     b.Title,
			Content:   b.Content,
			IsBuiltIn: true,
		})
	}
	for _, t := range h.store.Templates() {
		response = append(response, templateToResponse(t))
	}
	return c.JSON(http.StatusOK, response)
}

type CreateFromTemplateRequest struct {
	TemplateID string `json:"template_id"`
}

// CreateNoteFromTemplate creates a note from a built-in or user template,
// with the same free-tier gating as CreateNote.
func (h *Handler) CreateNoteFromTemplate(c echo.Context) error {
	var req CreateFromTemplateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	var builtIn *templates.BuiltIn
	if b, ok := templates.Lookup(req.TemplateID); ok {
		builtIn = &b
	}

	before := len(h.store.Notes())
	id := h.store.CreateNoteFromTemplate(req.TemplateID, builtIn)
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

// SaveAsTemplate snapshots a note as a user template; checked items come
// out unchecked. Empty notes are rejected.
func (h *Handler) SaveAsTemplate(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.Note(id); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "note not found"})
	}

	tplID := h.store.SaveAsTemplate(id)
	if tplID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot save an empty note as a template"})
	}

	for _, t := range h.store.Templates() {
		if t.ID == tplID {
			return c.JSON(http.StatusCreated, templateToResponse(t))
		}
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "template not found after save"})
}

// DeleteTemplate removes a user template. Built-ins cannot be deleted.
func (h *Handler) DeleteTemplate(c echo.Context) error {
	id := c.Param("id")
	if _, ok := templates.Lookup(id); ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "built-in templates cannot be deleted"})
	}

	found := false
	for _, t := range h.store.Templates() {
		if t.ID == id {
			found = true
			break
		}
	}
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "template not found"})
	}

	h.store.DeleteTemplate(id)
	return c.NoContent(http.StatusNoContent)
}
