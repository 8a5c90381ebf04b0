package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notted/internal/entitlement"
	"notted/internal/linecodec"
	"notted/internal/persist"
	"notted/internal/store"
	"notted/internal/templates"
)

// newTestHandler wires a handler around an in-memory store and
// persistence adapter. The ent client stays nil; endpoints that need it
// are not exercised here.
func newTestHandler(t *testing.T, restoreSrv *httptest.Server) *Handler {
	t.Helper()

	adapter := persist.NewMemory()
	st := store.New(store.DefaultState(), func(snap store.State) {
		_ = adapter.Flush(snap)
	})

	endpoint := "http://127.0.0.1:0/api/restore"
	var client *http.Client
	if restoreSrv != nil {
		endpoint = restoreSrv.URL
		client = restoreSrv.Client()
	}
	return NewHandler(nil, st, adapter, entitlement.NewResolver(endpoint, client))
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	require.NoError(t, h(c))
	return rec
}

func TestCreateNoteEndpoint(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := doJSON(t, h.CreateNote, http.MethodPost, "/api/notes", `{"mode":"list"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Created bool         `json:"created"`
		Note    NoteResponse `json:"note"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Created)
	assert.Equal(t, linecodec.ModeList, resp.Note.Mode)

	// Free tier: the second create returns the first note, not created.
	rec = doJSON(t, h.CreateNote, http.MethodPost, "/api/notes", `{"mode":"list"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var second struct {
		Created bool         `json:"created"`
		Note    NoteResponse `json:"note"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.False(t, second.Created)
	assert.Equal(t, resp.Note.ID, second.Note.ID)
	assert.Len(t, h.store.Notes(), 1)
}

func TestToggleAndClearEndpoints(t *testing.T) {
	h := newTestHandler(t, nil)

	id := h.store.CreateNote(linecodec.ModeList)
	h.store.UpdateContent(id, "- buy milk\n+ call mom\nfoo")

	rec := doJSON(t, h.ToggleLine, http.MethodPost, "/api/notes/"+id+"/toggle", `{"line_index":0}`, "id", id)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp NoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "+ buy milk\n+ call mom\nfoo", resp.Content)
	require.Len(t, resp.Lines, 3)
	assert.True(t, resp.Lines[0].Checked)

	rec = doJSON(t, h.ClearCheckedItems, http.MethodPost, "/api/notes/"+id+"/clear-checked", "", "id", id)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "foo", resp.Content)
}

func TestNoteEndpointsUnknownID(t *testing.T) {
	h := newTestHandler(t, nil)

	for _, fn := range []echo.HandlerFunc{h.GetNote, h.DeleteNote, h.ClearCheckedItems, h.FinishEditing} {
		rec := doJSON(t, fn, http.MethodGet, "/api/notes/missing", "", "id", "missing")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestCreateNoteFromBuiltInTemplateEndpoint(t *testing.T) {
	h := newTestHandler(t, nil)

	body := `{"template_id":"` + templates.ShoppingListID + `"}`
	rec := doJSON(t, h.CreateNoteFromTemplate, http.MethodPost, "/api/notes/from-template", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Note NoteResponse `json:"note"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Shopping List", resp.Note.Title)
	assert.Contains(t, resp.Note.Content, "- Milk")
}

func TestTemplateEndpoints(t *testing.T) {
	h := newTestHandler(t, nil)

	id := h.store.CreateNote(linecodec.ModeList)
	h.store.UpdateContent(id, "+ done\n- open")

	rec := doJSON(t, h.SaveAsTemplate, http.MethodPost, "/api/notes/"+id+"/save-template", "", "id", id)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var tpl TemplateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tpl))
	assert.Equal(t, "- done\n- open", tpl.Content)

	// Listing includes built-ins first, then the user template.
	rec = doJSON(t, h.ListTemplates, http.MethodGet, "/api/templates", "")
	var list []TemplateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, len(templates.All())+1)

	// Built-ins cannot be deleted.
	rec = doJSON(t, h.DeleteTemplate, http.MethodDelete, "/api/templates/"+templates.ShoppingListID, "", "id", templates.ShoppingListID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h.DeleteTemplate, http.MethodDelete, "/api/templates/"+tpl.ID, "", "id", tpl.ID)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, h.store.Templates())
}

func TestSaveEmptyNoteAsTemplateRejected(t *testing.T) {
	h := newTestHandler(t, nil)

	id := h.store.CreateNote(linecodec.ModeList)
	rec := doJSON(t, h.SaveAsTemplate, http.MethodPost, "/api/notes/"+id+"/save-template", "", "id", id)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsEndpoints(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := doJSON(t, h.UpdateSettings, http.MethodPut, "/api/settings",
		`{"theme_mode":"dark","language":"sv","haptics_enabled":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, store.ThemeDark, resp.ThemeMode)
	assert.Equal(t, "sv", resp.Language)
	assert.False(t, resp.HapticsEnabled)
	// Untouched fields keep their defaults.
	assert.True(t, resp.ShakeToClearEnabled)

	rec = doJSON(t, h.UpdateSettings, http.MethodPut, "/api/settings", `{"theme_mode":"sepia"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRestorePurchaseEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("email") == "buyer@example.com" {
			w.Write([]byte(`{"isPremium":true,"purchasedAt":"2025-06-01T12:00:00Z"}`))
			return
		}
		w.Write([]byte(`{"isPremium":false}`))
	}))
	defer srv.Close()

	h := newTestHandler(t, srv)

	// Malformed email fails locally.
	rec := doJSON(t, h.RestorePurchase, http.MethodPost, "/api/entitlement/restore", `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, h.store.IsPremium())

	// Unknown email is not an error and does not unlock.
	rec = doJSON(t, h.RestorePurchase, http.MethodPost, "/api/entitlement/restore", `{"email":"other@example.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, h.store.IsPremium())

	// Known email unlocks and records the address.
	rec = doJSON(t, h.RestorePurchase, http.MethodPost, "/api/entitlement/restore", `{"email":" Buyer@Example.com "}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, h.store.IsPremium())
	assert.Equal(t, "buyer@example.com", h.store.PurchaseEmail())
}

func TestRestoreFailureKeepsPremium(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	h := newTestHandler(t, srv)
	h.store.SetPremium(true, "buyer@example.com")

	rec := doJSON(t, h.RestorePurchase, http.MethodPost, "/api/entitlement/restore", `{"email":"buyer@example.com"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.True(t, h.store.IsPremium(), "failed restore must not revoke premium")
}

func TestDeepLinkEndpoint(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := doJSON(t, h.HandleDeepLink, http.MethodPost, "/api/entitlement/deep-link",
		`{"url":"notted://settings"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, h.store.IsPremium())

	rec = doJSON(t, h.HandleDeepLink, http.MethodPost, "/api/entitlement/deep-link",
		`{"url":"notted://purchase-success?checkout_id=c1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, h.store.IsPremium())

	// Re-triggering is idempotent.
	rec = doJSON(t, h.HandleDeepLink, http.MethodPost, "/api/entitlement/deep-link",
		`{"url":"notted://purchase-success"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, h.store.IsPremium())
}

func TestMutationsPersistThroughAdapter(t *testing.T) {
	h := newTestHandler(t, nil)

	doJSON(t, h.CreateNote, http.MethodPost, "/api/notes", `{"mode":"list"}`)

	state, err := h.persist.Load()
	require.NoError(t, err)
	assert.Len(t, state.Notes, 1)
}
