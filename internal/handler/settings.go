package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"notted/internal/store"
)

type SettingsResponse struct {
	ThemeMode           store.ThemeMode `json:"theme_mode"`
	Language            string          `json:"language"`
	HapticsEnabled      bool            `json:"haptics_enabled"`
	ShakeToClearEnabled bool            `json:"shake_to_clear_enabled"`
	HasSeenOnboarding   bool            `json:"has_seen_onboarding"`
	DrawerPeekHeight    int             `json:"drawer_peek_height"`
}

type UpdateSettingsRequest struct {
	ThemeMode           *store.ThemeMode `json:"theme_mode"`
	Language            *string          `json:"language"`
	HapticsEnabled      *bool            `json:"haptics_enabled"`
	ShakeToClearEnabled *bool            `json:"shake_to_clear_enabled"`
	HasSeenOnboarding   *bool            `json:"has_seen_onboarding"`
	DrawerPeekHeight    *int             `json:"drawer_peek_height"`
}

func settingsFromState(st store.State) SettingsResponse {
	return SettingsResponse{
		ThemeMode:           st.ThemeMode,
		Language:            st.Language,
		HapticsEnabled:      st.HapticsEnabled,
		ShakeToClearEnabled: st.ShakeToClearEnabled,
		HasSeenOnboarding:   st.HasSeenOnboarding,
		DrawerPeekHeight:    st.DrawerPeekHeight,
	}
}

func (h *Handler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, settingsFromState(h.store.Snapshot()))
}

func (h *Handler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if req.ThemeMode != nil {
		switch *req.ThemeMode {
		case store.ThemeLight, store.ThemeDark, store.ThemeSystem:
			h.store.SetThemeMode(*req.ThemeMode)
		default:
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid theme mode"})
		}
	}
	if req.Language != nil {
		h.store.SetLanguage(*req.Language)
	}
	if req.HapticsEnabled != nil {
		h.store.SetHapticsEnabled(*req.HapticsEnabled)
	}
	if req.ShakeToClearEnabled != nil {
		h.store.SetShakeToClearEnabled(*req.ShakeToClearEnabled)
	}
	if req.HasSeenOnboarding != nil {
		h.store.SetHasSeenOnboarding(*req.HasSeenOnboarding)
	}
	if req.DrawerPeekHeight != nil {
		h.store.SetDrawerPeekHeight(*req.DrawerPeekHeight)
	}

	return c.JSON(http.StatusOK, settingsFromState(h.store.Snapshot()))
}

// ResetAllData wipes notes, templates, settings and the premium flag.
func (h *Handler) ResetAllData(c echo.Context) error {
	h.store.ResetAllData()
	return c.NoContent(http.StatusNoContent)
}
