package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miohost/models"
	"miohost/services/preferences"
	"miohost/utils"
)

// PreferencesHandler serves the persisted guest settings.
type PreferencesHandler struct {
	Prefs  preferences.Service
	Logger *zap.Logger
}

// NewPreferencesHandler wires a PreferencesHandler.
func NewPreferencesHandler(prefs preferences.Service, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{Prefs: prefs, Logger: logger}
}

// GetPreferences returns the stored settings for a guest, or the house
// defaults when nothing is stored yet.
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	guestID := c.Param("guestID")
	if guestID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing guest id", "")
		return
	}

	prefs, err := h.Prefs.Get(c.Request.Context(), guestID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load preferences", err.Error())
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// PutPreferences stores the guest's locale and onboarding flag.
func (h *PreferencesHandler) PutPreferences(c *gin.Context) {
	guestID := c.Param("guestID")
	if guestID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing guest id", "")
		return
	}

	var input struct {
		Locale    string `json:"locale" binding:"required"`
		Onboarded bool   `json:"onboarded"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	prefs := models.Preferences{
		Locale:    models.ParseLocale(input.Locale),
		Onboarded: input.Onboarded,
	}
	if err := h.Prefs.Set(c.Request.Context(), guestID, prefs); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store preferences", err.Error())
		return
	}

	h.Logger.Debug("preferences updated", zap.String("guest", guestID), zap.String("locale", string(prefs.Locale)))
	c.JSON(http.StatusOK, prefs)
}
