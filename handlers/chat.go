package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	requestsRepo "miohost/database/repository/requests"
	"miohost/models"
	"miohost/services/concierge"
	"miohost/services/notification"
	"miohost/services/preferences"
	"miohost/utils"
)

// ChatHandler serves the guest dialogue endpoints. Every mutating call
// returns the updated session snapshot so the client can re-render from
// a single payload.
type ChatHandler struct {
	Concierge concierge.Service
	Requests  requestsRepo.RequestRepository
	Prefs     preferences.Service
	Notifier  notification.DeskNotifier
	Logger    *zap.Logger
}

// NewChatHandler wires a ChatHandler.
func NewChatHandler(svc concierge.Service, repo requestsRepo.RequestRepository, prefs preferences.Service, notifier notification.DeskNotifier, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		Concierge: svc,
		Requests:  repo,
		Prefs:     prefs,
		Notifier:  notifier,
		Logger:    logger,
	}
}

// session resolves the :sessionID path parameter, writing the 404 itself.
func (h *ChatHandler) session(c *gin.Context) (*concierge.Session, bool) {
	s, err := h.Concierge.Session(c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "session not found", c.Param("sessionID"))
		return nil, false
	}
	return s, true
}

// inputError maps session state machine errors onto HTTP statuses.
func inputError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, concierge.ErrReplyPending):
		utils.JSONError(c, http.StatusConflict, "a reply is still pending", err.Error())
	case errors.Is(err, concierge.ErrNoSuchFlow):
		utils.JSONError(c, http.StatusNotFound, "unknown intent", err.Error())
	case errors.Is(err, concierge.ErrOptionOutOfRange):
		utils.JSONError(c, http.StatusBadRequest, "option index out of range", err.Error())
	case errors.Is(err, concierge.ErrEmptyField),
		errors.Is(err, concierge.ErrNotInService),
		errors.Is(err, concierge.ErrNotInMessage),
		errors.Is(err, concierge.ErrNotInFlow):
		utils.JSONError(c, http.StatusUnprocessableEntity, "input does not fit the dialogue state", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to process input", err.Error())
	}
}

// CreateSession opens a dialogue session. The locale comes from the
// request body when given, otherwise from the guest's stored
// preferences (falling back to the house default).
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var input struct {
		GuestID string `json:"guestId"`
		Locale  string `json:"locale"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	locale := models.ParseLocale(input.Locale)
	if input.Locale == "" && input.GuestID != "" {
		prefs, err := h.Prefs.Get(c.Request.Context(), input.GuestID)
		if err != nil {
			h.Logger.Warn("preferences lookup failed, using default locale",
				zap.String("guest", input.GuestID), zap.Error(err))
		}
		locale = prefs.Locale
	}

	s := h.Concierge.CreateSession(locale)
	c.JSON(http.StatusCreated, s.Snapshot())
}

// GetSession returns the current snapshot.
func (h *ChatHandler) GetSession(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// PostMessage handles free text from the guest.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	s.Submit(input.Text)
	c.JSON(http.StatusOK, s.Snapshot())
}

// PostIntent starts a flow directly, as when the guest taps a chip or a
// clarification suggestion.
func (h *ChatHandler) PostIntent(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var input struct {
		IntentID string `json:"intentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := s.StartIntent(input.IntentID); err != nil {
		inputError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// PostOption selects one of the current step's options.
func (h *ChatHandler) PostOption(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var input struct {
		Index *int `json:"index" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Index == nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "body must carry an option index")
		return
	}
	if err := s.SelectOption(*input.Index); err != nil {
		inputError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// PostBack rewinds the active flow by one step.
func (h *ChatHandler) PostBack(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := s.Back(); err != nil {
		inputError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// PostService submits the service booking form, persists the request,
// and notifies the front desk.
func (h *ChatHandler) PostService(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var payload models.ServiceBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	req, err := s.SubmitService(payload)
	if err != nil {
		inputError(c, err)
		return
	}

	if _, err := h.Requests.CreateServiceRequest(c.Request.Context(), *req); err != nil {
		h.Logger.Error("failed to persist service request",
			zap.String("request", req.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to store booking", err.Error())
		return
	}
	if err := h.Notifier.NotifyServiceRequest(c.Request.Context(), *req); err != nil {
		h.Logger.Warn("desk notification failed", zap.String("request", req.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"request": req, "session": s.Snapshot()})
}

// PostReception submits the reception message form.
func (h *ChatHandler) PostReception(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var input struct {
		Room    string `json:"room"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	msg, err := s.SubmitReception(input.Room, input.Message)
	if err != nil {
		inputError(c, err)
		return
	}

	if _, err := h.Requests.CreateReceptionMessage(c.Request.Context(), *msg); err != nil {
		h.Logger.Error("failed to persist reception message",
			zap.String("message", msg.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to store message", err.Error())
		return
	}
	if err := h.Notifier.NotifyReceptionMessage(c.Request.Context(), *msg); err != nil {
		h.Logger.Warn("desk notification failed", zap.String("message", msg.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"message": msg, "session": s.Snapshot()})
}

// DeleteReception abandons the reception message form.
func (h *ChatHandler) DeleteReception(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := s.CancelReception(); err != nil {
		inputError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// PostReset wipes the session back to the welcome state.
func (h *ChatHandler) PostReset(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	s.Reset()
	c.JSON(http.StatusOK, s.Snapshot())
}

// PutLocale switches the session language, which also resets the
// dialogue.
func (h *ChatHandler) PutLocale(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var input struct {
		Locale string `json:"locale" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	s.SetLocale(models.ParseLocale(input.Locale))
	c.JSON(http.StatusOK, s.Snapshot())
}

// DeleteSession drops the session from the registry.
func (h *ChatHandler) DeleteSession(c *gin.Context) {
	if _, ok := h.session(c); !ok {
		return
	}
	h.Concierge.DropSession(c.Param("sessionID"))
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
