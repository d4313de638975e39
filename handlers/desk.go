package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"miohost/config"
	requestsRepo "miohost/database/repository/requests"
	"miohost/middleware"
	"miohost/services/notification"
	"miohost/utils"
)

// DeskHandler serves the front-desk console: staff login and the feeds
// of submitted guest requests.
type DeskHandler struct {
	Requests requestsRepo.RequestRepository
	Logger   *zap.Logger
}

// NewDeskHandler wires a DeskHandler.
func NewDeskHandler(repo requestsRepo.RequestRepository, logger *zap.Logger) *DeskHandler {
	return &DeskHandler{Requests: repo, Logger: logger}
}

// Login authenticates a staff member against the shared desk password
// and issues a session token. The token is cached so it can be revoked
// server-side before the JWT expires.
func (h *DeskHandler) Login(c *gin.Context) {
	var input struct {
		StaffID  string `json:"staffId"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.StaffID == "" {
		input.StaffID = "desk"
	}

	hash := config.AppConfig.DeskPasswordHash
	if hash == "" {
		utils.JSONError(c, http.StatusServiceUnavailable, "desk login not configured", "")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		h.Logger.Warn("desk login rejected", zap.String("staff", input.StaffID))
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken(input.StaffID, middleware.DeskSessionTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	if err := middleware.CacheDeskToken(c, token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to register session", err.Error())
		return
	}

	h.Logger.Info("desk login", zap.String("staff", input.StaffID))
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// feedLimit parses the optional ?limit= query parameter.
func feedLimit(c *gin.Context) int64 {
	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	return limit
}

// ListRequests returns recent service bookings, newest first.
func (h *DeskHandler) ListRequests(c *gin.Context) {
	requests, err := h.Requests.ListServiceRequests(c.Request.Context(), feedLimit(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load service requests", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// GetRequest returns a single service booking by id.
func (h *DeskHandler) GetRequest(c *gin.Context) {
	req, err := h.Requests.GetServiceRequestByID(c.Request.Context(), c.Param("requestID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "request not found", c.Param("requestID"))
		return
	}
	c.JSON(http.StatusOK, req)
}

// ListFeed returns the live notification feed the worker maintains,
// newest first.
func (h *DeskHandler) ListFeed(c *gin.Context) {
	limit := feedLimit(c)
	entries, err := utils.GetCacheClient().LRange(c.Request.Context(), notification.DeskFeedKey, 0, limit-1).Result()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load notification feed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"feed": notification.DecodeFeed(entries)})
}

// ListMessages returns recent reception messages, newest first.
func (h *DeskHandler) ListMessages(c *gin.Context) {
	messages, err := h.Requests.ListReceptionMessages(c.Request.Context(), feedLimit(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load reception messages", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
