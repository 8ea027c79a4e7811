package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

const (
	msgUserCreated        = "User created successfully"
	msgUserExists         = "User already exists"
	msgInvalidRequest     = "Invalid request"
	msgInvalidCredentials = "Invalid username or password"
	msgTokenValid         = "Token is valid"
	msgUnauthorized       = "Unauthorized"
	msgPasswordSaved      = "Password saved"
	msgInternal           = "Internal server error"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type entryRequest struct {
	Title    string `json:"title"`
	Password string `json:"password"`
}

type entryResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Password string `json:"password"`
}

func message(msg string) gin.H {
	return gin.H{"message": msg}
}

func (h *handler) internalError(c *gin.Context, op string, err error) {
	h.log.Error(c.Request.Context(), "request failed", "op", op, "err", err)
	c.JSON(http.StatusInternalServerError, message(msgInternal))
}

func (h *handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, message(msgInvalidRequest))
		return
	}

	_, err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, message(msgUserCreated))
	case errors.Is(err, common.ErrDuplicateUsername):
		c.JSON(http.StatusBadRequest, message(msgUserExists))
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, message(msgInvalidRequest))
	default:
		h.internalError(c, "register", err)
	}
}

func (h *handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, message(msgInvalidRequest))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"token": token})
	case errors.Is(err, common.ErrInvalidCredentials):
		h.metrics.AuthFailure("invalid_credentials")
		c.JSON(http.StatusUnauthorized, message(msgInvalidCredentials))
	default:
		h.internalError(c, "login", err)
	}
}

func (h *handler) verify(c *gin.Context) {
	c.JSON(http.StatusOK, message(msgTokenValid))
}

func (h *handler) listEntries(c *gin.Context) {
	list, err := h.vault.ListEntries(c.Request.Context(), callerID(c))
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, message(msgUnauthorized))
			return
		}
		h.internalError(c, "list entries", err)
		return
	}

	resp := make([]entryResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, entryResponse{ID: e.ID, Title: e.Title, Password: e.Secret})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) addEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, message(msgInvalidRequest))
		return
	}

	_, err := h.vault.AddEntry(c.Request.Context(), callerID(c), req.Title, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, message(msgPasswordSaved))
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, message(msgInvalidRequest))
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, message(msgUnauthorized))
	default:
		h.internalError(c, "add entry", err)
	}
}
