package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mgiraudo/club_payments_app/internal/core/ports/services"
	"github.com/mgiraudo/club_payments_app/internal/dto"
	"github.com/mgiraudo/club_payments_app/internal/middleware"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

// newClientHandler creates a new clientHandler.
func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{
		clientService: cs,
	}
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.GET("/names", h.listClientNames)
		clients.GET("/status", h.getClientStatuses)
	}
}

// listClientNames returns every client name, for form autocompletion.
func (h *clientHandler) listClientNames(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	names, err := h.clientService.ListClientNames(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list client names from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list client names"})
		return
	}

	c.JSON(http.StatusOK, names)
}

// getClientStatuses returns the standing report: each client with the covered
// period of their last payment and how far behind they are.
func (h *clientHandler) getClientStatuses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	nameFilter := c.Query("name")

	statuses, err := h.clientService.GetClientStatuses(c.Request.Context(), nameFilter)
	if err != nil {
		logger.Error("Failed to get client statuses from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve client statuses"})
		return
	}

	statusResponses := make([]dto.ClientStatusResponse, len(statuses))
	for i, status := range statuses {
		statusResponses[i] = dto.ToClientStatusResponse(status)
	}

	logger.Info("Client statuses listed successfully", slog.Int("count", len(statusResponses)))
	c.JSON(http.StatusOK, statusResponses)
}
