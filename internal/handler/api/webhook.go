package api

import (
	"errors"
	"net/http"

	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	cmds commands.NotificationCommands
}

func NewWebhookHandler(cmds commands.NotificationCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Order notification webhook
// @Description Receive an order notification from the commerce platform
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body reqdto.OrderNotificationRequest true "Order payload"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /webhooks/orders [post]
func (h *WebhookHandler) ReceiveOrder(c *gin.Context) {
	var req reqdto.OrderNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed payload", nil)
		return
	}

	_, err := h.cmds.ProcessOrderNotification(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidNotification) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order notification", nil)
			return
		}
		// A 5xx tells the platform to redeliver later.
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to process order", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
