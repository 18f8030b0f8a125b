package api

import (
	"errors"
	"net/http"

	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Create checkout
// @Description Open a checkout session on the commerce platform for the submitted line items
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Optional idempotency key; duplicate submissions replay the first session"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Create(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", nil)
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateCheckout(c.Request.Context(), sessionID, req, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCheckoutRequest):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid checkout request", nil)
		case errors.Is(err, errs.ErrCheckoutRejected):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, errs.ErrIdempotencyInProgress):
			httperr.AbortWithError(c, http.StatusConflict, err, "Checkout request is currently being processed", nil)
		case errors.Is(err, errs.ErrUpstream):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Checkout failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// getIdempotencyKey parses the optional Idempotency-Key header; an
// absent header returns uuid.Nil, a malformed one is an error.
func (h *CheckoutHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	header := c.GetHeader("Idempotency-Key")
	if header == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(header)
}
