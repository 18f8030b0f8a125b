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
	"storefront-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.SessionStateQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.SessionStateQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Get the session's cart with derived totals
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.q.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Add an item to the cart, merging with an existing line for the same variant
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /cart [post]
func (h *CartHandler) Add(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.AddItem(c.Request.Context(), sessionID, req); err != nil {
		if errors.Is(err, commands.ErrInvalidCartItem) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cart item", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to add item", nil)
		return
	}
	h.respondWithCart(c, sessionID)
}

// @Summary Update cart item
// @Description Set the absolute quantity and optional selections for a cart line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param variantId path string true "Variant ID"
// @Param request body reqdto.UpdateCartItemRequest true "Fields to update"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{variantId} [patch]
func (h *CartHandler) Update(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateItem(c.Request.Context(), sessionID, c.Param("variantId"), req); err != nil {
		if errors.Is(err, errs.ErrCartItemNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cart item not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update item", nil)
		return
	}
	h.respondWithCart(c, sessionID)
}

// @Summary Remove cart item
// @Description Remove a cart line; removing an absent variant succeeds
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param variantId path string true "Variant ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart/items/{variantId} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.RemoveItem(c.Request.Context(), sessionID, c.Param("variantId")); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to remove item", nil)
		return
	}
	h.respondWithCart(c, sessionID)
}

// @Summary Clear cart
// @Description Remove all items from the cart
// @Tags cart
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.Clear(c.Request.Context(), sessionID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to clear cart", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// Read-after-write: mutations respond with the fresh cart view.
func (h *CartHandler) respondWithCart(c *gin.Context, sessionID uuid.UUID) {
	view, err := h.q.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}
