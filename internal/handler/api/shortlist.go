package api

import (
	"errors"
	"net/http"

	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/infra/sessionstore"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ShortlistHandler serves both the wishlist and compare routes; the
// collection kind is fixed per instance at registration time.
type ShortlistHandler struct {
	cmds commands.ShortlistCommands
	q    queries.SessionStateQueries
	kind sessionstore.Kind
}

func NewWishlistHandler(cmds commands.ShortlistCommands, q queries.SessionStateQueries) *ShortlistHandler {
	return &ShortlistHandler{cmds: cmds, q: q, kind: sessionstore.KindWishlist}
}

func NewCompareHandler(cmds commands.ShortlistCommands, q queries.SessionStateQueries) *ShortlistHandler {
	return &ShortlistHandler{cmds: cmds, q: q, kind: sessionstore.KindCompare}
}

// @Summary Get shortlist
// @Description Get the session's wishlist or compare collection
// @Tags shortlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ShortlistResponse
// @Failure 401 {object} map[string]string
// @Router /wishlist [get]
func (h *ShortlistHandler) Get(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.q.GetShortlist(c.Request.Context(), sessionID, h.kind)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load list", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShortlistView(view))
}

// @Summary Add to shortlist
// @Description Add a product reference; re-adding a present product is a no-op
// @Tags shortlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddShortlistItemRequest true "Product to add"
// @Success 200 {object} resdto.ShortlistResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /wishlist [post]
func (h *ShortlistHandler) Add(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.AddShortlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Add(c.Request.Context(), sessionID, h.kind, req); err != nil {
		if errors.Is(err, commands.ErrInvalidShortlistItem) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to add item", nil)
		return
	}
	h.respondWithList(c)
}

// @Summary Remove from shortlist
// @Description Remove a product reference; removing an absent product succeeds
// @Tags shortlist
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.ShortlistResponse
// @Failure 401 {object} map[string]string
// @Router /wishlist/{productId} [delete]
func (h *ShortlistHandler) Remove(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), sessionID, h.kind, c.Param("productId")); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to remove item", nil)
		return
	}
	h.respondWithList(c)
}

func (h *ShortlistHandler) respondWithList(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	view, err := h.q.GetShortlist(c.Request.Context(), sessionID, h.kind)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load list", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShortlistView(view))
}
