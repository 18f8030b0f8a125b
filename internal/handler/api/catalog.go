package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary Get product
// @Description Get a product by handle from the commerce platform (cached)
// @Tags catalog
// @Produce json
// @Param handle path string true "Product handle"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /products/{handle} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	view, err := h.q.ProductByHandle(c.Request.Context(), c.Param("handle"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, errs.ErrUpstream):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Commerce platform unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Get collection
// @Description Get a collection with its products by handle (cached)
// @Tags catalog
// @Produce json
// @Param handle path string true "Collection handle"
// @Param limit query int false "Max products to return" default(10)
// @Success 200 {object} resdto.CollectionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /collections/{handle} [get]
func (h *CatalogHandler) GetCollection(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	view, err := h.q.CollectionByHandle(c.Request.Context(), c.Param("handle"), limit)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCollectionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Collection not found", nil)
		case errors.Is(err, errs.ErrUpstream):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Commerce platform unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCollectionView(view))
}
