//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"storefront-api/internal/handler/api"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"
	"storefront-api/tests/common/builder"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/common/testutil"
	commandsmock "storefront-api/tests/mock/commands"
	queriesmock "storefront-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockSessionStateQueries
	handler      *api.CartHandler
	sessionID    uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSessionStateQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)
	s.sessionID = uuid.New()

	sessionMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("session_id", s.sessionID)
		c.Next()
	}

	s.router.GET("/cart", sessionMiddleware, s.handler.Get)
	s.router.POST("/cart", sessionMiddleware, s.handler.Add)
	s.router.DELETE("/cart", sessionMiddleware, s.handler.Clear)
	s.router.PATCH("/cart/items/:variantId", sessionMiddleware, s.handler.Update)
	s.router.DELETE("/cart/items/:variantId", sessionMiddleware, s.handler.Remove)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func cartViewFixture() *queries.CartView {
	return &queries.CartView{
		Items: []queries.CartItemView{
			{
				VariantID: "gid://shopify/ProductVariant/111",
				Title:     "Classic Tee",
				Price:     queries.MoneyView{Amount: "19.99", Currency: "USD"},
				Quantity:  2,
			},
		},
		ItemCount: 2,
		Total:     queries.MoneyView{Amount: "39.98", Currency: "USD"},
	}
}

func (s *CartHandlerTestSuite) TestGet() {
	url := "/cart"

	s.Run("success: returns 200 OK with derived totals", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.sessionID).
			Return(cartViewFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "session-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.ItemCount)
		s.Equal("39.98", response.Total.Amount)
		s.Len(response.Items, 1)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.sessionID).
			Return(nil, errors.New("redis down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "session-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load cart")
	})
}

func (s *CartHandlerTestSuite) TestAdd() {
	url := "/cart"
	reqBody := builder.NewCartItemBuilder().Build()

	s.Run("success: returns 200 OK with the fresh cart", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.sessionID).
			Return(cartViewFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "session-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.ItemCount)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: variantId (required)", mutate: testutil.Field("variantId", nil)},
			{name: "missing field: price (required)", mutate: testutil.Field("price", nil)},
			{name: "missing field: currency (required)", mutate: testutil.Field("currency", nil)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "session-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 Bad Request for an unparseable price", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.sessionID, gomock.Any()).
			Return(errs.Mark(errs.New("invalid amount"), commands.ErrInvalidCartItem)).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("price", "abc"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "session-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cart item")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *CartHandlerTestSuite) TestUpdate() {
	variantID := "gid://shopify/ProductVariant/111"
	url := "/cart/items/" + uuid.NewString()
	reqBody := map[string]any{"quantity": 3}

	s.Run("success: returns 200 OK with the fresh cart", func() {
		s.mockCommands.EXPECT().UpdateItem(gomock.Any(), s.sessionID, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.sessionID).
			Return(cartViewFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "session-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for zero quantity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 0}, "session-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 Not Found for an absent variant", func() {
		s.mockCommands.EXPECT().UpdateItem(gomock.Any(), s.sessionID, gomock.Any(), gomock.Any()).
			Return(errs.Mark(errs.Newf("no line for variant %s", variantID), errs.ErrCartItemNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "session-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart item not found")
	})
}

func (s *CartHandlerTestSuite) TestRemove() {
	url := "/cart/items/gid-variant-111"

	s.Run("success: returns 200 OK even for an absent variant", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.sessionID).
			Return(cartViewFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "session-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *CartHandlerTestSuite) TestClear() {
	url := "/cart"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any(), s.sessionID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "session-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any(), s.sessionID).
			Return(errors.New("redis down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "session-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to clear cart")
	})
}
