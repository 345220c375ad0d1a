//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"storefront-engine/internal/domain/cart"
	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/handler/api"
	reqdto "storefront-engine/internal/handler/dto/request"
	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/pkg/errs"
	"storefront-engine/internal/usecase/shared"
	"storefront-engine/tests/common/builder"
	"storefront-engine/tests/common/httptest"
	"storefront-engine/tests/common/testutil"
	commandsmock "storefront-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands)

	s.router.GET("/cart", s.handler.Get)
	s.router.DELETE("/cart", s.handler.Clear)
	s.router.POST("/cart/lines", s.handler.AddLine)
	s.router.PUT("/cart/lines/:itemId", s.handler.SetQuantity)
	s.router.DELETE("/cart/lines/:itemId", s.handler.RemoveLine)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

// cartView builds a view holding one line of the default item.
func (s *CartHandlerTestSuite) cartView(quantity int) shared.CartView {
	c := cart.New(cart.DefaultMaxLineQuantity)
	s.Require().NoError(c.Add(builder.NewItemBuilder().BuildDomain(s.T()), quantity))
	return shared.CartView{Lines: c.Lines(), Summary: cart.Summarize(c, decimal.RequireFromString("0.08"))}
}

type testCaseCart struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *CartHandlerTestSuite) TestGet() {
	s.mockCommands.EXPECT().View().Return(s.cartView(2))
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil)

	var response resdto.CartResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Lines, 1)
	s.Equal(int64(1), response.Lines[0].ItemID)
	s.Equal(2, response.Lines[0].Quantity)
	s.Equal(2, response.Summary.Items)
	s.True(decimal.RequireFromString("5.00").Equal(response.Summary.Subtotal))
	s.True(decimal.RequireFromString("0.40").Equal(response.Summary.Tax))
	s.True(decimal.RequireFromString("5.40").Equal(response.Summary.Total))
	s.False(response.CheckoutInProgress)
}

func (s *CartHandlerTestSuite) TestAddLine() {
	url := "/cart/lines"
	qty := 3
	reqBody := reqdto.AddLineRequest{ItemID: 1, Quantity: &qty}

	s.Run("success: returns 200 OK with the updated cart", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), catalog.ID(1), 3).Return(s.cartView(3), nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.Lines[0].Quantity)
	})

	s.Run("success: quantity defaults to one", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), catalog.ID(1), 1).Return(s.cartView(1), nil)
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseCart{
			{name: "missing field: itemId (required)", mutate: testutil.Field("itemId", nil), expectCode: http.StatusBadRequest},
			{name: "itemId boundary invalid (0)", mutate: testutil.Field("itemId", 0), expectCode: http.StatusBadRequest},
			{name: "itemId must be a number", mutate: testutil.Field("itemId", "one"), expectCode: http.StatusBadRequest},
			{name: "quantity must be a number", mutate: testutil.Field("quantity", "two"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"invalid quantity", errs.Mark(errs.ErrInvalidQuantity, errs.ErrValidation), http.StatusBadRequest, "Quantity must be at least 1"},
			{"out of stock", errs.Mark(errs.ErrItemUnavailable, errs.ErrValidation), http.StatusUnprocessableEntity, "Item is out of stock"},
			{"item not found", errs.Mark(errors.New("404"), errs.ErrItemNotFound), http.StatusNotFound, "Item not found"},
			{"store down", errs.ErrServiceUnavailable, http.StatusServiceUnavailable, "Store service unavailable"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddItem(gomock.Any(), catalog.ID(1), 3).Return(shared.CartView{}, tc.commandsError)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CartHandlerTestSuite) TestSetQuantity() {
	s.Run("success: zero is passed through to remove the line", func() {
		s.mockCommands.EXPECT().SetQuantity(catalog.ID(1), 0).Return(shared.CartView{}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/lines/1", map[string]any{"quantity": 0})

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Lines)
	})

	s.Run("error: 400 on a bad item id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/lines/abc", map[string]any{"quantity": 1})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid item id")
	})

	s.Run("error: 400 when quantity is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/lines/1", map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 for a line not in the cart", func() {
		s.mockCommands.EXPECT().SetQuantity(catalog.ID(9), 2).
			Return(shared.CartView{}, errs.Mark(errs.ErrLineNotFound, errs.ErrValidation))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/lines/9", map[string]any{"quantity": 2})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart line not found")
	})
}

func (s *CartHandlerTestSuite) TestRemoveAndClear() {
	s.Run("success: remove line", func() {
		s.mockCommands.EXPECT().Remove(catalog.ID(1)).Return(shared.CartView{})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/lines/1", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: remove with a non-positive id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/lines/0", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid item id")
	})

	s.Run("success: clear", func() {
		s.mockCommands.EXPECT().Clear().Return(shared.CartView{})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil)

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Lines)
		s.True(response.Summary.Total.IsZero())
	})
}
