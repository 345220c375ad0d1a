package api

import (
	"net/http"

	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/handler/httperr"
	"storefront-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
	code    string
}

// Order matters: the specific markers come before ErrValidation, which most
// domain errors also carry.
var errorMappings = []errorMapping{
	{errs.ErrCheckoutInProgress, http.StatusConflict, "Checkout already in progress", "checkout_in_progress"},
	{errs.ErrEmptyCart, http.StatusBadRequest, "Cart is empty", "empty_cart"},
	{errs.ErrLineNotFound, http.StatusNotFound, "Cart line not found", "line_not_found"},
	{errs.ErrInvalidQuantity, http.StatusBadRequest, "Quantity must be at least 1", "invalid_quantity"},
	{errs.ErrItemUnavailable, http.StatusUnprocessableEntity, "Item is out of stock", "item_unavailable"},
	{errs.ErrInsufficientStock, http.StatusUnprocessableEntity, "Not enough stock", "insufficient_stock"},
	{errs.ErrValidation, http.StatusBadRequest, "Invalid request", "validation_failed"},
	{errs.ErrItemNotFound, http.StatusNotFound, "Item not found", "item_not_found"},
	{errs.ErrUnauthorized, http.StatusUnauthorized, "Store rejected the credential", "unauthorized"},
	{errs.ErrServiceUnavailable, http.StatusServiceUnavailable, "Store service unavailable", "service_unavailable"},
	{errs.ErrNetwork, http.StatusBadGateway, "Store service unreachable", "network_error"},
	{errs.ErrRequestRejected, http.StatusBadGateway, "Store rejected the request", "request_rejected"},
}

func mapError(err error) (int, resdto.ErrorResponse) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			return m.status, resdto.ErrorResponse{Message: m.message, Code: m.code}
		}
	}
	return http.StatusInternalServerError, resdto.ErrorResponse{Message: "Internal server error"}
}

// errorBody is the error shape embedded in streamed search results.
func errorBody(err error) resdto.ErrorResponse {
	_, body := mapError(err)
	return body
}

func abortWithError(c *gin.Context, err error) {
	status, body := mapError(err)
	httperr.AbortWithCode(c, status, err, body.Message, body.Code, nil)
}
