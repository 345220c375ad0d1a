package api

import (
	"net/http"

	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
	cart commands.CartCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, cart commands.CartCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, cart: cart}
}

// @Summary Check out
// @Description Purchase every cart line in order. Per-line outcomes are in the body;
// @Description committed lines are removed from the cart.
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	attempt, err := h.cmds.Checkout(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAttempt(attempt, resdto.FromCartView(h.cart.View())))
}
