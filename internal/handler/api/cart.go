package api

import (
	"net/http"

	"storefront-engine/internal/domain/catalog"
	reqdto "storefront-engine/internal/handler/dto/request"
	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/handler/httperr"
	"storefront-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
}

func NewCartHandler(cmds commands.CartCommands) *CartHandler {
	return &CartHandler{cmds: cmds}
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCartView(h.cmds.View()))
}

// @Summary Add item to cart
// @Description Adds an item by id, or increments its line. Quantities above the limit are clamped.
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddLineRequest true "Item and quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /cart/lines [post]
func (h *CartHandler) AddLine(c *gin.Context) {
	var req reqdto.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.AddItem(c.Request.Context(), req.GetItemID(), req.GetQuantity())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Set line quantity
// @Description Zero or a negative quantity removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param itemId path int true "Item ID"
// @Param request body reqdto.SetQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/lines/{itemId} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	itemID, err := catalog.ParseID(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}
	var req reqdto.SetQuantityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.cmds.SetQuantity(itemID, *req.Quantity)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove line
// @Tags cart
// @Produce json
// @Param itemId path int true "Item ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /cart/lines/{itemId} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	itemID, err := catalog.ParseID(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(h.cmds.Remove(itemID)))
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCartView(h.cmds.Clear()))
}
