package api

import (
	"net/http"

	reqdto "storefront-engine/internal/handler/dto/request"
	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/handler/httperr"
	"storefront-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	cmds commands.SessionCommands
}

func NewSessionHandler(cmds commands.SessionCommands) *SessionHandler {
	return &SessionHandler{cmds: cmds}
}

// @Summary Set credential
// @Description Store the bearer token attached to store API calls
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.SetTokenRequest true "Bearer token"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Router /session/token [put]
func (h *SessionHandler) SetToken(c *gin.Context) {
	var req reqdto.SetTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	session, err := h.cmds.SignIn(req.Token)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(session))
}

// @Summary Clear credential
// @Tags session
// @Success 204 "No Content"
// @Router /session/token [delete]
func (h *SessionHandler) ClearToken(c *gin.Context) {
	h.cmds.SignOut()
	c.Status(http.StatusNoContent)
}

// @Summary Current session
// @Tags session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /session [get]
func (h *SessionHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSession(h.cmds.Current()))
}
