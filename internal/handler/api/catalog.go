package api

import (
	"io"
	"net/http"

	reqdto "storefront-engine/internal/handler/dto/request"
	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/handler/httperr"
	"storefront-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const resultEvent = "result"

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary Submit search criteria
// @Description Record new filter criteria; the search runs once input settles
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.CriteriaRequest true "Filter criteria"
// @Success 202 {object} resdto.SubmitCriteriaResponse
// @Failure 400 {object} httperr.Response
// @Router /catalog/criteria [post]
func (h *CatalogHandler) SubmitCriteria(c *gin.Context) {
	var req reqdto.CriteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	criteria, err := h.q.SubmitCriteria(req.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.SubmitCriteriaResponse{
		Criteria: resdto.FromCriteria(criteria),
		Status:   "pending",
	})
}

// @Summary Refresh search results
// @Description Re-run the current search immediately
// @Tags catalog
// @Success 202 "Accepted"
// @Router /catalog/refresh [post]
func (h *CatalogHandler) Refresh(c *gin.Context) {
	h.q.Refresh()
	c.Status(http.StatusAccepted)
}

// @Summary Latest search result
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.SearchResultResponse
// @Success 204 "No search has completed yet"
// @Router /catalog/results [get]
func (h *CatalogHandler) Latest(c *gin.Context) {
	result, ok := h.q.Latest()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResult(result, errorBody))
}

// @Summary Stream search results
// @Description Server-Sent Events; one "result" event per published search result
// @Tags catalog
// @Produce text/event-stream
// @Router /catalog/results/stream [get]
func (h *CatalogHandler) Stream(c *gin.Context) {
	results, cancel := h.q.Subscribe()
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	if latest, ok := h.q.Latest(); ok {
		c.SSEvent(resultEvent, resdto.FromResult(latest, errorBody))
		c.Writer.Flush()
	}

	c.Stream(func(_ io.Writer) bool {
		select {
		case r, ok := <-results:
			if !ok {
				return false
			}
			c.SSEvent(resultEvent, resdto.FromResult(r, errorBody))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /catalog/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.q.Categories(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategories(categories))
}
