package handlers

import (
	"net/http"

	"ridelink/models"
	"ridelink/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves the vehicle search endpoint.
type SearchHandler struct {
	Service search.SearchService
	Logger  *zap.Logger
}

func NewSearchHandler(svc search.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{Service: svc, Logger: logger}
}

// SearchVehicles handles POST /api/search. The body is form-encoded; all
// outcomes (validation failure, estimation failure, matches, no matches) are
// returned as a 200 with the outcome encoded in the response body.
func (h *SearchHandler) SearchVehicles(c *gin.Context) {
	var form models.SearchForm
	if err := c.ShouldBind(&form); err != nil {
		h.Logger.Debug("failed to bind search form", zap.Error(err))
		c.JSON(http.StatusOK, models.SearchResponse{
			Error:   search.MsgInvalidForm,
			Results: []models.SearchResult{},
		})
		return
	}

	resp := h.Service.Search(c.Request.Context(), form)
	c.JSON(http.StatusOK, resp)
}
