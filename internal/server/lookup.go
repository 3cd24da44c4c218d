package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type barcodeLookupRequest struct {
	UPC string `json:"upc"`
}

func (s *Server) BarcodeLookup(c *gin.Context) {
	var req barcodeLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.lookupSvc.Lookup(c.Request.Context(), strings.TrimSpace(req.UPC))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
