package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	snackdomain "github.com/smallbiznis/snackcat/internal/snack/domain"
)

type createSnackRequest struct {
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Flavor   string   `json:"flavor"`
	Rating   *int     `json:"rating"`
	Price    *float64 `json:"price"`
	Store    string   `json:"store"`
	UPCCode  string   `json:"upc_code"`
	ImageURL string   `json:"image_url"`
}

func (s *Server) CreateSnack(c *gin.Context) {
	var req createSnackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.snackSvc.Create(c.Request.Context(), snackdomain.CreateRequest{
		Name:     strings.TrimSpace(req.Name),
		Brand:    strings.TrimSpace(req.Brand),
		Flavor:   strings.TrimSpace(req.Flavor),
		Rating:   req.Rating,
		Price:    req.Price,
		Store:    strings.TrimSpace(req.Store),
		UPCCode:  strings.TrimSpace(req.UPCCode),
		ImageURL: strings.TrimSpace(req.ImageURL),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListSnacks(c *gin.Context) {
	var query struct {
		Q string `form:"q"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.snackSvc.List(c.Request.Context(), snackdomain.ListRequest{
		Query: strings.TrimSpace(query.Q),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetSnackByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.snackSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// updateSnackRequest keeps rating raw so that a body with no rating
// key, "rating": null, and "rating": N are three distinct requests.
type updateSnackRequest struct {
	Rating json.RawMessage `json:"rating"`
}

func (s *Server) UpdateSnackRating(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req updateSnackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if len(req.Rating) == 0 {
		// No rating key: nothing to update, return the current entry.
		resp, err := s.snackSvc.Get(c.Request.Context(), id)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": resp})
		return
	}

	rating, err := parseRating(req.Rating)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.snackSvc.UpdateRating(c.Request.Context(), id, rating)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func parseRating(raw json.RawMessage) (*int, error) {
	if string(raw) == "null" {
		return nil, nil
	}

	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, snackdomain.ErrInvalidRating
	}
	return &value, nil
}
