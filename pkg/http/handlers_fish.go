package http

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"liyu1981.xyz/aquarium-service/pkg/models"
)

// FishRequest is bound with gin validators so aquariumId keeps its JSON type: a string
// is rejected outright and a fractional number is kept as is rather than truncated.
type FishRequest struct {
	Name       string   `json:"name" binding:"required"`
	Species    string   `json:"species" binding:"required"`
	AquariumID *float64 `json:"aquariumId" binding:"required"`
}

// aquariumRef turns the requested aquariumId into a record id. A value that no
// aquarium id can equal reports false.
func aquariumRef(v float64) (uint, bool) {
	if v != math.Trunc(v) || v > math.MaxUint32 {
		return 0, false
	}
	return uint(v), true
}

func (rs *RestfulServer) ListFish(c *gin.Context) {
	fish, err := rs.Aqua.Fish.ListFish()
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fish)
}

func (rs *RestfulServer) CreateFish(c *gin.Context) {
	var req FishRequest
	if err := c.ShouldBindJSON(&req); err != nil || *req.AquariumID <= 0 {
		issues := "aquariumId must be positive"
		if err != nil {
			issues = err.Error()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, species and aquariumId are required", "issues": issues})
		return
	}

	aquariumID, ok := aquariumRef(*req.AquariumID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "aquarium not found"})
		return
	}

	fish, err := rs.Aqua.Fish.CreateFish(&models.Fish{
		Name:       req.Name,
		Species:    req.Species,
		AquariumID: aquariumID,
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fish)
}

func (rs *RestfulServer) DeleteFish(c *gin.Context) {
	id, ok := idParam(c, "fish")
	if !ok {
		return
	}

	if err := rs.Aqua.Fish.DeleteFish(id); err != nil {
		rs.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
