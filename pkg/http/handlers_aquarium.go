package http

import (
	"net/http"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"liyu1981.xyz/aquarium-service/pkg/models"
)

type AquariumRequest struct {
	Name   string  `json:"name" zog:"name"`
	Volume float64 `json:"volume" zog:"volume"`
}

var aquariumRequestSchema = z.Struct(z.Shape{
	"Name":   z.String().Min(1).Required(),
	"Volume": z.Float64().Required().GT(0),
})

func (rs *RestfulServer) ListAquariums(c *gin.Context) {
	aquariums, err := rs.Aqua.Aquarium.ListAquariums()
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, aquariums)
}

func (rs *RestfulServer) CreateAquarium(c *gin.Context) {
	var req AquariumRequest
	if err := aquariumRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and volume are required", "issues": err})
		return
	}

	aquarium, err := rs.Aqua.Aquarium.CreateAquarium(&models.Aquarium{
		Name:   req.Name,
		Volume: req.Volume,
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, aquarium)
}

func (rs *RestfulServer) DeleteAquarium(c *gin.Context) {
	id, ok := idParam(c, "aquarium")
	if !ok {
		return
	}

	if err := rs.Aqua.Aquarium.DeleteAquarium(id); err != nil {
		rs.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MeasurementRequest is bound with gin validators: a reading of exactly 0 is valid, and
// only a pointer tells it apart from a missing valore.
type MeasurementRequest struct {
	Tipo   models.MeasurementType `json:"tipo" binding:"required"`
	Valore *float64               `json:"valore" binding:"required"`
	Data   time.Time              `json:"data" binding:"required"`
}

type MeasurementsResponse struct {
	Parametri []models.Measurement `json:"parametri"`
}

func (rs *RestfulServer) AddMeasurement(c *gin.Context) {
	id, ok := idParam(c, "aquarium")
	if !ok {
		return
	}

	var req MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tipo, valore and data are required", "issues": err.Error()})
		return
	}

	measurements, err := rs.Aqua.Measurement.AddMeasurement(id, &models.Measurement{
		Tipo:   req.Tipo,
		Valore: *req.Valore,
		Data:   req.Data,
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	rs.Metrics.RecordMeasurement(string(req.Tipo))

	c.JSON(http.StatusOK, MeasurementsResponse{Parametri: measurements})
}

func (rs *RestfulServer) ListMeasurements(c *gin.Context) {
	id, ok := idParam(c, "aquarium")
	if !ok {
		return
	}

	measurements, err := rs.Aqua.Measurement.ListMeasurements(id)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MeasurementsResponse{Parametri: measurements})
}
