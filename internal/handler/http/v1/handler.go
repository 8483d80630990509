package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/murefu/geo_status_engine/internal/config"
	"github.com/murefu/geo_status_engine/internal/models"
	"github.com/murefu/geo_status_engine/internal/service"
	"github.com/sirupsen/logrus"
)

// unknownZoneName - запасное имя зоны для онбординга, когда ни одна зона
// не содержит точку. Это политика этого вызывающего, а не справочника зон.
const unknownZoneName = "Unknown"

type Handler struct {
	zoneService        service.ZoneService
	observationService service.ObservationService
	statusService      service.StatusService
	pulseService       service.PulseService
	heatmapService     service.HeatmapService
	logger             *logrus.Logger
	validate           *validator.Validate
	cfg                *config.Config
}

func NewHandler(
	zoneService service.ZoneService,
	observationService service.ObservationService,
	statusService service.StatusService,
	pulseService service.PulseService,
	heatmapService service.HeatmapService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		zoneService:        zoneService,
		observationService: observationService,
		statusService:      statusService,
		pulseService:       pulseService,
		heatmapService:     heatmapService,
		logger:             logger,
		validate:           validator.New(),
		cfg:                cfg,
	}
}

// @Summary Create a new zone
// @Description Create a new geographic zone (polygon or reference point). Requires API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zone body CreateZoneRequest true "Zone creation request"
// @Success 201 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	var input CreateZoneRequest
	log := h.logger.WithField("method", "createZone")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToZoneModel(input)
	if err := h.zoneService.CreateZone(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to create zone in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToZoneResponse(model))
}

// @Summary Get a list of zones
// @Description Get a paginated list of all zones.
// @Tags Zones
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} ZoneResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	log := h.logger.WithField("method", "listZones")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	zones, err := h.zoneService.ListZones(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list zones from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToZoneResponses(zones))
}

// @Summary Get zone by ID
// @Description Get a single zone by its ID.
// @Tags Zones
// @Accept json
// @Produce json
// @Param id path int true "Zone ID"
// @Success 200 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 404 {object} map[string]string "Zone not found"
// @Router /zones/{id} [get]
func (h *Handler) getZone(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "getZone").WithField("id", id)

	zone, err := h.zoneService.GetZone(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get zone from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToZoneResponse(zone))
}

// @Summary Update an existing zone
// @Description Update an existing zone by ID. Requires API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Zone ID"
// @Param zone body UpdateZoneRequest true "Zone update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid zone ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [put]
func (h *Handler) updateZone(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "updateZone").WithField("id", id)

	var input UpdateZoneRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToZoneModel(input)
	model.ID = id

	if err := h.zoneService.UpdateZone(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to update zone in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update zone in service"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete a zone
// @Description Delete a zone by its ID. Requires API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Zone ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [delete]
func (h *Handler) deleteZone(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "deleteZone").WithField("id", id)

	if err := h.zoneService.DeleteZone(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete zone in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete zone"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Resolve coordinates to a zone name
// @Description Resolve a coordinate to the name of the first neighborhood zone containing it. Returns "Unknown" when no zone matches.
// @Tags Zones
// @Accept json
// @Produce json
// @Param lon query number true "Longitude"
// @Param lat query number true "Latitude"
// @Success 200 {object} ResolveZoneResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/resolve [get]
func (h *Handler) resolveZone(c *gin.Context) {
	log := h.logger.WithField("method", "resolveZone")

	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	if lonErr != nil || latErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	zone, err := h.zoneService.ResolveZone(c.Request.Context(), lon, lat, models.ZoneKindNeighborhood)
	if err != nil {
		if errors.Is(err, service.ErrZoneNotFound) {
			c.JSON(http.StatusOK, ResolveZoneResponse{Zone: unknownZoneName})
			return
		}
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to resolve zone in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ResolveZoneResponse{Zone: zone.Name})
}

// @Summary Record a service observation
// @Description Record a citizen's per-day observation of a utility service. A repeated submission for the same (user, service, day) is rejected with 409.
// @Tags Observations
// @Accept json
// @Produce json
// @Param observation body RecordObservationRequest true "Observation"
// @Success 201 {object} ObservationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Observation already recorded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /observations [post]
func (h *Handler) recordObservation(c *gin.Context) {
	var input RecordObservationRequest
	log := h.logger.WithField("method", "recordObservation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	observedOn, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	observation, err := h.observationService.Record(c.Request.Context(), service.RecordObservationInput{
		UserID:     input.UserID,
		Service:    models.ServiceKind(input.Service),
		ObservedOn: observedOn,
		Status:     models.ObservationStatus(input.Status),
		Arrival:    input.Arrival,
		Departure:  input.Departure,
		Notes:      input.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateObservation) {
			c.JSON(http.StatusConflict, gin.H{"error": "observation already recorded for this day"})
			return
		}
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to record observation in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, ModelToObservationResponse(observation))
}

// @Summary Get the service status of a zone
// @Description Get the derived availability status of a service in a zone over the rolling window. Zero samples yield status "unknown" with no score.
// @Tags Status
// @Accept json
// @Produce json
// @Param service query string true "Service kind" Enums(electricity, water)
// @Param zone query int true "Zone ID"
// @Success 200 {object} ZoneStatusResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zone-status [get]
func (h *Handler) getZoneStatus(c *gin.Context) {
	log := h.logger.WithField("method", "getZoneStatus")

	zoneID, err := strconv.ParseInt(c.Query("zone"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	kind := models.ServiceKind(c.Query("service"))

	status, err := h.statusService.CurrentStatus(c.Request.Context(), zoneID, kind)
	if err != nil {
		if errors.Is(err, service.ErrZoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
			return
		}
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to get zone status from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToZoneStatusResponse(status))
}

// @Summary Get the live pulse of a service
// @Description Get the list of neighborhoods currently reporting the service as available (short window, default 60 minutes).
// @Tags Status
// @Accept json
// @Produce json
// @Param service query string true "Service kind" Enums(electricity, water)
// @Success 200 {object} PulseResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /pulse [get]
func (h *Handler) getPulse(c *gin.Context) {
	log := h.logger.WithField("method", "getPulse")
	kind := models.ServiceKind(c.Query("service"))

	names, err := h.pulseService.ActiveZones(c.Request.Context(), kind)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to get pulse from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, PulseResponse{ActiveNeighborhoods: names})
}

// @Summary Get a heatmap layer
// @Description Get a weighted GeoJSON FeatureCollection: problems (open reports), coverage (active assets) or community (user density).
// @Tags Heatmap
// @Accept json
// @Produce json
// @Param type query string true "Layer kind" Enums(problems, coverage, community)
// @Param hours_ago query int false "Recency window in hours" default(24)
// @Success 200 {object} geojson.FeatureCollection
// @Failure 400 {object} map[string]string "Unknown layer kind"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /heatmap [get]
func (h *Handler) getHeatmap(c *gin.Context) {
	log := h.logger.WithField("method", "getHeatmap")

	kind := c.Query("type")
	hoursAgo, err := strconv.Atoi(c.DefaultQuery("hours_ago", "24"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hours_ago"})
		return
	}

	collection, err := h.heatmapService.BuildFeatureCollection(c.Request.Context(), kind, hoursAgo)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to build heatmap in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, collection)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
