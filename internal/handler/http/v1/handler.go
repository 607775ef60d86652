package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/parade_tracking_system/internal/config"
	"github.com/shenikar/parade_tracking_system/internal/models"
	"github.com/shenikar/parade_tracking_system/internal/service"
	"github.com/shenikar/parade_tracking_system/internal/store"
	"github.com/sirupsen/logrus"
)

const defaultHistoryLimit = 50

type Handler struct {
	trackingService service.TrackingService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(trackingService service.TrackingService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		trackingService: trackingService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondError переводит ошибки сервиса в HTTP-коды
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.WithError(err).Warn("Boat not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "boat not found"})
	case errors.Is(err, models.ErrInvalidTransition):
		log.WithError(err).Warn("Status transition rejected")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidFix), errors.Is(err, service.ErrBoatIDRequired):
		log.WithError(err).Warn("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Tracking service failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindAndValidate разбирает тело запроса и проверяет его. false - ответ уже отправлен.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Ingest a GPS fix
// @Description Receive a GPS fix from a boat tracker, map it onto the parade route and update the boat state.
// @Description Fixes that cannot be mapped within the corridor tolerance are stored as unmapped sightings and answered with 202.
// @Tags Tracking
// @Accept json
// @Produce json
// @Param fix body FixRequest true "GPS fix"
// @Success 200 {object} FixResponse
// @Success 202 {object} FixResponse "Fix is not on route"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Unknown boat"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /webhook/fix [post]
func (h *Handler) ingestFix(c *gin.Context) {
	var input FixRequest
	log := h.logger.WithField("method", "ingestFix")

	if !h.bindAndValidate(c, log, &input) {
		return
	}
	log = log.WithField("boat_id", input.BoatID)

	res, err := h.trackingService.IngestFix(c.Request.Context(), input.BoatID, DTOToPositionFix(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	status := http.StatusOK
	if !res.OnRoute {
		status = http.StatusAccepted
	}
	c.JSON(status, IngestResultToResponse(input.BoatID, res))
}

// @Summary Get route summary
// @Description Get the parade route with cumulative distances and corridor thresholds. Requires API key.
// @Tags Route
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} RouteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /route [get]
func (h *Handler) getRoute(c *gin.Context) {
	c.JSON(http.StatusOK, RouteInfoToResponse(h.trackingService.Route()))
}

// @Summary Get a list of boats
// @Description Get current state of all boats ordered by id. Requires API key.
// @Tags Boats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} BoatResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /boats [get]
func (h *Handler) listBoats(c *gin.Context) {
	log := h.logger.WithField("method", "listBoats")

	boats, err := h.trackingService.ListBoats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToBoatResponses(boats))
}

// @Summary Register a boat
// @Description Register a boat before the parade starts. Registering an existing boat updates its name. Requires API key.
// @Tags Boats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param boat body RegisterBoatRequest true "Boat registration request"
// @Success 201 {object} BoatResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /boats [post]
func (h *Handler) registerBoat(c *gin.Context) {
	var input RegisterBoatRequest
	log := h.logger.WithField("method", "registerBoat")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	state, err := h.trackingService.RegisterBoat(c.Request.Context(), input.ID, input.Name)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToBoatResponse(state))
}

// @Summary Get boat by ID
// @Description Get current state of a single boat. Requires API key.
// @Tags Boats
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Boat ID"
// @Success 200 {object} BoatResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Boat not found"
// @Router /boats/{id} [get]
func (h *Handler) getBoat(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getBoat").WithField("boat_id", id)

	state, err := h.trackingService.GetBoat(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToBoatResponse(state))
}

// @Summary Get boat position history
// @Description Get recent mapped positions of a boat, most recent first. Requires API key.
// @Tags Boats
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Boat ID"
// @Param limit query int false "Number of positions" default(50)
// @Success 200 {array} PositionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Boat not found"
// @Router /boats/{id}/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getHistory").WithField("boat_id", id)
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit < 1 {
		limit = defaultHistoryLimit
	}

	history, err := h.trackingService.History(c.Request.Context(), id, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToPositionResponses(history))
}

// @Summary Get raw sightings of a boat
// @Description Get raw GPS fixes of a boat, including fixes that could not be mapped onto the route. Requires API key.
// @Tags Boats
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Boat ID"
// @Param limit query int false "Number of sightings" default(100)
// @Success 200 {array} SightingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Boat not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /boats/{id}/sightings [get]
func (h *Handler) getSightings(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getSightings").WithField("boat_id", id)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	sightings, err := h.trackingService.Sightings(c.Request.Context(), id, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToSightingResponses(sightings))
}

// @Summary Change boat status
// @Description Change boat status manually. Only transitions allowed by the boat state machine are accepted. Requires API key.
// @Tags Boats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Boat ID"
// @Param status body SetStatusRequest true "New status"
// @Success 200 {object} BoatResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Boat not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Router /boats/{id}/status [put]
func (h *Handler) setStatus(c *gin.Context) {
	id := c.Param("id")
	var input SetStatusRequest
	log := h.logger.WithField("method", "setStatus").WithField("boat_id", id)

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	state, err := h.trackingService.SetStatus(c.Request.Context(), id, models.Status(input.Status), input.Message)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToBoatResponse(state))
}

// @Summary Declare emergency
// @Description Force the boat into emergency with a critical incident. Requires API key.
// @Tags Boats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Boat ID"
// @Param emergency body EmergencyRequest false "Emergency details"
// @Success 200 {object} BoatResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Boat not found"
// @Router /boats/{id}/emergency [post]
func (h *Handler) declareEmergency(c *gin.Context) {
	id := c.Param("id")
	var input EmergencyRequest
	log := h.logger.WithField("method", "declareEmergency").WithField("boat_id", id)

	// Тело необязательно
	if c.Request.ContentLength != 0 && !h.bindAndValidate(c, log, &input) {
		return
	}

	state, err := h.trackingService.DeclareEmergency(c.Request.Context(), id, input.Message)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToBoatResponse(state))
}

// @Summary Clear emergency
// @Description Deliberately lift the emergency status of a boat. Requires API key.
// @Tags Boats
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Boat ID"
// @Success 200 {object} BoatResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Boat not found"
// @Failure 409 {object} map[string]string "Boat is not in emergency"
// @Router /boats/{id}/emergency [delete]
func (h *Handler) clearEmergency(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "clearEmergency").WithField("boat_id", id)

	state, err := h.trackingService.ClearEmergency(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToBoatResponse(state))
}

// @Summary Reset boat
// @Description Restart the course of a boat: position, history and corridor are cleared, incidents are kept. Requires API key.
// @Tags Boats
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Boat ID"
// @Success 200 {object} BoatResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Boat not found"
// @Router /boats/{id}/reset [post]
func (h *Handler) resetBoat(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "resetBoat").WithField("boat_id", id)

	state, err := h.trackingService.ResetBoat(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToBoatResponse(state))
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
