package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/atoa_simulation/internal/config"
	"github.com/shenikar/atoa_simulation/internal/render"
	"github.com/shenikar/atoa_simulation/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	simulationService service.SimulationService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(simulationService service.SimulationService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		simulationService: simulationService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// @Summary Create a new simulation
// @Description Create a two-road comparison run: control road A without alerts and ATOA road B. Omitted parameters take server defaults. Requires API key.
// @Tags Simulations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param simulation body CreateSimulationRequest true "Simulation parameters"
// @Success 201 {object} SimulationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulations [post]
func (h *Handler) createSimulation(c *gin.Context) {
	var input CreateSimulationRequest
	log := h.logger.WithField("method", "createSimulation")

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

	sim, err := h.simulationService.CreateSimulation(c.Request.Context(), DTOToCreateRequest(input, h.cfg.Simulation))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToSimulationResponse(sim))
}

// @Summary Get a list of simulations
// @Description Get a paginated list of simulations, newest first. Requires API key.
// @Tags Simulations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} SimulationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulations [get]
func (h *Handler) listSimulations(c *gin.Context) {
	log := h.logger.WithField("method", "listSimulations")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	sims, err := h.simulationService.ListSimulations(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToSimulationResponses(sims))
}

// @Summary Get simulation by ID
// @Description Get the current state of a simulation. Requires API key.
// @Tags Simulations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Simulation ID"
// @Success 200 {object} SimulationResponse
// @Failure 400 {object} map[string]string "Invalid simulation ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Simulation not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulations/{id} [get]
func (h *Handler) getSimulation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSimulation").WithField("id", id)

	sim, err := h.simulationService.GetSimulation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSimulationResponse(sim))
}

// @Summary Advance a simulation
// @Description Run the given number of ticks on both roads. Requires API key.
// @Tags Simulations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Simulation ID"
// @Param step body StepRequest true "Number of ticks"
// @Success 200 {object} StepResponse
// @Failure 400 {object} map[string]string "Invalid simulation ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Simulation not found"
// @Failure 409 {object} map[string]string "Simulation is not running"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulations/{id}/step [post]
func (h *Handler) stepSimulation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "stepSimulation").WithField("id", id)

	var input StepRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	res, err := h.simulationService.Step(c.Request.Context(), id, input.Ticks)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StepResponse{
		Simulation: ModelToSimulationResponse(res.Simulation),
		Events:     ModelsToEventResponses(res.Events),
	})
}

// @Summary Change fog level
// @Description Change the fog level of a running simulation, 0 to 90 percent. Requires API key.
// @Tags Simulations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Simulation ID"
// @Param fog body FogRequest true "Fog level"
// @Success 200 {object} SimulationResponse
// @Failure 400 {object} map[string]string "Invalid simulation ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Simulation not found"
// @Failure 409 {object} map[string]string "Simulation is not running"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulations/{id}/fog [put]
func (h *Handler) setFog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "setFog").WithField("id", id)

	var input FogRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	sim, err := h.simulationService.SetFog(c.Request.Context(), id, *input.FogLevel)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSimulationResponse(sim))
}

// @Summary Inject a hazard
// @Description Crash a vehicle immediately on one road. Requires API key.
// @Tags Simulations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Simulation ID"
// @Param hazard body HazardRequest true "Road and vehicle"
// @Success 201 {object} EventResponse
// @Failure 400 {object} map[string]string "Invalid request or hazard already active"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Simulation not found"
// @Failure 409 {object} map[string]string "Simulation is not running"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulations/{id}/hazards [post]
func (h *Handler) injectHazard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "injectHazard").WithField("id", id)

	var input HazardRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	ev, err := h.simulationService.InjectHazard(c.Request.Context(), id, input.RoadID, input.VehicleID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToEventResponse(*ev))
}

// @Summary Render the road
// @Description ASCII projection of one road, optionally from one driver's viewpoint in fog. Requires API key.
// @Tags Simulations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Simulation ID"
// @Param road query string false "Road ID" default(B)
// @Param viewpoint query string false "Vehicle ID of the viewer"
// @Param width query int false "Number of cells, 0 for one per road unit" default(0)
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Simulation not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulations/{id}/view [get]
func (h *Handler) getView(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getView").WithField("id", id)

	width, err := strconv.Atoi(c.DefaultQuery("width", "0"))
	if err != nil || width < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid width"})
		return
	}
	req := service.ViewRequest{
		RoadID:    c.DefaultQuery("road", service.AlertRoadID),
		Viewpoint: c.Query("viewpoint"),
		Width:     width,
	}

	view, err := h.simulationService.RenderView(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewResponse{
		RoadID:    req.RoadID,
		Viewpoint: req.Viewpoint,
		View:      view,
		Legend:    render.Legend,
	})
}

// @Summary Get simulation events
// @Description Get a paginated event log of a simulation in order of occurrence. Requires API key.
// @Tags Simulations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Simulation ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} EventResponse
// @Failure 400 {object} map[string]string "Invalid simulation ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulations/{id}/events [get]
func (h *Handler) listEvents(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listEvents").WithField("id", id)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	events, err := h.simulationService.ListEvents(c.Request.Context(), id, page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToEventResponses(events))
}

// @Summary Stop a simulation
// @Description Stop a running simulation. Its history stays available. Requires API key.
// @Tags Simulations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Simulation ID"
// @Success 200 {object} SimulationResponse
// @Failure 400 {object} map[string]string "Invalid simulation ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Simulation not found"
// @Failure 409 {object} map[string]string "Simulation is not running"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulations/{id} [delete]
func (h *Handler) stopSimulation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "stopSimulation").WithField("id", id)

	sim, err := h.simulationService.StopSimulation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSimulationResponse(sim))
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

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid simulation ID"})
		return uuid.Nil, false
	}
	return id, true
}

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

// respondError переводит ошибки сервиса в HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		log.WithError(err).Warn("Rejected by service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSimulationNotFound):
		log.WithError(err).Warn("Simulation not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "simulation not found"})
	case errors.Is(err, service.ErrSimulationNotRunning):
		log.WithError(err).Warn("Simulation is not running")
		c.JSON(http.StatusConflict, gin.H{"error": "simulation is not running"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
