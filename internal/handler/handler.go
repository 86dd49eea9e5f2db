package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/teeseele/journey-service/docs"
	"github.com/teeseele/journey-service/internal/dto"
	"github.com/teeseele/journey-service/internal/metrics"
	"github.com/teeseele/journey-service/internal/service"
)

type Handler struct {
	journeyService service.JourneyServicer
	router         *gin.Engine
	log            *zap.Logger
}

func NewHandler(journeyService service.JourneyServicer, m *metrics.Metrics, log *zap.Logger) *Handler {
	h := &Handler{
		journeyService: journeyService,
		router:         gin.Default(),
		log:            log,
	}

	h.router.Use(cors.Default())
	h.router.Use(m.Middleware())
	h.registerRoutes(m)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes(m *metrics.Metrics) {
	h.router.GET("/health", h.healthCheck)
	h.router.GET("/metrics", gin.WrapH(m.Handler()))
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := h.router.Group("/api")
	api.POST("/journey", h.startJourney)
	api.POST("/interaction", h.recordInteraction)
	api.POST("/analyze", h.analyze)
	api.POST("/seed-teas", h.seedCatalog)
}

// writeServiceError maps service errors onto HTTP responses: validation
// sentinels become 400s, everything else is a store failure.
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrConsentRequired) || errors.Is(err, service.ErrJourneyIDRequired) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	})
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service and its store are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	if err := h.journeyService.Health(c.Request.Context()); err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// startJourney handles POST /api/journey
// @Summary Start a journey
// @Description Create a journey session; explicit consent is required
// @Tags journey
// @Accept json
// @Produce json
// @Param journey body dto.StartJourneyRequest true "Journey data"
// @Success 201 {object} dto.StartJourneyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/journey [post]
func (h *Handler) startJourney(c *gin.Context) {
	var req dto.StartJourneyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid journey request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	journeyID, err := h.journeyService.StartJourney(c.Request.Context(), &req)
	if err != nil {
		h.log.Warn("Failed to start journey", zap.Error(err))
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.StartJourneyResponse{JourneyID: journeyID})
}

// recordInteraction handles POST /api/interaction
// @Summary Record an interaction
// @Description Append one typed interaction event to a journey
// @Tags interaction
// @Accept json
// @Produce json
// @Param interaction body dto.RecordInteractionRequest true "Interaction data"
// @Success 201 {object} dto.RecordInteractionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/interaction [post]
func (h *Handler) recordInteraction(c *gin.Context) {
	var req dto.RecordInteractionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid interaction request",
			zap.Error(err),
			zap.String("type", req.Type))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	interactionID, err := h.journeyService.RecordInteraction(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to record interaction",
			zap.Error(err),
			zap.String("journey_id", req.JourneyID),
			zap.String("type", req.Type))
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RecordInteractionResponse{InteractionID: interactionID})
}

// analyze handles POST /api/analyze
// @Summary Analyze a journey
// @Description Compute the needs profile and ranked tea recommendation for a journey
// @Tags recommendation
// @Accept json
// @Produce json
// @Param analyze body dto.AnalyzeRequest true "Journey to analyze"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/analyze [post]
func (h *Handler) analyze(c *gin.Context) {
	var req dto.AnalyzeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	recommendation, err := h.journeyService.Analyze(c.Request.Context(), req.JourneyID)
	if err != nil {
		h.log.Error("Failed to analyze journey",
			zap.Error(err),
			zap.String("journey_id", req.JourneyID))
		h.writeServiceError(c, err)
		return
	}

	h.log.Info("Journey analyzed",
		zap.String("journey_id", req.JourneyID),
		zap.Strings("teas", recommendation.Teas))

	c.JSON(http.StatusOK, recommendation)
}

// seedCatalog handles POST /api/seed-teas
// @Summary Seed the tea catalog
// @Description Load the static tea catalog; a no-op if the catalog already has entries
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.SeedCatalogResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/seed-teas [post]
func (h *Handler) seedCatalog(c *gin.Context) {
	result, err := h.journeyService.SeedCatalog(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to seed tea catalog", zap.Error(err))
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
