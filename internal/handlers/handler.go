package handlers

import (
	"parking_sms/internal/logger"
	"parking_sms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerPublicAPIRoutes(router)
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerPublicAPIRoutes(r *gin.Engine) {
	r.Group("/api/v1").GET("/tariffs", h.getTariffs)
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerParkingRoutes(api)
		api.GET("/logs", h.getLogs)
		// WebSocket view stream; browsers pass the token as ?access_token=
		api.GET("/ws", h.wsConnect)
	}
}

func (h *Handler) registerParkingRoutes(api *gin.RouterGroup) {
	p := api.Group("/parking")
	{
		p.GET("/state", h.getState)
		p.PUT("/zone", h.setZone)         // {"zone":"II"}
		p.PUT("/duration", h.setDuration) // {"duration_value":"1h"}
		p.PUT("/plate", h.setPlate)       // {"plate":"cj 12 abc"}
		p.POST("/plates", h.savePlate)
		p.POST("/plates/pick", h.pickPlate) // {"plate":"CJ12ABC"}
		p.DELETE("/plates/:plate", h.deletePlate)
		p.POST("/send", h.send)
	}
}
