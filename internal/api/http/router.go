package http

import (
	"github.com/bcalvareng-web/mindai-hub/internal/api/http/handler"
	"github.com/bcalvareng-web/mindai-hub/internal/api/http/middleware"
	"github.com/bcalvareng-web/mindai-hub/internal/license"
	"github.com/bcalvareng-web/mindai-hub/internal/llm"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Registry  *license.Registry
	Completer llm.Completer
	AdminKey  string
}

func SetupRoute(engine *gin.Engine, srvs *Services) {
	engine.Use(middleware.RequestLogger())

	healthHandler := handler.NewHealthHandler()
	engine.GET("/health", healthHandler.Check)

	licenseHandler := handler.NewLicenseHandler(srvs.Registry)
	engine.POST("/api/mindai/license/validate", licenseHandler.Validate)

	admin := engine.Group("/api/mindai/license", middleware.AdminKeyAuth(srvs.AdminKey))
	admin.GET("/admin", licenseHandler.AdminList)
	admin.PUT("/admin", licenseHandler.AdminUpdate)

	generateHandler := handler.NewGenerateHandler(srvs.Completer)
	engine.POST("/api/generate-content-ideas", generateHandler.ContentIdeas)
	engine.POST("/api/generate-neural-content", generateHandler.NeuralContent)
	engine.POST("/api/generate-neuro-responses", generateHandler.NeuroResponses)
}
