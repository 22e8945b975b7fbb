package routes

import (
	"log"
	"strconv"

	_ "pj_billing/docs" // generated swagger docs
	"pj_billing/internal/adapter/http/handlers"
	"pj_billing/internal/adapter/http/session"
	"pj_billing/internal/adapter/persistence/repository"
	"pj_billing/internal/infrastructure/database"
	"pj_billing/internal/infrastructure/identity"
	"pj_billing/internal/infrastructure/notifications"
	"pj_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	applicationRepo := repository.NewBillingApplicationDynamoRepository(ddb)
	projectCatalog := repository.NewProjectCatalogDynamoRepository(ddb)
	templateRepo := repository.NewEmailTemplateDynamoRepository(ddb)

	identityProvider := identity.NewHeaderIdentityProvider()
	dispatcher := notifications.NewLogDispatcher()

	draftUseCase := usecase.NewDraftFlowUseCase(projectCatalog, templateRepo)
	registryUseCase := usecase.NewBillingApplicationUseCase(applicationRepo, identityProvider, dispatcher)
	approvalUseCase := usecase.NewApprovalUseCase(applicationRepo, dispatcher)

	draftStore := session.NewStore()

	projectHandler := handlers.NewProjectHandler(draftUseCase)
	budgetHandler := handlers.NewBudgetHandler()
	draftHandler := handlers.NewDraftHandler(draftStore, draftUseCase, registryUseCase)
	applicationHandler := handlers.NewBillingApplicationHandler(registryUseCase)
	approvalHandler := handlers.NewApprovalHandler(approvalUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkflowRoutes(v1, projectHandler, budgetHandler, draftHandler, applicationHandler, approvalHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(principalMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
