package routes

import (
	_ "billed_service/docs" // This will be auto-generated
	"billed_service/internal/adapter/http/handlers"
	"billed_service/internal/adapter/http/middleware"
	repository2 "billed_service/internal/adapter/persistence/repository"
	"billed_service/internal/infrastructure/database"
	"billed_service/internal/infrastructure/storage"
	"billed_service/internal/usecase"
	"log"
	"strconv"

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
	s3c := storage.ConnectS3()

	billRepo := repository2.NewBillDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	attachments := storage.NewS3AttachmentStorage(s3c)

	submissionUseCase := usecase.NewBillSubmissionUseCase(billRepo, attachments)
	listingUseCase := usecase.NewBillListingUseCase(billRepo)
	reviewUseCase := usecase.NewBillReviewUseCase(billRepo)

	submissionHandler := handlers.NewBillSubmissionHandler(submissionUseCase)
	billsHandler := handlers.NewBillsHandler(listingUseCase, reviewUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Everything bill-shaped needs the authenticated-user record.
	authed := v1.Group("", middleware.RequireUser(userRepo))
	addBillRoutes(authed, submissionHandler, billsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
