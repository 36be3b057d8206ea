package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/rafaeldl/praticOSopen-sub000/docs" // This will be auto-generated
	"github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/handlers"
	"github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/middleware"
	repository2 "github.com/rafaeldl/praticOSopen-sub000/internal/adapter/persistence/repository"
	"github.com/rafaeldl/praticOSopen-sub000/internal/infrastructure/database"
	"github.com/rafaeldl/praticOSopen-sub000/internal/infrastructure/payments"
	"github.com/rafaeldl/praticOSopen-sub000/internal/infrastructure/push"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces"

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

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	shareRepo := repository2.NewShareTokenDynamoRepository(ddb)
	commentRepo := repository2.NewCommentDynamoRepository(ddb)
	authRepo := repository2.NewAuthDynamoRepository(ddb)

	clock := usecase.SystemClock{}
	ids := usecase.UUIDGenerator{}

	var sink interfaces.INotificationSink = usecase.LoggingSink{}
	if expoSink, err := push.NewExpoSink(); err != nil {
		log.Printf("Expo push sink not configured, falling back to log-only: %v", err)
	} else {
		sink = expoSink
	}
	dispatcher := usecase.NewNotificationDispatcher(authRepo, sink)

	orderUseCase := usecase.NewOrderUseCase(orderRepo, commentRepo, dispatcher, clock, ids)
	shareUseCase := usecase.NewShareTokenUseCase(shareRepo, orderRepo, commentRepo, authRepo, dispatcher, clock, ids)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, orderRepo, clock, ids)
	resolver := usecase.NewAuthResolver(authRepo, shareUseCase, clock, []byte(os.Getenv("JWT_SECRET")))

	// A nil gateway still satisfies the port: it rejects every charge with a
	// not-configured error instead of panicking.
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured, public payments will fail: %v", err)
	}
	paymentUseCase := usecase.NewPaymentUseCase(mpGateway, shareUseCase, orderUseCase, commentRepo, dispatcher, clock, ids)

	authHandler := handlers.NewAuthHandler(resolver)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	shareHandler := handlers.NewShareHandler(shareUseCase, clock)
	publicHandler := handlers.NewPublicHandler(shareUseCase, orderUseCase, commentUseCase, paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addOrderRoutes(v1, middleware.Staff(resolver), orderHandler, shareHandler)
	addPublicRoutes(v1, publicHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
