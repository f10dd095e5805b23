package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "malharia_pdv/docs" // This will be auto-generated
	"malharia_pdv/internal/adapter/http/handlers"
	repository2 "malharia_pdv/internal/adapter/persistence/repository"
	"malharia_pdv/internal/infrastructure/database"
	"malharia_pdv/internal/infrastructure/payments"
	"malharia_pdv/internal/infrastructure/sheetstore"
	"malharia_pdv/internal/usecase"
	"malharia_pdv/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
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
	logger := newLogger()
	loc := operatorLocation()
	store := newRowStore()

	orderRepo := repository2.NewOrderSheetRepository(store)
	itemRepo := repository2.NewLineItemSheetRepository(store)
	announcementRepo := repository2.NewAnnouncementSheetRepository(store)

	archiveUseCase := usecase.NewArchiveUseCase(orderRepo, loc, logger)

	var linkGateway interfaces.IPaymentLinkGateway
	mpGateway, err := payments.NewMercadoPagoLinkGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		linkGateway = mpGateway
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, itemRepo, archiveUseCase, linkGateway, loc, logger)
	announcementUseCase := usecase.NewAnnouncementUseCase(announcementRepo, loc, logger)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	archiveHandler := handlers.NewArchiveHandler(archiveUseCase)
	announcementHandler := handlers.NewAnnouncementHandler(announcementUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPdvRoutes(v1, orderHandler, archiveHandler, announcementHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(requestID())
}

// requestID tags every response (and downstream log line) with a correlation
// id, honoring one the caller already sent.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func newLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	return logger
}

// newRowStore picks the sheet backend. DynamoDB is the default; the memory
// driver exists for local runs without AWS.
func newRowStore() sheetstore.RowStore {
	if os.Getenv("SHEET_STORE_DRIVER") == "memory" {
		log.Printf("Using in-memory sheet store; data will not survive restarts")
		return sheetstore.NewMemoryStore()
	}
	return sheetstore.NewDynamoStore(database.ConnectDynamoDB())
}

// operatorLocation resolves the shop's fixed timezone. Every stored
// timestamp and every date comparison happens in this zone regardless of
// where the request came from.
func operatorLocation() *time.Location {
	name := os.Getenv("PDV_TIMEZONE")
	if name == "" {
		name = "America/Recife"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Unknown timezone %q, falling back to UTC-3: %v", name, err)
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}
