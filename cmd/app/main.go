package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/agentrepo"
	"fulfillment/internal/adapters/out/postgres/commissionrepo"
	"fulfillment/internal/adapters/out/postgres/confirmationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/proofrepo"
	"fulfillment/internal/adapters/out/postgres/siterepo"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)
	root := cmd.NewCompositionRoot(configs, db)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	submitConfirmationHandler, err := root.CreateSubmitConfirmationCommandHandler()
	if err != nil {
		log.Fatalf("Invalid confirmation configuration: %v", err)
	}
	computeCommissionHandler, err := root.CreateComputeCommissionCommandHandler()
	if err != nil {
		log.Fatalf("Invalid commission configuration: %v", err)
	}
	flagStalledHandler, err := root.CreateFlagStalledOrdersCommandHandler()
	if err != nil {
		log.Fatalf("Invalid stalled order configuration: %v", err)
	}
	sweepCodesHandler, err := root.CreateSweepExpiredCodesCommandHandler()
	if err != nil {
		log.Fatalf("Invalid code sweep configuration: %v", err)
	}

	server := httpin.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateRegisterAgentCommandHandler(),
		root.CreateRegisterSiteCommandHandler(),
		root.CreateReleaseForPickupCommandHandler(),
		root.CreateClaimOrderCommandHandler(),
		root.CreateAdvanceLegCommandHandler(),
		submitConfirmationHandler,
		root.CreateIssueCollectionCodeCommandHandler(),
		root.CreateAdminOverrideCommandHandler(),
		computeCommissionHandler,
		root.CreateReviewCommissionCommandHandler(),
		root.CreateSubmitPaymentProofCommandHandler(),
		root.CreateReviewPaymentProofCommandHandler(),
		root.CreateListClaimableOrdersQueryHandler(),
		root.CreateGetOrderHistoryQueryHandler(),
		root.CreateGetPendingCommissionsQueryHandler(),
	)

	jobManager := jobs.NewJobManager(flagStalledHandler, sweepCodesHandler, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(server, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	return cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),

		GPSToleranceMeters:     envFloat("GPS_TOLERANCE_METERS"),
		CodeTTLMinutes:         envInt("CODE_TTL_MINUTES"),
		MaxConfirmationRetries: envInt("MAX_CONFIRMATION_RETRIES"),
		StuckOrderHours:        envInt("STUCK_ORDER_HOURS"),

		DeliveryRate:               envFloat("COMMISSION_DELIVERY_RATE"),
		AssistedPurchaseRate:       envFloat("COMMISSION_ASSISTED_RATE"),
		AssistedPurchaseFixedCents: int64(envInt("COMMISSION_ASSISTED_FIXED_CENTS")),
	}
}

func envInt(key string) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return value
}

func envFloat(key string) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		log.Fatalf("Invalid number for %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.StatusChangeDTO{},
		&agentrepo.AgentDTO{},
		&siterepo.SiteDTO{},
		&confirmationrepo.ConfirmationDTO{},
		&commissionrepo.CommissionDTO{},
		&proofrepo.ProofDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(server *httpin.Server, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
