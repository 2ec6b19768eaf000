package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"gogiieum/internal/api/handlers"
	"gogiieum/internal/api/routes"
	"gogiieum/internal/middleware"
	"gogiieum/internal/utils"
	"gogiieum/pkg/catalog"
	"gogiieum/pkg/community"
	"gogiieum/pkg/evaluation"
	"gogiieum/pkg/market"
	"gogiieum/pkg/member"
	"gogiieum/pkg/point"
	"gogiieum/pkg/session"
	"gogiieum/pkg/survey"
	"gogiieum/pkg/trace"
)

func NewApp() (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Seoul",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	traceClient := trace.NewClient(
		utils.GetConfig("REGISTRY_BASE_URL"),
		utils.GetConfig("REGISTRY_SERVICE_KEY"),
	)

	// Repository
	catalogRepository := catalog.NewCatalogRepository()
	sessionRepository := session.NewSessionRepository()
	surveyRepository := survey.NewSurveyRepository()
	communityRepository := community.NewCommunityRepository()
	memberRepository := member.NewMemberRepository()
	pointRepository := point.NewPointRepository()

	// Service
	pointService := point.NewPointService(pointRepository)
	catalogService := catalog.NewCatalogService(catalogRepository, traceClient)
	sessionService := session.NewSessionService(sessionRepository, catalogRepository)
	surveyService := survey.NewSurveyService(surveyRepository, catalogRepository, pointService, sessionService)
	evaluationService := evaluation.NewEvaluationService(pointService, sessionService)
	marketService := market.NewMarketService(catalogRepository, pointService)
	communityService := community.NewCommunityService(communityRepository)
	memberService := member.NewMemberService(memberRepository, pointService)

	// Handler
	sessionHandler := handlers.NewSessionHandler(sessionService, pointService, surveyService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	surveyHandler := handlers.NewSurveyHandler(surveyService, validator)
	evaluationHandler := handlers.NewEvaluationHandler(evaluationService, validator)
	marketHandler := handlers.NewMarketHandler(marketService, validator)
	communityHandler := handlers.NewCommunityHandler(communityService, validator)
	memberHandler := handlers.NewMemberHandler(memberService)
	pointHandler := handlers.NewPointHandler(pointService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		SessionHandler:    sessionHandler,
		CatalogHandler:    catalogHandler,
		SurveyHandler:     surveyHandler,
		EvaluationHandler: evaluationHandler,
		MarketHandler:     marketHandler,
		CommunityHandler:  communityHandler,
		MemberHandler:     memberHandler,
		PointHandler:      pointHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
