package routes

import (
	"github.com/gofiber/fiber/v2"

	"gogiieum/internal/api/handlers"
	"gogiieum/internal/middleware"
)

type Config struct {
	App               *fiber.App
	SessionHandler    handlers.SessionHandler
	CatalogHandler    handlers.CatalogHandler
	SurveyHandler     handlers.SurveyHandler
	EvaluationHandler handlers.EvaluationHandler
	MarketHandler     handlers.MarketHandler
	CommunityHandler  handlers.CommunityHandler
	MemberHandler     handlers.MemberHandler
	PointHandler      handlers.PointHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Session()
	c.Catalog()
	c.Survey()
	c.Evaluation()
	c.Market()
	c.Community()
	c.Member()
	c.Point()
	c.GuestRoute()
}

func (c *Config) Session() {
	session := c.App.Group("/api/v1/session")
	// screen state and transitions
	{
		session.Get("", c.SessionHandler.GetSession)
		session.Post("/enter", c.SessionHandler.EnterApp)
		session.Post("/tab", c.SessionHandler.SelectTab)
		session.Post("/product", c.SessionHandler.SelectProduct)
		session.Delete("/product", c.SessionHandler.ClearProduct)
		session.Post("/market-handoff", c.SessionHandler.SendToMarket)
		session.Post("/evaluate/start", c.SessionHandler.StartEvaluation)
		session.Post("/evaluate/authenticate", c.EvaluationHandler.Authenticate)
		session.Post("/evaluate/reveal", c.SessionHandler.RevealEvaluation)
		session.Post("/evaluate/exit", c.SessionHandler.ExitEvaluation)
		session.Post("/ad", c.SessionHandler.OpenAdPage)
		session.Delete("/ad", c.SessionHandler.CloseAdPage)
		session.Post("/survey/start", c.SessionHandler.StartSurvey)
		session.Post("/survey/advance", c.SessionHandler.AdvanceSurvey)
		session.Post("/survey/skip", c.SessionHandler.SkipSurvey)
	}
}

func (c *Config) Catalog() {
	catalog := c.App.Group("/api/v1/catalog")
	{
		catalog.Get("/products", c.CatalogHandler.GetProducts)
		catalog.Get("/products/:id", c.CatalogHandler.GetProduct)
		catalog.Get("/recipes", c.CatalogHandler.GetRecipes)
		catalog.Get("/trace", c.CatalogHandler.ListTraces)
		catalog.Get("/trace/:traceNumber", c.CatalogHandler.LookupTrace)
	}
}

func (c *Config) Survey() {
	survey := c.App.Group("/api/v1/survey")
	{
		survey.Post("", c.SurveyHandler.Complete)
		survey.Get("/questions", c.SurveyHandler.GetQuestions)
		survey.Get("/recommendations", c.SurveyHandler.GetRecommendations)
	}
}

func (c *Config) Evaluation() {
	c.App.Post("/api/v1/evaluations", c.EvaluationHandler.Submit)
}

func (c *Config) Market() {
	market := c.App.Group("/api/v1/market")
	{
		market.Post("/quote", c.MarketHandler.Quote)
		market.Post("/checkout", c.MarketHandler.Checkout)
	}
}

func (c *Config) Community() {
	community := c.App.Group("/api/v1/community")
	{
		community.Get("/posts", c.CommunityHandler.GetFeed)
		community.Post("/posts", c.CommunityHandler.CreatePost)
		community.Get("/meta", c.CommunityHandler.GetMeta)
	}
}

func (c *Config) Member() {
	c.App.Post("/api/v1/members", c.MemberHandler.Register)
}

func (c *Config) Point() {
	point := c.App.Group("/api/v1/points")
	{
		point.Get("", c.PointHandler.GetBalance)
		point.Get("/history", c.PointHandler.GetHistory)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
