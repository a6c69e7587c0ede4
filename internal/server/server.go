package server

import (
	"backend-peaktrack/internal/activity"
	"backend-peaktrack/internal/auth"
	"backend-peaktrack/internal/config"
	"backend-peaktrack/internal/notify"
	"backend-peaktrack/internal/peak"
	"backend-peaktrack/internal/summit"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *redis.Client
	Hub   *notify.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		DB:    db,
		Redis: redisClient,
		Hub:   notify.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	peakSvc := peak.NewService(s.DB)
	summitStore := summit.NewStore(s.DB)
	extractor := summit.NewExtractor(peakSvc, s.Cfg.PeakRadiusM)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	peak.RegisterRoutes(s.App.Group("/peaks"), peakSvc, jwtMiddleware)
	activity.RegisterRoutes(s.App.Group("/activities"), activity.NewService(s.DB, extractor, summitStore, s.Hub), jwtMiddleware)
	summit.RegisterRoutes(s.App.Group("/summits"), summitStore)
	notify.RegisterRoutes(s.App.Group("/notify"), s.Hub)
}
