package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/spf13/cobra"

	"github.com/ishani-t/chessplayer-backend/internal/config"
	"github.com/ishani-t/chessplayer-backend/internal/controller"
	"github.com/ishani-t/chessplayer-backend/internal/middleware"
	"github.com/ishani-t/chessplayer-backend/internal/service"
)

func main() {
	var (
		configPath string
		addr       string
	)

	root := &cobra.Command{
		Use:   "chessplayer-server",
		Short: "Chess board server with REST and WebSocket APIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			return run(cfg)
		},
	}
	root.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	root.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config) error {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize services
	gameManager := service.NewGameManager(cfg.ClockBudget(), cfg.MatchmakingInterval())
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	gameController := controller.NewGameController(gameService, cfg.MatchWaitTimeout())
	wsController := controller.NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(
		wsController.HandleConnection,
		websocket.Config{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			Origins:         []string{cfg.AllowOrigins},
		},
	))

	// Set up REST routes
	api := app.Group("/api", middleware.EnsurePlayerID())

	// Game routes
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/matchmaking/join", gameController.JoinMatchmaking)
	gameRoutes.Get("/matchmaking/wait", gameController.WaitForMatch)
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/square/:square", gameController.GetSquare)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)

	return app.Listen(cfg.Addr)
}
