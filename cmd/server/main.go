package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fikifit/fikifit/internal/auth"
	"github.com/fikifit/fikifit/internal/config"
	"github.com/fikifit/fikifit/internal/conversas"
	"github.com/fikifit/fikifit/internal/dietas"
	"github.com/fikifit/fikifit/internal/exercicios"
	"github.com/fikifit/fikifit/internal/health"
	"github.com/fikifit/fikifit/internal/historicopeso"
	"github.com/fikifit/fikifit/internal/httputil"
	"github.com/fikifit/fikifit/internal/mensagens"
	"github.com/fikifit/fikifit/internal/models"
	"github.com/fikifit/fikifit/internal/refeicoes"
	"github.com/fikifit/fikifit/internal/store"
	"github.com/fikifit/fikifit/internal/treinos"
	"github.com/fikifit/fikifit/internal/users"
)

func main() {
	// Missing .env is fine; production sets real environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Env == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	log.Logger = logger

	client, err := store.NewClient(store.Config{
		URL:     cfg.SupabaseURL,
		AnonKey: cfg.SupabaseAnonKey,
		Timeout: cfg.StoreTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("store client init failed")
	}
	repos := models.New(client)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httputil.RequestID())
	router.Use(httputil.CORS())
	router.Use(httputil.Logger(logger))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Servidor FikiFit rodando!"})
	})
	router.GET("/health", health.Handler())

	api := router.Group("/api")
	auth.Routes(api.Group("/auth"), repos.Users)
	users.Routes(api.Group("/users"), repos.Users)
	treinos.Routes(api.Group("/treinos"), repos.Treinos)
	exercicios.Routes(api.Group("/exercicios"), repos.Exercicios)
	dietas.Routes(api.Group("/dietas"), repos.Dietas)
	refeicoes.Routes(api.Group("/refeicoes"), repos.Refeicoes)
	conversas.Routes(api.Group("/conversas"), repos.Conversas, repos.Mensagens)
	mensagens.Routes(api.Group("/mensagens"), repos.Mensagens, repos.Conversas)
	historicopeso.Routes(api.Group("/historico-peso"), repos.HistoricoPeso)

	logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
