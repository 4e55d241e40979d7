package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()

	database := db.NewDB(cfg, log)

	// Redis é opcional: sem REDIS_ADDR a disponibilidade consulta direto o banco.
	var c cache.Cache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedis(cfg.RedisAddr)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis indisponível, seguindo sem cache")
		} else {
			c = redisCache
			log.Info().Str("addr", cfg.RedisAddr).Msg("cache redis conectado")
		}
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, cfg, log, c)

	log.Info().Str("port", cfg.ServerPort).Msg("servidor iniciado")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("falha ao subir o servidor")
	}
}
