package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopdash/api"
	"shopdash/internal/config"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	r := gin.Default()
	api.InitRoutes(r, cfg, logger)

	if err := r.Run(cfg.Address()); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
