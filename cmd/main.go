package main

import (
	"BookShelf/internal/app"
	"BookShelf/internal/config"

	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	cfg := config.MustLoad()
	app.Run(cfg)
}
