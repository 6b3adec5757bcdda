package main

import (
	"freeroom/config"
	"freeroom/di"
	"freeroom/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
