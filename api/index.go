package handler

import (
	"net/http"

	"freeroom/config"
	"freeroom/di"
	"freeroom/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.Adaptor()(w, r)
}
