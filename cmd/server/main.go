package main

import (
	"log"
	"net/http"
	"os"

	"github.com/mkrall/lostcities/internal/handlers"
	"github.com/mkrall/lostcities/internal/middleware"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	srv := handlers.NewGameServer()
	logged := middleware.LogMiddleware(logger)

	mux := http.NewServeMux()

	// stateless game endpoints: the caller round-trips the full state
	mux.Handle("/game/start", logged(http.HandlerFunc(srv.HandleStartGame)))
	mux.Handle("/game/turn", logged(http.HandlerFunc(srv.HandleTurn)))

	// hosted game endpoints
	mux.Handle("/game/create", logged(http.HandlerFunc(srv.HandleCreateGame)))
	mux.Handle("/game/turn/", logged(http.HandlerFunc(srv.HandleHostedTurn)))
	mux.Handle("/game/state/", logged(http.HandlerFunc(srv.HandleGameState)))

	// watch websocket
	mux.Handle("/game/ws/", logged(http.HandlerFunc(
		handlers.GameWSHandler(logger, srv),
	)))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
