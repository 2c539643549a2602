package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"snake/internal/game"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if lvl := os.Getenv("SNAKE_LOG"); lvl != "" {
		if parsed, err := log.ParseLevel(lvl); err == nil {
			log.SetLevel(parsed)
		}
	}

	if err := game.RunDesktop(); err != nil {
		log.WithError(err).Fatal("snake exited")
	}
}
