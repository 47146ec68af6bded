package main

import (
	"log"

	"github.com/fedipeek/fedipeek/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ fedipeek failed to start: %v", err)
	}
}
