package main

import (
	"github.com/joho/godotenv"

	"presidia/go_backend/internal/app"
)

func main() {
	_ = godotenv.Load()
	app.Run()
}
