package main

import (
	"github.com/joho/godotenv"

	"attendflow/internal/app/server"
)

func main() {
	_ = godotenv.Load()
	server.Run()
}
