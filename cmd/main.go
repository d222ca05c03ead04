package main

import (
	"os"

	"github.com/lastiz/calorizator/config"
	"github.com/lastiz/calorizator/routes"
)

func main() {
	config.InitDB()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
