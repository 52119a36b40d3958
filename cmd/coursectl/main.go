package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"coursehub/cmd/coursectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
