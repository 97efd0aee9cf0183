package main

import (
	_ "github.com/joho/godotenv/autoload"
	"localiser/cmd/localiser"
	"log"
)

func main() {
	err := localiser.Execute()
	if err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
