package main

import (
	"log"

	"Inventory/internal/tools/seed"
)

func main() {
	if err := seed.NewRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
