package main

import (
	"flag"
	"log"

	"launchbox/internal/app"
	"launchbox/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to a .launchbox file")
	flag.Parse()

	controller, err := app.New(app.Options{ConfigPath: *configPath})
	if err != nil {
		log.Fatal(err)
	}
	if err := tui.Run(controller); err != nil {
		log.Fatalf("tui exited with error: %v", err)
	}
}
