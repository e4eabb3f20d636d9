package main

import (
	"context"
	"log"
	"os"

	"github.com/kids-activity-tracker/appicon/internal/export"
)

func main() {
	log.SetPrefix("package main: ")

	ctx := context.Background()
	if err := run(ctx); err != nil {
		panic(err)
	}
}

func run(ctx context.Context) error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}
	log.Printf("Project root: %s", root)

	g := export.NewGenerator(root)
	outputs, err := g.Run(ctx)
	if err != nil {
		return err
	}
	log.Printf("Wrote %d icon files", len(outputs))
	return nil
}
