package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	foodrunhttp "github.com/morrisxelijah/food-run/http"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))

	server := foodrunhttp.NewServer(logger)
	server.Addr = c.Addr
	server.Fetcher = deps.Fetcher
	server.RenderFetcher = deps.Renderer
	server.Extractor = deps.Extractor
	server.RecipeService = deps.Recipes

	if err := server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(deps.Stdout, "Shutting down")
	return server.Close()
}
