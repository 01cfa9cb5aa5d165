package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/indigo-web/miniweb"
	"github.com/indigo-web/miniweb/config"
	"github.com/indigo-web/miniweb/internal/demo"
	"github.com/indigo-web/miniweb/router/inbuilt/middleware"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	cfg := config.Default()
	// every connection is closed after a single exchange, so tell it to the client
	cfg.Response.CloseConnection = true

	r := demo.Routes().
		Use(middleware.Recover, middleware.LogRequests())

	app := miniweb.New(*addr).
		Tune(cfg).
		NotifyOnStart(func() {
			log.Println("mini-web: ready")
		}).
		NotifyOnStop(func() {
			log.Println("mini-web: done")
		})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		app.Stop()
	}()

	if err := app.Serve(r); err != nil {
		log.Fatal(err)
	}
}
