package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/godsapp/freizeit-server/internal/bootstrap"
	"github.com/godsapp/freizeit-server/internal/server/config"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: freizeitctl bootstrap [flags]")
	fmt.Fprintln(os.Stderr, "  bootstrap   create the first leader account")
	os.Exit(2)
}

func main() {

	if len(os.Args) < 2 || os.Args[1] != "bootstrap" {
		usage()
	}

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := bootstrap.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
