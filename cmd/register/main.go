// Command register records an artwork purchase in the collector registry.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"

	"limbo/config"
	"limbo/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	log := cfg.Logger()

	var reg registry.Registration
	url := flag.String("url", cfg.RegistryURL, "registry web app URL")
	flag.StringVar(&reg.Name, "name", "", "collector name (required)")
	flag.StringVar(&reg.Email, "email", "", "collector email (required)")
	flag.StringVar(&reg.Phone, "phone", "", "collector phone")
	flag.StringVar(&reg.Artwork, "artwork", "", "artwork purchased")
	flag.StringVar(&reg.Date, "date", time.Now().Format(time.DateOnly), "purchase date")
	flag.StringVar(&reg.Notes, "notes", "", "additional notes")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := registry.NewClient(*url)
	client.Log = log.WithField("component", "registry")
	if err := client.Submit(ctx, reg); err != nil {
		log.WithError(err).Error("There was an error saving your registration. Please try again.")
		os.Exit(1)
	}
}
