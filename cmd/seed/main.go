// Command seed publishes news: demo items and/or items imported from an RSS/Atom feed.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"yanews/internal/config"
	"yanews/internal/db"
	"yanews/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	var (
		configPath string
		count      int
		feedURL    string
		limit      int
		fullText   bool
	)
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.IntVar(&count, "count", 0, "number of demo news items to create")
	flag.StringVar(&feedURL, "feed", "", "RSS/Atom feed to import news from")
	flag.IntVar(&limit, "limit", 0, "max items to import from the feed (0 = all)")
	flag.BoolVar(&fullText, "fulltext", false, "fetch each feed item's page for the full article text")
	flag.Parse()

	if count <= 0 && feedURL == "" {
		log.Fatal("Nothing to do: pass -count and/or -feed")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := config.MustLoad(configPath)
	gdb := db.Init(cfg.DB)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	importer := services.NewImporter(gdb)
	importer.FullText = fullText

	if count > 0 {
		n, err := importer.SeedDemo(ctx, count)
		if err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Printf("Created %d demo news items", n)
	}

	if feedURL != "" {
		n, err := importer.Import(ctx, feedURL, limit)
		if err != nil {
			log.Fatalf("Import from %s failed: %v", feedURL, err)
		}
		log.Printf("Imported %d news items from %s", n, feedURL)
	}
}
