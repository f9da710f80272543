package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	lib "github.com/theoremus-urban-solutions/fleet-monitor"
	"github.com/theoremus-urban-solutions/fleet-monitor/config"
	"github.com/theoremus-urban-solutions/fleet-monitor/feed"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	shareNowURL := flag.String("shareNowURL", "", "SHARE TAXI feed URL (overrides config)")
	freeNowURL := flag.String("freeNowURL", "", "TAXI NOW feed URL (overrides config)")
	flag.Parse()

	_ = godotenv.Load(".env")

	lib.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}
	if *shareNowURL != "" {
		config.Config.Feeds.ShareNowURL = *shareNowURL
	}
	if *freeNowURL != "" {
		config.Config.Feeds.FreeNowURL = *freeNowURL
	}
	if port := os.Getenv("PORT"); port != "" {
		if v, err := strconv.Atoi(port); err == nil && v > 0 {
			config.Config.Server.Port = v
		}
	}

	fetcher := feed.NewFetcher(config.Config.Feeds)
	app := lib.NewApp(config.Config, fetcher)

	switch *mode {
	case "oneshot":
		vehicles, err := fetcher.FetchFleet(context.Background())
		if err != nil {
			panic(err)
		}
		buf, err := json.MarshalIndent(vehicles, "", "  ")
		if err != nil {
			panic(err)
		}
		fmt.Println(string(buf))
	case "serve":
		go app.Store.Load(context.Background(), fetcher)
		lib.StartServer(app)
		lib.HandleGracefulShutdown(app)
	default:
		panic("unknown mode")
	}
}
