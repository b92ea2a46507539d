package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stonkwatch/internal/aggregator"
	"stonkwatch/internal/config"
	"stonkwatch/internal/notifier"
	"stonkwatch/internal/quotes"
	"stonkwatch/internal/recorder"
	"stonkwatch/internal/registry"
	"stonkwatch/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StonkWatch starting...")

	// Local token file, if present (ignored in real deployments).
	if err := godotenv.Load("token.env"); err == nil {
		log.Println("[INFO] loaded token.env")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init quote source
	var source quotes.Source
	if os.Getenv("STONK_MOCK") == "true" {
		source = &quotes.MockSource{Price: 100}
	} else {
		source = quotes.NewYahooSource(cfg.Proxy)
	}
	log.Printf("[INFO] quote source: %s", source.Name())

	// Init symbol registry
	var reg *registry.Registry
	if len(cfg.Universe) > 0 {
		entries := make([]registry.Entry, len(cfg.Universe))
		for i, e := range cfg.Universe {
			entries[i] = registry.Entry{Symbol: e.Symbol, Name: e.Name}
		}
		reg = registry.New(entries)
	} else {
		reg = registry.Default()
	}
	log.Printf("[INFO] tracking %d symbols", reg.Len())

	// Init aggregator (shared process-wide so the concurrency cap holds
	// across simultaneous reports)
	agg := aggregator.New(source,
		int64(cfg.Quotes.MaxConcurrent),
		time.Duration(cfg.Quotes.TimeoutSeconds)*time.Second,
		cfg.Quotes.WindowDays)

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, agg, reg, tn, rec, cfg.Report.MarketSuffix)
	if err := sched.RegisterAll(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing daily report now")
		go sched.RunDailyNow()
	}

	log.Println("[INFO] StonkWatch is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StonkWatch stopped")
}
