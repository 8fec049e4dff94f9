package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"timelog/internal/amqp"
	"timelog/internal/cli"
	"timelog/internal/config"
	"timelog/internal/core"
	"timelog/internal/log"
	"timelog/internal/services"
	"timelog/internal/store"
)

// quickSuggestLimit caps suggestions so the output stays glanceable.
const quickSuggestLimit = 5

func main() {
	atFlag := flag.String("at", "", "entry time as HH:MM (default: now)")
	dateFlag := flag.String("date", "", "entry date as YYYY-MM-DD (default: today)")
	suggestFlag := flag.Bool("suggest", false, "print matching categories instead of logging an entry")
	flag.Parse()

	cli.LoadEnvFile()

	// A capture tool should stay quiet unless something goes wrong.
	logCfg := log.DefaultConfig()
	logCfg.Handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	log.SetDefault(log.New(logCfg))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	kv := openStore(cfg)
	defer kv.Close()

	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange)
		if err == nil {
			defer client.Close()
			amqpClient = client
		}
		// A missing broker must never block a capture.
	}

	tracker := services.NewTracker(store.NewSnapshots(kv), amqpClient, quickSuggestLimit)
	ctx := context.Background()

	text := strings.Join(flag.Args(), " ")

	if *suggestFlag {
		suggest(ctx, tracker, text)
		return
	}

	ts, err := resolveTimestamp(*atFlag, *dateFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	entry, err := tracker.SubmitEntry(ctx, text, ts)
	if errors.Is(err, core.ErrBlankText) {
		// Nothing typed, nothing logged
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to log entry:", err)
		os.Exit(1)
	}

	fmt.Printf("Logged %s at %s\n", entry.Label, entry.TS.Format("15:04"))
}

func openStore(cfg *config.Config) store.KV {
	if cfg.StoreBackend == "sqlite" {
		kv, err := store.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to open store:", err)
			os.Exit(1)
		}
		return kv
	}
	return store.NewMemory()
}

func suggest(ctx context.Context, tracker *services.Tracker, query string) {
	cats, err := tracker.Suggest(ctx, query, quickSuggestLimit)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to compute suggestions:", err)
		os.Exit(1)
	}
	for _, c := range cats {
		fmt.Println(c.Label)
	}
}

// resolveTimestamp combines the optional -at and -date flags with the current
// moment. Time parts not overridden keep their current values.
func resolveTimestamp(at, date string) (time.Time, error) {
	now := time.Now()
	day := now

	if date != "" {
		d, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid -date %q: expected YYYY-MM-DD", date)
		}
		day = d
	}

	hour, min := now.Hour(), now.Minute()
	if at != "" {
		t, err := time.Parse("15:04", at)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid -at %q: expected HH:MM", at)
		}
		hour, min = t.Hour(), t.Minute()
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.Local), nil
}
