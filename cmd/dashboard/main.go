package main

import (
	"bufio"
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/anasalkasem/ArabicBot/internal/action"
	"github.com/anasalkasem/ArabicBot/internal/botapi"
	"github.com/anasalkasem/ArabicBot/internal/config"
	"github.com/anasalkasem/ArabicBot/internal/dashboard"
	"github.com/anasalkasem/ArabicBot/internal/logview"
	"github.com/anasalkasem/ArabicBot/internal/notify"
	"github.com/anasalkasem/ArabicBot/internal/toast"
)

func setupLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if cfg.LogFormat == "json" {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	botURL := flag.String("bot-url", "", "override bot API base URL")
	flag.Parse()

	// Local .env, if present, seeds the ARABICBOT_* variables.
	_ = godotenv.Load()

	cfg, err := config.LoadFile(*cfgPath)
	if err != nil {
		cfg = config.Default()
	}
	cfg.ApplyEnv()
	if v := strings.TrimSpace(*botURL); v != "" {
		cfg.BotURL = v
	}

	log := setupLogger(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("config file not loaded, using defaults")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Info().
		Str("bot_url", cfg.BotURL).
		Dur("fast", cfg.FastInterval).
		Dur("slow", cfg.SlowInterval).
		Msg("dashboard starting")

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				log.Warn().Err(err).Msg("metrics listener stopped")
			}
		}()
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("metrics enabled")
	}

	client := botapi.New(cfg.BotURL, cfg.RequestTimeout)

	// Single stdin owner. Lines flow through this channel to the command
	// loop and, during a pending confirmation, to Confirm.
	lines := make(chan string)
	go func() {
		defer close(lines)
		stdin := bufio.NewReader(os.Stdin)
		for {
			line, err := stdin.ReadString('\n')
			if err != nil {
				return
			}
			lines <- strings.ToLower(strings.TrimSpace(line))
		}
	}()

	view := newTermView(os.Stdout, lines)

	toasts := toast.New(cfg.ToastTTL, view.ShowToast, view.DismissToast)
	logs := logview.NewStore(client, view, toasts, cfg.LogRefetchDelay, log)
	sched := dashboard.New(client, logs, view, cfg.FastInterval, cfg.SlowInterval, log)

	var notifier action.Notifier
	if cfg.Telegram.Enabled {
		notifier = notify.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	}
	actions := action.New(client, toasts, sched, view, view, notifier, cfg.ActionRefreshDelay, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("shutdown signal received")
		cancel()
	}()

	sched.Start()
	sched.RefreshAll()
	defer sched.Stop()

	// Command loop. Runs until stdin closes or the context is cancelled.
	for {
		select {
		case <-ctx.Done():
			return
		case cmd, ok := <-lines:
			if !ok {
				return
			}
			switch cmd {
			case "t":
				actions.ToggleTrading(ctx)
			case "s":
				actions.SellAll(ctx)
			case "l":
				if logs.TogglePanel() {
					if err := logs.Refresh(ctx); err != nil {
						log.Warn().Err(err).Msg("log refresh failed")
					}
				}
			case "c":
				logs.Clear()
			case "e":
				exportLogs(ctx, logs, log)
			case "p":
				sched.SetVisible(false)
				log.Info().Msg("polling suspended")
			case "r":
				sched.SetVisible(true)
				log.Info().Msg("polling resumed")
			case "q":
				return
			case "":
			default:
				log.Info().Str("cmd", cmd).Msg("unknown command (t/s/l/c/e/p/r/q)")
			}
		}
	}
}

func exportLogs(ctx context.Context, logs *logview.Store, log zerolog.Logger) {
	att, err := logs.Export(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("log export failed")
		return
	}
	if err := os.WriteFile(att.Name, att.Content, 0o644); err != nil {
		log.Error().Err(err).Str("file", att.Name).Msg("writing export file")
		return
	}
	log.Info().Str("file", att.Name).Int("bytes", len(att.Content)).Msg("logs exported")
}
