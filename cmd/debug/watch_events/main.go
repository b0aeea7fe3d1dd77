// Command watch_events tails workspace events from NATS JetStream.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ai-workspace-be/internal/config"
	"ai-workspace-be/internal/pkg/logger"
	"ai-workspace-be/pkg/events"
	pktNats "ai-workspace-be/pkg/nats"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	if cfg.App.NatsURL == "" {
		color.Red("NATS_URL is not set")
		os.Exit(2)
	}

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL, logger.NewZapLogger(cfg.App.LogFilePath, false))
	if err != nil {
		color.Red("connect: %v", err)
		os.Exit(1)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// No durable name: a throwaway consumer that only sees new events.
	err = sub.Subscribe(ctx, pktNats.SubjectPrefix+".>", "", func(ctx context.Context, evt events.Event) error {
		color.Cyan("%s %s %v", evt.Timestamp().Format("15:04:05"), evt.EventType(), evt.Payload())
		return nil
	})
	if err != nil {
		color.Red("subscribe: %v", err)
		os.Exit(1)
	}

	color.Green("Watching %s.> (Ctrl+C to stop)", pktNats.SubjectPrefix)
	<-ctx.Done()
}
