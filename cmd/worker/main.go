// Command worker consumes notification tasks and sends confirmation email.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"travel-backend/config"
	"travel-backend/mq"
	"travel-backend/notifications"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// Keep retrying the broker: the worker is useless without it and in
	// container setups the broker often comes up later.
	var consumer *mq.Consumer
	for {
		consumer, err = mq.NewConsumer(
			cfg.RabbitURL,
			cfg.TaskExchange,
			cfg.NotifyQueue,
			[]string{notifications.RKBookingCreated},
			8,
		)
		if err == nil {
			break
		}
		log.Printf("connect failed: %v; retry in 2s", err)
		time.Sleep(2 * time.Second)
	}
	defer consumer.Close()

	mailer := notifications.NewSMTPMailer(cfg)
	worker := notifications.NewWorker(consumer, mailer, cfg.NotifyRequeue)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := worker.Run(ctx); err != nil {
			log.Printf("worker run error: %v", err)
		}
	}()

	log.Printf("worker started. queue=%s exchange=%s requeue=%v",
		cfg.NotifyQueue, cfg.TaskExchange, cfg.NotifyRequeue)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	cancel()
	time.Sleep(200 * time.Millisecond)
}
