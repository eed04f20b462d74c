package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"fixflow/config"
	"fixflow/services/notification"
)

// InitEmailWorker runs the async email worker in the background.
func InitEmailWorker(mailer *notification.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeEmailSend, handleEmailTask(mailer))

	go func() {
		log.Println("[EmailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleEmailTask(mailer *notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p notification.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailWorker] invalid payload: %v", err)
			return err
		}

		if err := mailer.Send(p.To, p.Subject, p.Body); err != nil {
			log.Printf("[EmailWorker] delivery to %s failed: %v", p.To, err)
			return err
		}
		return nil
	}
}
