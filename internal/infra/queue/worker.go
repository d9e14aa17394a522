package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/aishnar/aishnar-leads/internal/infra/http/middleware"
)

// LeadMailer is the contract the worker needs from the mail layer.
type LeadMailer interface {
	SendLeadNotification(to string, payload LeadCapturedPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Mailer   LeadMailer
	NotifyTo string
}

func NewWorker(ch *amqp.Channel, mailer LeadMailer, notifyTo string) *Worker {
	return &Worker{
		Channel:  ch,
		Mailer:   mailer,
		NotifyTo: notifyTo,
	}
}

// Start consumes the notification queue and emails the review inbox for each
// captured lead. Manual acks: a malformed or failed message is nacked without
// requeue and lands on the DLQ.
func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCapturedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[worker] invalid JSON on %s: %s", queueName, err)
				d.Nack(false, false)
				continue
			}

			if err := w.Mailer.SendLeadNotification(w.NotifyTo, payload); err != nil {
				log.Printf("[worker] notification for lead %s failed: %s", payload.LeadID, err)
				middleware.RecordNotification("failed")
				d.Nack(false, false)
			} else {
				log.Printf("[worker] notified %s about lead %s (%s)", w.NotifyTo, payload.LeadID, payload.CompanyName)
				middleware.RecordNotification("sent")
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker running, waiting on queue '%s'", queueName)
	<-forever
}
