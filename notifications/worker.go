package notifications

import (
	"context"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"travel-backend/mq"
)

// Worker consumes notification tasks and sends email. Delivery failures are
// logged; whether a failed task is requeued or dropped is configuration, not
// code (Requeue flag).
type Worker struct {
	Consumer *mq.Consumer
	Mailer   Mailer
	Requeue  bool
}

func NewWorker(c *mq.Consumer, m Mailer, requeue bool) *Worker {
	return &Worker{Consumer: c, Mailer: m, Requeue: requeue}
}

func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.Consumer.Deliveries(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.Handle(d); err != nil {
				log.Printf("[notify] handle failed key=%s err=%v", d.RoutingKey, err)
				if w.Requeue {
					_ = d.Nack(false, true)
					continue
				}
				// best-effort: swallow the failure, nothing records it
			}
			_ = d.Ack(false)
		}
	}
}

// Handle dispatches a single delivery. Unknown routing keys are skipped.
func (w *Worker) Handle(d amqp.Delivery) error {
	switch d.RoutingKey {
	case RKBookingCreated:
		ev, err := Decode[BookingCreated](d.Body)
		if err != nil {
			return err
		}
		subject, body := BookingConfirmation(ev.ListTitle)
		if err := w.Mailer.Send(ev.UserEmail, subject, body); err != nil {
			return err
		}
		log.Printf("[notify] booking confirmation sent booking=%d to=%s", ev.BookingID, ev.UserEmail)
		return nil
	default:
		log.Printf("[notify] skip unknown key=%s", d.RoutingKey)
		return nil
	}
}
