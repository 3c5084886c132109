package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Event is one analytics event, e.g. contact_form or phone_call.
type Event struct {
	Name       string            `json:"name"`
	Props      map[string]string `json:"props,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// AMQPReporter publishes analytics events to the site-events exchange.
// Fire-and-forget: Report returns immediately and publish failures are
// only logged. Callers must never depend on the outcome.
type AMQPReporter struct {
	Ch  *amqp.Channel
	Log *zap.SugaredLogger
}

func NewAMQPReporter(ch *amqp.Channel, log *zap.SugaredLogger) *AMQPReporter {
	return &AMQPReporter{Ch: ch, Log: log}
}

func (p *AMQPReporter) Report(_ context.Context, event string, props map[string]string) {
	go func() {
		body, err := json.Marshal(Event{
			Name:       event,
			Props:      props,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			p.Log.Warnw("analytics event marshal failed", "event", event, "error", err)
			return
		}

		// Detached context: the event outlives the request that produced it.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err = p.Ch.PublishWithContext(ctx,
			EventsExchange,
			"",    // fanout ignores the routing key
			false, // Mandatory
			false, // Immediate
			amqp.Publishing{
				ContentType: "application/json",
				Body:        body,
			},
		)
		if err != nil {
			p.Log.Warnw("analytics event publish failed", "event", event, "error", err)
		}
	}()
}
