package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/airport/internal/kafka"
)

// Sender turns order events into customer notifications. Delivery goes to the
// configured logger; users are addressed by id because the service stores no
// contact details.
type Sender struct {
	log *slog.Logger
}

func NewSender(log *slog.Logger) *Sender {
	if log == nil {
		log = slog.Default()
	}
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	subject, ok := subjects[event.Type]
	if !ok {
		s.log.DebugContext(ctx, "no notification for event", "type", event.Type)
		return nil
	}
	s.log.InfoContext(ctx, "notification sent",
		"user_id", event.UserID,
		"subject", fmt.Sprintf(subject, event.OrderID),
		"tickets", len(event.Tickets),
		"event_id", event.ID,
	)
	return nil
}

var subjects = map[string]string{
	kafka.EventOrderCreated: "Your order #%d is confirmed",
	kafka.EventOrderUpdated: "Your order #%d was changed",
	kafka.EventOrderDeleted: "Your order #%d was cancelled",
}
