// Package worker wires the background jobs: the periodic flying-hours pass
// and the notification consumer.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/Domenick1991/airport/internal/email"
	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/Domenick1991/airport/internal/service/accounting"
	"github.com/go-co-op/gocron/v2"
	kafkaGo "github.com/segmentio/kafka-go"
)

// ScheduleAccounting registers a duration job that runs one accounting pass
// per interval, starting immediately. A pass that overruns the interval
// delays the next one instead of running alongside it.
func ScheduleAccounting(ctx context.Context, s gocron.Scheduler, svc accounting.AccountingUseCase, interval time.Duration) (gocron.Job, error) {
	return s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { RunAccounting(ctx, svc) }),
		gocron.WithName("accounting-pass"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
}

// RunAccounting runs a single pass and logs its outcome.
func RunAccounting(ctx context.Context, svc accounting.AccountingUseCase) {
	if ctx.Err() != nil {
		return
	}
	res, err := svc.RunPass(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "accounting pass failed", "error", err)
		return
	}
	if res.Skipped {
		slog.InfoContext(ctx, "accounting pass skipped, another instance holds the lock")
		return
	}
	slog.InfoContext(ctx, "accounting pass finished",
		"pending", res.Pending,
		"not_arrived", res.NotArrived,
		"accounted", res.Accounted,
		"failed", res.Failed,
		"hours", res.Hours,
	)
}

// NotificationHandler decodes order events and hands them to the sender.
// Malformed messages are logged and skipped so they do not block the partition.
func NotificationHandler(sender *email.Sender) func(context.Context, kafkaGo.Message) error {
	return func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeOrderEvent(msg.Value)
		if err != nil {
			slog.WarnContext(ctx, "skipping undecodable event", "topic", msg.Topic, "offset", msg.Offset, "error", err)
			return nil
		}
		return sender.Send(ctx, event)
	}
}
