package planner

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent captures one store operation for logging.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// Observer receives store operation events.
type Observer interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes store events to w as slog text records.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "planner_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "planner_use_case", attrs...)
}

// track starts an event and returns the func that finishes it. Callers
// defer the returned func with a pointer to their named error result.
func (s *Store) track(ctx context.Context, name string, fields map[string]any) func(*error) {
	startedAt := s.now()
	return func(errp *error) {
		var err error
		if errp != nil {
			err = *errp
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  s.now().Sub(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}
}
