package input

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"libris/internal/logging"
)

// LineSource produces raw text lines via blocking reads.
type LineSource interface {
	Name() string
	ReadLine() (string, error)
}

// Merger fans multiple line sources into one FIFO channel.
type Merger struct {
	lines         chan string
	logger        *slog.Logger
	retryInterval time.Duration
}

// New constructs a merger. retryInterval paces producer retries after a
// transient read fault.
func New(logger *slog.Logger, retryInterval time.Duration) *Merger {
	if retryInterval <= 0 {
		retryInterval = 5 * time.Millisecond
	}
	return &Merger{
		lines:         make(chan string, 16),
		logger:        logging.NewComponentLogger(logger, "input"),
		retryInterval: retryInterval,
	}
}

// Lines is the merged FIFO queue. It is never closed; consumers stop via
// their own context or a quit command.
func (m *Merger) Lines() <-chan string {
	return m.lines
}

// Attach starts a producer goroutine for the source. With retryOnError
// set, read faults are logged and retried so a flaky device never kills
// the producer; otherwise the first error ends it (keyboard EOF).
func (m *Merger) Attach(ctx context.Context, src LineSource, retryOnError bool) {
	go m.produce(ctx, src, retryOnError)
}

func (m *Merger) produce(ctx context.Context, src LineSource, retryOnError bool) {
	for {
		if ctx.Err() != nil {
			return
		}

		line, err := src.ReadLine()
		if err != nil {
			if !retryOnError {
				m.logger.Debug("source closed",
					logging.String("source", src.Name()),
					logging.Error(err),
				)
				return
			}
			m.logger.Warn("read failed, retrying",
				logging.String("source", src.Name()),
				logging.Error(err),
			)
			select {
			case <-time.After(m.retryInterval):
			case <-ctx.Done():
				return
			}
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		select {
		case m.lines <- line:
		case <-ctx.Done():
			return
		}
	}
}
