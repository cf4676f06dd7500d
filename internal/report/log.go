package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/hamed0406/endpointprobe/internal/domain"
)

// Log writes emissions to a zap logger. Error events and non-OK service
// checks are logged at warn level.
type Log struct {
	Logger *zap.Logger
}

func NewLog(l *zap.Logger) *Log {
	return &Log{Logger: l}
}

func (l *Log) EmitEvent(ctx context.Context, e domain.Event) error {
	lvl := l.Logger.Info
	if e.Severity == domain.SeverityError {
		lvl = l.Logger.Warn
	}
	lvl("event_emitted",
		zap.String("event_type", e.EventType),
		zap.String("title", e.Title),
		zap.String("text", e.Text),
		zap.String("aggregation_key", e.AggregationKey),
		zap.Strings("tags", e.Tags),
		zap.String("severity", string(e.Severity)),
		zap.Int64("timestamp", e.Timestamp),
	)
	return nil
}

func (l *Log) EmitServiceCheck(ctx context.Context, sc domain.ServiceCheck) error {
	lvl := l.Logger.Info
	if sc.Status != domain.StatusOK {
		lvl = l.Logger.Warn
	}
	lvl("service_check_emitted",
		zap.String("name", sc.Name),
		zap.Stringer("status", sc.Status),
		zap.Strings("tags", sc.Tags),
		zap.String("message", sc.Message),
		zap.Int64("timestamp", sc.Timestamp),
	)
	return nil
}

func (l *Log) EmitGauge(ctx context.Context, g domain.Gauge) error {
	l.Logger.Debug("gauge_emitted",
		zap.String("name", g.Name),
		zap.Float64("value", g.Value),
		zap.Strings("tags", g.Tags),
	)
	return nil
}

var _ Reporter = (*Log)(nil)
