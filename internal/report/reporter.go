package report

import (
	"context"

	"go.uber.org/multierr"

	"github.com/hamed0406/endpointprobe/internal/domain"
)

// Reporter is the sink the probe talks to. Implementations must be safe for
// concurrent use.
type Reporter interface {
	EmitEvent(ctx context.Context, e domain.Event) error
	EmitServiceCheck(ctx context.Context, sc domain.ServiceCheck) error
	EmitGauge(ctx context.Context, g domain.Gauge) error
}

// Multi fans every emission out to all reporters and combines their errors.
type Multi []Reporter

func (m Multi) EmitEvent(ctx context.Context, e domain.Event) error {
	var err error
	for _, r := range m {
		if r == nil {
			continue
		}
		err = multierr.Append(err, r.EmitEvent(ctx, e))
	}
	return err
}

func (m Multi) EmitServiceCheck(ctx context.Context, sc domain.ServiceCheck) error {
	var err error
	for _, r := range m {
		if r == nil {
			continue
		}
		err = multierr.Append(err, r.EmitServiceCheck(ctx, sc))
	}
	return err
}

func (m Multi) EmitGauge(ctx context.Context, g domain.Gauge) error {
	var err error
	for _, r := range m {
		if r == nil {
			continue
		}
		err = multierr.Append(err, r.EmitGauge(ctx, g))
	}
	return err
}

var _ Reporter = Multi(nil)
