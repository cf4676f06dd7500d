package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/endpointprobe/internal/domain"
	"github.com/hamed0406/endpointprobe/internal/report"
)

const (
	checkCanConnect   = "can_connect"
	checkIsHealthy    = "is_healthy"
	gaugeHealthy      = "healthy"
	gaugeResponseTime = "response_time"
	gaugeStatusCode   = "status_code"
)

// Probe checks one endpoint per Run call. It holds no per-run state and is
// safe to call concurrently for different configs.
type Probe struct {
	Logger   *zap.Logger
	Reporter report.Reporter
	Defaults domain.Defaults
	Fetcher  Fetcher
	Now      func() time.Time
}

func New(l *zap.Logger, r report.Reporter, d domain.Defaults) *Probe {
	if l == nil {
		l = zap.NewNop()
	}
	return &Probe{
		Logger:   l,
		Reporter: r,
		Defaults: d,
		Fetcher:  NewHTTPFetcher(),
		Now:      time.Now,
	}
}

// Run performs one GET against cfg.URL and reports the outcome. It never
// returns an error; every path ends in at least one Reporter call unless
// the instance has no URL.
func (p *Probe) Run(ctx context.Context, cfg domain.EndpointConfig) {
	if cfg.URL == "" {
		p.Logger.Info("probe_skipped", zap.String("reason", "no url found"), zap.String("type", cfg.CheckType))
		return
	}

	timeout := cfg.TimeoutSeconds(p.Defaults)
	c := &cycle{
		p:       p,
		ctx:     ctx,
		typ:     cfg.CheckType,
		url:     Redact(cfg.URL),
		key:     AggregationKey(cfg.URL),
		tags:    append([]string{}, cfg.Tags...),
		timeout: timeout,
	}

	out := p.Fetcher.Fetch(ctx, Request{
		URL:       cfg.URL,
		Timeout:   time.Duration(timeout * float64(time.Second)),
		VerifyTLS: cfg.VerifyTLS(p.Defaults),
	})
	defer c.logOutcome(out)

	// Shutdown of the caller is not an endpoint failure.
	if out.Kind == domain.OutcomeTransportError && errors.Is(ctx.Err(), context.Canceled) {
		return
	}

	switch out.Kind {
	case domain.OutcomeTimeout:
		msg := fmt.Sprintf("%s timed out after %s seconds.", c.url, formatSeconds(timeout))
		c.event("URL timeout", msg)
		c.serviceCheck(checkCanConnect, domain.StatusCritical, msg)
		return
	case domain.OutcomeTransportError:
		msg := fmt.Sprintf("%s Exception %s", c.url, Redact(describe(out.Err)))
		c.event("Unknown error for "+c.url, msg)
		c.serviceCheck(checkCanConnect, domain.StatusUnknown, msg)
		return
	case domain.OutcomeHTTPError:
		msg := fmt.Sprintf("%s returned a status of %d", c.url, out.StatusCode)
		c.event("Invalid response code for "+c.url, msg)
		c.serviceCheck(checkCanConnect, domain.StatusCritical, msg)
	default:
		c.serviceCheck(checkCanConnect, domain.StatusOK, "")
	}

	if cfg.BodyHealthCheck() && !c.checkBody(out.Body) {
		return
	}

	c.gauge(gaugeResponseTime, out.Elapsed.Seconds())
	c.gauge(gaugeStatusCode, float64(out.StatusCode))
}

// cycle carries the values derived for a single Run.
type cycle struct {
	p       *Probe
	ctx     context.Context
	typ     string
	url     string // redacted
	key     string
	tags    []string
	timeout float64
}

// checkBody reports body health. It returns false when the body could not
// be parsed, which ends the cycle.
func (c *cycle) checkBody(body []byte) bool {
	healthy, err := parseHealth(body)
	switch {
	case err != nil:
		c.p.Logger.Debug("probe_body_unparsable", zap.String("url", c.url), zap.Error(err))
		c.bodyError(body)
		return false
	case healthy:
		c.serviceCheck(checkIsHealthy, domain.StatusOK, "")
		c.gauge(gaugeHealthy, 1)
	default:
		c.bodyError(body)
	}
	return true
}

func (c *cycle) bodyError(body []byte) {
	// the body is kept verbatim; only the url part is redacted
	c.event("Response body for "+c.url, c.url+" response body is "+string(body))
	c.serviceCheck(checkIsHealthy, domain.StatusCritical, "")
	c.gauge(gaugeHealthy, 0)
}

// parseHealth accepts {"health": "true"} and {"health": true} as healthy.
// Anything that is not a JSON object is a parse error.
func parseHealth(body []byte) (bool, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return false, err
	}
	raw, ok := fields["health"]
	if !ok {
		return false, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, nil
	}
	switch h := v.(type) {
	case bool:
		return h, nil
	case string:
		return h == "true", nil
	}
	return false, nil
}

func (c *cycle) event(title, text string) {
	err := c.p.Reporter.EmitEvent(c.ctx, domain.Event{
		Timestamp:      c.p.Now().Unix(),
		EventType:      c.typ,
		Title:          title,
		Text:           text,
		AggregationKey: c.key,
		Tags:           c.tags,
		Severity:       domain.SeverityError,
	})
	c.reportErr("event", err)
}

func (c *cycle) serviceCheck(suffix string, status domain.ServiceCheckStatus, msg string) {
	err := c.p.Reporter.EmitServiceCheck(c.ctx, domain.ServiceCheck{
		Name:      c.typ + "." + suffix,
		Status:    status,
		Tags:      c.tags,
		Timestamp: c.p.Now().Unix(),
		Message:   msg,
	})
	c.reportErr("service_check", err)
}

func (c *cycle) gauge(suffix string, v float64) {
	err := c.p.Reporter.EmitGauge(c.ctx, domain.Gauge{
		Name:  c.typ + "." + suffix,
		Value: v,
		Tags:  c.tags,
	})
	c.reportErr("gauge", err)
}

func (c *cycle) reportErr(kind string, err error) {
	if err == nil {
		return
	}
	c.p.Logger.Warn("report_error",
		zap.String("kind", kind),
		zap.String("url", c.url),
		zap.Error(err),
	)
}

func (c *cycle) logOutcome(out domain.Outcome) {
	fields := []zap.Field{
		zap.String("url", c.url),
		zap.String("type", c.typ),
		zap.Stringer("outcome", out.Kind),
		zap.Float64("latency_ms", out.Elapsed.Seconds()*1000),
	}
	if out.Completed() {
		fields = append(fields, zap.Int("status", out.StatusCode))
	} else {
		fields = append(fields, zap.String("error", Redact(describe(out.Err))))
	}
	c.p.Logger.Debug("probe_completed", fields...)
}
