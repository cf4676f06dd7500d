package domain

// DefaultTimeout applies when neither the instance nor init_config sets a timeout.
const DefaultTimeout = 5.0

// Check types whose response body carries an aggregate health verdict.
const (
	CheckTypeNodeHealth    = "node_health"
	CheckTypeClusterHealth = "cluster_health"
)

// Defaults mirrors the init_config block of an instance file.
type Defaults struct {
	DefaultTimeout float64 `yaml:"default_timeout" json:"default_timeout" validate:"omitempty,gt=0,lte=86400"`
	TLSVerify      bool    `yaml:"tls_verify" json:"tls_verify"`
}

// EndpointConfig is one configured instance. An empty URL means the
// instance is skipped.
type EndpointConfig struct {
	URL       string   `yaml:"url" json:"url" validate:"omitempty,url"`
	Tags      []string `yaml:"tags" json:"tags"`
	CheckType string   `yaml:"type" json:"type" validate:"required_with=URL"`
	Timeout   *float64 `yaml:"timeout,omitempty" json:"timeout,omitempty" validate:"omitempty,gt=0,lte=86400"`
	TLSVerify *bool    `yaml:"tls_verify,omitempty" json:"tls_verify,omitempty"`
}

// BodyHealthCheck reports whether the response body must be inspected.
func (c EndpointConfig) BodyHealthCheck() bool {
	return c.CheckType == CheckTypeNodeHealth || c.CheckType == CheckTypeClusterHealth
}

// TimeoutSeconds resolves the instance timeout against the defaults.
func (c EndpointConfig) TimeoutSeconds(d Defaults) float64 {
	if c.Timeout != nil && *c.Timeout > 0 {
		return *c.Timeout
	}
	if d.DefaultTimeout > 0 {
		return d.DefaultTimeout
	}
	return DefaultTimeout
}

// VerifyTLS resolves certificate verification; off unless asked for.
func (c EndpointConfig) VerifyTLS(d Defaults) bool {
	if c.TLSVerify != nil {
		return *c.TLSVerify
	}
	return d.TLSVerify
}

// ServiceCheckStatus values match the monitoring backend's convention.
type ServiceCheckStatus int

const (
	StatusOK       ServiceCheckStatus = 0
	StatusWarning  ServiceCheckStatus = 1
	StatusCritical ServiceCheckStatus = 2
	StatusUnknown  ServiceCheckStatus = 3
)

func (s ServiceCheckStatus) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	case StatusUnknown:
		return "UNKNOWN"
	}
	return "INVALID"
}

type Severity string

const (
	SeverityError Severity = "error"
)

type Event struct {
	Timestamp      int64    `json:"timestamp"`
	EventType      string   `json:"event_type"`
	Title          string   `json:"title"`
	Text           string   `json:"text"`
	AggregationKey string   `json:"aggregation_key"`
	Tags           []string `json:"tags"`
	Severity       Severity `json:"severity"`
}

type ServiceCheck struct {
	Name      string             `json:"name"`
	Status    ServiceCheckStatus `json:"status"`
	Tags      []string           `json:"tags"`
	Timestamp int64              `json:"timestamp"`
	Message   string             `json:"message,omitempty"`
}

type Gauge struct {
	Name  string   `json:"name"`
	Value float64  `json:"value"`
	Tags  []string `json:"tags"`
}

