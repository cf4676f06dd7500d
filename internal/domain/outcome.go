package domain

import "time"

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeHTTPError
	OutcomeTimeout
	OutcomeTransportError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeHTTPError:
		return "http_error"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeTransportError:
		return "transport_error"
	}
	return "unknown"
}

// Outcome is the result of a single GET. StatusCode and Body are only set
// for Success and HTTPError; Err only for TransportError.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Elapsed    time.Duration
	Body       []byte
	Err        error
}

// Completed reports whether an HTTP response was received.
func (o Outcome) Completed() bool {
	return o.Kind == OutcomeSuccess || o.Kind == OutcomeHTTPError
}
