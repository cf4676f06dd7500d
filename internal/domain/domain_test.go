package domain

import "testing"

func f64(v float64) *float64 { return &v }
func boolp(v bool) *bool     { return &v }

func TestEndpointConfig_TimeoutSeconds(t *testing.T) {
	cases := []struct {
		name string
		cfg  EndpointConfig
		def  Defaults
		want float64
	}{
		{"instance override", EndpointConfig{Timeout: f64(2)}, Defaults{DefaultTimeout: 10}, 2},
		{"init_config default", EndpointConfig{}, Defaults{DefaultTimeout: 10}, 10},
		{"builtin default", EndpointConfig{}, Defaults{}, DefaultTimeout},
		{"non-positive override ignored", EndpointConfig{Timeout: f64(0)}, Defaults{}, DefaultTimeout},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.cfg.TimeoutSeconds(c.def); got != c.want {
				t.Fatalf("TimeoutSeconds()=%v want %v", got, c.want)
			}
		})
	}
}

func TestEndpointConfig_VerifyTLS(t *testing.T) {
	if (EndpointConfig{}).VerifyTLS(Defaults{}) {
		t.Fatalf("verification must be off by default")
	}
	if !(EndpointConfig{}).VerifyTLS(Defaults{TLSVerify: true}) {
		t.Fatalf("init_config tls_verify should apply")
	}
	if (EndpointConfig{TLSVerify: boolp(false)}).VerifyTLS(Defaults{TLSVerify: true}) {
		t.Fatalf("instance tls_verify should override init_config")
	}
}

func TestEndpointConfig_BodyHealthCheck(t *testing.T) {
	for typ, want := range map[string]bool{
		"node_health":    true,
		"cluster_health": true,
		"proxy":          false,
		"":               false,
	} {
		if got := (EndpointConfig{CheckType: typ}).BodyHealthCheck(); got != want {
			t.Fatalf("BodyHealthCheck(%q)=%v want %v", typ, got, want)
		}
	}
}

func TestServiceCheckStatus_Values(t *testing.T) {
	// fixed by the backend convention
	if StatusOK != 0 || StatusWarning != 1 || StatusCritical != 2 || StatusUnknown != 3 {
		t.Fatalf("service check status values drifted")
	}
	if StatusCritical.String() != "CRITICAL" {
		t.Fatalf("got %q", StatusCritical.String())
	}
}
