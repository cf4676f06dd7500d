package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hamed0406/endpointprobe/internal/domain"
)

// Instances is the parsed form of an instance file:
//
//	init_config:
//	  default_timeout: 5
//	instances:
//	  - url: https://svc.local/health
//	    type: node_health
//	    tags: [env:prod]
//	    timeout: 2
type Instances struct {
	InitConfig domain.Defaults         `yaml:"init_config"`
	Endpoints  []domain.EndpointConfig `yaml:"instances" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func LoadInstances(path string) (Instances, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Instances{}, fmt.Errorf("read instances %q: %w", path, err)
	}
	in, err := ParseInstances(b)
	if err != nil {
		return Instances{}, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

func ParseInstances(b []byte) (Instances, error) {
	var in Instances
	if err := yaml.Unmarshal(b, &in); err != nil {
		return Instances{}, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := validate.Struct(in); err != nil {
		return Instances{}, describeValidation(err)
	}
	return in, nil
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate instances: %w", err)
	}
	msgs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		// values are left out: a URL may carry credentials
		msgs = append(msgs, fmt.Errorf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid instances: %w", errors.Join(msgs...))
}

// Resolved returns the endpoints with init_config applied to every field the
// instance leaves unset.
func (in Instances) Resolved() []domain.EndpointConfig {
	out := make([]domain.EndpointConfig, 0, len(in.Endpoints))
	for _, e := range in.Endpoints {
		if e.Timeout == nil {
			t := e.TimeoutSeconds(in.InitConfig)
			e.Timeout = &t
		}
		if e.TLSVerify == nil {
			v := in.InitConfig.TLSVerify
			e.TLSVerify = &v
		}
		e.Tags = append([]string(nil), e.Tags...)
		out = append(out, e)
	}
	return out
}
