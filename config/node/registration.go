package node

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/frognet/frogctl/integration/frogweb"
)

// Registration describes the opt-in phone home to the FrogNet backend
// performed at the end of an install
type Registration struct {
	Enabled  bool   `yaml:"enabled,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
	Email    string `yaml:"email,omitempty"`
}

// EndpointOrDefault returns the configured endpoint or the backend default
func (r *Registration) EndpointOrDefault() string {
	if r.Endpoint == "" {
		return frogweb.DefaultEndpoint
	}
	return r.Endpoint
}

func (r Registration) Validate() error {
	if !r.Enabled {
		return nil
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Endpoint, is.URL),
	)
}
