package configs

import (
	"net/url"
	"time"
)

// Backend locates one downstream REST API.
type Backend struct {
	URL     url.URL       `env:"URL,required,notEmpty"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
	// ExistsStatuses lists extra response statuses that mean the entity is
	// already present. 409 always does.
	ExistsStatuses []int `env:"EXISTS_STATUSES" envSeparator:","`
}
