package configs

// Telemetry configures OpenTelemetry tracing. Spans are exported over
// OTLP/HTTP to Endpoint when Enabled is true.
type Telemetry struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	Endpoint    string `env:"ENDPOINT" envDefault:"http://localhost:4318"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"training-courses"`
}
