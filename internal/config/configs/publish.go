package configs

// Publish tunes the publisher worker pool.
type Publish struct {
	// Workers bounds concurrent creates per entity type on the
	// questionnaire backend.
	Workers int `env:"WORKERS" envDefault:"8"`
}
