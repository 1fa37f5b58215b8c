package configs

// Templates configures where training scenarios are read from.
type Templates struct {
	// Dir is a scenario tree on disk. Empty means the bundled scenarios.
	Dir string `env:"DIR"`
	// TempDir receives the private working copy. Empty means os.TempDir.
	TempDir string `env:"TEMP_DIR"`
}
