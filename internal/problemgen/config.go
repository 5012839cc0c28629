package problemgen

// DefaultMaxAttempts bounds how many candidates Generate samples before it
// reports that no question satisfies the constraints.
const DefaultMaxAttempts = 1000

// Config controls the behavior of the Generator.
type Config struct {
	// MaxAttempts is the number of candidates sampled per Generate call.
	// Values below 1 fall back to DefaultMaxAttempts.
	MaxAttempts int
}

// DefaultConfig returns a Config with the standard attempt budget.
func DefaultConfig() Config {
	return Config{MaxAttempts: DefaultMaxAttempts}
}

func (c Config) maxAttempts() int {
	if c.MaxAttempts < 1 {
		return DefaultMaxAttempts
	}
	return c.MaxAttempts
}
