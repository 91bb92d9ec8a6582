package schedule

// Config holds schedule generation parameters.
type Config struct {
	// MaxTokens caps the response size. A 7-day plan runs long.
	MaxTokens int

	// Temperature is kept low: structural compliance matters more than
	// creative variance in a plan.
	Temperature float64

	// HorizonDays is the planning window length.
	HorizonDays int
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.3,
		HorizonDays: 7,
	}
}
