package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSON enables JSON output instead of the text board
	JSON bool

	// Unicode draws pieces with chess glyphs instead of letters
	Unicode bool

	// Coordinates prints file letters and rank numbers around the board
	Coordinates bool

	// ShowCaptures prints the captured piece lists under the board
	ShowCaptures bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Coordinates:  true,
		ShowCaptures: true,
	}
}
