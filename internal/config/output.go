package config

// OutputFormat selects how position reports are written.
type OutputFormat int

const (
	Text OutputFormat = iota // One block of text per position
	JSON                     // A single JSON document
)

// String returns the flag value naming the format.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// ListMoves includes the legal moves of every piece of the side to move
	ListMoves bool

	// ShowBoard includes an 8x8 diagram of the position in text output
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: Text,
	}
}
