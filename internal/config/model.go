package config

// DefaultFileName is the defaults file looked up in the working directory.
const DefaultFileName = "levelpack.hcl"

// Model is the decoded defaults file. Zero values mean "not set": empty
// paths keep the built-in defaults, a negative DebugLimit means unlimited.
type Model struct {
	InputPath  string
	OutputPath string
	DebugLimit int
	HoldOnExit bool
}

// NewModel returns a Model with nothing set.
func NewModel() *Model {
	return &Model{DebugLimit: -1}
}
