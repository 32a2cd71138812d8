package config

// GlobalFlags contains common flags used across commands
type GlobalFlags struct {
	// Registry connection
	BaseURL   string
	WebURL    string
	AuthToken string

	// Output
	Format  string
	NoColor bool
	Verbose bool

	// Download defaults
	Download DownloadFlags
}

// DownloadFlags holds download command specific configuration
type DownloadFlags struct {
	Directory string
}

// Global is the shared instance of GlobalFlags
var Global = GlobalFlags{}
