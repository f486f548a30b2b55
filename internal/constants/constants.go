// Package constants provides shared constants used across the application
// to avoid circular dependencies between packages.
package constants

// Version is the archie release version.
const Version = "3.3.0"

// Application defaults
const (
	DefaultManager  = "paru"
	DefaultRegistry = "pacman"
	DefaultLogLevel = "none"

	// DefaultMaxSuggestions caps how many completion candidates are handed
	// to the line editor popup per keystroke.
	DefaultMaxSuggestions = 500
)

// SupportedManagers are probed in order when no manager is configured.
var SupportedManagers = []string{"paru", "yay", "pacman"}

// Package name sources
const (
	// AURCacheDir is the directory under the user cache dir holding the AUR name list
	AURCacheDir = "paru"
	// AURCacheFile is the newline separated list of AUR package names
	AURCacheFile = "packages.aur"
)

// Prompts
const (
	CommandPrompt = "$ "
	PackagePrompt = "Package: "
	SearchPrompt  = "Search: "
)
