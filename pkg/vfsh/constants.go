package vfsh

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Session ended normally
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (unknown flags, bad arguments)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid vfsh.yaml or environment override
	ExitScriptNotFound = 11 // --script file could not be opened
	ExitNotInteractive = 12 // browse requested without a terminal
)

const (
	// DefaultRootName is the name given to the root directory of a new session.
	DefaultRootName = "root"

	// ParentToken is the cd argument that moves the cursor to its parent.
	ParentToken = ".."

	// DirSuffix marks directory names in listings.
	DirSuffix = "/"

	// PathSeparator joins directory names in Path() output and seed paths.
	PathSeparator = "/"

	// ConfigFileName is the configuration file looked up in the working directory.
	ConfigFileName = "vfsh.yaml"
)
