package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// DataFilePermissions is the permission for the habits file (rw-r--r--)
	DataFilePermissions = 0o644
	// SecureFilePermissions is the permission for the config file (rw-------)
	SecureFilePermissions = 0o600
)

// Record layout
const (
	// RecordSeparator joins the fields of a persisted habit line
	RecordSeparator = ","
	// MinRecordFields is the number of leading fields a habit line must carry
	MinRecordFields = 3
)

// Defaults
const (
	// DefaultDataFile is the habits file, relative to the working directory
	DefaultDataFile = "habits.txt"
	// DefaultLogLevel keeps routine diagnostics out of the interactive menu
	DefaultLogLevel = "warn"
	// DefaultLogOutput is where zap writes unless configured otherwise
	DefaultLogOutput = "stderr"
)
