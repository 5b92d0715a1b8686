package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName = "nybbler"
	Version = "v0.1.0"

	// Save file names, one per backend
	JSONSaveFile   = "pet.json"
	SQLiteSaveFile = "pet.db"
	ConfigFileName = "config.yaml"

	// Storage backends
	StoreJSON   = "json"
	StoreSQLite = "sqlite"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "nybbler-"

	// Log constants
	LogDirName  = "logs"
	LogFileName = "nybbler.log"
)

// Session States
const (
	StatePet SessionState = iota
	StateConfirmQuit
	StateDeceased
)
