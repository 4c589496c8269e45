package ksload

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Run completed, or CSV missing and instructions printed
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (invalid flags or arguments)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration
	ExitDecodeError   = 11 // No configured encoding could decode the CSV
	ExitMalformedCSV  = 12 // CSV content could not be parsed
	ExitDatabaseError = 13 // Database read or write failed
	ExitNotFound      = 14 // CSV file, database file or table not found
)

const (
	// DefaultDataDir is the directory holding both the source CSV and the database.
	DefaultDataDir = "data"

	// DefaultCSVPath is where the Kaggle export is expected.
	DefaultCSVPath = DefaultDataDir + "/ks-projects-201612.csv"

	// DefaultDBPath is the SQLite database produced by a load.
	DefaultDBPath = DefaultDataDir + "/kickstarter.db"

	// DefaultTableName is the single table written by the loader.
	DefaultTableName = "kickstarter_projects"

	// DefaultSampleRows is how many rows the explorer prints.
	DefaultSampleRows = 5

	// EncodingUTF8 and EncodingLatin1 are the encoding names understood by the parser.
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin-1"

	// KaggleDataset is the dataset slug used by the Kaggle CLI.
	KaggleDataset = "kemical/kickstarter-projects"

	// KaggleDatasetURL is the manual download page.
	KaggleDatasetURL = "https://www.kaggle.com/datasets/kemical/kickstarter-projects/data"

	// KaggleAccountURL is where API credentials are created.
	KaggleAccountURL = "https://www.kaggle.com/account"
)

// DefaultEncodings returns the encodings attempted, in order, when none are configured.
func DefaultEncodings() []string {
	return []string{EncodingUTF8, EncodingLatin1}
}
