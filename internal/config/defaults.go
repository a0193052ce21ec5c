package config

const (
	defaultDatabaseFile       = "~/.local/share/libris/library.db"
	defaultCatalogFile        = "~/.local/share/libris/catalog.html"
	defaultLogDir             = "~/.local/share/libris/logs"
	defaultISBNdbBaseURL      = "https://isbndb.com/api"
	defaultISBNdbAPIVersion   = "v2"
	defaultSerialPort         = "/dev/ttyACM0"
	defaultSerialSpeed        = 9600
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultPollIntervalMillis = 5
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DatabaseFile: defaultDatabaseFile,
			CatalogFile:  defaultCatalogFile,
			LogDir:       defaultLogDir,
		},
		ISBNdb: ISBNdb{
			BaseURL:    defaultISBNdbBaseURL,
			APIVersion: defaultISBNdbAPIVersion,
		},
		Scanner: Scanner{
			SerialPort:  defaultSerialPort,
			SerialSpeed: defaultSerialSpeed,
		},
		Loop: Loop{
			PollIntervalMillis: defaultPollIntervalMillis,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
