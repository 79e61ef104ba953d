// Package config provides layered configuration for the indentect CLI.
//
// Values are merged from, lowest to highest precedence: built-in defaults,
// a YAML config file, INDENTECT_* environment variables and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Verbose    bool   `koanf:"verbose"`
	Color      string `koanf:"color"`
	Scope      string `koanf:"scope"`
	SkipBinary bool   `koanf:"skip_binary"`
	LogLevel   string `koanf:"log_level"`

	// ConfigFile is the config file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default configuration values.
const (
	DefaultColor    = ColorAuto
	DefaultScope    = "file"
	DefaultLogLevel = "warn"
	EnvPrefix       = "INDENTECT_"
)

// configFileNames are searched for in the working directory, in order.
var configFileNames = []string{".indentect.yaml", ".indentect.yml"}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"verbose":     "verbose",
	"color":       "color",
	"scope":       "scope",
	"skip-binary": "skip_binary",
	"log-level":   "log_level",
}
