// Package am holds the brickxml configuration ("I am").
//
// Values come from, lowest to highest precedence: built-in defaults,
// /etc/brickxml/am.toml, ~/.brickxml/am.toml, the nearest project am.toml
// found walking up from the working directory, and BRICKXML_* environment
// variables (e.g. BRICKXML_SPLIT_MAX_UNIQUE=500).
package am

// Config represents the brickxml configuration
type Config struct {
	Paths     PathsConfig     `mapstructure:"paths" toml:"paths" json:"paths" yaml:"paths"`
	Split     SplitConfig     `mapstructure:"split" toml:"split" json:"split" yaml:"split"`
	Inventory InventoryConfig `mapstructure:"inventory" toml:"inventory" json:"inventory" yaml:"inventory"`
	Log       LogConfig       `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// PathsConfig configures where manifests are read from and written to
type PathsConfig struct {
	InputDir        string `mapstructure:"input_dir" toml:"input_dir" json:"input_dir" yaml:"input_dir"`                             // Base for relative --input values
	OutputDir       string `mapstructure:"output_dir" toml:"output_dir" json:"output_dir" yaml:"output_dir"`                         // Base for split runs and default merge output
	TimestampFormat string `mapstructure:"timestamp_format" toml:"timestamp_format" json:"timestamp_format" yaml:"timestamp_format"` // Go time layout for run directories
}

// SplitConfig configures the split command
type SplitConfig struct {
	MaxUnique int `mapstructure:"max_unique" toml:"max_unique" json:"max_unique" yaml:"max_unique"` // Default --max value
}

// InventoryConfig describes the manifest markup
type InventoryConfig struct {
	RootTag        string `mapstructure:"root_tag" toml:"root_tag" json:"root_tag" yaml:"root_tag"`                             // Container element for new documents
	ItemTag        string `mapstructure:"item_tag" toml:"item_tag" json:"item_tag" yaml:"item_tag"`                             // Record element
	PartTag        string `mapstructure:"part_tag" toml:"part_tag" json:"part_tag" yaml:"part_tag"`                             // Part identifier child
	ColorTag       string `mapstructure:"color_tag" toml:"color_tag" json:"color_tag" yaml:"color_tag"`                         // Color child
	QuantityTag    string `mapstructure:"quantity_tag" toml:"quantity_tag" json:"quantity_tag" yaml:"quantity_tag"`             // Quantity child
	QuantityPolicy string `mapstructure:"quantity_policy" toml:"quantity_policy" json:"quantity_policy" yaml:"quantity_policy"` // strict | lenient
	Extension      string `mapstructure:"extension" toml:"extension" json:"extension" yaml:"extension"`                         // File extension merge looks for
}

// LogConfig configures diagnostic logging
type LogConfig struct {
	Theme string `mapstructure:"theme" toml:"theme" json:"theme" yaml:"theme"` // Color theme: gruvbox, everforest
	JSON  bool   `mapstructure:"json" toml:"json" json:"json" yaml:"json"`     // Structured JSON diagnostics on stderr
}

// Quantity policies
const (
	QuantityStrict  = "strict"
	QuantityLenient = "lenient"
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
