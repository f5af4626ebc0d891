package am

import (
	"github.com/spf13/viper"
)

// Defaults follow the assets/input, assets/output layout of BrickLink tooling
const (
	DefaultInputDir        = "assets/input"
	DefaultOutputDir       = "assets/output"
	DefaultTimestampFormat = "2006-01-02_15-04-05"
	DefaultMaxUnique       = 1000
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("paths.input_dir", DefaultInputDir)
	v.SetDefault("paths.output_dir", DefaultOutputDir)
	v.SetDefault("paths.timestamp_format", DefaultTimestampFormat)

	v.SetDefault("split.max_unique", DefaultMaxUnique)

	// BrickLink inventory XML
	v.SetDefault("inventory.root_tag", "INVENTORY")
	v.SetDefault("inventory.item_tag", "ITEM")
	v.SetDefault("inventory.part_tag", "ITEMID")
	v.SetDefault("inventory.color_tag", "COLOR")
	v.SetDefault("inventory.quantity_tag", "QTY")
	v.SetDefault("inventory.quantity_policy", QuantityStrict)
	v.SetDefault("inventory.extension", ".xml")

	v.SetDefault("log.theme", "everforest")
	v.SetDefault("log.json", false)
}

// Defaults returns a Config populated only from SetDefaults.
func Defaults() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always decode; a failure here is a programming error
		panic(err)
	}
	return cfg
}
