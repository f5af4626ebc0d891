package am

import (
	"strings"

	"github.com/teranos/brickxml/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Split.MaxUnique < 1 {
		return errors.Newf("split.max_unique must be >= 1, got %d", c.Split.MaxUnique)
	}

	if c.Paths.TimestampFormat == "" {
		return errors.New("paths.timestamp_format cannot be empty")
	}

	tags := map[string]string{
		"inventory.root_tag":     c.Inventory.RootTag,
		"inventory.item_tag":     c.Inventory.ItemTag,
		"inventory.part_tag":     c.Inventory.PartTag,
		"inventory.color_tag":    c.Inventory.ColorTag,
		"inventory.quantity_tag": c.Inventory.QuantityTag,
	}
	for key, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return errors.Newf("%s cannot be empty", key)
		}
		if strings.ContainsAny(tag, " <>/") {
			return errors.Newf("%s is not a valid element name: %q", key, tag)
		}
	}

	switch c.Inventory.QuantityPolicy {
	case QuantityStrict, QuantityLenient:
	default:
		return errors.Newf("inventory.quantity_policy must be %q or %q, got %q",
			QuantityStrict, QuantityLenient, c.Inventory.QuantityPolicy)
	}

	if !strings.HasPrefix(c.Inventory.Extension, ".") || len(c.Inventory.Extension) < 2 {
		return errors.Newf("inventory.extension must look like \".xml\", got %q", c.Inventory.Extension)
	}

	switch c.Log.Theme {
	case "", "gruvbox", "everforest":
	default:
		return errors.Newf("log.theme must be gruvbox or everforest, got %q", c.Log.Theme)
	}

	return nil
}
