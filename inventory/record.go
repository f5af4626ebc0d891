package inventory

import (
	"strconv"
	"strings"

	"github.com/teranos/brickxml/am"
	"github.com/teranos/brickxml/errors"
)

// Missing is substituted for an absent part id or color
const Missing = "?"

// Schema names the elements of a manifest
type Schema struct {
	RootTag     string
	ItemTag     string
	PartTag     string
	ColorTag    string
	QuantityTag string
}

// DefaultSchema returns the BrickLink inventory element names
func DefaultSchema() Schema {
	return Schema{
		RootTag:     "INVENTORY",
		ItemTag:     "ITEM",
		PartTag:     "ITEMID",
		ColorTag:    "COLOR",
		QuantityTag: "QTY",
	}
}

// SchemaFromConfig builds a Schema from the inventory config section
func SchemaFromConfig(cfg am.InventoryConfig) Schema {
	return Schema{
		RootTag:     cfg.RootTag,
		ItemTag:     cfg.ItemTag,
		PartTag:     cfg.PartTag,
		ColorTag:    cfg.ColorTag,
		QuantityTag: cfg.QuantityTag,
	}
}

// Key identifies an aggregation bucket
type Key struct {
	PartID string `json:"part_id" yaml:"part_id"`
	Color  string `json:"color" yaml:"color"`
}

func (k Key) String() string {
	return k.PartID + "/" + k.Color
}

// Record is one manifest item. The underlying element is shared with the
// Manifest it came from and must not be modified; WithQuantity copies it.
type Record struct {
	Key      Key
	Quantity int

	node        *Node
	quantityTag string
}

// NewRecord builds a record element from scratch
func NewRecord(schema Schema, partID, color string, quantity int) Record {
	node := &Node{
		Name: schema.ItemTag,
		Children: []*Node{
			{Name: schema.PartTag, Text: partID},
			{Name: schema.ColorTag, Text: color},
			{Name: schema.QuantityTag, Text: strconv.Itoa(quantity)},
		},
	}
	return Record{
		Key:         Key{PartID: partID, Color: color},
		Quantity:    quantity,
		node:        node,
		quantityTag: schema.QuantityTag,
	}
}

// Field returns the text of the record's child element name
func (r Record) Field(name string) (string, bool) {
	if r.node == nil {
		return "", false
	}
	return r.node.ChildText(name)
}

// WithQuantity returns a copy of r whose quantity element holds q.
// The quantity element is appended when the source record had none.
func (r Record) WithQuantity(q int) Record {
	node := r.node.Clone()
	if node == nil {
		node = &Node{}
	}
	text := strconv.Itoa(q)
	if qty := node.Child(r.quantityTag); qty != nil {
		qty.Text = text
		qty.Children = nil
	} else {
		node.Children = append(node.Children, &Node{Name: r.quantityTag, Text: text})
	}

	out := r
	out.Quantity = q
	out.node = node
	return out
}

// recordFromNode extracts the modeled fields of an item element.
// Absent part/color become Missing; an absent or empty quantity is 0.
func recordFromNode(node *Node, schema Schema) (Record, error) {
	rec := Record{
		Key:         Key{PartID: Missing, Color: Missing},
		node:        node,
		quantityTag: schema.QuantityTag,
	}
	if text, ok := node.ChildText(schema.PartTag); ok {
		rec.Key.PartID = strings.TrimSpace(text)
	}
	if text, ok := node.ChildText(schema.ColorTag); ok {
		rec.Key.Color = strings.TrimSpace(text)
	}
	if text, ok := node.ChildText(schema.QuantityTag); ok {
		q, err := parseQuantity(text)
		if err != nil {
			return rec, err
		}
		rec.Quantity = q
	}
	return rec, nil
}

func parseQuantity(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	q, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.NewInvalidQuantityError("quantity %q is not an integer", text)
	}
	if q < 0 {
		return 0, errors.NewInvalidQuantityError("quantity %d is negative", q)
	}
	return q, nil
}
