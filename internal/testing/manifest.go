package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Item is one fixture record. An empty field is omitted from the element.
type Item struct {
	PartID string
	Color  string
	Qty    string
}

// Items builds fixtures from (part, color, qty) triples
func Items(triples ...string) []Item {
	if len(triples)%3 != 0 {
		panic("Items needs part, color, qty triples")
	}
	items := make([]Item, 0, len(triples)/3)
	for i := 0; i < len(triples); i += 3 {
		items = append(items, Item{PartID: triples[i], Color: triples[i+1], Qty: triples[i+2]})
	}
	return items
}

// ManifestXML renders items as a BrickLink inventory document
func ManifestXML(items []Item) string {
	var b strings.Builder
	b.WriteString("<INVENTORY>\n")
	for _, it := range items {
		b.WriteString("  <ITEM>\n")
		if it.PartID != "" {
			fmt.Fprintf(&b, "    <ITEMID>%s</ITEMID>\n", it.PartID)
		}
		if it.Color != "" {
			fmt.Fprintf(&b, "    <COLOR>%s</COLOR>\n", it.Color)
		}
		if it.Qty != "" {
			fmt.Fprintf(&b, "    <QTY>%s</QTY>\n", it.Qty)
		}
		b.WriteString("  </ITEM>\n")
	}
	b.WriteString("</INVENTORY>\n")
	return b.String()
}

// WriteManifest writes items as dir/name and returns the path.
// dir is created if needed.
func WriteManifest(t *testing.T, dir, name string, items []Item) string {
	t.Helper()
	return WriteFile(t, dir, name, ManifestXML(items))
}

// WriteFile writes raw content as dir/name and returns the path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test on error
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// ListDir returns the sorted entry names of dir
func ListDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to list %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
