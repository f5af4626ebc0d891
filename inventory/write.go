package inventory

import (
	"bufio"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/brickxml/am"
	"github.com/teranos/brickxml/errors"
)

// NewManifest assembles a fresh container named root holding records
func NewManifest(root string, records []Record) *Manifest {
	return &Manifest{Root: root, Records: records}
}

// Encode writes m as a UTF-8 XML document with a declaration header,
// indented by two spaces. Mixed content is written as it was read.
func Encode(w io.Writer, m *Manifest) error {
	if m.Root == "" {
		return errors.New("manifest has no root element name")
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	start := xml.StartElement{Name: xml.Name{Local: m.Root}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for i, r := range m.Records {
		if r.node == nil {
			return errors.Newf("record %d (%s) has no element", i+1, r.Key)
		}
		if err := indent(enc, 1); err != nil {
			return err
		}
		if err := encodeNode(enc, r.node, 1); err != nil {
			return err
		}
	}
	if len(m.Records) > 0 {
		if err := indent(enc, 0); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(start.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func indent(enc *xml.Encoder, depth int) error {
	return enc.EncodeToken(xml.CharData("\n" + strings.Repeat("  ", depth)))
}

// encodeNode writes n at depth. A negative depth writes n and everything
// below it without added whitespace, as inside mixed content.
func encodeNode(enc *xml.Encoder, n *Node, depth int) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}, Attr: n.Attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	switch {
	case n.mixed():
		for _, c := range n.Children {
			var err error
			if c.isText() {
				err = enc.EncodeToken(xml.CharData(c.Text))
			} else {
				err = encodeNode(enc, c, -1)
			}
			if err != nil {
				return err
			}
		}

	case len(n.Children) == 0:
		if n.Text != "" {
			if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
				return err
			}
		}

	default:
		for _, c := range n.Children {
			childDepth := -1
			if depth >= 0 {
				childDepth = depth + 1
				if err := indent(enc, childDepth); err != nil {
					return err
				}
			}
			if err := encodeNode(enc, c, childDepth); err != nil {
				return err
			}
		}
		if depth >= 0 {
			if err := indent(enc, depth); err != nil {
				return err
			}
		}
	}
	return enc.EncodeToken(start.End())
}

// WriteFile encodes m to path. The document is written to a temporary file
// in the same directory and renamed into place, so an interrupted run never
// leaves a truncated manifest under the final name.
func WriteFile(path string, m *Manifest) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapWrite(err, path)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err := Encode(buf, m); err != nil {
		return errors.WrapWrite(err, path)
	}
	if err := buf.Flush(); err != nil {
		return errors.WrapWrite(err, path)
	}
	if err := tmp.Chmod(am.DefaultFilePermissions); err != nil {
		return errors.WrapWrite(err, path)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapWrite(err, path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.WrapWrite(err, path)
	}
	return nil
}
