package inventory

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/teranos/brickxml/errors"
	"github.com/teranos/brickxml/logger"
	"github.com/teranos/brickxml/report"
)

// Manifest is a loaded or assembled inventory document
type Manifest struct {
	// Source is the path or name the manifest was read from ("" when built in memory)
	Source string
	// Root is the container element name
	Root    string
	Records []Record
}

// Options control how manifests are decoded
type Options struct {
	Schema Schema
	// Lenient turns unparsable quantities into 0 with a warning instead of failing the load
	Lenient bool
	// Trace logs every decoded record at debug level
	Trace    bool
	Reporter report.Reporter
}

// DefaultOptions returns strict decoding of BrickLink inventories
func DefaultOptions() Options {
	return Options{Schema: DefaultSchema(), Reporter: report.Nop{}}
}

func (o Options) reporter() report.Reporter {
	if o.Reporter == nil {
		return report.Nop{}
	}
	return o.Reporter
}

func componentLog() *zap.SugaredLogger {
	return logger.ComponentLogger("inventory")
}

// TotalQuantity sums the quantity of every record
func (m *Manifest) TotalQuantity() int {
	total := 0
	for _, r := range m.Records {
		total += r.Quantity
	}
	return total
}

// Load reads and parses the manifest at path.
// Every failure wraps errors.ErrLoad and names the path.
func Load(path string, opts Options) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapLoad(err, path)
	}
	defer f.Close()

	return Decode(f, path, opts)
}

// Decode parses a manifest from r; source names it in errors and warnings.
func Decode(r io.Reader, source string, opts Options) (*Manifest, error) {
	if opts.Schema == (Schema{}) {
		opts.Schema = DefaultSchema()
	}

	root, err := parseTree(r)
	if err != nil {
		return nil, errors.WrapLoad(err, source)
	}

	m := &Manifest{Source: source, Root: root.Name}
	index := 0
	for _, child := range root.Children {
		if child.Name != opts.Schema.ItemTag {
			continue
		}
		index++

		rec, err := recordFromNode(child, opts.Schema)
		if err != nil {
			err = errors.Wrapf(err, "record %d (part %s)", index, rec.Key.PartID)
			if !opts.Lenient {
				return nil, errors.WithHint(errors.WrapLoad(err, source),
					"fix the QTY value or set inventory.quantity_policy = \"lenient\"")
			}
			opts.reporter().Warn("%s: %v; counting it as 0", source, err)
			rec.Quantity = 0
		}
		m.Records = append(m.Records, rec)
		if opts.Trace {
			componentLog().Debugw("Decoded record",
				logger.FieldPath, source,
				"index", index,
				"part", rec.Key.PartID,
				"color", rec.Key.Color,
				"quantity", rec.Quantity)
		}
	}

	componentLog().Debugw("Decoded manifest",
		logger.FieldPath, source,
		"root", root.Name,
		logger.FieldRecords, len(m.Records))
	return m, nil
}

type frame struct {
	node *Node
	// content holds child elements and text segments in document order
	content []*Node
	segment strings.Builder
	text    strings.Builder
}

// flushSegment closes the pending text run as a text node
func (f *frame) flushSegment() {
	if f.segment.Len() == 0 {
		return
	}
	f.content = append(f.content, &Node{Text: f.segment.String()})
	f.segment.Reset()
}

// close settles the element's content. A leaf keeps its text; element-only
// content drops the whitespace between children; mixed content keeps every
// text segment interleaved with the children.
func (f *frame) close() {
	f.flushSegment()
	var elements []*Node
	for _, c := range f.content {
		if !c.isText() {
			elements = append(elements, c)
		}
	}

	text := f.text.String()
	switch {
	case len(elements) == 0:
		f.node.Text = text
	case strings.TrimSpace(text) == "":
		f.node.Children = elements
	default:
		var inner strings.Builder
		for _, c := range f.content {
			inner.WriteString(c.Text)
		}
		f.node.Text = inner.String()
		f.node.Children = f.content
	}
}

var byteOrderMarks = [][]byte{
	{0xEF, 0xBB, 0xBF}, // UTF-8
	{0xFE, 0xFF},       // UTF-16BE
	{0xFF, 0xFE},       // UTF-16LE
}

// stripBOM removes a leading byte-order mark, transcoding UTF-16 to UTF-8.
// unicodeBOM reports whether one was found: the stream is then UTF-8 no
// matter what the XML declaration names.
func stripBOM(r io.Reader) (out io.Reader, unicodeBOM bool) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(3)
	for _, bom := range byteOrderMarks {
		if bytes.HasPrefix(head, bom) {
			return transform.NewReader(br, unicode.BOMOverride(transform.Nop)), true
		}
	}
	return br, false
}

// parseTree builds the element tree of a whole document.
// Comments, processing instructions and directives are dropped. Whitespace
// between child elements is dropped; leaf and mixed text is kept verbatim.
func parseTree(r io.Reader) (*Node, error) {
	r, unicodeBOM := stripBOM(r)

	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	if unicodeBOM {
		dec.CharsetReader = func(_ string, in io.Reader) (io.Reader, error) {
			return in, nil
		}
	}

	var root *Node
	var stack []*frame

	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, errors.Newf("second root element <%s>", qualified(t.Name))
			}
			node := &Node{Name: qualified(t.Name)}
			for _, a := range t.Attr {
				node.Attrs = append(node.Attrs, xml.Attr{Name: xml.Name{Local: qualified(a.Name)}, Value: a.Value})
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.flushSegment()
				parent.content = append(parent.content, node)
			} else {
				root = node
			}
			stack = append(stack, &frame{node: node})

		case xml.EndElement:
			name := qualified(t.Name)
			if len(stack) == 0 {
				return nil, errors.Newf("unexpected closing tag </%s>", name)
			}
			top := stack[len(stack)-1]
			if name != top.node.Name {
				return nil, errors.Newf("element <%s> closed by </%s>", top.node.Name, name)
			}
			top.close()
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, errors.New("text outside the root element")
				}
				continue
			}
			top := stack[len(stack)-1]
			top.segment.Write(t)
			top.text.Write(t)
		}
	}

	if len(stack) > 0 {
		return nil, errors.Newf("unexpected end of document inside <%s>", stack[len(stack)-1].node.Name)
	}
	if root == nil {
		return nil, errors.New("document has no root element")
	}
	return root, nil
}
