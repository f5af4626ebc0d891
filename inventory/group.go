package inventory

// Bucket is the aggregate of every record sharing a Key
type Bucket struct {
	Key      Key `json:"key" yaml:"key"`
	Quantity int `json:"quantity" yaml:"quantity"`
	// Records counts the source records folded into this bucket
	Records int `json:"records" yaml:"records"`

	first Record
}

// Grouper folds records into per-Key buckets, remembering first-seen order.
// The same Grouper can take records from any number of manifests.
type Grouper struct {
	buckets []*Bucket
	index   map[Key]*Bucket
	total   int
	records int
}

// NewGrouper creates an empty Grouper
func NewGrouper() *Grouper {
	return &Grouper{index: make(map[Key]*Bucket)}
}

// Add folds r into its bucket. The first record seen for a Key becomes the
// bucket's representative; later ones only contribute their quantity.
func (g *Grouper) Add(r Record) {
	g.total += r.Quantity
	g.records++

	if b, ok := g.index[r.Key]; ok {
		b.Quantity += r.Quantity
		b.Records++
		return
	}
	b := &Bucket{Key: r.Key, Quantity: r.Quantity, Records: 1, first: r}
	g.index[r.Key] = b
	g.buckets = append(g.buckets, b)
}

// AddAll folds every record of m in document order
func (g *Grouper) AddAll(m *Manifest) {
	for _, r := range m.Records {
		g.Add(r)
	}
}

// Len returns the number of distinct keys
func (g *Grouper) Len() int {
	return len(g.buckets)
}

// Total returns the summed quantity of everything added
func (g *Grouper) Total() int {
	return g.total
}

// Count returns the number of records added
func (g *Grouper) Count() int {
	return g.records
}

// Buckets returns the buckets in first-seen order
func (g *Grouper) Buckets() []Bucket {
	out := make([]Bucket, len(g.buckets))
	for i, b := range g.buckets {
		out[i] = *b
	}
	return out
}

// Records returns one fresh record per Key in first-seen order: a copy of
// the representative carrying the bucket's summed quantity.
func (g *Grouper) Records() []Record {
	out := make([]Record, len(g.buckets))
	for i, b := range g.buckets {
		out[i] = b.first.WithQuantity(b.Quantity)
	}
	return out
}

// Deduplicate groups records by Key, summing quantities
func Deduplicate(records []Record) []Record {
	g := NewGrouper()
	for _, r := range records {
		g.Add(r)
	}
	return g.Records()
}
