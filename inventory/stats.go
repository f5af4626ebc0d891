package inventory

// Stats summarizes a manifest
type Stats struct {
	Source        string   `json:"source,omitempty" yaml:"source,omitempty"`
	Records       int      `json:"records" yaml:"records"`
	TotalQuantity int      `json:"total_quantity" yaml:"total_quantity"`
	UniqueKeys    int      `json:"unique_items" yaml:"unique_items"`
	UniqueColors  int      `json:"unique_colors" yaml:"unique_colors"`
	Buckets       []Bucket `json:"-" yaml:"-"`
}

// Aggregate computes totals, distinct keys and distinct colors of m
func Aggregate(m *Manifest) Stats {
	g := NewGrouper()
	colors := make(map[string]struct{})
	for _, r := range m.Records {
		g.Add(r)
		colors[r.Key.Color] = struct{}{}
	}

	return Stats{
		Source:        m.Source,
		Records:       g.Count(),
		TotalQuantity: g.Total(),
		UniqueKeys:    g.Len(),
		UniqueColors:  len(colors),
		Buckets:       g.Buckets(),
	}
}
