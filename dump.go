package chainx

// Dump is a structured snapshot of a HashTable.
type Dump struct {
	Rows     int      `json:"rows" yaml:"rows"`
	Size     int      `json:"size" yaml:"size"`
	Strategy string   `json:"strategy" yaml:"strategy"`
	Buckets  []Bucket `json:"buckets" yaml:"buckets"`
}

// Bucket is one table slot in a Dump.
type Bucket struct {
	Index int      `json:"index" yaml:"index"`
	Keys  []string `json:"keys" yaml:"keys"`
}

// Lengths returns the chain length of each bucket in index order.
func (d Dump) Lengths() []int {
	out := make([]int, len(d.Buckets))
	for i, b := range d.Buckets {
		out[i] = len(b.Keys)
	}
	return out
}
