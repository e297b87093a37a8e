package production

import (
	"fmt"
	"math"
	"strings"

	"github.com/comalice/chainx"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

// BucketLoad is the chain length of one bucket.
type BucketLoad struct {
	Index  int `json:"index" yaml:"index"`
	Length int `json:"length" yaml:"length"`
}

// LoadReport summarizes how evenly keys spread over the buckets.
type LoadReport struct {
	Rows       int          `json:"rows" yaml:"rows"`
	Keys       int          `json:"keys" yaml:"keys"`
	Strategy   string       `json:"strategy" yaml:"strategy"`
	LoadFactor float64      `json:"loadFactor" yaml:"loadFactor"`
	Mean       float64      `json:"mean" yaml:"mean"`
	StdDev     float64      `json:"stdDev" yaml:"stdDev"`
	Longest    int          `json:"longest" yaml:"longest"`
	Empty      int          `json:"empty" yaml:"empty"`
	Heaviest   []BucketLoad `json:"heaviest" yaml:"heaviest"`
}

// Analyze computes a LoadReport for d. Heaviest lists up to topK non-empty
// buckets, longest first, lower index first on ties.
func Analyze(d chainx.Dump, topK int) LoadReport {
	r := LoadReport{
		Rows:     d.Rows,
		Keys:     d.Size,
		Strategy: d.Strategy,
	}
	if len(d.Buckets) == 0 {
		return r
	}

	lengths := make([]float64, len(d.Buckets))
	for i, b := range d.Buckets {
		lengths[i] = float64(len(b.Keys))
		if len(b.Keys) == 0 {
			r.Empty++
		}
	}

	r.LoadFactor = float64(d.Size) / float64(len(d.Buckets))
	r.Longest = int(floats.Max(lengths))
	if len(lengths) == 1 {
		r.Mean = lengths[0]
	} else {
		r.Mean, r.StdDev = stat.MeanStdDev(lengths, nil)
	}
	r.Heaviest = heaviest(d.Buckets, topK)
	return r
}

func heaviest(buckets []chainx.Bucket, k int) []BucketLoad {
	if k <= 0 {
		return nil
	}
	pq := priorityqueue.New[int, float64](priorityqueue.MinHeap)
	tie := float64(len(buckets) + 1)
	for i, b := range buckets {
		if len(b.Keys) == 0 {
			continue
		}
		pq.Put(i, -float64(len(b.Keys))+float64(i)/tie)
	}

	out := make([]BucketLoad, 0, k)
	for len(out) < k && pq.Len() > 0 {
		i := pq.Get().Value
		out = append(out, BucketLoad{Index: buckets[i].Index, Length: len(buckets[i].Keys)})
	}
	return out
}

// String renders the report as aligned text.
func (r LoadReport) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "rows:        %d\n", r.Rows)
	fmt.Fprintf(&sb, "keys:        %d\n", r.Keys)
	fmt.Fprintf(&sb, "strategy:    %s\n", r.Strategy)
	fmt.Fprintf(&sb, "load factor: %.2f\n", r.LoadFactor)
	fmt.Fprintf(&sb, "mean:        %.2f\n", r.Mean)
	fmt.Fprintf(&sb, "stddev:      %.2f\n", finite(r.StdDev))
	fmt.Fprintf(&sb, "longest:     %d\n", r.Longest)
	fmt.Fprintf(&sb, "empty:       %d\n", r.Empty)
	for _, b := range r.Heaviest {
		fmt.Fprintf(&sb, "  bucket %d: %d\n", b.Index, b.Length)
	}
	return sb.String()
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
