// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"strconv"

	"github.com/comalice/chainx"
	"github.com/comalice/chainx/internal/production"
	"gopkg.in/yaml.v3"
)

// GenKeys returns n keys "0".."n-1".
func GenKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

// GenTable creates a table with rows buckets holding n generated keys.
func GenTable(rows, n int) *chainx.HashTable {
	if rows < 1 {
		rows = 1
	}
	h, err := chainx.NewHashTableWithSize(rows)
	if err != nil {
		panic(err)
	}
	h.InsertAll(GenKeys(n)...)
	return h
}

// GenList creates a list holding 0..n-1.
func GenList(n int) *chainx.LinkedList[int] {
	l := chainx.New[int]()
	for i := n - 1; i >= 0; i-- {
		l.Prepend(i)
	}
	return l
}

// GenSnapshotYAML generates YAML bytes for a snapshot of a generated table.
func GenSnapshotYAML(rows, n int) []byte {
	snap := production.NewSnapshot(fmt.Sprintf("bench_%d_%d", rows, n), GenTable(rows, n))
	data, err := yaml.Marshal(snap)
	if err != nil {
		panic(err)
	}
	return data
}
