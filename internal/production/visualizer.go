package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/comalice/chainx"
	"gopkg.in/yaml.v3"
)

// Visualizer renders a table dump for people and tools.
type Visualizer interface {
	ExportText(d chainx.Dump) string
	ExportDOT(d chainx.Dump) string
	ExportJSON(d chainx.Dump) ([]byte, error)
	ExportYAML(d chainx.Dump) ([]byte, error)
}

// DefaultVisualizer is the built-in Visualizer.
type DefaultVisualizer struct{}

var _ Visualizer = (*DefaultVisualizer)(nil)

// ExportText prints one line per bucket: "i-| a -> b -> null".
func (v *DefaultVisualizer) ExportText(d chainx.Dump) string {
	var sb strings.Builder
	sb.WriteString("HashTable:\n")
	for _, b := range d.Buckets {
		fmt.Fprintf(&sb, "%d-| ", b.Index)
		for _, k := range b.Keys {
			sb.WriteString(k)
			sb.WriteString(" -> ")
		}
		sb.WriteString("null\n")
	}
	return sb.String()
}

// ExportDOT generates Graphviz DOT source with one cluster per non-empty
// bucket and the chain drawn left to right.
func (v *DefaultVisualizer) ExportDOT(d chainx.Dump) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph HashTable {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)
	buf.WriteString(fmt.Sprintf("  label=%s;\n", dotQuote(fmt.Sprintf("%d rows, %d keys, %s", d.Rows, d.Size, d.Strategy))))

	for _, b := range d.Buckets {
		renderBucket(&buf, b)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the dump to indented JSON.
func (v *DefaultVisualizer) ExportJSON(d chainx.Dump) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// ExportYAML serializes the dump to YAML.
func (v *DefaultVisualizer) ExportYAML(d chainx.Dump) ([]byte, error) {
	return yaml.Marshal(d)
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotQuote returns s as a quoted DOT ID. Only \" and \\ are escaped; every
// other byte passes through raw.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

func bucketNode(index int) string {
	return fmt.Sprintf("b%d", index)
}

func keyNode(index, pos int) string {
	return fmt.Sprintf("b%d_%d", index, pos)
}

// renderBucket writes the bucket head and its chain. Empty buckets are a
// lone grey node.
func renderBucket(buf *bytes.Buffer, b chainx.Bucket) {
	head := bucketNode(b.Index)
	if len(b.Keys) == 0 {
		buf.WriteString(fmt.Sprintf("  %s [label=\"%d\" shape=ellipse style=filled fillcolor=lightgrey];\n", dotQuote(head), b.Index))
		return
	}

	buf.WriteString(fmt.Sprintf("  subgraph cluster_%d {\n", b.Index))
	buf.WriteString(fmt.Sprintf("    label=\"bucket %d (%d)\";\n", b.Index, len(b.Keys)))
	buf.WriteString(fmt.Sprintf("    %s [label=\"%d\" shape=ellipse];\n", dotQuote(head), b.Index))
	prev := head
	for pos, k := range b.Keys {
		n := keyNode(b.Index, pos)
		buf.WriteString(fmt.Sprintf("    %s [label=%s];\n", dotQuote(n), dotQuote(k)))
		buf.WriteString(fmt.Sprintf("    %s -> %s;\n", dotQuote(prev), dotQuote(n)))
		prev = n
	}
	buf.WriteString("  }\n")
}
