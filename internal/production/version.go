package production

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/comalice/chainx"
)

// ComputeVersion returns a content digest for d: the first 8 bytes of a
// SHA256 over its rows, size and bucket contents, hex encoded. Equal dumps
// share a version regardless of how they were decoded.
func ComputeVersion(d chainx.Dump) string {
	h := sha256.New()
	var buf [8]byte
	writeInt := func(n int) {
		binary.BigEndian.PutUint64(buf[:], uint64(n))
		h.Write(buf[:])
	}
	writeInt(d.Rows)
	writeInt(d.Size)
	for _, b := range d.Buckets {
		writeInt(b.Index)
		writeInt(len(b.Keys))
		for _, k := range b.Keys {
			writeInt(len(k))
			h.Write([]byte(k))
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil)[:8])
}
