// Package production provides production integrations: snapshot persistence,
// dump rendering and bucket load analysis.
package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/comalice/chainx"
	"gopkg.in/yaml.v3"
)

// Persister stores and retrieves table snapshots by ID.
type Persister interface {
	Save(ctx context.Context, snapshot TableSnapshot) error
	Load(ctx context.Context, tableID string) (TableSnapshot, error)
}

// TableSnapshot is the serializable form of a HashTable.
type TableSnapshot struct {
	TableID   string      `json:"tableID" yaml:"tableID"`
	Version   string      `json:"version" yaml:"version"`
	Dump      chainx.Dump `json:"dump" yaml:"dump"`
	Timestamp time.Time   `json:"timestamp" yaml:"timestamp"`
}

// NewSnapshot captures h under tableID.
func NewSnapshot(tableID string, h *chainx.HashTable) TableSnapshot {
	d := h.Dump()
	return TableSnapshot{
		TableID:   tableID,
		Version:   ComputeVersion(d),
		Dump:      d,
		Timestamp: time.Now().UTC(),
	}
}

// Restore rebuilds the table held by the snapshot.
func (s TableSnapshot) Restore() (*chainx.HashTable, error) {
	if v := ComputeVersion(s.Dump); s.Version != "" && v != s.Version {
		return nil, fmt.Errorf("snapshot %q version %s, content hashes to %s: %w", s.TableID, s.Version, v, chainx.ErrSnapshotMismatch)
	}
	h, err := chainx.FromDump(s.Dump)
	if err != nil {
		return nil, fmt.Errorf("restore %q: %w", s.TableID, err)
	}
	return h, nil
}

// JSONPersister is a file-based persister using JSON serialization.
type JSONPersister struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONPersister{dir: dir}, nil
}

func (p *JSONPersister) Save(ctx context.Context, snapshot TableSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	return writeSnapshot(p.path(snapshot.TableID), data)
}

func (p *JSONPersister) Load(ctx context.Context, tableID string) (TableSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return TableSnapshot{}, err
	}
	data, err := readSnapshot(p.path(tableID), tableID)
	if err != nil {
		return TableSnapshot{}, err
	}

	var snapshot TableSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return TableSnapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	snapshot.TableID = tableID
	return snapshot, nil
}

func (p *JSONPersister) path(tableID string) string {
	return filepath.Join(p.dir, tableID+".json")
}

// YAMLPersister is a file-based persister using YAML serialization.
type YAMLPersister struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLPersister{dir: dir}, nil
}

func (p *YAMLPersister) Save(ctx context.Context, snapshot TableSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return writeSnapshot(p.path(snapshot.TableID), data)
}

func (p *YAMLPersister) Load(ctx context.Context, tableID string) (TableSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return TableSnapshot{}, err
	}
	data, err := readSnapshot(p.path(tableID), tableID)
	if err != nil {
		return TableSnapshot{}, err
	}

	var snapshot TableSnapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return TableSnapshot{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	snapshot.TableID = tableID
	return snapshot, nil
}

func (p *YAMLPersister) path(tableID string) string {
	return filepath.Join(p.dir, tableID+".yaml")
}

func writeSnapshot(fn string, data []byte) error {
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func readSnapshot(fn, tableID string) ([]byte, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("table %q: %w", tableID, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", fn, err)
	}
	return data, nil
}
