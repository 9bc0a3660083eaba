// Package staging implements the index: two ordered filename-to-hash maps
// (additions and removals) describing the next commit's delta against HEAD.
// A filename is never present in both maps at once.
package staging

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/gitlet-vcs/gitlet/core"
)

// Kind discriminates the two staged actions.
type Kind int

const (
	KindAdd Kind = iota
	KindRemove
)

// Entry is one staged action.
type Entry struct {
	Name string
	Hash string
	Kind Kind
}

// Index is the staging area. Both maps are ordered by filename so iteration
// and serialization are deterministic.
type Index struct {
	additions *treemap.Map
	removals  *treemap.Map
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		additions: treemap.NewWithStringComparator(),
		removals:  treemap.NewWithStringComparator(),
	}
}

// LoadIndex reads the index file. A missing file yields an empty index.
func LoadIndex(repo *core.Repository) (*Index, error) {
	ix := NewIndex()
	content, err := os.ReadFile(repo.IndexFile())
	if err != nil {
		if os.IsNotExist(err) {
			return ix, nil
		}
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}
	if err := ix.deserialize(content); err != nil {
		return nil, fmt.Errorf("failed to parse index file: %w", err)
	}
	return ix, nil
}

// Write persists the index to disk.
func (ix *Index) Write(repo *core.Repository) error {
	data, err := ix.serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize index: %w", err)
	}
	if err := os.WriteFile(repo.IndexFile(), data, 0644); err != nil {
		return fmt.Errorf("failed to write index file: %w", err)
	}
	return nil
}

// Clear empties both maps.
func (ix *Index) Clear() {
	ix.additions.Clear()
	ix.removals.Clear()
}

// HasChanges reports whether anything is staged.
func (ix *Index) HasChanges() bool {
	return ix.additions.Size() > 0 || ix.removals.Size() > 0
}

// StageAddition records name for addition at hash. Any staged removal of
// the same name is dropped, preserving disjointness.
func (ix *Index) StageAddition(name, hash string) {
	ix.removals.Remove(name)
	ix.additions.Put(name, hash)
}

// StageRemoval records name for removal at the hash it was tracked at. Any
// staged addition of the same name is dropped, preserving disjointness.
func (ix *Index) StageRemoval(name, hash string) {
	ix.additions.Remove(name)
	ix.removals.Put(name, hash)
}

// DropAddition removes any staged addition of name.
func (ix *Index) DropAddition(name string) {
	ix.additions.Remove(name)
}

// DropRemoval removes any staged removal of name.
func (ix *Index) DropRemoval(name string) {
	ix.removals.Remove(name)
}

// Addition returns the staged addition hash for name, if any.
func (ix *Index) Addition(name string) (string, bool) {
	value, ok := ix.additions.Get(name)
	if !ok {
		return "", false
	}
	return value.(string), true
}

// Removal returns the staged removal hash for name, if any.
func (ix *Index) Removal(name string) (string, bool) {
	value, ok := ix.removals.Get(name)
	if !ok {
		return "", false
	}
	return value.(string), true
}

// Entries returns all staged actions: additions first, then removals, each
// in lexicographic filename order.
func (ix *Index) Entries() []Entry {
	entries := make([]Entry, 0, ix.additions.Size()+ix.removals.Size())
	ix.additions.Each(func(key, value interface{}) {
		entries = append(entries, Entry{Name: key.(string), Hash: value.(string), Kind: KindAdd})
	})
	ix.removals.Each(func(key, value interface{}) {
		entries = append(entries, Entry{Name: key.(string), Hash: value.(string), Kind: KindRemove})
	})
	return entries
}

// ApplyTo derives a new blob map from base: staged additions overwrite,
// staged removals delete. The base map is not modified.
func (ix *Index) ApplyTo(base map[string]string) map[string]string {
	result := make(map[string]string, len(base)+ix.additions.Size())
	for name, hash := range base {
		result[name] = hash
	}
	ix.additions.Each(func(key, value interface{}) {
		result[key.(string)] = value.(string)
	})
	ix.removals.Each(func(key, _ interface{}) {
		delete(result, key.(string))
	})
	return result
}

// serialize writes both maps as length-prefixed entries, additions first.
// Treemap iteration order makes the form deterministic.
func (ix *Index) serialize() ([]byte, error) {
	var buf bytes.Buffer
	for _, m := range []*treemap.Map{ix.additions, ix.removals} {
		if err := binary.Write(&buf, binary.LittleEndian, uint32(m.Size())); err != nil {
			return nil, err
		}
		var writeErr error
		m.Each(func(key, value interface{}) {
			if writeErr != nil {
				return
			}
			if err := writeIndexString(&buf, key.(string)); err != nil {
				writeErr = err
				return
			}
			writeErr = writeIndexString(&buf, value.(string))
		})
		if writeErr != nil {
			return nil, writeErr
		}
	}
	return buf.Bytes(), nil
}

func (ix *Index) deserialize(data []byte) error {
	buf := bytes.NewReader(data)
	for _, m := range []*treemap.Map{ix.additions, ix.removals} {
		var count uint32
		if err := binary.Read(buf, binary.LittleEndian, &count); err != nil {
			return fmt.Errorf("failed to read entry count: %w", err)
		}
		for i := uint32(0); i < count; i++ {
			name, err := readIndexString(buf)
			if err != nil {
				return fmt.Errorf("failed to read entry name: %w", err)
			}
			hash, err := readIndexString(buf)
			if err != nil {
				return fmt.Errorf("failed to read entry hash: %w", err)
			}
			m.Put(name, hash)
		}
	}
	return nil
}

func writeIndexString(buf *bytes.Buffer, s string) error {
	strBytes := []byte(s)
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(strBytes))); err != nil {
		return err
	}
	_, err := buf.Write(strBytes)
	return err
}

func readIndexString(buf *bytes.Reader) (string, error) {
	var length uint32
	if err := binary.Read(buf, binary.LittleEndian, &length); err != nil {
		return "", err
	}
	strBytes := make([]byte, length)
	if _, err := io.ReadFull(buf, strBytes); err != nil {
		return "", err
	}
	return string(strBytes), nil
}
