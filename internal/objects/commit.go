package objects

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/gitlet-vcs/gitlet/utils"
)

// Variant tags included in the serialized form so that a plain commit and a
// merge commit can never hash to the same object.
const (
	tagCommit = "commit"
	tagMerge  = "merge"
)

// Commit represents a snapshot record in the repository. A merge commit is
// the same record with a non-empty SecondParent; the two variants serialize
// under different tags.
type Commit struct {
	Hash         string            // Hash of the serialized commit data (calculated, not stored)
	Message      string            // Commit message
	Timestamp    int64             // Commit timestamp (Unix time)
	Parent       string            // Hash of the first parent, empty for the initial commit
	SecondParent string            // Hash of the second parent, empty unless this is a merge commit
	BlobMap      map[string]string // Filename to blob hash; filenames are flat
}

// NewCommit creates a plain commit stamped with the current time.
func NewCommit(message, parent string, blobMap map[string]string) *Commit {
	return &Commit{
		Message:   message,
		Timestamp: time.Now().Unix(),
		Parent:    parent,
		BlobMap:   blobMap,
	}
}

// NewMergeCommit creates a merge commit stamped with the current time.
func NewMergeCommit(message, parent, secondParent string, blobMap map[string]string) *Commit {
	c := NewCommit(message, parent, blobMap)
	c.SecondParent = secondParent
	return c
}

// IsMerge reports whether the commit has two parents.
func (c *Commit) IsMerge() bool {
	return c.SecondParent != ""
}

// Tracks reports whether the commit tracks the given filename.
func (c *Commit) Tracks(name string) bool {
	_, ok := c.BlobMap[name]
	return ok
}

// TrackedFiles returns the tracked filenames in lexicographic order.
func (c *Commit) TrackedFiles() []string {
	names := make([]string, 0, len(c.BlobMap))
	for name := range c.BlobMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// serialize serializes the commit into a byte slice, excluding Hash. The
// form is deterministic: the blob map is written in sorted filename order,
// so two logically equal commits hash identically within a process.
func (c *Commit) serialize() ([]byte, error) {
	var buf bytes.Buffer

	tag := tagCommit
	if c.IsMerge() {
		tag = tagMerge
	}
	if err := writeLengthPrefixedString(&buf, tag); err != nil {
		return nil, fmt.Errorf("failed to write tag: %w", err)
	}

	if err := writeLengthPrefixedString(&buf, c.Message); err != nil {
		return nil, fmt.Errorf("failed to write message: %w", err)
	}

	if err := binary.Write(&buf, binary.LittleEndian, c.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to write timestamp: %w", err)
	}

	if err := writeLengthPrefixedString(&buf, c.Parent); err != nil {
		return nil, fmt.Errorf("failed to write parent: %w", err)
	}
	if c.IsMerge() {
		if err := writeLengthPrefixedString(&buf, c.SecondParent); err != nil {
			return nil, fmt.Errorf("failed to write second parent: %w", err)
		}
	}

	entryCount := uint32(len(c.BlobMap))
	if err := binary.Write(&buf, binary.LittleEndian, entryCount); err != nil {
		return nil, fmt.Errorf("failed to write blob count: %w", err)
	}
	for _, name := range c.TrackedFiles() {
		if err := writeLengthPrefixedString(&buf, name); err != nil {
			return nil, fmt.Errorf("failed to write filename: %w", err)
		}
		if err := writeLengthPrefixedString(&buf, c.BlobMap[name]); err != nil {
			return nil, fmt.Errorf("failed to write blob hash: %w", err)
		}
	}

	return buf.Bytes(), nil
}

// deserializeCommit deserializes a byte slice into a Commit object.
func deserializeCommit(data []byte) (*Commit, error) {
	buf := bytes.NewReader(data)
	commit := &Commit{BlobMap: make(map[string]string)}

	tag, err := readLengthPrefixedString(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read tag: %w", err)
	}
	if tag != tagCommit && tag != tagMerge {
		return nil, fmt.Errorf("unknown commit tag %q", tag)
	}

	commit.Message, err = readLengthPrefixedString(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read message: %w", err)
	}

	if err := binary.Read(buf, binary.LittleEndian, &commit.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to read timestamp: %w", err)
	}

	commit.Parent, err = readLengthPrefixedString(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read parent: %w", err)
	}
	if tag == tagMerge {
		commit.SecondParent, err = readLengthPrefixedString(buf)
		if err != nil {
			return nil, fmt.Errorf("failed to read second parent: %w", err)
		}
	}

	var entryCount uint32
	if err := binary.Read(buf, binary.LittleEndian, &entryCount); err != nil {
		return nil, fmt.Errorf("failed to read blob count: %w", err)
	}
	for i := uint32(0); i < entryCount; i++ {
		name, err := readLengthPrefixedString(buf)
		if err != nil {
			return nil, fmt.Errorf("failed to read filename: %w", err)
		}
		hash, err := readLengthPrefixedString(buf)
		if err != nil {
			return nil, fmt.Errorf("failed to read blob hash: %w", err)
		}
		commit.BlobMap[name] = hash
	}

	return commit, nil
}

// Display returns the log form of the commit, newline-terminated.
//
// Plain commits:
//
//	===
//	commit <hash>
//	Date: <formatted>
//	<message>
//
// Merge commits add a "Merge:" line with the two abbreviated parents and a
// trailing space after the message.
func (c *Commit) Display() string {
	var buf bytes.Buffer
	buf.WriteString("===\n")
	fmt.Fprintf(&buf, "commit %s\n", c.Hash)
	if c.IsMerge() {
		fmt.Fprintf(&buf, "Merge: %s %s\n", c.Parent[:7], c.SecondParent[:7])
	}
	fmt.Fprintf(&buf, "Date: %s\n", utils.FormatTimestamp(c.Timestamp))
	if c.IsMerge() {
		fmt.Fprintf(&buf, "%s \n", c.Message)
	} else {
		fmt.Fprintf(&buf, "%s\n", c.Message)
	}
	return buf.String()
}

// writeLengthPrefixedString writes a length-prefixed string to the buffer.
func writeLengthPrefixedString(buf *bytes.Buffer, s string) error {
	strBytes := []byte(s)
	length := uint32(len(strBytes))
	if err := binary.Write(buf, binary.LittleEndian, length); err != nil {
		return err
	}
	if _, err := buf.Write(strBytes); err != nil {
		return err
	}
	return nil
}

// readLengthPrefixedString reads a length-prefixed string from the buffer.
func readLengthPrefixedString(buf *bytes.Reader) (string, error) {
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
