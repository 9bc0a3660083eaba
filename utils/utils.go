package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

// timestampLayout renders an absolute instant the way log displays it,
// e.g. "Thu Nov 9 20:00:05 2017 -0800".
const timestampLayout = "Mon Jan 2 15:04:05 2006 -0700"

// HashBytes returns the SHA-1 of data as a lowercase hex string.
// Object identity everywhere in the store is defined by this function.
func HashBytes(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// HashFile returns the SHA-1 of the file's contents.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file '%s': %w", path, err)
	}
	return HashBytes(data), nil
}

// FormatTimestamp renders a Unix timestamp in the local zone.
func FormatTimestamp(ts int64) string {
	return time.Unix(ts, 0).Format(timestampLayout)
}
