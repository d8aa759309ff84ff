package util

import (
	"errors"
	"strings"
)

// ErrInvalidFileName is returned for empty names or traversal patterns.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName removes path separators and rejects traversal patterns so
// the name is safe to use as a storage key segment.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}
