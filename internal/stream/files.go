package stream

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// IsImage reports whether the path has one of the supported image
// extensions. The match is case-sensitive: the face service only accepts
// lowercase extensions, so "photo.JPG" is skipped.
func IsImage(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return ext == "jpg" || ext == "jpeg" || ext == "png"
}

// DirectoryName derives the subject name for a group of entries. The first
// entry is normally the group's directory marker, so its base name is the
// subject; when a group starts with a plain file the parent folder's name
// is used instead.
func DirectoryName(group []Entry) (string, error) {
	if len(group) == 0 {
		return "", errors.New("empty group")
	}

	first := group[0]
	if first.Err != nil {
		return "", fmt.Errorf("cannot derive subject name: %w", first.Err)
	}

	if first.IsDir {
		return Stem(first.Path), nil
	}
	return Stem(filepath.Dir(first.Path)), nil
}

// Stem returns the base name of the path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
