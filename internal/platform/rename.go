package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultVideoExtension is used when the downloaded file has no extension
const DefaultVideoExtension = ".mp4"

// FirstCollisionSuffix is the first numeric suffix tried on a name collision
const FirstCollisionSuffix = 2

// UniqueTarget returns dir/base+ext, or dir/base-N+ext for the smallest N >= 2
// that does not exist yet.
func UniqueTarget(dir, base, ext string) string {
	target := filepath.Join(dir, base+ext)
	for n := FirstCollisionSuffix; FileExists(target); n++ {
		target = filepath.Join(dir, base+"-"+strconv.Itoa(n)+ext)
	}
	return target
}

// RenameUnique moves candidate next to itself under base, keeping its extension
// and adding a numeric suffix on collision. A candidate already named base+ext
// is left in place.
func RenameUnique(candidate, base string) (string, error) {
	if _, err := os.Stat(candidate); err != nil {
		return "", fmt.Errorf("candidate file: %w", err)
	}

	dir := filepath.Dir(candidate)
	ext := filepath.Ext(candidate)
	if ext == "" {
		ext = DefaultVideoExtension
	}

	if filepath.Clean(candidate) == filepath.Join(dir, base+ext) {
		return candidate, nil
	}

	target := UniqueTarget(dir, base, ext)
	if err := os.Rename(candidate, target); err != nil {
		return "", fmt.Errorf("rename %s: %w", filepath.Base(candidate), err)
	}
	return target, nil
}
