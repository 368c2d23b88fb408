package storage

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

// readCollection decodes the JSON array stored at path. A missing,
// unreadable, or malformed file yields an empty slice together with the
// underlying error so the caller can log it; the empty result is the
// recovery policy, not a failure.
//
// Note: readCollection and writeCollection on their own form an unguarded
// read-modify-write cycle. Two callers interleaving them lose one of the
// two writes (last writer wins). FileStorage serializes the whole cycle
// behind its lock; anything else must not mutate collections directly.
func readCollection[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return []T{}, err
	}
	defer file.Close()

	var items []T
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return []T{}, nil
		}
		return []T{}, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// writeCollection rewrites path with the full collection via a temp file
// and rename, so readers never observe a half-written document.
func writeCollection[T any](path string, items []T) error {
	tempFile := path + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, path)
}

// ensureCollection creates path holding an empty JSON array if it does
// not exist yet.
func ensureCollection(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte("[]"), 0644)
}
