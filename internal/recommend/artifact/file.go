// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
)

// maxDocumentSize bounds the decompressed size of one artifact.
const maxDocumentSize = 256 << 20

// ErrChecksum is returned when a document's checksum does not match.
var ErrChecksum = errors.New("checksum mismatch")

// readFile returns the decompressed contents of path.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // error on close after read is not actionable

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
		defer func() { _ = gzr.Close() }() //nolint:errcheck // error on gzip close after read is not actionable
		r = gzr
	}

	data, err := io.ReadAll(io.LimitReader(r, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("read %s: document exceeds %d bytes", path, maxDocumentSize)
	}
	return data, nil
}

// checksummed is implemented by documents that carry a checksum field.
type checksummed interface {
	checksum() string
	withoutChecksum() any
}

// Checksum returns the hex SHA-256 of doc encoded with an empty checksum.
func Checksum(doc checksummed) (string, error) {
	payload, err := json.Marshal(doc.withoutChecksum())
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

func verifyChecksum(doc checksummed) error {
	want := doc.checksum()
	if want == "" {
		return nil
	}
	got, err := Checksum(doc)
	if err != nil {
		return err
	}
	if !strings.EqualFold(got, want) {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, want, got)
	}
	return nil
}

// decodeFile reads path into v and verifies its checksum.
func decodeFile(path string, v checksummed) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if err := verifyChecksum(v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
