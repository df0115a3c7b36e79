// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package artifact

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/pathwise/internal/recommend"
)

// DecoderDocument is the serialized label decoder. Codes are indices into
// Classes.
type DecoderDocument struct {
	Classes  []string `json:"classes"`
	Checksum string   `json:"checksum,omitempty"`
}

func (d *DecoderDocument) checksum() string { return d.Checksum }

func (d *DecoderDocument) withoutChecksum() any {
	c := *d
	c.Checksum = ""
	return &c
}

// LabelDecoder maps integer class codes to names.
type LabelDecoder struct {
	classes []string
}

var _ recommend.LabelDecoder = (*LabelDecoder)(nil)

// NewLabelDecoder builds a decoder over classes.
func NewLabelDecoder(classes []string) (*LabelDecoder, error) {
	if len(classes) == 0 {
		return nil, errors.New("label decoder has no classes")
	}
	return &LabelDecoder{classes: append([]string(nil), classes...)}, nil
}

// Decode returns the name for an integer code such as "3".
func (d *LabelDecoder) Decode(label string) (string, error) {
	i, err := strconv.Atoi(strings.TrimSpace(label))
	if err != nil {
		return "", fmt.Errorf("label %q is not a class code", label)
	}
	if i < 0 || i >= len(d.classes) {
		return "", fmt.Errorf("class code %d out of range [0, %d)", i, len(d.classes))
	}
	return d.classes[i], nil
}

// Len returns the number of known classes.
func (d *LabelDecoder) Len() int {
	return len(d.classes)
}

// LoadLabelDecoder reads a label decoder artifact.
func LoadLabelDecoder(path string) (*LabelDecoder, error) {
	var doc DecoderDocument
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	d, err := NewLabelDecoder(doc.Classes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
