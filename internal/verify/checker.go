// Package verify compares computed digit chunks against an on-disk reference
// sequence of decimal digits of pi (ASCII '0'-'9', no separators, no radix
// point).
package verify

import (
	"bufio"
	"fmt"
	"os"
)

// MaxReferenceDigits is the most digits the usual reference files cover
// (piday.org's million-digit listing). Checks past the end of the file hit
// EOF, which surfaces as a stream error.
const MaxReferenceDigits = 1_000_000

// Checker consumes a reference digit stream monotonically, one chunk per
// call. Sequential, stateful, single-pass: each call consumes exactly
// len(chunk) reference characters, so calls must arrive in digit order —
// out-of-order calls silently desynchronize the comparison.
type Checker struct {
	file   *os.File
	reader *bufio.Reader
}

// NewChecker opens the reference file. Callers treat an open failure as
// fatal to the whole run: no digits are compared against a half-available
// reference.
func NewChecker(path string) (*Checker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference file: %w", err)
	}
	return &Checker{file: f, reader: bufio.NewReader(f)}, nil
}

// Check compares chunk against the next len(chunk) reference digits and
// reports whether every character matched. The full length is consumed even
// after a mismatch, keeping later calls aligned.
//
// A read failure mid-stream (including EOF) is returned as an error, not
// scored as a mismatch.
func (c *Checker) Check(chunk string) (bool, error) {
	match := true
	for i := 0; i < len(chunk); i++ {
		ref, err := c.reader.ReadByte()
		if err != nil {
			return false, fmt.Errorf("reference stream read failed: %w", err)
		}
		if chunk[i] != ref {
			match = false
		}
	}
	return match, nil
}

// Skip discards n reference digits, keeping the stream aligned when a chunk
// is missing from the computed output.
func (c *Checker) Skip(n int) error {
	if _, err := c.reader.Discard(n); err != nil {
		return fmt.Errorf("reference stream skip failed: %w", err)
	}
	return nil
}

// Close releases the underlying reference stream.
func (c *Checker) Close() error {
	return c.file.Close()
}
