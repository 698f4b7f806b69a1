// Package render is the sequential assemble-and-verify phase: it walks the
// resolved slots in ascending offset order, checks each chunk against the
// reference stream, and writes the digit stream.
package render

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mvaleed/pidigits/internal/pipeline"
	"github.com/mvaleed/pidigits/internal/verify"
)

// Render writes "3." followed by each resolved 9-digit chunk, zero-padded.
// A chunk that fails verification is flagged inline and the run continues.
// A failed slot is logged, its offset skipped in the output, and the
// reference stream advanced past it so later chunks stay aligned.
//
// A reference I/O failure aborts: scoring the rest of a desynchronized
// stream as mismatches would be noise, not verification.
func Render(w io.Writer, slots []pipeline.Slot, checker *verify.Checker, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := io.WriteString(w, "3."); err != nil {
		return err
	}

	for _, slot := range slots {
		if slot.Failed() {
			logger.Error("skipping unresolved offset",
				zap.Int64("offset", slot.Task.Offset),
				zap.Error(slot.Err))
			if err := checker.Skip(pipeline.ChunkWidth); err != nil {
				return fmt.Errorf("skipping reference digits at offset %d: %w", slot.Task.Offset, err)
			}
			continue
		}

		chunk := fmt.Sprintf("%09d", slot.Result.Chunk)
		ok, err := checker.Check(chunk)
		if err != nil {
			return fmt.Errorf("verifying chunk at offset %d: %w", slot.Result.Offset, err)
		}
		if !ok {
			if _, err := fmt.Fprintf(w, "\n The next 9 digits are wrong ->%s", chunk); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
	}

	return nil
}
