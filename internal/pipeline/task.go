package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/mvaleed/pidigits/internal/spigot"
)

// ChunkWidth is the number of decimal digits one task produces.
const ChunkWidth = spigot.ChunkDigits

// MaxOffset is the largest dispatchable digit offset. The margin of 20 below
// the int32 ceiling keeps the extractor's working bound
// N = (offset+20)*ln10/ln2 representable.
const MaxOffset = math.MaxInt32 - 20

var ErrOffsetOutOfRange = errors.New("digit offset out of range")

// Task identifies one independent chunk computation. Immutable once built.
type Task struct {
	Offset int64
}

// NewTask validates offset at construction time. An out-of-range offset is
// rejected here, never discovered mid-computation and never clamped.
func NewTask(offset int64) (Task, error) {
	if offset <= 0 || offset > MaxOffset {
		return Task{}, fmt.Errorf("%w: %d (want 1..%d)", ErrOffsetOutOfRange, offset, int64(MaxOffset))
	}
	return Task{Offset: offset}, nil
}

// Result is the 9 decimal digits of pi beginning at Offset, as an unsigned
// value in [0, 1e9). Leading zeros are restored by the consumer via
// zero-padding to width 9.
type Result struct {
	Offset int64
	Chunk  int64
}

// Slot is the outcome of one dispatched task: a result or the cause of its
// failure, exactly one of which is set. Failures are first-class values
// inspected during assembly rather than side-effect logs from workers.
type Slot struct {
	Task   Task
	Result Result
	Err    error
}

func (s Slot) Failed() bool { return s.Err != nil }
