package transparent

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidImage reports an input that cannot be transformed: a nil or
	// empty raster, or a title that cannot name an output file.
	ErrInvalidImage = errors.New("transparent: invalid image")

	// ErrIO is matched by every failure to encode or persist the output.
	ErrIO = errors.New("transparent: output failure")
)

// WriteError describes a failed encode or write of the output file.
type WriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrIO) match any WriteError.
func (e *WriteError) Is(target error) bool { return target == ErrIO }
