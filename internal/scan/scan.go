package scan

import (
	"errors"
	"fmt"
	"os"
)

const (
	markerPrefix = 0xff
	markerSOS    = 0xda
)

var (
	ErrInvalidScanCount = errors.New("scan count must be a positive integer")
	ErrNotEnoughScans   = errors.New("not enough scans")
)

// RangeError reports a scan count deeper than the scans present in the input.
type RangeError struct {
	Want  int
	Found int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cannot keep %d scans from the end: only %d SOS markers found", e.Want, e.Found)
}

func (e *RangeError) Unwrap() error {
	return ErrNotEnoughScans
}

// Result describes a single truncation.
type Result struct {
	Offsets  []int
	Selected int
	Written  int
}

// FindOffsets returns the start offset of every 0xFF 0xDA pair in data, in
// ascending order.
func FindOffsets(data []byte) []int {
	offsets := []int{}
	for i := 0; i+1 < len(data); i++ {
		if data[i] == markerPrefix && data[i+1] == markerSOS {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

// SelectOffset picks the nth offset counted from the end, so n=1 is the last
// SOS marker.
func SelectOffset(offsets []int, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidScanCount, n)
	}
	if n > len(offsets) {
		return 0, &RangeError{Want: n, Found: len(offsets)}
	}
	return offsets[len(offsets)-n], nil
}

// Cut locates the markers in data and selects the truncation point. The kept
// prefix is data[:Result.Selected].
func Cut(data []byte, n int) (Result, error) {
	offsets := FindOffsets(data)
	selected, err := SelectOffset(offsets, n)
	if err != nil {
		return Result{Offsets: offsets}, err
	}
	return Result{Offsets: offsets, Selected: selected, Written: selected}, nil
}

// TruncateFile writes the prefix of input that precedes the nth-from-last SOS
// marker to output. The output is not touched unless the cut succeeds.
func TruncateFile(input, output string, n int) (Result, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", input, err)
	}

	res, err := Cut(data, n)
	if err != nil {
		return res, fmt.Errorf("%s: %w", input, err)
	}

	if err := writeOutput(output, data[:res.Selected]); err != nil {
		return res, fmt.Errorf("write %s: %w", output, err)
	}
	return res, nil
}

// writeOutput creates or truncates destPath with the usual 0666 less umask
// permissions. A failed write removes the file rather than leaving a partial
// prefix behind.
func writeOutput(destPath string, data []byte) error {
	f, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(destPath)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(destPath)
		return err
	}
	return nil
}
