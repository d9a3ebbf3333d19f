package stats

import "errors"

// ErrInvalidName reports a filename or level label that is not valid UTF-8
// and so cannot be emitted as a JSON string.
var ErrInvalidName = errors.New("not valid UTF-8")

// Options locates the original images and their truncated variants. The
// variant of name for level L lives at TruncatedPrefix+L joined with name.
type Options struct {
	OriginalDir     string
	TruncatedPrefix string
	Levels          []string
}

type Record struct {
	URL            string
	OriginalSize   int64
	TruncatedSizes map[string]int64
}

// Report is the result of a collection run. Levels fixes the key order used
// when the records are encoded.
type Report struct {
	Levels  []string
	Records []Record
}

type GenerateResult struct {
	Name     string
	Level    string
	Output   string
	Offsets  []int
	Selected int
}

type ProgressUpdate struct {
	TotalDelta     int
	ProcessedDelta int
	BytesDelta     int64
}
