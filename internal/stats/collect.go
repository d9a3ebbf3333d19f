package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"
)

// Collect stats every file in the original directory and its counterpart in
// each level directory. A missing counterpart aborts the run; no partial
// report is returned.
func Collect(opts Options, updates chan<- ProgressUpdate) (Report, error) {
	names, err := listNames(opts.OriginalDir)
	if err != nil {
		return Report{}, err
	}
	if updates != nil {
		updates <- ProgressUpdate{TotalDelta: len(names)}
	}

	levels := append([]string(nil), opts.Levels...)
	records := make([]Record, 0, len(names))
	for _, level := range levels {
		if !utf8.ValidString(level) {
			return Report{}, fmt.Errorf("level %q: %w", level, ErrInvalidName)
		}
	}

	for _, name := range names {
		path := filepath.Join(opts.OriginalDir, name)
		if !utf8.ValidString(name) {
			return Report{}, fmt.Errorf("%q: %w", path, ErrInvalidName)
		}
		originalSize, err := fileSize(path)
		if err != nil {
			return Report{}, err
		}

		truncated := make(map[string]int64, len(levels))
		for _, level := range levels {
			size, err := fileSize(opts.TruncatedPath(level, name))
			if err != nil {
				return Report{}, err
			}
			truncated[level] = size
		}

		records = append(records, Record{
			URL:            name,
			OriginalSize:   originalSize,
			TruncatedSizes: truncated,
		})
		if updates != nil {
			updates <- ProgressUpdate{ProcessedDelta: 1, BytesDelta: originalSize}
		}
	}

	return Report{Levels: levels, Records: records}, nil
}

// TruncatedPath returns where the variant of name for level is expected.
func (o Options) TruncatedPath(level, name string) string {
	return filepath.Join(o.TruncatedPrefix+level, name)
}

// LevelDir returns the directory holding the variants for level.
func (o Options) LevelDir(level string) string {
	return filepath.Clean(o.TruncatedPrefix + level)
}

func listNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.Size(), nil
}
