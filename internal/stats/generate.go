package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"pjbench/internal/scan"
)

// ParseLevel converts a level label into the number of trailing scans it
// removes.
func ParseLevel(level string) (int, error) {
	n, err := strconv.Atoi(level)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("level %q: %w", level, scan.ErrInvalidScanCount)
	}
	return n, nil
}

// Generate builds every level directory from the original directory by
// truncating each image before its nth-from-last scan, n being the level.
// The first failure stops the run.
func Generate(opts Options, updates chan<- ProgressUpdate) ([]GenerateResult, error) {
	counts := make([]int, len(opts.Levels))
	for i, level := range opts.Levels {
		n, err := ParseLevel(level)
		if err != nil {
			return nil, err
		}
		counts[i] = n
	}

	names, err := listNames(opts.OriginalDir)
	if err != nil {
		return nil, err
	}
	if updates != nil {
		updates <- ProgressUpdate{TotalDelta: len(names) * len(opts.Levels)}
	}

	for _, level := range opts.Levels {
		if err := os.MkdirAll(opts.LevelDir(level), 0o755); err != nil {
			return nil, err
		}
	}

	results := make([]GenerateResult, 0, len(names)*len(opts.Levels))
	for _, name := range names {
		src := filepath.Join(opts.OriginalDir, name)
		for i, level := range opts.Levels {
			dst := opts.TruncatedPath(level, name)
			res, err := scan.TruncateFile(src, dst, counts[i])
			if err != nil {
				return results, fmt.Errorf("level %s: %w", level, err)
			}
			results = append(results, GenerateResult{
				Name:     name,
				Level:    level,
				Output:   dst,
				Offsets:  res.Offsets,
				Selected: res.Selected,
			})
			if updates != nil {
				updates <- ProgressUpdate{ProcessedDelta: 1, BytesDelta: int64(res.Written)}
			}
		}
	}

	return results, nil
}
