package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// Prefix starts the emitted line so it can be pasted into a script.
const Prefix = "const urls = "

// Encode writes the report as a single line:
//
//	const urls = [{"url": "a.jpg", "original_size": 10, "truncated_sizes": {"3": 4}}]
//
// Level keys follow report.Levels rather than sorted map order.
func Encode(w io.Writer, report Report) error {
	var buf bytes.Buffer
	buf.WriteString(Prefix)
	buf.WriteByte('[')
	for i, rec := range report.Records {
		if i > 0 {
			buf.WriteString(", ")
		}
		if err := encodeRecord(&buf, rec, report.Levels); err != nil {
			return err
		}
	}
	buf.WriteString("]\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func encodeRecord(buf *bytes.Buffer, rec Record, levels []string) error {
	url, err := quoteString(rec.URL)
	if err != nil {
		return err
	}
	buf.WriteString(`{"url": `)
	buf.Write(url)
	buf.WriteString(`, "original_size": `)
	buf.WriteString(strconv.FormatInt(rec.OriginalSize, 10))
	buf.WriteString(`, "truncated_sizes": {`)
	for i, level := range levels {
		key, err := quoteString(level)
		if err != nil {
			return err
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.WriteString(strconv.FormatInt(rec.TruncatedSizes[level], 10))
	}
	buf.WriteString("}}")
	return nil
}

// quoteString renders s as a JSON string without HTML escaping. Invalid UTF-8
// is an error, since encoding/json would silently replace it.
func quoteString(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%q: %w", s, ErrInvalidName)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
