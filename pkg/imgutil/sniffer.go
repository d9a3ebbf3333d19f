package imgutil

import (
	"io"
	"os"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

// Kind identifies a supported image type.
type Kind int

const (
	KindUnknown Kind = iota
	KindJPEG
	KindPNG
	KindTIFF
)

func (k Kind) String() string {
	switch k {
	case KindJPEG:
		return "jpeg"
	case KindPNG:
		return "png"
	case KindTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// headerSize covers every signature the matchers below inspect.
const headerSize = 261

// DetectHeader classifies a file header. Short headers are not an error; they
// simply match nothing.
func DetectHeader(header []byte) Kind {
	switch {
	case filetype.IsType(header, matchers.TypeJpeg):
		return KindJPEG
	case filetype.IsType(header, matchers.TypePng):
		return KindPNG
	case filetype.IsType(header, matchers.TypeTiff):
		return KindTIFF
	default:
		return KindUnknown
	}
}

// SniffFile reads the head of a file to determine its type.
func SniffFile(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, err
	}
	defer f.Close()

	return SniffReader(f)
}

// SniffReader reads up to headerSize bytes from r and determines its type.
func SniffReader(r io.Reader) (Kind, error) {
	header := make([]byte, headerSize)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return KindUnknown, err
	}

	return DetectHeader(header[:n]), nil
}
