package spreadsheet

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// EncName is the default charset of CSV input, taken from $LANG.
var EncName = "utf-8"

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
	} else {
		EncName = ""
	}
	if EncName == "" {
		EncName = "utf-8"
	}
}

// GetEncoding returns the named encoding, nil for UTF-8.
func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

// CSVReader reads records of a CSV input, decoded to UTF-8.
type CSVReader struct {
	*csv.Reader
	io.Closer
	// Comma is the sniffed field separator.
	Comma rune
}

// OpenCsv opens fn ("" or "-" for stdin) decoding it from encName,
// and sniffs the field separator from the first KiB.
func OpenCsv(fn, encName string) (*CSVReader, error) {
	var enc encoding.Encoding
	if encName != "" {
		var err error
		if enc, err = GetEncoding(encName); err != nil {
			return nil, err
		}
	}
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	r := io.ReadCloser(fh)
	if enc != nil {
		r = struct {
			io.Reader
			io.Closer
		}{enc.NewDecoder().Reader(r), r}
	}
	br := bufio.NewReaderSize(r, 1<<20)
	b, err := br.Peek(1024)
	if err != nil && len(b) == 0 {
		r.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("%s: %w", fn, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	sep := sniffSeparator(b)

	cr := csv.NewReader(br)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1
	cr.Comma = sep
	return &CSVReader{Reader: cr, Closer: r, Comma: sep}, nil
}

// sniffSeparator returns the first rune that cannot be part of a field.
func sniffSeparator(b []byte) rune {
	for _, r := range string(b) {
		if r == '"' || r == '_' || r == ' ' || r == '.' || r == '-' ||
			unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}
		if r == '\n' || r == '\r' {
			break
		}
		return r
	}
	return ','
}
