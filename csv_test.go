package spreadsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffSeparator(t *testing.T) {
	for in, want := range map[string]rune{
		"a,b,c\n1,2,3":      ',',
		"a;b;c\n1;2;3":      ';',
		"\"a b\"\t\"c\"\n":  '\t',
		"alpha|beta":        '|',
		"single\nline":      ',',
		"2024-01-02;x":      ';',
		"first.name,second": ',',
	} {
		assert.Equal(t, string(want), string(sniffSeparator([]byte(in))), "%q", in)
	}
}

func TestOpenCsv(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "a.csv")
	// "árvíztűrő" in ISO-8859-2
	require.NoError(t, os.WriteFile(fn, []byte("name;value\n\xe1rv\xedzt\xfbr\xf5;1\n"), 0o600))

	cr, err := OpenCsv(fn, "iso-8859-2")
	require.NoError(t, err)
	defer cr.Close()
	assert.Equal(t, ';', cr.Comma)

	rec, err := cr.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "value"}, rec)
	rec, err = cr.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"árvíztűrő", "1"}, rec)

	_, err = OpenCsv(filepath.Join(t.TempDir(), "missing.csv"), "")
	assert.ErrorIs(t, err, ErrIO)

	_, err = GetEncoding("no-such-charset")
	assert.Error(t, err)
}
