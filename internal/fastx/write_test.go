package fastx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bogus struct{}

func (bogus) record() {}

func TestWrite(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
		want string
	}{
		{"fasta", &Fasta{ID: ">a", Seq: "ACGT"}, ">a\nACGT\n"},
		{"fastq", &Fastq{ID: "@a", Seq: "ACGT", Qual: "IIII"}, "@a\nACGT\n+\nIIII\n"},
		{"paired fasta", &PairedFasta{Read1: Fasta{">a/1", "AA"}, Read2: Fasta{">a/2", "CC"}}, ">a/1\nAA\n>a/2\nCC\n"},
		{"paired fastq",
			&PairedFastq{Read1: Fastq{"@a/1", "AA", "II"}, Read2: Fastq{"@a/2", "CC", "JJ"}},
			"@a/1\nAA\n+\nII\n@a/2\nCC\n+\nJJ\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tc.rec))
			assert.Equal(t, tc.want, buf.String())
		})
	}

	t.Run("Should reject unknown record shapes", func(t *testing.T) {
		var buf bytes.Buffer
		err := Write(&buf, bogus{})
		assert.ErrorIs(t, err, ErrInvalidRecordShape)
		assert.Zero(t, buf.Len())
	})
}

// Writing what was parsed reproduces the canonical text.
func TestWriteParsedFastq(t *testing.T) {
	in := "@r1\nACGT\n+r1\nIIII\n"
	p := NewParser(strings.NewReader(in), Config{Format: FormatFastq})
	rec, err := p.Next()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rec))
	assert.Equal(t, "@r1\nACGT\n+\nIIII\n", buf.String())
}
