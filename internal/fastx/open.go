package fastx

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Stdin is read for the path "-".
var Stdin io.Reader = os.Stdin

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// lineTerminated appends a final '\n' to a source that lacks one, so that
// concatenated inputs never merge lines across a file boundary.
type lineTerminated struct {
	r    io.Reader
	last byte
	seen bool
	done bool
}

func (t *lineTerminated) Read(b []byte) (int, error) {
	if t.done {
		return 0, io.EOF
	}
	n, err := t.r.Read(b)
	if n > 0 {
		t.last, t.seen = b[n-1], true
	}
	if err == io.EOF {
		if t.seen && t.last != '\n' {
			if n < len(b) {
				b[n] = '\n'
				n++
				t.done = true
				return n, io.EOF
			}
			// no room; emit the newline on the next call
			t.last = '\n'
			t.r = strings.NewReader("\n")
			return n, nil
		}
		t.done = true
	}
	return n, err
}

// openOne keeps the gzip + "-" (stdin) behavior: gzip is detected by magic
// number (1F 8B) or by .gz suffix.
func openOne(fs afero.Fs, path string) (io.Reader, []io.Closer, error) {
	var (
		src     io.Reader
		closers []io.Closer
	)
	if path == "-" {
		src = Stdin
	} else {
		fh, err := fs.Open(path)
		if err != nil {
			return nil, nil, err
		}
		src = fh
		closers = append(closers, fh)
	}
	br := bufio.NewReaderSize(src, 64*1024)
	magic, _ := br.Peek(2)
	isGz := len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b
	if isGz || (path != "-" && strings.HasSuffix(path, ".gz")) {
		gr, err := gzip.NewReader(br)
		if err != nil {
			for _, c := range closers {
				_ = c.Close()
			}
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		return gr, append([]io.Closer{gr}, closers...), nil
	}
	return br, closers, nil
}

// Open opens every path on fs and chains them, in order, into one logical
// line stream. All paths are opened up front so that a missing file is
// reported before any record is read.
func Open(fs afero.Fs, paths ...string) (io.ReadCloser, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files")
	}
	var (
		readers []io.Reader
		closers []io.Closer
	)
	for _, p := range paths {
		r, cs, err := openOne(fs, p)
		if err != nil {
			for _, c := range closers {
				_ = c.Close()
			}
			return nil, err
		}
		readers = append(readers, &lineTerminated{r: r})
		closers = append(closers, cs...)
	}
	return &multiReadCloser{Reader: io.MultiReader(readers...), closers: closers}, nil
}
