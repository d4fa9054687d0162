package fastx

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"sequniq/internal/logger"
)

const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)

// Source yields records until io.EOF.
type Source interface {
	Next() (Record, error)
}

// Parser is a pull-style reader over a Fasta/Fastq line stream.
// Once Next has returned an error (io.EOF included) it keeps returning it;
// to read the data again, reopen the underlying input.
type Parser struct {
	cfg Config
	sc  *bufio.Scanner
	log logger.Logger

	line     int
	dangling int
	err      error

	// Fasta accumulator
	id    string
	hasID bool
	seq   strings.Builder
}

type Option func(*Parser)

// WithLogger routes parser diagnostics (e.g. truncated trailing records).
func WithLogger(l logger.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

func NewParser(r io.Reader, cfg Config, opts ...Option) *Parser {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	p := &Parser{cfg: cfg, sc: sc, log: logger.Nop()}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Config reports the layout the parser was built with.
func (p *Parser) Config() Config { return p.cfg }

// Lines is the number of input lines consumed so far.
func (p *Parser) Lines() int { return p.line }

// Dangling is the number of trailing Fastq lines dropped because they did
// not form a complete record. It is only meaningful after io.EOF.
func (p *Parser) Dangling() int { return p.dangling }

// Next returns the next record, or io.EOF when the stream is exhausted.
func (p *Parser) Next() (Record, error) {
	if p.err != nil {
		return nil, p.err
	}
	var (
		rec Record
		err error
	)
	switch {
	case p.cfg.Format == FormatFasta && !p.cfg.Paired:
		rec, err = p.nextFasta()
	case p.cfg.Format == FormatFasta:
		rec, err = p.nextPairedFasta()
	case !p.cfg.Paired:
		rec, err = p.nextFastq()
	default:
		rec, err = p.nextPairedFastq()
	}
	if err != nil {
		p.err = err
		return nil, err
	}
	return rec, nil
}

func (p *Parser) scan() (string, bool, error) {
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", false, fmt.Errorf("fastx scan: %w", err)
		}
		return "", false, nil
	}
	p.line++
	return strings.TrimRightFunc(p.sc.Text(), unicode.IsSpace), true, nil
}

func (p *Parser) nextFasta() (*Fasta, error) {
	for {
		line, ok, err := p.scan()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if strings.HasPrefix(line, ">") {
			if p.hasID {
				rec := &Fasta{ID: p.id, Seq: p.seq.String()}
				p.id = line
				p.seq.Reset()
				return rec, nil
			}
			p.id, p.hasID = line, true
			p.seq.Reset()
			continue
		}
		// Lines before the first header belong to no record.
		if p.hasID {
			p.seq.WriteString(line)
		}
	}
	if p.hasID {
		p.hasID = false
		rec := &Fasta{ID: p.id, Seq: p.seq.String()}
		p.seq.Reset()
		return rec, nil
	}
	return nil, io.EOF
}

func (p *Parser) nextPairedFasta() (*PairedFasta, error) {
	r1, err := p.nextFasta()
	if err != nil {
		return nil, err
	}
	r2, err := p.nextFasta()
	if errors.Is(err, io.EOF) {
		return nil, &FormatError{
			Line:   p.line,
			Reason: fmt.Sprintf("odd number of records in paired Fasta input; %q has no mate", r1.ID),
		}
	}
	if err != nil {
		return nil, err
	}
	return &PairedFasta{Read1: *r1, Read2: *r2}, nil
}

// unit reads exactly n lines. A short read at end of stream is dropped and
// reported as io.EOF.
func (p *Parser) unit(n int) ([]string, error) {
	lines := make([]string, 0, n)
	for len(lines) < n {
		line, ok, err := p.scan()
		if err != nil {
			return nil, err
		}
		if !ok {
			if len(lines) > 0 {
				p.dangling = len(lines)
				p.log.Warn("dropping truncated trailing record",
					"format", p.cfg.Format.String(), "paired", p.cfg.Paired,
					"lines", len(lines), "want", n, "at_line", p.line)
			}
			return nil, io.EOF
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (p *Parser) nextFastq() (*Fastq, error) {
	l, err := p.unit(4)
	if err != nil {
		return nil, err
	}
	return &Fastq{ID: l[0], Seq: l[1], Qual: l[3]}, nil
}

func (p *Parser) nextPairedFastq() (*PairedFastq, error) {
	l, err := p.unit(8)
	if err != nil {
		return nil, err
	}
	return &PairedFastq{
		Read1: Fastq{ID: l[0], Seq: l[1], Qual: l[3]},
		Read2: Fastq{ID: l[4], Seq: l[5], Qual: l[7]},
	}, nil
}

// ForEach drains src, calling fn per record. It stops at the first error
// from src or fn, and between records when ctx is done.
func ForEach(ctx context.Context, src Source, fn func(Record) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}
