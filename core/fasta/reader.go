// core/fasta/reader.go
//
// Package fasta reads FASTA and FASTQ sequence files, plain or gzipped,
// on top of the biogo sequence readers.
package fasta

import (
	"bufio"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"
)

// Record is one parsed sequence. Qual is nil for FASTA input.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
	Qual []byte // phred+33
}

// Format is the detected input flavour.
type Format int

const (
	FormatEmpty Format = iota
	FormatFASTA
	FormatFASTQ
)

func (f Format) String() string {
	switch f {
	case FormatFASTA:
		return "fasta"
	case FormatFASTQ:
		return "fastq"
	}
	return "empty"
}

type seqReader interface {
	Read() (seq.Sequence, error)
}

// Reader yields records from a FASTA or FASTQ stream.
type Reader struct {
	format Format
	r      seqReader
}

// NewReader sniffs the first non-blank byte of r to pick the parser.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	for {
		b, err := br.Peek(1)
		if err == io.EOF {
			return &Reader{format: FormatEmpty}, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "sniff sequence format")
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			_, _ = br.ReadByte()
			continue
		case '>':
			template := &linear.Seq{Annotation: seq.Annotation{Alpha: alphabet.DNA}}
			return &Reader{format: FormatFASTA, r: fasta.NewReader(br, template)}, nil
		case '@':
			template := linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)
			return &Reader{format: FormatFASTQ, r: fastq.NewReader(br, template)}, nil
		default:
			return nil, errors.Errorf("unrecognised sequence format (first byte %q)", b[0])
		}
	}
}

// Format reports what NewReader detected.
func (r *Reader) Format() Format { return r.format }

// Read returns the next record, or io.EOF.
func (r *Reader) Read() (Record, error) {
	if r.r == nil {
		return Record{}, io.EOF
	}
	s, err := r.r.Read()
	if err != nil {
		if err == io.EOF {
			return Record{}, io.EOF
		}
		return Record{}, errors.Wrapf(err, "read %s record", r.format)
	}
	switch s := s.(type) {
	case *linear.Seq:
		out := Record{ID: s.ID, Desc: s.Desc, Seq: make([]byte, len(s.Seq))}
		for i, l := range s.Seq {
			out.Seq[i] = byte(l)
		}
		return out, nil
	case *linear.QSeq:
		out := Record{
			ID:   s.ID,
			Desc: s.Desc,
			Seq:  make([]byte, len(s.Seq)),
			Qual: make([]byte, len(s.Seq)),
		}
		for i, ql := range s.Seq {
			out.Seq[i] = byte(ql.L)
			out.Qual[i] = byte(ql.Q) + 33
		}
		return out, nil
	}
	return Record{}, errors.Errorf("unexpected sequence type %T", s)
}
