// Copyright 2025, the ISU Genomics contributors.

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	gzip "github.com/klauspost/pgzip"
)

// ReadInSeq reads the sequencing reads from a compressed fastq file,
// returning the names and sequences one record at a time.  Lines are
// classified by position alone: the first line of each four line
// record is the name and the second is the sequence.  The separator
// and quality lines are skipped without being inspected, so malformed
// records are passed through rather than rejected.
type ReadInSeq struct {
	file    *os.File
	gz      io.Closer
	scanner *bufio.Scanner
	err     error

	Name string
	Seq  string
}

// NewReadInSeq opens a compressed fastq file for reading.  The
// decompressor is selected from the file name, .gz for gzip and .sz
// for snappy.  Files with any other extension are rejected.
func NewReadInSeq(seqfile string) (*ReadInSeq, error) {

	inf, err := os.Open(seqfile)
	if err != nil {
		return nil, err
	}

	var rdr io.Reader
	var gz io.Closer

	switch strings.ToLower(filepath.Ext(seqfile)) {
	case ".gz":
		z, err := gzip.NewReader(inf)
		if err != nil {
			inf.Close()
			return nil, fmt.Errorf("%s: %v", seqfile, err)
		}
		rdr = z
		gz = z
	case ".sz":
		rdr = snappy.NewReader(inf)
	default:
		inf.Close()
		return nil, fmt.Errorf("%s: expected a gzip (.gz) or snappy (.sz) compressed fastq file", seqfile)
	}

	scanner := bufio.NewScanner(rdr)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	return &ReadInSeq{
		file:    inf,
		gz:      gz,
		scanner: scanner,
	}, nil
}

// Next advances to the next record, filling Name and Seq.  It
// returns false when the stream is exhausted or cannot be read; Err
// distinguishes the two cases.  A truncated record at the end of the
// stream is still returned as long as its sequence line is present.
func (ris *ReadInSeq) Next() bool {

	if ris.err != nil {
		return false
	}

	for j := 0; j < 4; j++ {

		if !ris.scanner.Scan() {
			ris.err = ris.scanner.Err()
			return ris.err == nil && j > 1
		}

		switch j % 4 {
		case 0:
			ris.Name = ris.scanner.Text()
		case 1:
			ris.Seq = ris.scanner.Text()
		}
	}

	return true
}

// Err returns the first error encountered while reading, if any.  A
// normal end of stream is not an error.
func (ris *ReadInSeq) Err() error {
	return ris.err
}

// Close closes the decompressor and the underlying file.
func (ris *ReadInSeq) Close() error {

	if ris.gz != nil {
		if err := ris.gz.Close(); err != nil {
			ris.file.Close()
			return err
		}
	}

	return ris.file.Close()
}
