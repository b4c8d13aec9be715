// Copyright 2025, the ISU Genomics contributors.

/*
Generate a compressed fastq file of random reads for testing.

The reads are uniform random sequences over A, T, G and C.  All reads
have length ReadLen unless LenSpread is positive, in which case the
lengths are spread uniformly over ReadLen-LenSpread to
ReadLen+LenSpread, so that a length tally over the file has more than
one row.  The output is compressed according to the file name, .gz
for gzip and .sz for snappy.  Runs with the same flags and seed
produce identical output.
*/

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	gzip "github.com/klauspost/pgzip"
)

var (
	numRead   int
	readLen   int
	lenSpread int
	seed      int64
	outName   string

	rng *rand.Rand
)

func genRand(n int, seq []byte) []byte {

	bases := []byte{'A', 'T', 'G', 'C'}

	if cap(seq) < n {
		seq = make([]byte, n)
	}
	seq = seq[0:n]

	for j := 0; j < n; j++ {
		x := rng.Float64()
		k := int(4 * x)
		seq[j] = bases[k]
	}

	return seq
}

func generateReads() {

	fid, err := os.Create(outName)
	if err != nil {
		panic(err)
	}
	defer fid.Close()

	var w io.WriteCloser
	switch strings.ToLower(filepath.Ext(outName)) {
	case ".gz":
		w = gzip.NewWriter(fid)
	case ".sz":
		w = snappy.NewBufferedWriter(fid)
	default:
		panic("unknown file type")
	}
	defer w.Close()

	buf := new(bytes.Buffer)
	seq := make([]byte, readLen+lenSpread)

	for i := 0; i < numRead; i++ {

		buf.Reset()

		n := readLen
		if lenSpread > 0 {
			n += rng.Intn(2*lenSpread+1) - lenSpread
		}

		io.WriteString(buf, fmt.Sprintf("@read_%d\n", i))

		seq = genRand(n, seq)
		buf.Write(seq)

		io.WriteString(buf, "\n+\n")
		for j := 0; j < n; j++ {
			io.WriteString(buf, "!")
		}
		io.WriteString(buf, "\n")

		if _, err := w.Write(buf.Bytes()); err != nil {
			panic(err)
		}
	}
}

func main() {

	flag.IntVar(&numRead, "NumRead", 10000, "Number of reads")
	flag.IntVar(&readLen, "ReadLen", 100, "Read length")
	flag.IntVar(&lenSpread, "LenSpread", 0, "Vary the read lengths by up to this many bases")
	flag.Int64Var(&seed, "Seed", 1, "Random number seed")

	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		os.Stderr.WriteString("fastq_gendat: usage\n")
		os.Stderr.WriteString("  fastq_gendat [flags] reads.fastq.gz\n\n")
		os.Exit(2)
	}
	outName = args[0]

	ext := strings.ToLower(filepath.Ext(outName))
	if ext != ".gz" && ext != ".sz" {
		os.Stderr.WriteString("fastq_gendat: the output file name must end in .gz or .sz\n")
		os.Exit(2)
	}

	if lenSpread < 0 || lenSpread >= readLen {
		os.Stderr.WriteString("fastq_gendat: LenSpread must be nonnegative and smaller than ReadLen\n")
		os.Exit(2)
	}

	rng = rand.New(rand.NewSource(seed))

	fmt.Printf("Writing %d reads\n", numRead)
	generateReads()
}
