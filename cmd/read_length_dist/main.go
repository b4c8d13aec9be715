// Copyright 2025, the ISU Genomics contributors.

// read_length_dist tallies the distribution of read lengths in one
// or more compressed fastq files, writing the combined results as a
// tab delimited table.  The table has a header row followed by one
// row per distinct read length per file, e.g.
//
//	length	count	file
//	100	9981	reads_1.fastq.gz
//	101	19	reads_1.fastq.gz
//	100	4205	reads_2.fastq.gz
//
// Rows are grouped by input file in the order the files are given,
// and sorted by increasing length within each file.  Sequence lines
// are located by position alone (the second line of every four line
// record), so no validation of the fastq structure is performed.
//
// A typical invocation is:
//
// read_length_dist lengths.tsv reads_1.fastq.gz reads_2.fastq.gz
//
// The input files may be gzip (.gz) or snappy (.sz) compressed.  The
// same run can be described in a JSON configuration file:
//
//	{"OutputFileName": "lengths.tsv", "InputFileNames": ["reads_1.fastq.gz"]}
//
// read_length_dist -ConfigFileName=config.json
//
// The output file is written atomically.  If any input cannot be
// read the run stops with a message identifying the file, and the
// output path is left untouched.

package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/profile"

	"github.com/ISUgenomics/isu-nextflow-workshop/utils"
)

const usageText = `read_length_dist: usage
  read_length_dist [flags] output.tsv input1.fastq.gz [input2.fastq.gz ...]

Counts the number of reads of each length in one or more compressed
fastq files and writes a length/count/file table in tsv format.
Run 'read_length_dist -help' for the list of flags.
`

var (
	config *utils.Config

	logger *log.Logger
)

func handleArgs() {

	ConfigFileName := flag.String("ConfigFileName", "", "JSON file containing configuration parameters")
	LogFile := flag.String("LogFile", "", "Write the run log to this file instead of stderr")
	SummaryFile := flag.String("SummaryFile", "", "Write a JSON summary of the run to this file")
	Profile := flag.Bool("Profile", false, "Write CPU profile information to the current directory")

	flag.Usage = func() {
		os.Stderr.WriteString(usageText)
		os.Stderr.WriteString("\nFlags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *ConfigFileName != "" {
		var err error
		config, err = utils.ReadConfig(*ConfigFileName)
		if err != nil {
			os.Stderr.WriteString(fmt.Sprintf("read_length_dist: %v\n", err))
			os.Exit(1)
		}
	} else {
		config = new(utils.Config)
	}

	if *LogFile != "" {
		config.LogFile = *LogFile
	}
	if *SummaryFile != "" {
		config.SummaryFile = *SummaryFile
	}
	if *Profile {
		config.Profile = true
	}

	args := flag.Args()
	if len(args) > 0 {
		config.OutputFileName = args[0]
	}
	if len(args) > 1 {
		config.InputFileNames = args[1:]
	}
}

func checkArgs() error {

	if config.OutputFileName == "" {
		return fmt.Errorf("no output file provided")
	}
	if len(config.InputFileNames) == 0 {
		return fmt.Errorf("no input files provided")
	}

	return nil
}

func setupLog() {

	if config.LogFile == "" {
		logger = log.New(os.Stderr, "", log.Ltime)
		return
	}

	fid, err := os.Create(config.LogFile)
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("read_length_dist: %v\n", err))
		os.Exit(1)
	}
	logger = log.New(fid, "", log.Ltime)
}

// countLengths makes one pass over a compressed fastq file, tallying
// the length of every sequence line.  Lengths are taken after
// trimming leading and trailing whitespace.
func countLengths(fname string) (*utils.LengthTally, error) {

	ris, err := utils.NewReadInSeq(fname)
	if err != nil {
		return nil, err
	}
	defer ris.Close()

	tally := utils.NewLengthTally()

	for lnum := 0; ris.Next(); lnum++ {
		if lnum%1000000 == 0 {
			logger.Printf("%s: %d", fname, lnum)
		}
		tally.Add(len(strings.TrimSpace(ris.Seq)))
	}

	if err := ris.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v", fname, err)
	}

	return tally, nil
}

// produceReport tallies every input file and writes the combined
// length distribution table to outname.  The table is assembled in a
// uniquely named temporary file next to outname and renamed into
// place after the last input has been processed, so a failed run
// leaves no partial output behind.  The returned count is the total
// number of reads tallied.
func produceReport(outname string, inputs []string) (int, error) {

	xuid, err := uuid.NewUUID()
	if err != nil {
		return 0, err
	}
	tmpname := fmt.Sprintf("%s.%s.tmp", outname, xuid.String())

	out, err := os.Create(tmpname)
	if err != nil {
		return 0, err
	}

	cleanup := func() {
		out.Close()
		os.Remove(tmpname)
	}

	wtr := bufio.NewWriter(out)

	if _, err := wtr.WriteString("length\tcount\tfile\n"); err != nil {
		cleanup()
		return 0, err
	}

	var nread int
	for _, fname := range inputs {

		tally, err := countLengths(fname)
		if err != nil {
			cleanup()
			return 0, err
		}
		logger.Printf("%s: tallied %d reads", fname, tally.Total())
		nread += tally.Total()

		for _, length := range tally.Lengths() {
			_, err := wtr.WriteString(fmt.Sprintf("%d\t%d\t%s\n", length, tally.Count(length), fname))
			if err != nil {
				cleanup()
				return 0, err
			}
		}
	}

	if err := wtr.Flush(); err != nil {
		cleanup()
		return 0, err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmpname)
		return 0, err
	}
	if err := os.Rename(tmpname, outname); err != nil {
		os.Remove(tmpname)
		return 0, err
	}

	return nread, nil
}

// writeSummary writes a short JSON accounting of a completed run.
func writeSummary(fname string, nfile, nread int) error {

	summary := struct {
		NumFiles int
		NumReads int
	}{
		NumFiles: nfile,
		NumReads: nread,
	}

	fid, err := os.Create(fname)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(fid)
	if err := enc.Encode(&summary); err != nil {
		fid.Close()
		return err
	}

	return fid.Close()
}

func main() {

	handleArgs()
	if err := checkArgs(); err != nil {
		os.Stderr.WriteString(fmt.Sprintf("read_length_dist: %v\n\n", err))
		os.Stderr.WriteString(usageText)
		os.Exit(2)
	}
	setupLog()

	if config.Profile {
		p := profile.Start(profile.ProfilePath("."))
		defer p.Stop()
	}

	logger.Printf("Tallying read lengths from %d input files", len(config.InputFileNames))

	nread, err := produceReport(config.OutputFileName, config.InputFileNames)
	if err != nil {
		if config.LogFile != "" {
			os.Stderr.WriteString("read_length_dist failed, see log file for details.\n")
		}
		logger.Fatal(err)
	}
	logger.Printf("Wrote %s", config.OutputFileName)

	if config.SummaryFile != "" {
		if err := writeSummary(config.SummaryFile, len(config.InputFileNames), nread); err != nil {
			if config.LogFile != "" {
				os.Stderr.WriteString("read_length_dist failed, see log file for details.\n")
			}
			logger.Fatal(err)
		}
	}

	logger.Printf("Done")
}
