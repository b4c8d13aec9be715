// Copyright 2025, the ISU Genomics contributors.

package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

type Config struct {

	// The file path where the length distribution table is
	// written.
	OutputFileName string

	// The names of the compressed fastq files whose read lengths
	// are tallied, in the order their rows appear in the output.
	InputFileNames []string

	// If provided, the run log is written to this file.  By
	// default the log is written to the standard error stream.
	LogFile string

	// If provided, a short JSON accounting of the run (number of
	// files and reads processed) is written to this file after
	// the output table is in place.
	SummaryFile string

	// If true, CPU profile information for the run is written to
	// the current directory.
	Profile bool
}

// ReadConfig loads configuration parameters from a file in JSON
// format.
func ReadConfig(filename string) (*Config, error) {

	fid, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fid.Close()

	dec := json.NewDecoder(fid)
	config := new(Config)
	if err := dec.Decode(config); err != nil {
		return nil, fmt.Errorf("%s: %v", filename, err)
	}

	return config, nil
}
