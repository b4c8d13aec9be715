// Copyright 2025, the ISU Genomics contributors.

package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadConfig(t *testing.T) {

	text := `{
  "OutputFileName": "lengths.tsv",
  "InputFileNames": ["a.fastq.gz", "b.fastq.sz"],
  "LogFile": "run.log",
  "SummaryFile": "summary.json",
  "Profile": true
}`

	fname := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(fname, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := ReadConfig(fname)
	if err != nil {
		t.Fatal(err)
	}

	if config.OutputFileName != "lengths.tsv" {
		t.Errorf("OutputFileName %q", config.OutputFileName)
	}
	if len(config.InputFileNames) != 2 || config.InputFileNames[0] != "a.fastq.gz" ||
		config.InputFileNames[1] != "b.fastq.sz" {
		t.Errorf("InputFileNames %v", config.InputFileNames)
	}
	if config.LogFile != "run.log" {
		t.Errorf("LogFile %q", config.LogFile)
	}
	if config.SummaryFile != "summary.json" {
		t.Errorf("SummaryFile %q", config.SummaryFile)
	}
	if !config.Profile {
		t.Error("Profile not set")
	}
}

func TestReadConfigMissing(t *testing.T) {

	fname := filepath.Join(t.TempDir(), "absent.json")
	if _, err := ReadConfig(fname); err == nil {
		t.Fatal("no error for missing config file")
	}
}

func TestReadConfigInvalid(t *testing.T) {

	fname := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(fname, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadConfig(fname); err == nil {
		t.Fatal("no error for invalid config file")
	} else if !strings.Contains(err.Error(), fname) {
		t.Errorf("error does not identify the file: %v", err)
	}
}
