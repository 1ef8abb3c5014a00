package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Job describes a batch-decode run: a list of image files to decode and
// where to write the per-file report.
type Job struct {
	Images []ImageEntry `yaml:"images"`
	Report string       `yaml:"report"`
}

// ImageEntry is one image to decode, optionally labeled for the report.
type ImageEntry struct {
	Path  string `yaml:"path"`
	Label string `yaml:"label"`
}

// loadJob reads and validates a batch job file.
func loadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	if len(j.Images) == 0 {
		return nil, fmt.Errorf("job file lists no images")
	}
	return &j, nil
}
