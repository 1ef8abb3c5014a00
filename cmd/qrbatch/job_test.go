package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadJob(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	content := `
images:
  - path: a.png
    label: first
  - path: b.png
report: out.txt
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	job, err := loadJob(path)
	if err != nil {
		t.Fatalf("loadJob: %v", err)
	}
	if len(job.Images) != 2 {
		t.Fatalf("len(Images) = %d, want 2", len(job.Images))
	}
	if job.Images[0].Label != "first" {
		t.Fatalf("Images[0].Label = %q, want %q", job.Images[0].Label, "first")
	}
	if job.Report != "out.txt" {
		t.Fatalf("Report = %q, want %q", job.Report, "out.txt")
	}
}

func TestLoadJob_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	if err := os.WriteFile(path, []byte("images: []\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := loadJob(path); err == nil {
		t.Fatalf("expected error for empty image list")
	}
}
