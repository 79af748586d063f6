package chart

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/Shokesu/chartify/pkg/errors"
)

func TestOpenFileStubViewer(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("stub viewer replaces xdg-open")
	}

	dir := t.TempDir()
	marker := filepath.Join(dir, "opened")
	script := "#!/bin/sh\n: > " + marker + "\n"
	if err := os.WriteFile(filepath.Join(dir, "xdg-open"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	if err := openFile(context.Background(), "chart.html"); err != nil {
		t.Fatalf("openFile: %v", err)
	}

	// The viewer runs detached and is reaped in the background; poll for its
	// side effect rather than waiting on the process.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(marker); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("viewer was never invoked")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestOpenFileMissingViewer(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("viewer lookup is platform specific")
	}

	t.Setenv("PATH", t.TempDir())

	err := openFile(context.Background(), "chart.html")
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Fatalf("error = %v, want INTERNAL_ERROR", err)
	}
}
