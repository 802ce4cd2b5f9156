package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDoctorCmd(t *testing.T) {
	t.Run("doctor command exists", func(t *testing.T) {
		if doctorCmd == nil {
			t.Fatal("doctorCmd should not be nil")
		}
	})

	t.Run("doctor command has assets-dir flag", func(t *testing.T) {
		if doctorCmd.Flags().Lookup("assets-dir") == nil {
			t.Error("missing flag \"assets-dir\"")
		}
	})
}

func TestRunDoctor_ReportsMissingPieces(t *testing.T) {
	// Point every check somewhere empty so they all fail predictably
	tmp := t.TempDir()

	prevSettings, prevPdflatex, prevAssets := settingsFlag, pdflatexFlag, doctorAssetDir
	t.Cleanup(func() {
		settingsFlag, pdflatexFlag, doctorAssetDir = prevSettings, prevPdflatex, prevAssets
	})

	settingsFlag = filepath.Join(tmp, "settings.json")
	pdflatexFlag = filepath.Join(tmp, "no-such-pdflatex")
	doctorAssetDir = tmp

	var buf bytes.Buffer

	err := runDoctor(&buf)
	if err == nil {
		t.Fatal("runDoctor() should report an unready environment")
	}

	out := buf.String()

	if !strings.Contains(out, "✗ pdflatex") {
		t.Errorf("output missing pdflatex failure:\n%s", out)
	}

	if !strings.Contains(out, "defaults apply") {
		t.Errorf("output missing settings note:\n%s", out)
	}

	if !strings.Contains(out, "foto_antenas.jpg") {
		t.Errorf("output missing image check:\n%s", out)
	}
}

func TestRunDoctor_PassesWhenEverythingPresent(t *testing.T) {
	tmp := t.TempDir()

	fake := filepath.Join(tmp, "pdflatex")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	for _, img := range []string{"foto_antenas.jpg", "logo_ure_negro.png", "qrz_com.png", "lotw.png"} {
		if err := os.WriteFile(filepath.Join(tmp, img), []byte("img"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	prevSettings, prevPdflatex, prevAssets := settingsFlag, pdflatexFlag, doctorAssetDir
	t.Cleanup(func() {
		settingsFlag, pdflatexFlag, doctorAssetDir = prevSettings, prevPdflatex, prevAssets
	})

	settingsFlag = filepath.Join(tmp, "settings.json")
	pdflatexFlag = fake
	doctorAssetDir = tmp

	var buf bytes.Buffer

	if err := runDoctor(&buf); err != nil {
		t.Fatalf("runDoctor() error = %v\noutput:\n%s", err, buf.String())
	}

	if !strings.Contains(buf.String(), "All checks passed.") {
		t.Errorf("output missing success line:\n%s", buf.String())
	}
}
