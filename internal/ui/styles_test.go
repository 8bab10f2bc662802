package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Infof("processing %s", "url")
	p.Noticef("skipping %s", "blip")
	p.Successf("done")
	p.Warnf("failed: %s", "boom")

	if !strings.Contains(out.String(), "processing url") {
		t.Errorf("Expected info on out stream, got %q", out.String())
	}
	if !strings.Contains(out.String(), "skipping blip") {
		t.Errorf("Expected notice on out stream, got %q", out.String())
	}
	if !strings.Contains(out.String(), "done") {
		t.Errorf("Expected success on out stream, got %q", out.String())
	}
	if strings.Contains(out.String(), "boom") {
		t.Error("Expected warning to not appear on out stream")
	}
	if !strings.Contains(errOut.String(), "failed: boom") {
		t.Errorf("Expected warning on error stream, got %q", errOut.String())
	}
}
