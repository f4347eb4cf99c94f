package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerDraws(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Loading...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "Loading...") {
		t.Errorf("spinner output = %q", buf.String())
	}
	if s.Cancelled() {
		t.Error("a stopped spinner is not cancelled")
	}
}

func TestSpinnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var buf bytes.Buffer
	s := newSpinner(ctx, &buf, "Loading...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "x")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	newSpinner(context.Background(), &buf, "x").Stop()
}

func TestSpinnerStopWithMessage(t *testing.T) {
	var spin, out bytes.Buffer
	s := newSpinner(context.Background(), &spin, "x")
	s.Start()
	s.StopWithSuccess(&out, "Done")
	if !strings.Contains(out.String(), "Done") {
		t.Errorf("success output = %q", out.String())
	}

	out.Reset()
	s = newSpinner(context.Background(), &spin, "x")
	s.Start()
	s.StopWithError(&out, "Failed")
	if !strings.Contains(out.String(), "Failed") {
		t.Errorf("error output = %q", out.String())
	}
}
