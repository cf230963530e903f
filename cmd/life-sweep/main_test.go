package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSweepDeterministicAndOrdered(t *testing.T) {
	cfg := sweepConfig{runs: 8, steps: 20, width: 16, height: 12, seed: 100, density: 0.3, workers: 3}
	a, err := sweep(context.Background(), cfg)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	cfg.workers = 1
	b, err := sweep(context.Background(), cfg)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(a) != 8 {
		t.Fatalf("got %d results", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("run %d differs across worker counts: %+v vs %+v", i, a[i], b[i])
		}
		if a[i].seed != 100+int64(i) {
			t.Fatalf("run %d has seed %d", i, a[i].seed)
		}
	}
}

func TestRunOneEmptyGridIsExtinctImmediately(t *testing.T) {
	r := runOne(1, sweepConfig{steps: 10, width: 5, height: 5, density: 0})
	if r.extinctAt != 0 || r.finalPop != 0 || r.peakPop != 0 {
		t.Fatalf("result = %+v", r)
	}
}

func TestRunOneFullGridDiesOut(t *testing.T) {
	// A fully alive 3x3 keeps only its corners, then nothing survives.
	r := runOne(1, sweepConfig{steps: 10, width: 3, height: 3, density: 1})
	if r.initialDensity != 1 || r.peakPop != 9 {
		t.Fatalf("result = %+v", r)
	}
	if r.extinctAt != 2 || r.finalPop != 0 {
		t.Fatalf("extinct at %d with %d alive, want step 2", r.extinctAt, r.finalPop)
	}
}

func TestSweepRejectsBadConfig(t *testing.T) {
	if _, err := sweep(context.Background(), sweepConfig{runs: 1, density: 2}); err == nil {
		t.Fatal("density 2 accepted")
	}
	if _, err := sweep(context.Background(), sweepConfig{runs: -1}); err == nil {
		t.Fatal("negative runs accepted")
	}
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sweep(ctx, sweepConfig{runs: 4, steps: 1, width: 4, height: 4, workers: 2}); err == nil {
		t.Fatal("cancelled sweep succeeded")
	}
}

func TestReportSummary(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, []runResult{
		{seed: 1, finalPop: 4, peakPop: 9, extinctAt: -1},
		{seed: 2, finalPop: 0, peakPop: 3, extinctAt: 5},
	}, time.Second)
	out := buf.String()
	if !strings.Contains(out, "Runs: 2  extinct: 1  mean final population: 2.0") {
		t.Fatalf("report = %q", out)
	}
	if strings.Index(out, "seed=1") > strings.Index(out, "seed=2") {
		t.Fatal("runs not sorted by final population")
	}
}
