// ABOUTME: Tests for log command input validation and --perf parsing.
// ABOUTME: Exercises rejection paths that never reach the store.
package main

import (
	"strings"
	"testing"
)

func TestLogAddRequiresPerformance(t *testing.T) {
	logPerf = nil
	t.Cleanup(func() { logPerf = nil })

	err := logAddCmd.RunE(logAddCmd, []string{"1"})
	if err == nil {
		t.Fatal("log add accepted a workout with no --perf entries")
	}
	if !strings.Contains(err.Error(), "--perf") {
		t.Errorf("error %q does not mention --perf", err)
	}
}

func TestParsePerf(t *testing.T) {
	entry, err := parsePerf("5:8:60.5")
	if err != nil {
		t.Fatalf("parsePerf failed: %v", err)
	}
	if entry.ExerciseID != 5 || entry.Reps != 8 || entry.Weight != 60.5 {
		t.Errorf("parsePerf = %+v", entry)
	}

	// Weight is optional.
	entry, err = parsePerf("5:8")
	if err != nil {
		t.Fatalf("parsePerf failed: %v", err)
	}
	if entry.Weight != 0 {
		t.Errorf("Weight = %v, want 0", entry.Weight)
	}

	for _, bad := range []string{"", "5", "a:8:60", "5:b:60", "5:8:c", "5:8:60:1"} {
		if _, err := parsePerf(bad); err == nil {
			t.Errorf("parsePerf(%q) accepted malformed input", bad)
		}
	}
}
