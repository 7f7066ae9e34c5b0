package util

import (
	"errors"
	"strings"
	"testing"
)

func TestASRelFileError(t *testing.T) {
	err := NewASRelFileError("testdata/topo.txt", 12, "bad line: 1|2")
	msg := err.Error()
	if !strings.Contains(msg, "testdata/topo.txt") || !strings.Contains(msg, "12") || !strings.Contains(msg, "bad line: 1|2") {
		t.Errorf("Error() = %q, missing expected substrings", msg)
	}
	if !errors.Is(err, ErrInvalidASRelFile) {
		t.Error("ASRelFileError should unwrap to ErrInvalidASRelFile")
	}
}

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("hijack_n_hops", "n must be non-negative")
	msg := err.Error()
	if !strings.Contains(msg, "hijack_n_hops") || !strings.Contains(msg, "n must be non-negative") {
		t.Errorf("Error() = %q, missing expected substrings", msg)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("InvalidArgumentError should unwrap to ErrInvalidArgument")
	}
}

func TestCyclicTopologyError(t *testing.T) {
	err := NewCyclicTopologyError("determine_reachability_all")
	if !errors.Is(err, ErrCyclicTopology) {
		t.Error("CyclicTopologyError should unwrap to ErrCyclicTopology")
	}
	if !strings.Contains(err.Error(), "determine_reachability_all") {
		t.Errorf("Error() = %q, missing operation name", err.Error())
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{ErrInvalidASRelFile, ErrInvalidArgument, ErrCyclicTopology}
	for i, e1 := range sentinels {
		for j, e2 := range sentinels {
			if i != j && errors.Is(e1, e2) {
				t.Errorf("sentinel errors should be distinct: %v == %v", e1, e2)
			}
		}
	}
}
