package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestRun_Solved checks the happy path: exit 0 and a rendered solution.
func TestRun_Solved(t *testing.T) {
	var out, errw bytes.Buffer
	code := run([]string{"-side", "4", "1.34.41223.1412."}, &out, &errw)
	if code != exitSolved {
		t.Fatalf("run exit = %d; want %d (stderr: %s)", code, exitSolved, errw.String())
	}
	if !strings.Contains(out.String(), "Solution:") {
		t.Errorf("stdout missing solution block:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "1 2 | 3 4") {
		t.Errorf("stdout missing solved first row:\n%s", out.String())
	}
}

// TestRun_InvalidInput checks that malformed puzzles exit 2.
func TestRun_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"NoArgs", nil},
		{"BadSymbol", []string{"-side", "4", "1x34.41223.1412."}},
		{"WrongLength", []string{"-side", "4", "1.34"}},
		{"Duplicate", []string{"-side", "4", "11.............."}},
		{"BadFlag", []string{"-side", "nope", "1.34.41223.1412."}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, errw bytes.Buffer
			if code := run(tc.args, &out, &errw); code != exitBadInput {
				t.Errorf("run exit = %d; want %d", code, exitBadInput)
			}
		})
	}
}

// TestRun_Unsolvable checks that an impossible puzzle exits 1.
func TestRun_Unsolvable(t *testing.T) {
	var out, errw bytes.Buffer
	code := run([]string{"-side", "4", "..12....1...2..."}, &out, &errw)
	if code != exitUnsolvable {
		t.Fatalf("run exit = %d; want %d", code, exitUnsolvable)
	}
	if !strings.Contains(errw.String(), "no solution") {
		t.Errorf("stderr missing diagnosis: %s", errw.String())
	}
}
