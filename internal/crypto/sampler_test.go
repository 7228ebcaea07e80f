package crypto

import (
	"crypto/rand"
	"errors"
	"strings"
	"testing"
)

func TestBuildAlphabet(t *testing.T) {
	tests := []struct {
		name        string
		digits      bool
		symbols     bool
		wantPool    int
		wantClasses int
	}{
		{name: "letters only", wantPool: 52, wantClasses: 2},
		{name: "digits", digits: true, wantPool: 62, wantClasses: 3},
		{name: "symbols", symbols: true, wantPool: 84, wantClasses: 3},
		{name: "digits and symbols", digits: true, symbols: true, wantPool: 94, wantClasses: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := BuildAlphabet(tt.digits, tt.symbols)
			if len(a.Pool) != tt.wantPool {
				t.Errorf("pool size = %d, want %d", len(a.Pool), tt.wantPool)
			}
			if len(a.Classes) != tt.wantClasses {
				t.Errorf("class count = %d, want %d", len(a.Classes), tt.wantClasses)
			}
			for _, class := range a.Classes {
				if class == "" {
					t.Error("empty mandatory class")
				}
				for _, ch := range class {
					if !strings.ContainsRune(a.Pool, ch) {
						t.Errorf("class character %q missing from pool", ch)
					}
				}
			}
		})
	}
}

func TestIsSymbol(t *testing.T) {
	for _, r := range "!-_.#~@" {
		if !IsSymbol(r) {
			t.Errorf("IsSymbol(%q) = false, want true", r)
		}
	}
	for _, r := range "aZ0 \t\né" {
		if IsSymbol(r) {
			t.Errorf("IsSymbol(%q) = true, want false", r)
		}
	}
}

func TestSampleConstrainedErrors(t *testing.T) {
	tests := []struct {
		name     string
		alphabet Alphabet
		n        int
	}{
		{
			name:     "more classes than length",
			alphabet: Alphabet{Pool: "abc", Classes: []string{"a", "b", "c"}},
			n:        2,
		},
		{
			name:     "filler exceeds alphabet",
			alphabet: Alphabet{Pool: "abc", Classes: []string{"a"}},
			n:        5,
		},
		{
			name:     "zero length",
			alphabet: BuildAlphabet(true, true),
			n:        0,
		},
		{
			name:     "empty pool",
			alphabet: Alphabet{},
			n:        4,
		},
		{
			name:     "empty class",
			alphabet: Alphabet{Pool: "abc", Classes: []string{""}},
			n:        2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SampleConstrained(rand.Reader, tt.alphabet, tt.n)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("SampleConstrained() error = %v, want %v", err, ErrInvalidParameter)
			}
			if got != "" {
				t.Errorf("SampleConstrained() = %q, want empty string on error", got)
			}
		})
	}
}

func TestSampleConstrainedOnlyGuaranteed(t *testing.T) {
	a := Alphabet{Pool: "abcxyz", Classes: []string{"ab", "xy"}}
	for i := 0; i < 50; i++ {
		got, err := SampleConstrained(rand.Reader, a, 2)
		if err != nil {
			t.Fatalf("SampleConstrained() unexpected error: %v", err)
		}
		if len(got) != 2 || !strings.ContainsAny(got, "ab") || !strings.ContainsAny(got, "xy") {
			t.Fatalf("SampleConstrained() = %q, want one of each class", got)
		}
	}
}

func TestSampleConstrainedExhaustsPool(t *testing.T) {
	// With the filler equal to the pool size, every pool character appears.
	a := Alphabet{Pool: "abcd", Classes: []string{"z"}}
	got, err := SampleConstrained(rand.Reader, a, 5)
	if err != nil {
		t.Fatalf("SampleConstrained() unexpected error: %v", err)
	}
	for _, ch := range "abcdz" {
		if !strings.ContainsRune(got, ch) {
			t.Errorf("SampleConstrained() = %q, missing %q", got, ch)
		}
	}
}

func TestSampleConstrainedPositionsVary(t *testing.T) {
	// The single guaranteed class character must not stay at a fixed position.
	a := Alphabet{Pool: "abcdefghij", Classes: []string{"Z"}}
	positions := make(map[int]bool)
	for i := 0; i < 200; i++ {
		got, err := SampleConstrained(rand.Reader, a, 6)
		if err != nil {
			t.Fatalf("SampleConstrained() unexpected error: %v", err)
		}
		positions[strings.IndexByte(got, 'Z')] = true
	}
	if len(positions) < 4 {
		t.Errorf("guaranteed character seen at %d distinct positions, want spread across 6", len(positions))
	}
}

func TestSampleDistinct(t *testing.T) {
	pool := BuildAlphabet(true, true).Pool
	for k := 1; k <= len(pool); k += 7 {
		got, err := sampleDistinct(rand.Reader, pool, k)
		if err != nil {
			t.Fatalf("sampleDistinct() unexpected error: %v", err)
		}
		if len(got) != k {
			t.Fatalf("sampleDistinct() length = %d, want %d", len(got), k)
		}
		seen := make(map[byte]bool)
		for _, ch := range got {
			if seen[ch] {
				t.Fatalf("sampleDistinct() repeated %q in %q", ch, got)
			}
			seen[ch] = true
		}
	}
}

func TestSampleDistinctLeavesPoolIntact(t *testing.T) {
	pool := "abcdef"
	if _, err := sampleDistinct(rand.Reader, pool, 3); err != nil {
		t.Fatal(err)
	}
	if pool != "abcdef" {
		t.Errorf("pool modified to %q", pool)
	}
}
