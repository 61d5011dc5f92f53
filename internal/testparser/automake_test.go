package testparser

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseAutomakeTrailer(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		text   string
		want   Status
		wantOK bool
	}{
		{"pass", "PASS foo.test (exit status: 0)", StatusPass, true},
		{"fail", "output\nFAIL tests/bar.sh (exit status: 1)", StatusFail, true},
		{"skip", "SKIP baz (exit status: 77)", StatusSkip, true},
		{"error", "ERROR qux.pl (exit status: 99)", StatusError, true},
		{"single trailing newline", "PASS foo.test (exit status: 0)\n", StatusPass, true},
		{"two trailing newlines", "PASS foo.test (exit status: 0)\n\n", "", false},
		{"trailing space", "PASS foo.test (exit status: 0) ", "", false},
		{"not at end", "PASS foo.test (exit status: 0)\nmore output", "", false},
		{"xfail matches its FAIL suffix", "XFAIL foo.test (exit status: 1)", StatusFail, true},
		{"lowercase", "pass foo.test (exit status: 0)", "", false},
		{"non-ASCII exit status digits", "FAIL t.sh (exit status: \u0661)", StatusFail, true},
		{"missing digits", "PASS foo.test (exit status: )", "", false},
		{"name with space", "PASS foo bar (exit status: 0)", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseAutomakeTrailer(tt.text)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseAutomakeTrailer(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestReadTail(t *testing.T) {
	t.Parallel()
	data := []byte("0123456789")
	tests := []struct {
		name   string
		window int64
		want   string
	}{
		{"window smaller than file", 4, "6789"},
		{"window equal to file", 10, "0123456789"},
		{"window larger than file", 1000, "0123456789"},
		{"zero window reads everything", 0, "0123456789"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadTail(bytes.NewReader(data), tt.window)
			if err != nil {
				t.Fatalf("ReadTail() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ReadTail(%d) = %q, want %q", tt.window, got, tt.want)
			}
		})
	}
}

func TestParseAutomake(t *testing.T) {
	t.Parallel()
	t.Run("status beyond window is ignored", func(t *testing.T) {
		t.Parallel()
		text := "PASS early.test (exit status: 0)\n" + strings.Repeat("x", DefaultTailWindow)
		_, ok, err := ParseAutomake(strings.NewReader(text), DefaultTailWindow)
		if err != nil {
			t.Fatalf("ParseAutomake() error = %v", err)
		}
		if ok {
			t.Error("expected no status when the window holds no trailer")
		}
	})

	t.Run("long log with trailer", func(t *testing.T) {
		t.Parallel()
		text := strings.Repeat("noise line\n", 500) + "FAIL long.test (exit status: 2)\n"
		got, ok, err := ParseAutomake(strings.NewReader(text), DefaultTailWindow)
		if err != nil {
			t.Fatalf("ParseAutomake() error = %v", err)
		}
		if !ok || got != StatusFail {
			t.Errorf("ParseAutomake() = (%q, %v), want (FAIL, true)", got, ok)
		}
	})

	t.Run("window splits a multibyte rune", func(t *testing.T) {
		t.Parallel()
		trailer := "SKIP é.test (exit status: 77)\r\n"
		// Start the window on the second byte of the first é.
		text := "é" + trailer
		got, ok, err := ParseAutomake(strings.NewReader(text), int64(len(text)-1))
		if err != nil {
			t.Fatalf("ParseAutomake() error = %v", err)
		}
		if !ok || got != StatusSkip {
			t.Errorf("ParseAutomake() = (%q, %v), want (SKIP, true)", got, ok)
		}
	})
}

func FuzzParseAutomakeTrailer(f *testing.F) {
	seeds := []string{
		"PASS foo.test (exit status: 0)",
		"FAIL a (exit status: 1)\n",
		"ERROR  (exit status: 9)",
		"",
		"(exit status: 0)",
		"SKIP \n (exit status: 77)",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		s, ok := ParseAutomakeTrailer(text)
		if !ok {
			if s != "" {
				t.Errorf("no match but status %q", s)
			}
			return
		}
		switch s {
		case StatusPass, StatusFail, StatusSkip, StatusError:
		default:
			t.Errorf("unexpected status %q", s)
		}
		trimmed := strings.TrimSuffix(text, "\n")
		if !strings.HasSuffix(trimmed, ")") {
			t.Errorf("matched %q which does not end in ')'", text)
		}
	})
}
