package native

import (
	"errors"
	"testing"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
)

func TestParseResultJSONPayloads(t *testing.T) {
	cases := []struct {
		name   string
		stdout string
		want   value.Value
	}{
		{"integer", "RESULT:5\n", value.Int(5)},
		{"float keeps point", "RESULT:5.0\n", value.Float(5)},
		{"negative float", "RESULT:-2.75\n", value.Float(-2.75)},
		{"bool", "RESULT:true\n", value.Bool(true)},
		{"null", "RESULT:null\n", value.Null()},
		{"quoted string", "RESULT:\"tricky \\\"quote\\\"\"\n", value.Str(`tricky "quote"`)},
		{"list", "RESULT:[0,1]\n", value.Ints(0, 1)},
		{"nested list", "RESULT:[[1,2],[3]]\n", value.List(value.Ints(1, 2), value.Ints(3))},
		{"mixed list", "RESULT:[1,\"x\",true]\n", value.List(value.Int(1), value.Str("x"), value.Bool(true))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _, err := parseResult(tc.stdout)
			if err != nil {
				t.Fatalf("parseResult: %v", err)
			}
			if !value.Equal(got, tc.want) || got.Kind() != tc.want.Kind() {
				t.Errorf("parseResult(%q) = %v (%s), want %v (%s)", tc.stdout, got, got.Kind(), tc.want, tc.want.Kind())
			}
		})
	}
}

func TestParseResultLexicalFallback(t *testing.T) {
	cases := []struct {
		stdout string
		want   value.Value
	}{
		{"RESULT:hello world\n", value.Str("hello world")},
		{"RESULT:True\n", value.Bool(true)},
		{"RESULT:None\n", value.Null()},
		{"RESULT:-17\n", value.Int(-17)},
		{"RESULT:3.14\n", value.Float(3.14)},
	}
	for _, tc := range cases {
		got, _, err := parseResult(tc.stdout)
		if err != nil {
			t.Fatalf("parseResult(%q): %v", tc.stdout, err)
		}
		if !value.Equal(got, tc.want) || got.Kind() != tc.want.Kind() {
			t.Errorf("parseResult(%q) = %v (%s), want %v (%s)", tc.stdout, got, got.Kind(), tc.want, tc.want.Kind())
		}
	}
}

func TestParseResultStripsSentinelLine(t *testing.T) {
	stdout := "debug line\nRESULT:42\ntrailing\n"
	got, rest, err := parseResult(stdout)
	if err != nil {
		t.Fatalf("parseResult: %v", err)
	}
	if got.AsInt() != 42 {
		t.Fatalf("value = %v, want 42", got)
	}
	if rest != "debug line\ntrailing\n" {
		t.Errorf("rest = %q, want sentinel line removed", rest)
	}
}

func TestParseResultFirstSentinelWins(t *testing.T) {
	got, _, err := parseResult("RESULT:1\nRESULT:2\n")
	if err != nil {
		t.Fatalf("parseResult: %v", err)
	}
	if got.AsInt() != 1 {
		t.Errorf("value = %v, want first sentinel line", got)
	}
}

func TestParseResultNotFound(t *testing.T) {
	raw := "no sentinel anywhere\n"
	_, rest, err := parseResult(raw)
	var notFound *execution.ResultNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want ResultNotFoundError", err)
	}
	if notFound.RawOutput != raw {
		t.Errorf("RawOutput = %q, want full stdout", notFound.RawOutput)
	}
	if rest != raw {
		t.Errorf("rest = %q, want stdout untouched", rest)
	}
}

func TestParseResultWindowsLineEndings(t *testing.T) {
	got, _, err := parseResult("RESULT:7\r\n")
	if err != nil {
		t.Fatalf("parseResult: %v", err)
	}
	if got.AsInt() != 7 {
		t.Errorf("value = %v, want 7", got)
	}
}
