package native

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
)

// sentinel opens the line carrying the encoded return value. Harnesses emit
// it; user code is assumed never to print a line starting with it.
const sentinel = "RESULT:"

// parseResult scans stdout for the first sentinel-prefixed line, decodes its
// payload and returns the value together with stdout stripped of that line.
// Every harness encodes structured values as JSON, so decoding is attempted
// as JSON first; the lexical fallback keeps plain stringified scalars
// (int, float, bool, bare string) parseable.
func parseResult(stdout string) (value.Value, string, error) {
	lines := strings.Split(stdout, "\n")
	for i, line := range lines {
		trimmed := strings.TrimRight(line, "\r")
		if !strings.HasPrefix(trimmed, sentinel) {
			continue
		}
		payload := strings.TrimPrefix(trimmed, sentinel)
		rest := strings.Join(append(append([]string{}, lines[:i]...), lines[i+1:]...), "\n")
		return decodePayload(payload), rest, nil
	}
	return value.Null(), stdout, &execution.ResultNotFoundError{RawOutput: stdout}
}

func decodePayload(payload string) value.Value {
	if v, ok := decodeJSON(payload); ok {
		return v
	}
	return inferScalar(payload)
}

func decodeJSON(payload string) (value.Value, bool) {
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return value.Value{}, false
	}
	// Trailing garbage means the payload was not a lone JSON document.
	if dec.More() {
		return value.Value{}, false
	}
	v, err := value.FromAny(raw)
	if err != nil {
		return value.Value{}, false
	}
	return v, true
}

// inferScalar classifies non-JSON payload text: decimal point present means
// float, purely numeric means integer, true/false means boolean, anything
// else is the string verbatim. It cannot recover structure; harnesses that
// need structured results must emit JSON.
func inferScalar(payload string) value.Value {
	trimmed := strings.TrimSpace(payload)
	switch strings.ToLower(trimmed) {
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	case "none", "null", "nil":
		return value.Null()
	}
	if strings.Contains(trimmed, ".") {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return value.Float(f)
		}
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return value.Int(i)
	}
	return value.Str(payload)
}
