package tracer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// submissionFilename is the pseudo-filename the submitted code is compiled
// under. The trace hook only records frames from this file, so library
// internals never show up in the trace.
const submissionFilename = "<submission>"

// traceDriver generates the Python program that executes the submission under
// sys.settrace. The submitted source is embedded as a string literal and
// compiled at runtime, which keeps the driver's own lines out of the trace
// and makes reported line numbers match the submission exactly.
func traceDriver(source, entryPoint string, args []string, breakpoints []int, maxSteps int) (string, error) {
	encodedSource, err := json.Marshal(source)
	if err != nil {
		return "", fmt.Errorf("tracer: encode source: %w", err)
	}
	bps := make([]string, len(breakpoints))
	for i, bp := range breakpoints {
		bps[i] = strconv.Itoa(bp)
	}

	var b strings.Builder
	b.WriteString("import io\nimport json\nimport sys\n\n")
	fmt.Fprintf(&b, "_SOURCE = %s\n", encodedSource)
	fmt.Fprintf(&b, "_FILENAME = %q\n", submissionFilename)
	fmt.Fprintf(&b, "_BREAKPOINTS = set([%s])\n", strings.Join(bps, ", "))
	fmt.Fprintf(&b, "_MAX_STEPS = %d\n", maxSteps)
	b.WriteString(`_SOURCE_LINES = _SOURCE.splitlines()

_records = []
_truncated = [False]


def _preview(v):
    try:
        text = repr(v)
    except Exception:
        text = "<unrepresentable>"
    if len(text) > 200:
        text = text[:200] + "..."
    return text


def _trace(frame, event, arg):
    if frame.f_code.co_filename != _FILENAME:
        return None
    if event not in ("call", "line", "return"):
        return _trace
    if len(_records) >= _MAX_STEPS:
        _truncated[0] = True
        sys.settrace(None)
        return None
    line = frame.f_lineno
    if _BREAKPOINTS and line not in _BREAKPOINTS:
        return _trace
    record = {
        "event": event,
        "line": line,
        "source": _SOURCE_LINES[line - 1].strip() if 0 < line <= len(_SOURCE_LINES) else "",
        "locals": {k: _preview(v) for k, v in frame.f_locals.items() if not k.startswith("__")},
    }
    if event == "return":
        record["return"] = _preview(arg)
    _records.append(record)
    return _trace


_captured = io.StringIO()
_real_stdout = sys.stdout
_state = "completed"
_error = None
_return_preview = None
_namespace = {}
try:
    _code = compile(_SOURCE, _FILENAME, "exec")
    exec(_code, _namespace)
`)
	fmt.Fprintf(&b, "    _entry = _namespace.get(%q)\n", entryPoint)
	fmt.Fprintf(&b, `    if _entry is None:
        raise NameError("function %s is not defined")
`, entryPoint)
	b.WriteString(`    sys.stdout = _captured
    sys.settrace(_trace)
    try:
`)
	fmt.Fprintf(&b, "        _result = _entry(%s)\n", strings.Join(args, ", "))
	b.WriteString(`        _return_preview = _preview(_result)
    finally:
        sys.settrace(None)
        sys.stdout = _real_stdout
except Exception as exc:
    _state = "failed"
    _error = "%s: %s" % (type(exc).__name__, exc)

print("TRACE:" + json.dumps({
    "state": _state,
    "records": _records,
    "truncated": _truncated[0],
    "stdout": _captured.getvalue(),
    "return": _return_preview,
    "error": _error,
}))
`)
	return b.String(), nil
}
