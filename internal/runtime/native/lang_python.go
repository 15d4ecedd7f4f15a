package native

import (
	"context"
	"fmt"
	"strings"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/runtime"
	"github.com/TruZillah/Assessment-GliderAI/internal/sandbox"
)

const pythonMainFile = "main.py"

type pythonExecutor struct {
	base
}

var _ runtime.Executor = (*pythonExecutor)(nil)

func newPythonExecutor(cfg Config) *pythonExecutor {
	return &pythonExecutor{base{lang: execution.LanguagePython, cfg: cfg}}
}

func (e *pythonExecutor) Execute(ctx context.Context, req execution.Request) (*execution.Outcome, error) {
	if out := e.validate(req); out != nil {
		return out, nil
	}
	args, err := renderArgs(req.Args, pythonLiteral)
	if err != nil {
		return invalid(err), nil
	}
	source := pythonHarness(req.Source, req.EntryPoint, args)
	return e.run(ctx, sandbox.Command{
		Argv:  []string{e.cfg.PythonBin, pythonMainFile},
		Files: []sandbox.FileSpec{{Name: pythonMainFile, Mode: 0o644, Data: []byte(source)}},
	})
}

// pythonHarness appends a driver block that calls the entry point and prints
// the JSON-encoded result on the sentinel line. Values json cannot encode
// fall back to str() so the run still reports something parseable.
func pythonHarness(userCode, entryPoint string, args []string) string {
	var b strings.Builder
	b.WriteString(userCode)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, `if __name__ == "__main__":
    import json as _json
    _result = %s(%s)
    try:
        _encoded = _json.dumps(_result)
    except (TypeError, ValueError):
        _encoded = str(_result)
    print("RESULT:" + _encoded)
`, entryPoint, strings.Join(args, ", "))
	return b.String()
}
