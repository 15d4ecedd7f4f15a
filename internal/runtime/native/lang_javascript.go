package native

import (
	"context"
	"fmt"
	"strings"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/runtime"
	"github.com/TruZillah/Assessment-GliderAI/internal/sandbox"
)

const javaScriptMainFile = "main.js"

type javaScriptExecutor struct {
	base
}

var _ runtime.Executor = (*javaScriptExecutor)(nil)

func newJavaScriptExecutor(cfg Config) *javaScriptExecutor {
	return &javaScriptExecutor{base{lang: execution.LanguageJavaScript, cfg: cfg}}
}

func (e *javaScriptExecutor) Execute(ctx context.Context, req execution.Request) (*execution.Outcome, error) {
	if out := e.validate(req); out != nil {
		return out, nil
	}
	args, err := renderArgs(req.Args, javaScriptLiteral)
	if err != nil {
		return invalid(err), nil
	}
	source := javaScriptHarness(req.Source, req.EntryPoint, args)
	return e.run(ctx, sandbox.Command{
		Argv:  []string{e.cfg.NodeBin, javaScriptMainFile},
		Files: []sandbox.FileSpec{{Name: javaScriptMainFile, Mode: 0o644, Data: []byte(source)}},
	})
}

// javaScriptHarness appends a driver that calls the entry point and prints
// the stringified result. JSON.stringify returns undefined for functions and
// undefined values, which maps to null on the wire.
func javaScriptHarness(userCode, entryPoint string, args []string) string {
	var b strings.Builder
	b.WriteString(userCode)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, `const __result = %s(%s);
let __encoded;
try {
    __encoded = JSON.stringify(__result);
} catch (err) {
    __encoded = String(__result);
}
if (__encoded === undefined) {
    __encoded = "null";
}
console.log("RESULT:" + __encoded);
`, entryPoint, strings.Join(args, ", "))
	return b.String()
}
