package native

import (
	"context"
	"fmt"
	"strings"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/runtime"
	"github.com/TruZillah/Assessment-GliderAI/internal/sandbox"
)

const (
	cppSourceFile = "main.cpp"
	cppBinaryFile = "main"
)

type cppExecutor struct {
	base
}

var _ runtime.Executor = (*cppExecutor)(nil)

func newCPPExecutor(cfg Config) *cppExecutor {
	return &cppExecutor{base{lang: execution.LanguageCPP, cfg: cfg}}
}

func (e *cppExecutor) Execute(ctx context.Context, req execution.Request) (*execution.Outcome, error) {
	if out := e.validate(req); out != nil {
		return out, nil
	}
	args, err := renderArgs(req.Args, cppLiteral)
	if err != nil {
		return invalid(err), nil
	}
	source := cppHarness(req.Source, req.EntryPoint, args)

	artifacts, failed, err := e.compile(ctx, sandbox.Command{
		Argv:    []string{e.cfg.CXXBin, "-O2", "-pipe", "-o", cppBinaryFile, cppSourceFile},
		Files:   []sandbox.FileSpec{{Name: cppSourceFile, Mode: 0o644, Data: []byte(source)}},
		Collect: []string{cppBinaryFile},
	})
	if err != nil {
		return nil, err
	}
	if failed != nil {
		return failed, nil
	}
	binary, ok := artifacts[cppBinaryFile]
	if !ok {
		return nil, fmt.Errorf("compile %s: binary %s missing after successful build", e.lang, cppBinaryFile)
	}

	return e.run(ctx, sandbox.Command{
		Argv:  []string{"./" + cppBinaryFile},
		Files: []sandbox.FileSpec{{Name: cppBinaryFile, Mode: 0o755, Data: binary}},
	})
}

// cppHarness wraps the submitted code with serialization helpers and a main
// that binds each rendered argument to a named local before the call, so
// functions taking non-const references still accept them.
func cppHarness(userCode, entryPoint string, args []string) string {
	var b strings.Builder
	b.WriteString("#include <bits/stdc++.h>\nusing namespace std;\n\n")
	b.WriteString(userCode)
	b.WriteString("\n\n")
	b.WriteString(`static string __json_escape(const string& s) {
    string out = "\"";
    for (char c : s) {
        switch (c) {
            case '\\': out += "\\\\"; break;
            case '"': out += "\\\""; break;
            case '\n': out += "\\n"; break;
            case '\t': out += "\\t"; break;
            case '\r': out += "\\r"; break;
            default: out += c;
        }
    }
    out += "\"";
    return out;
}

static string __to_json(bool v) { return v ? "true" : "false"; }
static string __to_json(int v) { return to_string(v); }
static string __to_json(long v) { return to_string(v); }
static string __to_json(long long v) { return to_string(v); }
static string __to_json(unsigned v) { return to_string(v); }
static string __to_json(size_t v) { return to_string(v); }
static string __to_json(double v) {
    ostringstream out;
    out << setprecision(17) << v;
    string s = out.str();
    if (s.find('.') == string::npos && s.find('e') == string::npos &&
        s.find("inf") == string::npos && s.find("nan") == string::npos) {
        s += ".0";
    }
    return s;
}
static string __to_json(const string& v) { return __json_escape(v); }
static string __to_json(const char* v) { return __json_escape(string(v)); }
static string __to_json(char v) { return __json_escape(string(1, v)); }

template <typename T>
static string __to_json(const vector<T>& v) {
    string out = "[";
    for (size_t i = 0; i < v.size(); i++) {
        if (i > 0) out += ",";
        out += __to_json(v[i]);
    }
    out += "]";
    return out;
}

`)
	b.WriteString("int main() {\n")
	names := make([]string, len(args))
	for i, arg := range args {
		names[i] = fmt.Sprintf("__arg%d", i)
		fmt.Fprintf(&b, "    auto %s = %s;\n", names[i], arg)
	}
	fmt.Fprintf(&b, "    auto __result = %s(%s);\n", entryPoint, strings.Join(names, ", "))
	b.WriteString("    cout << \"RESULT:\" << __to_json(__result) << endl;\n")
	b.WriteString("    return 0;\n}\n")
	return b.String()
}
