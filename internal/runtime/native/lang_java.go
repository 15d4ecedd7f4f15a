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
	javaSourceFile  = "Main.java"
	javaArchiveFile = "main.jar"
)

type javaExecutor struct {
	base
}

var _ runtime.Executor = (*javaExecutor)(nil)

func newJavaExecutor(cfg Config) *javaExecutor {
	return &javaExecutor{base{lang: execution.LanguageJava, cfg: cfg}}
}

func (e *javaExecutor) Execute(ctx context.Context, req execution.Request) (*execution.Outcome, error) {
	if out := e.validate(req); out != nil {
		return out, nil
	}
	args, err := renderArgs(req.Args, javaLiteral)
	if err != nil {
		return invalid(err), nil
	}
	source := javaHarness(req.Source, req.EntryPoint, args)

	buildLine := fmt.Sprintf("%s %s && %s cfe %s Main *.class",
		e.cfg.JavacBin, javaSourceFile, e.cfg.JarBin, javaArchiveFile)
	artifacts, failed, err := e.compile(ctx, sandbox.Command{
		Argv:    []string{"sh", "-c", buildLine},
		Files:   []sandbox.FileSpec{{Name: javaSourceFile, Mode: 0o644, Data: []byte(source)}},
		Collect: []string{javaArchiveFile},
	})
	if err != nil {
		return nil, err
	}
	if failed != nil {
		return failed, nil
	}
	jar, ok := artifacts[javaArchiveFile]
	if !ok {
		return nil, fmt.Errorf("compile %s: archive %s missing after successful build", e.lang, javaArchiveFile)
	}

	return e.run(ctx, sandbox.Command{
		Argv:  []string{e.cfg.JavaBin, "-jar", javaArchiveFile},
		Files: []sandbox.FileSpec{{Name: javaArchiveFile, Mode: 0o644, Data: jar}},
	})
}

// javaHarness wraps the submitted Solution class in a Main driver. The file
// is Main.java, so a submitted "public class" must be demoted to package
// visibility before injection.
func javaHarness(userCode, entryPoint string, args []string) string {
	demoted := strings.ReplaceAll(userCode, "public class", "class")
	var b strings.Builder
	b.WriteString("import java.util.*;\n\n")
	b.WriteString(demoted)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, `public class Main {
    public static void main(String[] args) {
        Solution __solution = new Solution();
        Object __result = __solution.%s(%s);
        System.out.println("RESULT:" + __toJson(__result));
    }

    static String __toJson(Object v) {
        if (v == null) return "null";
        if (v instanceof String) return __quote((String) v);
        if (v instanceof Character) return __quote(String.valueOf(v));
        if (v instanceof Boolean || v instanceof Number) return String.valueOf(v);
        if (v instanceof int[]) {
            StringBuilder sb = new StringBuilder("[");
            int[] a = (int[]) v;
            for (int i = 0; i < a.length; i++) { if (i > 0) sb.append(","); sb.append(a[i]); }
            return sb.append("]").toString();
        }
        if (v instanceof long[]) {
            StringBuilder sb = new StringBuilder("[");
            long[] a = (long[]) v;
            for (int i = 0; i < a.length; i++) { if (i > 0) sb.append(","); sb.append(a[i]); }
            return sb.append("]").toString();
        }
        if (v instanceof double[]) {
            StringBuilder sb = new StringBuilder("[");
            double[] a = (double[]) v;
            for (int i = 0; i < a.length; i++) { if (i > 0) sb.append(","); sb.append(a[i]); }
            return sb.append("]").toString();
        }
        if (v instanceof boolean[]) {
            StringBuilder sb = new StringBuilder("[");
            boolean[] a = (boolean[]) v;
            for (int i = 0; i < a.length; i++) { if (i > 0) sb.append(","); sb.append(a[i]); }
            return sb.append("]").toString();
        }
        if (v instanceof Object[]) {
            StringBuilder sb = new StringBuilder("[");
            Object[] a = (Object[]) v;
            for (int i = 0; i < a.length; i++) { if (i > 0) sb.append(","); sb.append(__toJson(a[i])); }
            return sb.append("]").toString();
        }
        if (v instanceof List) {
            StringBuilder sb = new StringBuilder("[");
            List<?> a = (List<?>) v;
            for (int i = 0; i < a.size(); i++) { if (i > 0) sb.append(","); sb.append(__toJson(a.get(i))); }
            return sb.append("]").toString();
        }
        return __quote(String.valueOf(v));
    }

    static String __quote(String s) {
        StringBuilder sb = new StringBuilder("\"");
        for (int i = 0; i < s.length(); i++) {
            char c = s.charAt(i);
            switch (c) {
                case '\\': sb.append("\\\\"); break;
                case '"': sb.append("\\\""); break;
                case '\n': sb.append("\\n"); break;
                case '\t': sb.append("\\t"); break;
                case '\r': sb.append("\\r"); break;
                default: sb.append(c);
            }
        }
        return sb.append("\"").toString();
    }
}
`, entryPoint, strings.Join(args, ", "))
	return b.String()
}
