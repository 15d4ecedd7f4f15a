package native

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
)

// A literalFunc renders one canonical value as a source-level literal in a
// target language. Shapes a language cannot express yield an error instead of
// source text that would miscompile.
type literalFunc func(value.Value) (string, error)

// renderArgs renders every argument, failing on the first unrepresentable one.
func renderArgs(args []value.Value, render literalFunc) ([]string, error) {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		lit, err := render(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out = append(out, lit)
	}
	return out, nil
}

// quoteString renders a double-quoted literal valid in every target language:
// backslash, quote, newline, tab and carriage return are escaped.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// PythonLiteral renders a canonical value as Python source. The tracer reuses
// it for its own generated driver.
func PythonLiteral(v value.Value) (string, error) { return pythonLiteral(v) }

// pythonLiteral renders any canonical value; Python expresses every shape.
func pythonLiteral(v value.Value) (string, error) {
	switch v.Kind() {
	case value.KindNull:
		return "None", nil
	case value.KindBool:
		if v.AsBool() {
			return "True", nil
		}
		return "False", nil
	case value.KindInt:
		return strconv.FormatInt(v.AsInt(), 10), nil
	case value.KindFloat:
		return value.FormatFloat(v.AsFloat()), nil
	case value.KindString:
		return quoteString(v.AsString()), nil
	case value.KindList:
		elems, err := renderArgs(v.Elems(), pythonLiteral)
		if err != nil {
			return "", err
		}
		return "[" + strings.Join(elems, ", ") + "]", nil
	}
	return "", fmt.Errorf("no python literal for %s", v.Kind())
}

// javaScriptLiteral renders any canonical value as a JavaScript expression.
func javaScriptLiteral(v value.Value) (string, error) {
	switch v.Kind() {
	case value.KindNull:
		return "null", nil
	case value.KindBool:
		return strconv.FormatBool(v.AsBool()), nil
	case value.KindInt:
		return strconv.FormatInt(v.AsInt(), 10), nil
	case value.KindFloat:
		return value.FormatFloat(v.AsFloat()), nil
	case value.KindString:
		return quoteString(v.AsString()), nil
	case value.KindList:
		elems, err := renderArgs(v.Elems(), javaScriptLiteral)
		if err != nil {
			return "", err
		}
		return "[" + strings.Join(elems, ", ") + "]", nil
	}
	return "", fmt.Errorf("no javascript literal for %s", v.Kind())
}

// javaLiteral renders a canonical value as a Java expression. Homogeneous
// lists become typed arrays (new int[]{...}, new String[]{...}); mixed lists
// fall back to Object[]. Nested lists are supported only for integer
// matrices.
func javaLiteral(v value.Value) (string, error) {
	switch v.Kind() {
	case value.KindNull:
		return "null", nil
	case value.KindBool:
		return strconv.FormatBool(v.AsBool()), nil
	case value.KindInt:
		return javaIntLiteral(v.AsInt()), nil
	case value.KindFloat:
		return value.FormatFloat(v.AsFloat()), nil
	case value.KindString:
		return quoteString(v.AsString()), nil
	case value.KindList:
		return javaArrayLiteral(v.Elems())
	}
	return "", fmt.Errorf("no java literal for %s", v.Kind())
}

func javaIntLiteral(i int64) string {
	lit := strconv.FormatInt(i, 10)
	if i > math.MaxInt32 || i < math.MinInt32 {
		lit += "L"
	}
	return lit
}

func javaArrayLiteral(elems []value.Value) (string, error) {
	switch listShape(elems) {
	case shapeInts:
		wide := false
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = javaIntLiteral(e.AsInt())
			if e.AsInt() > math.MaxInt32 || e.AsInt() < math.MinInt32 {
				wide = true
			}
		}
		if wide {
			return "new long[]{" + strings.Join(parts, ", ") + "}", nil
		}
		return "new int[]{" + strings.Join(parts, ", ") + "}", nil
	case shapeFloats:
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = value.FormatFloat(e.AsFloat())
		}
		return "new double[]{" + strings.Join(parts, ", ") + "}", nil
	case shapeBools:
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = strconv.FormatBool(e.AsBool())
		}
		return "new boolean[]{" + strings.Join(parts, ", ") + "}", nil
	case shapeStrings:
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = quoteString(e.AsString())
		}
		return "new String[]{" + strings.Join(parts, ", ") + "}", nil
	case shapeIntLists:
		// One 64-bit leaf promotes the whole matrix so the rows stay
		// homogeneous.
		wide := false
		for _, e := range elems {
			for _, n := range e.Elems() {
				if n.AsInt() > math.MaxInt32 || n.AsInt() < math.MinInt32 {
					wide = true
				}
			}
		}
		parts := make([]string, len(elems))
		for i, e := range elems {
			row := make([]string, len(e.Elems()))
			for j, n := range e.Elems() {
				row[j] = javaIntLiteral(n.AsInt())
			}
			parts[i] = "{" + strings.Join(row, ", ") + "}"
		}
		if wide {
			return "new long[][]{" + strings.Join(parts, ", ") + "}", nil
		}
		return "new int[][]{" + strings.Join(parts, ", ") + "}", nil
	case shapeEmpty:
		return "new Object[]{}", nil
	case shapeMixed:
		parts, err := renderArgs(elems, javaLiteral)
		if err != nil {
			return "", err
		}
		return "new Object[]{" + strings.Join(parts, ", ") + "}", nil
	}
	return "", fmt.Errorf("unsupported java array shape")
}

// cppLiteral renders a canonical value as a C++ expression. Homogeneous lists
// become vector literals; mixed element types have no C++ spelling and fail
// loudly rather than miscompile.
func cppLiteral(v value.Value) (string, error) {
	switch v.Kind() {
	case value.KindNull:
		return "", fmt.Errorf("null has no C++ literal")
	case value.KindBool:
		return strconv.FormatBool(v.AsBool()), nil
	case value.KindInt:
		lit := strconv.FormatInt(v.AsInt(), 10)
		if v.AsInt() > math.MaxInt32 || v.AsInt() < math.MinInt32 {
			lit += "LL"
		}
		return lit, nil
	case value.KindFloat:
		return value.FormatFloat(v.AsFloat()), nil
	case value.KindString:
		return "string(" + quoteString(v.AsString()) + ")", nil
	case value.KindList:
		return cppVectorLiteral(v.Elems())
	}
	return "", fmt.Errorf("no C++ literal for %s", v.Kind())
}

func cppVectorLiteral(elems []value.Value) (string, error) {
	switch listShape(elems) {
	case shapeInts:
		wide := false
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = strconv.FormatInt(e.AsInt(), 10)
			if e.AsInt() > math.MaxInt32 || e.AsInt() < math.MinInt32 {
				wide = true
			}
		}
		elemType := "int"
		if wide {
			elemType = "long long"
		}
		return "vector<" + elemType + ">{" + strings.Join(parts, ", ") + "}", nil
	case shapeFloats:
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = value.FormatFloat(e.AsFloat())
		}
		return "vector<double>{" + strings.Join(parts, ", ") + "}", nil
	case shapeBools:
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = strconv.FormatBool(e.AsBool())
		}
		return "vector<bool>{" + strings.Join(parts, ", ") + "}", nil
	case shapeStrings:
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = "string(" + quoteString(e.AsString()) + ")"
		}
		return "vector<string>{" + strings.Join(parts, ", ") + "}", nil
	case shapeIntLists:
		parts := make([]string, len(elems))
		for i, e := range elems {
			inner, err := cppVectorLiteral(e.Elems())
			if err != nil {
				return "", err
			}
			parts[i] = inner
		}
		return "vector<vector<int>>{" + strings.Join(parts, ", ") + "}", nil
	case shapeEmpty:
		return "vector<int>{}", nil
	}
	return "", fmt.Errorf("mixed-type list has no C++ literal")
}

type shape int

const (
	shapeEmpty shape = iota
	shapeInts
	shapeFloats
	shapeBools
	shapeStrings
	shapeIntLists
	shapeMixed
)

// listShape classifies element homogeneity. A list mixing ints and floats is
// treated as all-float so numeric arrays stay usable.
func listShape(elems []value.Value) shape {
	if len(elems) == 0 {
		return shapeEmpty
	}
	allInts, allNumeric, allBools, allStrings, allIntLists := true, true, true, true, true
	for _, e := range elems {
		if e.Kind() != value.KindInt {
			allInts = false
		}
		if !e.IsNumeric() {
			allNumeric = false
		}
		if e.Kind() != value.KindBool {
			allBools = false
		}
		if e.Kind() != value.KindString {
			allStrings = false
		}
		if e.Kind() != value.KindList || listShape(e.Elems()) != shapeInts {
			allIntLists = false
		}
	}
	switch {
	case allInts:
		return shapeInts
	case allNumeric:
		return shapeFloats
	case allBools:
		return shapeBools
	case allStrings:
		return shapeStrings
	case allIntLists:
		return shapeIntLists
	}
	return shapeMixed
}
