package execution

// Status classifies the outcome of a single execution.
type Status string

const (
	StatusOK                  Status = "ok"
	StatusCompileError        Status = "compile_error"
	StatusRuntimeError        Status = "runtime_error"
	StatusTimeLimit           Status = "time_limit"
	StatusMemoryLimit         Status = "memory_limit"
	StatusNoResult            Status = "no_result"
	StatusUnsupportedLanguage Status = "unsupported_language"
	StatusInvalidRequest      Status = "invalid_request"
)

// Terminal reports whether the status describes a finished classification
// rather than the zero value of the type.
func (s Status) Terminal() bool { return s != "" }
