package execution

import "fmt"

// Language identifies a supported target language.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageJava       Language = "java"
	LanguageCPP        Language = "cpp"
)

// Supported lists the language identifiers the engine can dispatch on.
func Supported() []Language {
	return []Language{LanguagePython, LanguageJavaScript, LanguageJava, LanguageCPP}
}

// ParseLanguage validates a raw identifier.
func ParseLanguage(raw string) (Language, error) {
	lang := Language(raw)
	for _, known := range Supported() {
		if lang == known {
			return lang, nil
		}
	}
	return "", &UnsupportedLanguageError{Language: lang}
}

// UnsupportedLanguageError reports a language identifier with no registered executor.
type UnsupportedLanguageError struct {
	Language Language
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q", string(e.Language))
}
