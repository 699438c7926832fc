package catalog

import "fmt"

// Language identifies a supported output language.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
	LanguageMarathi Language = "marathi"
)

// DefaultLanguage is used when a request does not specify a language.
const DefaultLanguage = LanguageEnglish

// Languages returns all supported languages in display order.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageHindi, LanguageMarathi}
}

// ParseLanguage validates a language key. An empty key resolves to
// DefaultLanguage; an unrecognized key is an error.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case "":
		return DefaultLanguage, nil
	case LanguageEnglish, LanguageHindi, LanguageMarathi:
		return Language(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
}

// DisplayName returns the native-script label shown to users.
func (l Language) DisplayName() string {
	switch l {
	case LanguageHindi:
		return "हिंदी (Hindi)"
	case LanguageMarathi:
		return "मराठी (Marathi)"
	default:
		return "English"
	}
}

// PromptName returns the plain English label used in generation prompts.
func (l Language) PromptName() string {
	switch l {
	case LanguageHindi:
		return "Hindi"
	case LanguageMarathi:
		return "Marathi"
	default:
		return "English"
	}
}
