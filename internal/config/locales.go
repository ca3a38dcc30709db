package config

const (
	LangEN = "en"
	LangES = "es"
)

// NormalizeLanguage maps unsupported language codes to English.
func NormalizeLanguage(lang string) string {
	switch lang {
	case LangEN, LangES:
		return lang
	default:
		return LangEN
	}
}
