package config

// Model identifies a Gemini model the suggestion endpoint can use.
type Model string

const (
	ModelGeminiV25Pro       Model = "gemini-2.5-pro"
	ModelGeminiV25Flash     Model = "gemini-2.5-flash"
	ModelGeminiV25FlashLite Model = "gemini-2.5-flash-lite"
)

// SupportedModels lists the models a caller may select for fix suggestions.
func SupportedModels() []Model {
	return []Model{
		ModelGeminiV25Flash,
		ModelGeminiV25Pro,
		ModelGeminiV25FlashLite,
	}
}

// DefaultModel is applied when a request omits the model identifier.
func DefaultModel() Model {
	return ModelGeminiV25Flash
}

// IsSupportedModel reports whether name is in the catalog.
func IsSupportedModel(name string) bool {
	for _, m := range SupportedModels() {
		if string(m) == name {
			return true
		}
	}
	return false
}
