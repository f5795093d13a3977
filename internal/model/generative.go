package model

// GenerativeCreate is the input shape for the generative component endpoint.
// Persona and designer ids select the prompt presets; out-of-range ids fall
// back to the first preset.
type GenerativeCreate struct {
	UserPreferences string `json:"userPreferences"`
	PersonaID       int    `json:"personaId"`
	DesignerID      int    `json:"designerId"`
}

// GenerativeDetail carries the generated component together with the prompt
// that produced it.
type GenerativeDetail struct {
	UserPreferences string `json:"userPreferences"`
	RawComponent    string `json:"rawComponent"`
	PersonaID       int    `json:"personaId"`
	DesignerID      int    `json:"designerId"`
	GeneratedPrompt string `json:"generatedPrompt"`
}
