package generator

import (
	"maps"
	"slices"
)

const (
	DefaultStyle     = "kawaii"
	DefaultCharacter = "both"
)

// Styles holds prompt modifiers that keep the brand look consistent.
var Styles = map[string]string{
	"kawaii":   "kawaii style, cute, pastel colors, soft lighting, adorable, chibi",
	"product":  "product photography, white background, professional, clean, e-commerce",
	"social":   "vibrant, eye-catching, social media style, modern, trendy",
	"banner":   "wide format, promotional, bold text space, gradient background",
	"romantic": "soft pink tones, hearts, romantic atmosphere, dreamy, love theme",
	"cozy":     "warm lighting, comfortable, homey, soft textures, inviting",
}

var Characters = map[string]string{
	"bubu": "cute brown teddy bear character, round face, small ears, friendly expression",
	"dudu": "adorable white panda character, black and white, gentle expression, cute",
	"both": "cute bear and panda couple, brown teddy bear and white panda together, adorable duo",
}

// BuildPrompt appends the character and style descriptors to base. Unknown
// keys fall back to DefaultCharacter and DefaultStyle.
func BuildPrompt(base, style, character string) string {
	styleText, ok := Styles[style]

	if !ok {
		styleText = Styles[DefaultStyle]
	}

	characterText, ok := Characters[character]

	if !ok {
		characterText = Characters[DefaultCharacter]
	}

	return base + ", featuring " + characterText + ", " + styleText + ", high quality, detailed"
}

func StyleNames() []string {
	return slices.Sorted(maps.Keys(Styles))
}

func CharacterNames() []string {
	return slices.Sorted(maps.Keys(Characters))
}
