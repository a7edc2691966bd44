package generator_test

import (
	"strings"
	"testing"

	"github.com/dububu/mediatools/pkg/generator"

	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	for style, styleText := range generator.Styles {
		for character, characterText := range generator.Characters {
			t.Run(style+"/"+character, func(t *testing.T) {
				prompt := generator.BuildPrompt("a picnic in the park", style, character)

				require.True(t, strings.HasPrefix(prompt, "a picnic in the park"))

				c := strings.Index(prompt, characterText)
				s := strings.Index(prompt, styleText)

				require.Positive(t, c)
				require.Greater(t, s, c)
			})
		}
	}
}

func TestBuildPromptFormat(t *testing.T) {
	prompt := generator.BuildPrompt("hello", "cozy", "bubu")

	require.Equal(t, "hello, featuring "+generator.Characters["bubu"]+", "+generator.Styles["cozy"]+", high quality, detailed", prompt)
}

func TestBuildPromptDefaults(t *testing.T) {
	prompt := generator.BuildPrompt("hello", "vaporwave", "totoro")

	require.Contains(t, prompt, generator.Styles["kawaii"])
	require.Contains(t, prompt, generator.Characters["both"])

	require.Equal(t, generator.BuildPrompt("hello", "kawaii", "both"), prompt)
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{"banner", "cozy", "kawaii", "product", "romantic", "social"}, generator.StyleNames())
	require.Equal(t, []string{"both", "bubu", "dudu"}, generator.CharacterNames())
}
