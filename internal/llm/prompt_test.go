package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt(t *testing.T) {
	p := BuildExtractionPrompt()
	for _, want := range []string{
		"data extraction function",
		`"day_of_week", "special_details", "price"`,
		`"Varies"`,
		"one object per individual day",
	} {
		assert.Contains(t, p, want)
	}
}

func TestBuildTextPromptAppendsRawTextVerbatim(t *testing.T) {
	text := "Taco Tuesday  $2 tacos\n\tall day"
	p := BuildTextPrompt(text)
	assert.True(t, strings.HasPrefix(p, BuildExtractionPrompt()))
	assert.True(t, strings.HasSuffix(p, text))
}

func TestBuildImagePromptSharesInstructions(t *testing.T) {
	assert.True(t, strings.HasPrefix(BuildImagePrompt(), BuildExtractionPrompt()))
}
