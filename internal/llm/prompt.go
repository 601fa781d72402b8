package llm

import (
	"strings"
)

// BuildExtractionPrompt returns the fixed instruction block sent with every source.
// The wording does not depend on the source kind.
func BuildExtractionPrompt() string {
	parts := []string{
		"You are a data extraction function, not a conversational assistant.",
		"Extract every daily special, drink special and happy hour from the content provided.",
		"Return ONLY a JSON array. Each element is an object with exactly these string fields: " +
			`"day_of_week", "special_details", "price".`,
		`Schema: [{"day_of_week": "Monday", "special_details": "...", "price": "..."}]`,
		"For 'special_details', keep the specifics: times, exact discounts, sizes and item names.",
		`For 'price', use a decimal number like "4.00" when one specific price applies; otherwise use the literal "Varies".`,
		"'day_of_week' must be one full English day name (Monday through Sunday).",
		"MANDATORY: a deal that spans a range or list of days (for example \"M-F\", \"Mon-Thu\", \"Sat & Sun\", \"Weekdays\", \"Daily\") " +
			"must be split into one object per individual day, each repeating the same special_details and price.",
		"If there are no specials, return [].",
		"Do not add commentary or markdown fences.",
	}
	return strings.Join(parts, "\n")
}

// BuildTextPrompt appends the raw source text verbatim after the instructions.
func BuildTextPrompt(text string) string {
	var b strings.Builder
	b.WriteString(BuildExtractionPrompt())
	b.WriteString("\n\nRAW TEXT:\n")
	b.WriteString(text)
	return b.String()
}

// BuildImagePrompt is sent as the text part next to an attached menu image.
func BuildImagePrompt() string {
	return BuildExtractionPrompt() + "\n\nThe content is the attached image of a menu or specials board."
}
