package llm

// BuildSpecialsJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// Used locally to validate the sanitized model output.
func BuildSpecialsJSONSchema() map[string]any {
	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"day_of_week":     map[string]any{"type": "string", "minLength": 1},
			"special_details": map[string]any{"type": "string", "minLength": 1},
			"price":           priceProp(),
		},
		"required": []string{"day_of_week", "special_details", "price"},
	}
	return map[string]any{
		"type":  "array",
		"items": item,
	}
}

func priceProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^(Varies|\d+\.\d{2})$`,
	}
}
