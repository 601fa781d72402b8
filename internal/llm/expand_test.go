package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/specials-tracker/internal/entity"
)

func TestExpandDaysKeepsOrderAndFields(t *testing.T) {
	in := []entity.SpecialRecord{
		{DayOfWeek: "Sat & Sun", SpecialDetails: "brunch 10am-2pm", Price: "Varies"},
		{DayOfWeek: "fri", SpecialDetails: "fish fry", Price: "12.00"},
		{DayOfWeek: " Trivia night ", SpecialDetails: "free entry", Price: "Varies"},
	}

	got := ExpandDays(in)
	assert.Equal(t, []entity.SpecialRecord{
		{DayOfWeek: "Saturday", SpecialDetails: "brunch 10am-2pm", Price: "Varies"},
		{DayOfWeek: "Sunday", SpecialDetails: "brunch 10am-2pm", Price: "Varies"},
		{DayOfWeek: "Friday", SpecialDetails: "fish fry", Price: "12.00"},
		{DayOfWeek: "Trivia night", SpecialDetails: "free entry", Price: "Varies"},
	}, got)
}
