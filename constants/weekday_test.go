package constants

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestExpandDays(t *testing.T) {
	weekdays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

	tests := []struct {
		in   string
		want []string
	}{
		{"Monday", []string{"Monday"}},
		{"mon", []string{"Monday"}},
		{"Thursdays", []string{"Thursday"}},
		{"Tues.", []string{"Tuesday"}},
		{"M-F", weekdays},
		{"Mon - Fri", weekdays},
		{"Monday–Friday", weekdays},
		{"Mon—Thu", []string{"Monday", "Tuesday", "Wednesday", "Thursday"}},
		{"Monday through Wednesday", []string{"Monday", "Tuesday", "Wednesday"}},
		{"Tue to Thu", []string{"Tuesday", "Wednesday", "Thursday"}},
		{"Fri-Mon", []string{"Friday", "Saturday", "Sunday", "Monday"}},
		{"Sat & Sun", []string{"Saturday", "Sunday"}},
		{"Mon, Wed and Fri", []string{"Monday", "Wednesday", "Friday"}},
		{"Tue/Thu", []string{"Tuesday", "Thursday"}},
		{"Mon-Wed, Fri", []string{"Monday", "Tuesday", "Wednesday", "Friday"}},
		{"Mon, Mon", []string{"Monday"}},
		{"Weekdays", weekdays},
		{"weekends", []string{"Saturday", "Sunday"}},
		{"Daily", Weekdays},
		{"Every Day", Weekdays},
		{"Weekdays & Sun", append(append([]string{}, weekdays...), "Sunday")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ExpandDays(tt.in)
			assert.True(t, ok)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExpandDays(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestExpandDaysUnrecognized(t *testing.T) {
	for _, in := range []string{"", "Happy Hour", "Game days", "Mon-Tue-Wed", "Monday-Funday"} {
		_, ok := ExpandDays(in)
		assert.False(t, ok, in)
	}
}

func TestCanonicalDay(t *testing.T) {
	d, ok := CanonicalDay("SAT")
	assert.True(t, ok)
	assert.Equal(t, "Saturday", d)

	_, ok = CanonicalDay("someday")
	assert.False(t, ok)
}
