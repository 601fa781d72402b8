package llm

import (
	"strings"

	"github.com/joseph-ayodele/specials-tracker/constants"
	"github.com/joseph-ayodele/specials-tracker/internal/entity"
)

// ExpandDays splits records whose day_of_week names a range, list or group of
// days into one record per full day name. Single days are canonicalized
// ("thurs" -> "Thursday"); values that are not recognizable days are kept as-is.
func ExpandDays(records []entity.SpecialRecord) []entity.SpecialRecord {
	out := make([]entity.SpecialRecord, 0, len(records))
	for _, r := range records {
		days, ok := constants.ExpandDays(r.DayOfWeek)
		if !ok {
			r.DayOfWeek = strings.TrimSpace(r.DayOfWeek)
			out = append(out, r)
			continue
		}
		for _, d := range days {
			cp := r
			cp.DayOfWeek = d
			out = append(out, cp)
		}
	}
	return out
}
