package venues

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/specials-tracker/internal/common"
	"github.com/joseph-ayodele/specials-tracker/internal/entity"
)

// LoadXLSX reads the first sheet of a workbook with a header row containing
// "name" and "url" columns and an optional "kind" column. Rows sharing a name
// become sources of one venue, in first-seen order.
func LoadXLSX(path string) ([]entity.Venue, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, common.WrapError(err, "open venues workbook")
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	nameCol, urlCol, kindCol := -1, -1, -1
	for i, h := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "venue", "bar_name":
			nameCol = i
		case "url", "source", "source_url":
			urlCol = i
		case "kind", "type":
			kindCol = i
		}
	}
	if nameCol < 0 || urlCol < 0 {
		return nil, fmt.Errorf("sheet %q: header must contain name and url columns", sheet)
	}

	var specs []VenueSpec
	index := map[string]int{}
	for _, row := range rows[1:] {
		name := cell(row, nameCol)
		u := cell(row, urlCol)
		if name == "" && u == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(specs)
			index[name] = i
			specs = append(specs, VenueSpec{Name: name})
		}
		specs[i].Sources = append(specs[i].Sources, SourceSpec{URL: u, Kind: cell(row, kindCol)})
	}
	return Build(specs)
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
