package venues

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/specials-tracker/constants"
	"github.com/joseph-ayodele/specials-tracker/internal/common"
	"github.com/joseph-ayodele/specials-tracker/internal/entity"
)

func TestLoadYAML(t *testing.T) {
	data := []byte(`
venues:
  - name: Tavern
    urls:
      - https://tavern.com/specials
      - https://tavern.com/menu.pdf
  - name: Cafe
    sources:
      - url: https://cdn.cafe.com/asset?id=1
        kind: image
`)
	got, err := Load(data, ".yml")
	require.NoError(t, err)

	want := []entity.Venue{
		{Name: "Tavern", Sources: []entity.Source{{URL: "https://tavern.com/specials"}, {URL: "https://tavern.com/menu.pdf"}}},
		{Name: "Cafe", Sources: []entity.Source{{URL: "https://cdn.cafe.com/asset?id=1", Kind: constants.Image}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, constants.PdfDocument, got[0].Sources[1].ResolveKind())
}

func TestLoadJSONDetectedFromContent(t *testing.T) {
	data := []byte(`{"venues":[{"name":" Pub ","urls":["https://pub.com/"]}]}`)
	got, err := Load(data, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pub", got[0].Name)
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]string{
		"empty list":   `venues: []`,
		"missing name": "venues:\n  - urls: [https://a.com]\n",
		"no sources":   "venues:\n  - name: A\n",
		"bad url":      "venues:\n  - name: A\n    urls: [ftp://a.com/x]\n",
		"relative url": "venues:\n  - name: A\n    urls: [/specials]\n",
		"bad kind":     "venues:\n  - name: A\n    sources:\n      - url: https://a.com\n        kind: video\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(doc), ".yaml")
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load([]byte("name,url"), ".csv")
	assert.Error(t, err)
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venues.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Name", "URL", "Kind"},
		{"Tavern", "https://tavern.com/specials", ""},
		{"Cafe", "https://cafe.com/board", "image"},
		{"", "", ""},
		{"Tavern", "https://tavern.com/menu.pdf", ""},
	}
	for i, r := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &r))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	got, err := LoadFromPath(path)
	require.NoError(t, err)

	want := []entity.Venue{
		{Name: "Tavern", Sources: []entity.Source{{URL: "https://tavern.com/specials"}, {URL: "https://tavern.com/menu.pdf"}}},
		{Name: "Cafe", Sources: []entity.Source{{URL: "https://cafe.com/board", Kind: constants.Image}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadXLSX() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadXLSXMissingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venues.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A1", &[]any{"bar", "link"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := LoadFromPath(path)
	assert.ErrorContains(t, err, "header must contain name and url")
}

func TestBundledVenues(t *testing.T) {
	got, err := LoadFromPath(filepath.Join("..", "..", "configs", "venues.yaml"))
	require.NoError(t, err)
	require.Len(t, got, 10)

	byName := map[string]entity.Venue{}
	for _, v := range got {
		byName[v.Name] = v
	}
	assert.Len(t, byName["The Nitty Gritty"].Sources, 2)
	require.Len(t, byName["RED"].Sources, 1)
	assert.Equal(t, constants.PdfDocument, byName["RED"].Sources[0].ResolveKind())
	assert.Equal(t, constants.WebPage, byName["Cento"].Sources[0].ResolveKind())
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, "read venues")

	_, err = LoadFromPath(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.ErrorContains(t, err, "open venues workbook")
}
