package reference

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cropadvisor/entities"
)

func TestLoad_ShippedTable(t *testing.T) {
	tbl, err := Load("../../../data/fertilizer.csv")
	require.NoError(t, err)

	assert.Equal(t, 22, tbl.Len())
	rice, ok := tbl.Lookup("rice")
	require.True(t, ok)
	assert.Equal(t, entities.CropReference{Crop: "rice", N: 80, P: 40, K: 40}, rice)
}

func TestReadCSV_HeaderAliasesAndBOM(t *testing.T) {
	in := "\uFEFFcrop_name, Nitrogen ,phosphorus,POTASSIUM\n Maize ,80,40,20\n,1,2,3\nKidney Beans,20,60.5,20\n"
	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	m, ok := tbl.Lookup("MAIZE")
	require.True(t, ok)
	assert.Equal(t, "Maize", m.Crop)
	assert.Equal(t, 80.0, m.N)

	kb, ok := tbl.Lookup("kidney beans")
	require.True(t, ok)
	assert.Equal(t, 60.5, kb.P)

	assert.Equal(t, []string{"Kidney Beans", "Maize"}, tbl.Crops())
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "empty"},
		{"missing column", "Crop,N,P\nrice,1,2\n", "missing required columns"},
		{"bad number", "Crop,N,P,K\nrice,eighty,40,40\n", `N for "rice"`},
		{"duplicate", "Crop,N,P,K\nrice,1,2,3\nRice,4,5,6\n", "listed twice"},
		{"header only", "Crop,N,P,K\n", "no crops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.in))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fertilizer.xlsx")
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	rows := [][]any{
		{"Crop", "N", "P", "K"},
		{"coffee", 100, 20, 30},
		{"orange", 20, 10, 10},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, x.SetSheetRow(sheet, cell, &r))
	}
	require.NoError(t, x.SaveAs(path))
	require.NoError(t, x.Close())

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
	c, ok := tbl.Lookup("Coffee")
	require.True(t, ok)
	assert.Equal(t, entities.CropReference{Crop: "coffee", N: 100, P: 20, K: 30}, c)
}

func TestCropsReturnsCopy(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("Crop,N,P,K\nrice,1,2,3\n"))
	require.NoError(t, err)
	c := tbl.Crops()
	c[0] = "changed"
	assert.Equal(t, []string{"rice"}, tbl.Crops())
}
