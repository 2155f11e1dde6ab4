package export

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"itmagazines/internal"
	"itmagazines/internal/util"
)

var xlsxHeaders = []string{
	"name", "number", "price", "price_yen", "release_date", "url", "top_outlines", "store_links",
}

// RecordsToXLSX writes one row per record to the first sheet of a new
// workbook. Topics and store links are newline-separated within their cells.
func RecordsToXLSX(records []internal.MagazineRecord, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range records {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, rec.Name)
		set(2, rec.Number)
		set(3, rec.Price)
		set(4, priceYen(rec.Price))
		set(5, rec.ReleaseDate)
		set(6, rec.URL)
		set(7, strings.Join(rec.TopOutlines, "\n"))
		set(8, joinStoreLinks(rec.StoreLinks))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func priceYen(price string) any {
	if v, ok := util.ParseYen(price); ok {
		return v
	}
	return ""
}

func joinStoreLinks(links []internal.StoreLink) string {
	lines := make([]string, 0, len(links))
	for _, l := range links {
		lines = append(lines, l.Name+" "+l.URL)
	}
	return strings.Join(lines, "\n")
}
