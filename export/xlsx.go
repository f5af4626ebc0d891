package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/teranos/brickxml/errors"
	"github.com/teranos/brickxml/inventory"
)

const (
	summarySheet = "Summary"
	itemsSheet   = "Items"
)

func writeXLSX(path string, s inventory.Stats) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return errors.Wrap(err, "failed to name summary sheet")
	}
	summary := [][]interface{}{
		{"Source", s.Source},
		{"Records", s.Records},
		{"Total physical pieces", s.TotalQuantity},
		{"Unique items", s.UniqueKeys},
		{"Unique colors", s.UniqueColors},
	}
	for i, row := range summary {
		if err := setRow(f, summarySheet, i+1, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(itemsSheet); err != nil {
		return errors.Wrap(err, "failed to create items sheet")
	}
	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := setRow(f, itemsSheet, 1, header); err != nil {
		return err
	}
	for i, b := range s.Buckets {
		row := []interface{}{b.Key.PartID, b.Key.Color, b.Quantity, b.Records}
		if err := setRow(f, itemsSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(err, "failed to save workbook")
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "failed to write %s row %d", sheet, row)
	}
	return nil
}
