package export

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/teranos/brickxml/errors"
	"github.com/teranos/brickxml/inventory"
	"github.com/teranos/brickxml/logger"
)

// Header is the column layout of the item rows
var Header = []string{"part_id", "color", "quantity", "records"}

// Supported lists the recognized extensions
var Supported = []string{".csv", ".xlsx"}

// Rows flattens buckets into string rows matching Header
func Rows(buckets []inventory.Bucket) [][]string {
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{
			b.Key.PartID,
			b.Key.Color,
			strconv.Itoa(b.Quantity),
			strconv.Itoa(b.Records),
		})
	}
	return rows
}

// WriteStats exports s to path, picking the format from the extension
func WriteStats(path string, s inventory.Stats) error {
	ext := strings.ToLower(filepath.Ext(path))

	var err error
	switch ext {
	case ".csv":
		err = writeCSV(path, Rows(s.Buckets), true)
	case ".xlsx":
		err = writeXLSX(path, s)
	default:
		return errors.WithHintf(
			errors.NewInvalidRequestError("unsupported export format %q", ext),
			"use one of %s", strings.Join(Supported, ", "))
	}
	if err != nil {
		return errors.WrapWrite(err, path)
	}

	logger.ComponentLogger("export").Debugw("Exported stats",
		logger.FieldFile, path,
		logger.FieldUnique, len(s.Buckets))
	return nil
}
