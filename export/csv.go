package export

import (
	"bufio"
	"encoding/csv"
	"os"

	"github.com/teranos/brickxml/am"
	"github.com/teranos/brickxml/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// writeCSV writes Header and rows to path, optionally prefixed with a UTF-8
// BOM so Excel detects the encoding.
func writeCSV(path string, rows [][]string, bom bool) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, am.DefaultFilePermissions)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	if bom {
		if _, err := buf.Write(utf8BOM); err != nil {
			return errors.Wrap(err, "failed to write BOM")
		}
	}

	writer := csv.NewWriter(buf)
	if err := writer.Write(Header); err != nil {
		return errors.Wrap(err, "failed to write headers")
	}
	for i, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write record %d", i)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	return file.Close()
}
