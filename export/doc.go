// Package export writes manifest statistics to spreadsheet formats.
//
// The format follows the file extension:
//
//	.csv   one row per part/color with a header, UTF-8 BOM prefixed for Excel
//	.xlsx  a "Summary" sheet with the totals and an "Items" sheet with the rows
package export
