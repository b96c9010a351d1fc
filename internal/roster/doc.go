// Package roster loads character roster tables and derives the frequency
// tables and count matrices reported on by the roster report.
//
// A Table holds raw cell strings. Cells that a spreadsheet export would
// leave blank or mark as not-available ("", "NA", "null", ...) are null and
// never counted.
package roster

// Column names used by the roster report.
const (
	ColumnRace       = "Race"
	ColumnClass      = "Class"
	ColumnSubclass   = "Subclass"
	ColumnPopularity = "Popularity"
)
