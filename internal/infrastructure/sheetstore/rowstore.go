package sheetstore

import (
	"context"
	"errors"
)

// ErrRowNotFound reports an update aimed at a physical row that does not
// exist in the sheet.
var ErrRowNotFound = errors.New("row not found")

// Row is one physical data row of a sheet. Index is the 1-based sheet row;
// data always starts at row 2 because row 1 holds the legacy header.
type Row struct {
	Index int
	Cells []string
}

// RowStore is the append-only row grid the whole service persists into.
//
// The contract mirrors the spreadsheet the shop migrated from:
//   - rows are positional string cells with no schema
//   - appends go to the end of the sheet
//   - clearing a row blanks its cells but keeps the slot, so the positions
//     of every other row stay stable
//   - there are no transactions and no locking; read-then-write sequences
//     are best effort
type RowStore interface {
	// GetRows returns every data row of the sheet in physical order,
	// including blanked rows left behind by ClearRange.
	GetRows(ctx context.Context, sheet string) ([]Row, error)

	// AppendRows writes the given rows after the last existing row.
	AppendRows(ctx context.Context, sheet string, rows [][]string) error

	// UpdateRange overwrites len(cells) cells of one row starting at
	// startCol (0-based). Cells outside the range are untouched.
	UpdateRange(ctx context.Context, sheet string, rowIndex, startCol int, cells []string) error

	// ClearRange blanks the first width cells of a row without removing it.
	ClearRange(ctx context.Context, sheet string, rowIndex, width int) error
}

// DataStartRow is the first physical row holding data.
const DataStartRow = 2

// patchCells overwrites len(cells) cells of a row starting at startCol,
// growing the row when the range extends past its end. Legacy rows are often
// shorter than the current column contract, so a ranged write must pad
// rather than let the new cells land at the wrong positions. Cells outside
// the range keep their values.
func patchCells(row []string, startCol int, cells []string) []string {
	out := make([]string, len(row))
	copy(out, row)

	if need := startCol + len(cells); need > len(out) {
		grown := make([]string, need)
		copy(grown, out)
		out = grown
	}
	copy(out[startCol:], cells)
	return out
}
