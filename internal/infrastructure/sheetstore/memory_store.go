package sheetstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-process RowStore with the same row semantics as the
// DynamoDB backend. It backs repository tests and local runs without AWS.

type MemoryStore struct {
	mu     sync.Mutex
	sheets map[string][][]string
}

var _ RowStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sheets: make(map[string][][]string)}
}

func (s *MemoryStore) GetRows(_ context.Context, sheet string) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]Row, 0, len(s.sheets[sheet]))
	for i, cells := range s.sheets[sheet] {
		copied := make([]string, len(cells))
		copy(copied, cells)
		rows = append(rows, Row{Index: i + DataStartRow, Cells: copied})
	}
	return rows, nil
}

func (s *MemoryStore) AppendRows(_ context.Context, sheet string, values [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cells := range values {
		copied := make([]string, len(cells))
		copy(copied, cells)
		s.sheets[sheet] = append(s.sheets[sheet], copied)
	}
	return nil
}

func (s *MemoryStore) UpdateRange(_ context.Context, sheet string, rowIndex, startCol int, cells []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := rowIndex - DataStartRow
	if idx < 0 || idx >= len(s.sheets[sheet]) {
		return ErrRowNotFound
	}

	s.sheets[sheet][idx] = patchCells(s.sheets[sheet][idx], startCol, cells)
	return nil
}

func (s *MemoryStore) ClearRange(ctx context.Context, sheet string, rowIndex, width int) error {
	return s.UpdateRange(ctx, sheet, rowIndex, 0, make([]string, width))
}
