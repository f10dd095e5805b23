package sheetstore

import "testing"

func TestPatchCells(t *testing.T) {
	t.Run("within the row", func(t *testing.T) {
		got := patchCells([]string{"a", "b", "c", "d"}, 1, []string{"B", "C"})
		want := []string{"a", "B", "C", "d"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("cell %d = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("legacy short row is padded to the target column", func(t *testing.T) {
		// A status write at column 12 against a row with only 10 cells must
		// land at index 12, not wherever the row happens to end.
		row := make([]string, 10)
		row[0] = "01-01-2025 10:00:00"
		row[1] = "7"

		got := patchCells(row, 12, []string{"Arquivado"})
		if len(got) != 13 {
			t.Fatalf("expected 13 cells, got %d", len(got))
		}
		if got[12] != "Arquivado" {
			t.Fatalf("expected status at column 12, got %+v", got)
		}
		for i := 2; i < 12; i++ {
			if got[i] != "" {
				t.Fatalf("cell %d should stay blank, got %q", i, got[i])
			}
		}
		if got[0] != "01-01-2025 10:00:00" || got[1] != "7" {
			t.Fatalf("cells outside the range changed: %+v", got)
		}
	})

	t.Run("does not mutate the input row", func(t *testing.T) {
		row := []string{"a", "b"}
		_ = patchCells(row, 1, []string{"B"})
		if row[1] != "b" {
			t.Fatalf("input row mutated: %+v", row)
		}
	})
}
