package parallel

import "testing"

func TestRowBlocks_EvenDivision(t *testing.T) {
	blocks := RowBlocks(16, 8)
	want := []RowBlock{{0, 8}, {8, 16}}
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(want))
	}
	for i, b := range blocks {
		if b != want[i] {
			t.Errorf("block %d = %+v, want %+v", i, b, want[i])
		}
	}
}

func TestRowBlocks_UnevenLastBlockTruncated(t *testing.T) {
	blocks := RowBlocks(10, 8)
	want := []RowBlock{{0, 8}, {8, 10}}
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(want))
	}
	for i, b := range blocks {
		if b != want[i] {
			t.Errorf("block %d = %+v, want %+v", i, b, want[i])
		}
	}
	if blocks[1].Len() != 2 {
		t.Errorf("last block Len() = %d, want 2", blocks[1].Len())
	}
}

func TestRowBlocks_CoversEveryRowExactlyOnce(t *testing.T) {
	const height = 37
	blocks := RowBlocks(height, 8)

	seen := make([]bool, height)
	for _, b := range blocks {
		for y := b.Start; y < b.End; y++ {
			if seen[y] {
				t.Fatalf("row %d covered by more than one block", y)
			}
			seen[y] = true
		}
	}
	for y, ok := range seen {
		if !ok {
			t.Errorf("row %d not covered by any block", y)
		}
	}
}

func TestRowBlocks_InvalidInputs(t *testing.T) {
	if got := RowBlocks(0, 8); got != nil {
		t.Errorf("RowBlocks(0, 8) = %v, want nil", got)
	}
	if got := RowBlocks(8, 0); got != nil {
		t.Errorf("RowBlocks(8, 0) = %v, want nil", got)
	}
}
