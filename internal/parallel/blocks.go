package parallel

// RowBlock is a contiguous, half-open span of scanline rows, [Start, End).
type RowBlock struct {
	Start, End int
}

// Len returns the number of rows covered by the block.
func (b RowBlock) Len() int {
	return b.End - b.Start
}

// RowBlocks partitions [0, height) into ceil(height/blockSize) contiguous
// blocks of at most blockSize rows each. Giving every block exclusive
// ownership of a row range is what lets Pass A distribute sprites across
// blocks in parallel without locking per-row state: two blocks never write
// the same row.
func RowBlocks(height, blockSize int) []RowBlock {
	if height <= 0 || blockSize <= 0 {
		return nil
	}

	count := (height + blockSize - 1) / blockSize
	blocks := make([]RowBlock, count)
	for i := range blocks {
		start := i * blockSize
		end := start + blockSize
		if end > height {
			end = height
		}
		blocks[i] = RowBlock{Start: start, End: end}
	}
	return blocks
}
