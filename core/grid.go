package core

// Index maps (r, c) coordinates to a row-major cell index.
func (t *Table) Index(r, c int) int {
	return r*t.cols + c
}

// Coord converts a row-major cell index back to (r, c) coordinates.
func (t *Table) Coord(idx int) (r, c int) {
	return idx / t.cols, idx % t.cols
}

// IsBorder reports whether (r, c) lies in the last row or last column.
func (t *Table) IsBorder(r, c int) bool {
	return r == t.rows-1 || c == t.cols-1
}

// North returns the index of the cell one row up from idx.
func (t *Table) North(idx int) int {
	return idx - t.cols
}

// South returns the index of the cell one row down from idx.
func (t *Table) South(idx int) int {
	return idx + t.cols
}

// East returns the index of the cell one column right of idx.
func (t *Table) East(idx int) int {
	return idx + 1
}

// West returns the index of the cell one column left of idx.
func (t *Table) West(idx int) int {
	return idx - 1
}

// SouthEast returns the index of the cell diagonally down-right of idx.
func (t *Table) SouthEast(idx int) int {
	return t.South(idx) + 1
}
