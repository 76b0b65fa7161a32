package fp

func checkMatrix(m Matrix) {
	cols, rows := m.Cols(), m.Rows()
	if cols < 2 || cols > 4 || rows < 2 || rows > 4 {
		panic("fp: matrix must have 2 to 4 columns and rows")
	}
	for _, c := range m {
		if len(c) != rows {
			panic("fp: ragged matrix")
		}
	}
}

// minor returns m without column col and row row.
func minor(m Matrix, col, row int) Matrix {
	out := make(Matrix, 0, len(m)-1)
	for c := range m {
		if c == col {
			continue
		}
		v := make([]Interval, 0, len(m[c])-1)
		for r := range m[c] {
			if r != row {
				v = append(v, m[c][r])
			}
		}
		out = append(out, v)
	}
	return out
}

func (t *Traits) determinant(m Matrix) Interval {
	if len(m) == 2 {
		return t.SubtractionInterval(
			t.MultiplicationInterval(m[0][0], m[1][1]),
			t.MultiplicationInterval(m[0][1], m[1][0]))
	}

	// Cofactor expansion down the first column.
	terms := make([]Interval, len(m))
	for r := range m[0] {
		e := m[0][r]
		if r%2 == 1 {
			e = t.NegationInterval(e)
		}
		terms[r] = t.MultiplicationInterval(e, t.determinant(minor(m, 0, r)))
	}
	return t.sumPermutations(terms)
}

// DeterminantInterval returns the determinant of a square matrix by cofactor
// expansion, with the cofactor sums taken in every order.
func (t *Traits) DeterminantInterval(m Matrix) Interval {
	checkMatrix(m)
	if m.Cols() != m.Rows() {
		panic("fp: determinant of a non-square matrix")
	}
	m = t.ToMatrix(m)
	if !m.IsFinite() {
		return t.unbounded
	}
	return t.finiteOrUnbounded(t.determinant(m))
}

// TransposeInterval returns the transpose of m, each element correctly
// rounded.
func (t *Traits) TransposeInterval(m Matrix) Matrix {
	checkMatrix(m)
	tr := make(Matrix, m.Rows())
	for r := range tr {
		tr[r] = make([]Interval, m.Cols())
		for c := range m {
			tr[r][c] = m[c][r]
		}
	}
	return t.ScalarToMatrix(tr, t.CorrectlyRoundedInterval)
}

func (t *Traits) AdditionMatrixMatrixInterval(x, y Matrix) Matrix {
	checkMatrix(x)
	return t.ScalarPairToMatrix(x, y, t.AdditionInterval)
}

func (t *Traits) SubtractionMatrixMatrixInterval(x, y Matrix) Matrix {
	checkMatrix(x)
	return t.ScalarPairToMatrix(x, y, t.SubtractionInterval)
}

// MultiplicationMatrixMatrixInterval returns the product of a matCxR x and a
// matKxC y, a matKxR. Each element is the dot product of a row of x and a
// column of y.
func (t *Traits) MultiplicationMatrixMatrixInterval(x, y Matrix) Matrix {
	checkMatrix(x)
	checkMatrix(y)
	if x.Cols() != y.Rows() {
		panic("fp: matrix product of incompatible shapes")
	}

	rows := t.TransposeInterval(x)
	out := make(Matrix, y.Cols())
	for c := range out {
		out[c] = make([]Interval, x.Rows())
		for r := range out[c] {
			out[c][r] = t.DotInterval(rows[r], y[c])
			if !out[c][r].IsFinite() {
				return t.UnboundedMatrix(y.Cols(), x.Rows())
			}
		}
	}
	return out
}

func (t *Traits) MultiplicationMatrixScalarInterval(m Matrix, s Interval) Matrix {
	checkMatrix(m)
	return t.ScalarToMatrix(m, func(e Interval) Interval {
		return t.MultiplicationInterval(e, s)
	})
}

func (t *Traits) MultiplicationScalarMatrixInterval(s Interval, m Matrix) Matrix {
	checkMatrix(m)
	return t.ScalarToMatrix(m, func(e Interval) Interval {
		return t.MultiplicationInterval(s, e)
	})
}

// MultiplicationMatrixVectorInterval returns m * v, where v has one component
// per column of m.
func (t *Traits) MultiplicationMatrixVectorInterval(m Matrix, v Vector) Vector {
	checkMatrix(m)
	if len(v) != m.Cols() {
		panic("fp: matrix vector product of incompatible shapes")
	}

	rows := t.TransposeInterval(m)
	out := make(Vector, len(rows))
	for r := range rows {
		out[r] = t.DotInterval(rows[r], v)
		if !out[r].IsFinite() {
			return t.UnboundedVector(len(rows))
		}
	}
	return out
}

// MultiplicationVectorMatrixInterval returns v * m, where v has one component
// per row of m.
func (t *Traits) MultiplicationVectorMatrixInterval(v Vector, m Matrix) Vector {
	checkMatrix(m)
	if len(v) != m.Rows() {
		panic("fp: vector matrix product of incompatible shapes")
	}

	out := make(Vector, m.Cols())
	for c := range m {
		out[c] = t.DotInterval(v, m[c])
		if !out[c].IsFinite() {
			return t.UnboundedVector(m.Cols())
		}
	}
	return out
}
