package layout

// Trace collects the characters placed on each shelf row of a plan.
// It is passed explicitly through Options so concurrent builds never
// share state. The zero value is ready to use; a nil *Trace records
// nothing.
type Trace struct {
	Rows [][]rune
}

func (t *Trace) place(row int, r rune) {
	if t == nil {
		return
	}
	for len(t.Rows) <= row {
		t.Rows = append(t.Rows, nil)
	}
	t.Rows[row] = append(t.Rows[row], r)
}

// Row returns the characters of row i as a string.
func (t *Trace) Row(i int) string {
	if t == nil || i < 0 || i >= len(t.Rows) {
		return ""
	}
	return string(t.Rows[i])
}
