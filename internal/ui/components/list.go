package components

// List tracks a cursor and scroll window over n rows. The rows themselves
// stay with the caller.
type List struct {
	n        int
	Cursor   int
	Offset   int
	PageSize int
}

// NewList creates a list with the given page size.
func NewList(pageSize int) *List {
	if pageSize < 1 {
		pageSize = 1
	}
	return &List{PageSize: pageSize}
}

// SetLen replaces the row count, keeping the cursor in range.
func (l *List) SetLen(n int) {
	l.n = max(n, 0)
	if l.Cursor >= l.n {
		l.Cursor = max(l.n-1, 0)
	}
	if l.Offset > l.Cursor {
		l.Offset = l.Cursor
	}
}

// Reset moves the cursor back to the first row.
func (l *List) Reset() {
	l.Cursor = 0
	l.Offset = 0
}

// Len returns the row count.
func (l *List) Len() int {
	return l.n
}

// Down moves the cursor down.
func (l *List) Down() {
	if l.Cursor < l.n-1 {
		l.Cursor++
		if l.Cursor >= l.Offset+l.PageSize {
			l.Offset++
		}
	}
}

// Up moves the cursor up.
func (l *List) Up() {
	if l.Cursor > 0 {
		l.Cursor--
		if l.Cursor < l.Offset {
			l.Offset--
		}
	}
}

// Window returns the [start, end) range of visible rows.
func (l *List) Window() (int, int) {
	return l.Offset, min(l.Offset+l.PageSize, l.n)
}

// Selected returns the index of the selected row, or -1 when empty.
func (l *List) Selected() int {
	if l.n == 0 {
		return -1
	}
	return l.Cursor
}
