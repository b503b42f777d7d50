package tokenizer

import "sort"

// mergeItem is one entry of a merge row: adjacent tokens (left, right)
// collapse into newID at the given priority.
type mergeItem struct {
	rightID  int32
	newID    int32
	priority int32
}

// mergeTable is indexed by left token id; each row is kept sorted by
// rightID so lookups are a binary search rather than a linear scan.
// This is the data structure the spec's merge-row-ordering invariant
// talks about — a generalization of the teacher's flat
// map["L R"]rank lookup (model/vocabulary.go: Merge) into an
// indexed-array-plus-binary-search form.
type mergeTable struct {
	rows [][]mergeItem
}

func newMergeTable(size int) *mergeTable {
	return &mergeTable{rows: make([][]mergeItem, size)}
}

// grow extends the row slice to at least size rows, so that every left
// id below size is a valid index.
func (m *mergeTable) grow(size int) {
	if size <= len(m.rows) {
		return
	}
	next := make([][]mergeItem, size)
	copy(next, m.rows)
	m.rows = next
}

// add appends an unsorted entry to the row for left. Call finalize
// once all entries have been added to sort every row.
func (m *mergeTable) add(left, right, newID, priority int32) {
	m.rows[left] = append(m.rows[left], mergeItem{rightID: right, newID: newID, priority: priority})
}

// finalize sorts every row by rightID, enabling binary search. Rows are
// strictly ascending when each (left, right) pair was added once; a
// pair added more than once keeps every copy, and lookup may then
// return any of them.
func (m *mergeTable) finalize() {
	for i, row := range m.rows {
		if len(row) < 2 {
			continue
		}
		sort.Slice(row, func(a, b int) bool { return row[a].rightID < row[b].rightID })
		m.rows[i] = row
	}
}

// lookup returns the merge rule for (left, right), if one exists.
func (m *mergeTable) lookup(left, right int32) (newID int32, priority int32, ok bool) {
	if left < 0 || int(left) >= len(m.rows) {
		return 0, 0, false
	}
	row := m.rows[left]
	i := sort.Search(len(row), func(i int) bool { return row[i].rightID >= right })
	if i >= len(row) || row[i].rightID != right {
		return 0, 0, false
	}
	return row[i].newID, row[i].priority, true
}
