package tokenizer

import "testing"

func TestMergeTableLookup(t *testing.T) {
	m := newMergeTable(4)
	m.add(0, 1, 2, 0)
	m.add(0, 3, 4, 5)
	m.finalize()

	newID, priority, ok := m.lookup(0, 1)
	if !ok || newID != 2 || priority != 0 {
		t.Errorf("lookup(0,1) = (%d, %d, %v), want (2, 0, true)", newID, priority, ok)
	}

	newID, priority, ok = m.lookup(0, 3)
	if !ok || newID != 4 || priority != 5 {
		t.Errorf("lookup(0,3) = (%d, %d, %v), want (4, 5, true)", newID, priority, ok)
	}

	if _, _, ok := m.lookup(0, 2); ok {
		t.Error("lookup(0,2) should miss: no such rule")
	}
	if _, _, ok := m.lookup(1, 1); ok {
		t.Error("lookup(1,1) should miss: row 1 is empty")
	}
}

func TestMergeTableOutOfRange(t *testing.T) {
	m := newMergeTable(2)
	if _, _, ok := m.lookup(-1, 0); ok {
		t.Error("lookup with negative left should miss")
	}
	if _, _, ok := m.lookup(100, 0); ok {
		t.Error("lookup with out-of-range left should miss")
	}
}

func TestMergeTableRowOrdering(t *testing.T) {
	m := newMergeTable(1)
	m.add(0, 9, 100, 2)
	m.add(0, 1, 101, 0)
	m.add(0, 5, 102, 1)
	m.finalize()

	row := m.rows[0]
	for i := 1; i < len(row); i++ {
		if row[i-1].rightID >= row[i].rightID {
			t.Fatalf("row not strictly ascending at %d: %v", i, row)
		}
	}
}

func TestMergeTableGrow(t *testing.T) {
	m := newMergeTable(1)
	m.grow(5)
	if len(m.rows) != 5 {
		t.Fatalf("grow(5) left %d rows, want 5", len(m.rows))
	}
	m.add(4, 1, 2, 0)
	m.finalize()
	if _, _, ok := m.lookup(4, 1); !ok {
		t.Error("lookup after grow should find the newly added row")
	}
}
