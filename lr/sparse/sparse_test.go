package sparse

import "testing"

func TestSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	if _, err := M.Set(2, 3, 4711); err != nil {
		t.Fatal(err)
	}
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	if v := M.Value(3, 2); v != M.NullValue() {
		t.Errorf("expected M(3,2) to be null, is %d", v)
	}
}

func TestOverwriteReturnsPrevious(t *testing.T) {
	M := NewIntMatrix(4, 4, -1)
	prev, _ := M.Set(1, 1, 7)
	if prev != -1 {
		t.Errorf("expected no previous value, got %d", prev)
	}
	prev, _ = M.Set(1, 1, 8)
	if prev != 7 {
		t.Errorf("expected previous value 7, got %d", prev)
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected 1 position set, have %d", M.ValueCount())
	}
}

func TestRowMajorOrder(t *testing.T) {
	M := NewIntMatrix(5, 5, -1)
	M.Set(3, 1, 31)
	M.Set(0, 4, 4)
	M.Set(3, 0, 30)
	M.Set(1, 2, 12)
	var got []int32
	M.Each(func(i, j int, v int32) {
		got = append(got, v)
	})
	want := []int32{4, 12, 30, 31}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for k := range want {
		if got[k] != want[k] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
	cols, vals := M.Row(3)
	if len(cols) != 2 || cols[0] != 0 || vals[1] != 31 {
		t.Errorf("unexpected row 3: %v / %v", cols, vals)
	}
}

func TestOutOfRange(t *testing.T) {
	M := NewIntMatrix(2, 2, -1)
	if _, err := M.Set(2, 0, 1); err == nil {
		t.Errorf("expected error for row index out of range")
	}
}
