package collections

import "testing"

func TestBitset_Basic(t *testing.T) {
	b := NewBitset(100)

	b.Set(0)
	b.Set(50)
	b.Set(99)

	if b.Count() != 3 {
		t.Errorf("Expected count 3, got %d", b.Count())
	}
}

func TestBitset_Grow(t *testing.T) {
	b := NewBitset(64)

	b.Set(200)
	if b.Size() < 200 {
		t.Errorf("Expected size >= 200, got %d", b.Size())
	}
	if b.Count() != 1 {
		t.Errorf("Expected count 1 after grow, got %d", b.Count())
	}
}

func TestBitset_CountDuplicateSets(t *testing.T) {
	b := NewBitset(10)

	b.Set(3)
	b.Set(3)
	b.Set(7)

	if b.Count() != 2 {
		t.Errorf("Expected count 2 for duplicate sets, got %d", b.Count())
	}
}

func BenchmarkBitset_Set(b *testing.B) {
	bs := NewBitset(1000000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bs.Set(i % 1000000)
	}
}
