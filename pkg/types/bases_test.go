package types

import (
	"errors"
	"testing"
)

// validBaseSet returns a BaseSet that satisfies all invariants.
func validBaseSet() BaseSet {
	b := BaseSet{
		Base1: [7]int{1, 2, 3, 4, 5, 6, 7},
		Base2: [7]int{3, 4, 5, 6, 7, 1, 2},
		Base3: [7]int{5, 6, 7, 1, 2, 3, 4},
	}
	for i := 0; i < PositionCount; i++ {
		b.Base4[i] = b.Base1[i] + b.Base2[i] + b.Base3[i]
	}
	return b
}

func TestBaseSetSequence(t *testing.T) {
	b := validBaseSet()

	for base := BaseDay; base <= BaseSum; base++ {
		if _, err := b.Sequence(base); err != nil {
			t.Errorf("Sequence(%d): %v", base, err)
		}
	}
	for _, base := range []int{0, 5, -1} {
		if _, err := b.Sequence(base); !errors.Is(err, ErrInvalidBase) {
			t.Errorf("Sequence(%d): got %v, want ErrInvalidBase", base, err)
		}
	}
}

func TestBaseSetValueAt(t *testing.T) {
	b := validBaseSet()

	v, err := b.ValueAt(BaseMonth, 3)
	if err != nil {
		t.Fatalf("ValueAt: %v", err)
	}
	if v != 5 {
		t.Errorf("ValueAt(2,3) = %d, want 5", v)
	}

	if _, err := b.ValueAt(BaseDay, 0); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("ValueAt(1,0): got %v, want ErrInvalidPosition", err)
	}
	if _, err := b.ValueAt(BaseDay, 8); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("ValueAt(1,8): got %v, want ErrInvalidPosition", err)
	}
}

func TestBaseSetValidate(t *testing.T) {
	t.Run("valid set passes", func(t *testing.T) {
		if err := validBaseSet().Validate(); err != nil {
			t.Fatalf("Validate: %v", err)
		}
	})

	t.Run("repeated value fails permutation check", func(t *testing.T) {
		b := validBaseSet()
		b.Base1[0] = b.Base1[1]
		if err := b.Validate(); !errors.Is(err, ErrBaseNotPermuted) {
			t.Fatalf("got %v, want ErrBaseNotPermuted", err)
		}
	})

	t.Run("out-of-range value fails permutation check", func(t *testing.T) {
		b := validBaseSet()
		b.Base2[3] = 8
		if err := b.Validate(); !errors.Is(err, ErrBaseNotPermuted) {
			t.Fatalf("got %v, want ErrBaseNotPermuted", err)
		}
	})

	t.Run("sum mismatch fails", func(t *testing.T) {
		b := validBaseSet()
		b.Base4[2]++
		if err := b.Validate(); !errors.Is(err, ErrSumBaseMismatch) {
			t.Fatalf("got %v, want ErrSumBaseMismatch", err)
		}
	})
}
