package report

import "testing"

func TestBudget_TryAppend(t *testing.T) {
	b := NewBudget(100)

	if !b.TryAppend(60) {
		t.Fatal("first append within limit should succeed")
	}
	if !b.TryAppend(40) {
		t.Fatal("append exactly reaching limit should succeed")
	}
	if b.TryAppend(1) {
		t.Fatal("append past limit should fail")
	}
	if !b.Tripped() {
		t.Error("budget should be tripped")
	}
}

// Once tripped, every call fails regardless of size.
func TestBudget_Latched(t *testing.T) {
	b := NewBudget(10)

	if b.TryAppend(11) {
		t.Fatal("oversized append should fail")
	}
	for i := 0; i < 5; i++ {
		if b.TryAppend(0) {
			t.Fatal("tripped budget must reject every later call")
		}
	}
}

func TestBudget_Reset(t *testing.T) {
	b := NewBudget(10)
	b.TryAppend(11)

	b.Reset()
	if b.Tripped() {
		t.Error("reset should clear the latch")
	}
	if b.Used() != 0 {
		t.Errorf("reset should clear the counter, got %d", b.Used())
	}
	if !b.TryAppend(5) {
		t.Error("append after reset should succeed")
	}
}

func TestBudget_DefaultLimit(t *testing.T) {
	b := NewBudget(0)
	if !b.TryAppend(DefaultBudgetLimit) {
		t.Error("default ceiling should admit exactly DefaultBudgetLimit bytes")
	}
	if b.TryAppend(1) {
		t.Error("default ceiling should reject the next byte")
	}
}
