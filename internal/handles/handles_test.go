package handles

import (
	"sync"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	type record struct {
		Name  string
		Value int
	}

	data := &record{Name: "test", Value: 42}
	tok := Register(data)

	if tok == 0 {
		t.Error("Register should return non-zero token")
	}

	got := Lookup(tok)
	if got == nil {
		t.Fatal("Lookup should return non-nil value")
	}

	gotData, ok := got.(*record)
	if !ok {
		t.Fatalf("Lookup returned wrong type: %T", got)
	}

	if gotData.Name != "test" || gotData.Value != 42 {
		t.Errorf("Lookup returned wrong data: %+v", gotData)
	}
}

func TestUnregister(t *testing.T) {
	tok := Register("test string")

	if Lookup(tok) == nil {
		t.Error("Expected value before Unregister")
	}

	Unregister(tok)

	if Lookup(tok) != nil {
		t.Error("Expected nil after Unregister")
	}
}

func TestUnregisterTwice(t *testing.T) {
	tok := Register("once")
	Unregister(tok)
	// Second unregister of the same token must be a no-op.
	Unregister(tok)

	if Lookup(tok) != nil {
		t.Error("Expected nil after double Unregister")
	}
}

func TestLookupNonExistent(t *testing.T) {
	if got := Lookup(999999); got != nil {
		t.Error("Lookup of non-existent token should return nil")
	}
}

func TestTokensAreUnique(t *testing.T) {
	seen := make(map[uintptr]bool)
	for i := 0; i < 1000; i++ {
		tok := Register(i)
		if seen[tok] {
			t.Fatalf("token %d issued twice", tok)
		}
		seen[tok] = true
	}
	for tok := range seen {
		Unregister(tok)
	}
}

func TestConcurrentAccess(t *testing.T) {
	const numGoroutines = 100
	const numOps = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOps; j++ {
				data := struct {
					ID  int
					Seq int
				}{id, j}
				tok := Register(&data)
				if Lookup(tok) == nil {
					t.Errorf("Lookup returned nil for token %d", tok)
				}
				Unregister(tok)
			}
		}(i)
	}

	wg.Wait()
}

func TestCount(t *testing.T) {
	before := Count()
	tok1 := Register("a")
	tok2 := Register("b")

	if got := Count(); got != before+2 {
		t.Errorf("Count = %d, want %d", got, before+2)
	}

	Unregister(tok1)
	Unregister(tok2)

	if got := Count(); got != before {
		t.Errorf("Count after unregister = %d, want %d", got, before)
	}
}
