package engine

import "testing"

func TestRegistryGetCreatesOncePerSymbol(t *testing.T) {
	r := NewRegistry()
	defer r.StopAll()

	a := r.Get("AAPL")
	b := r.Get("AAPL")
	if a != b {
		t.Error("expected the same worker instance for repeated Get of the same symbol")
	}

	msft := r.Get("MSFT")
	if msft == a {
		t.Error("expected distinct workers for distinct symbols")
	}

	symbols := r.Symbols()
	if len(symbols) != 2 {
		t.Errorf("expected 2 registered symbols, got %d", len(symbols))
	}
}
