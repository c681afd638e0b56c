package determinism

import "testing"

func TestHashJSONIsStable(t *testing.T) {
	a := map[string]int{"b": 2, "a": 1, "c": 3}
	b := map[string]int{"c": 3, "a": 1, "b": 2}

	ha, err := HashJSON(a)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	hb, err := HashJSON(b)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if ha != hb {
		t.Fatalf("hashes differ: %s vs %s", ha.Hex(), hb.Hex())
	}
	if len(ha.Short()) != 16 || len(ha.Hex()) != 64 {
		t.Fatalf("unexpected hash lengths: %q", ha.Hex())
	}
}

func TestHashJSONDetectsChange(t *testing.T) {
	h1, _ := HashJSON([]string{"wall"})
	h2, _ := HashJSON([]string{"ceiling"})
	if h1 == h2 {
		t.Fatal("different inputs produced the same hash")
	}
}

func TestHashJSONRejectsUnencodable(t *testing.T) {
	if _, err := HashJSON(func() {}); err == nil {
		t.Fatal("expected error for unencodable value")
	}
}
