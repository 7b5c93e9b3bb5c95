package wordlist

import "testing"

func TestLettersOnly(t *testing.T) {
	if !LettersOnly("hello") {
		t.Fatalf("expected hello to pass letters filter")
	}
	for _, word := range []string{"", "résumé", "naïve", "don’t", "co-op", "Hello", "abc1"} {
		if LettersOnly(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestLengthCountsRunes(t *testing.T) {
	five := Length(5)
	if !five("apple") {
		t.Fatalf("expected apple to have length 5")
	}
	if !five("lüge!") {
		t.Fatalf("expected lüge! to have length 5")
	}
	if five("ab") {
		t.Fatalf("expected ab to be rejected")
	}
}

func TestAll(t *testing.T) {
	keep := All(LettersOnly, Length(5))
	if !keep("crane") {
		t.Fatalf("expected crane to be kept")
	}
	if keep("cranes") || keep("cr4ne") {
		t.Fatalf("expected filters to reject")
	}
	if !All()("anything") {
		t.Fatalf("expected empty filter set to keep everything")
	}
}
