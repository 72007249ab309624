package digest

import "testing"

func TestDeterministic(t *testing.T) {
	if Sum("hello world") != Sum("hello world") {
		t.Fatal("Sum is not deterministic across calls")
	}
}

func TestDistinguishesOrder(t *testing.T) {
	if Sum("ab") == Sum("ba") {
		t.Fatal("Sum('ab') == Sum('ba'); expected inequality for these inputs")
	}
}

func TestEqualBytesEqualDigest(t *testing.T) {
	a := "the quick brown fox"
	b := string([]byte("the quick brown fox"))
	if Sum(a) != Sum(b) {
		t.Fatal("equal byte sequences produced different digests")
	}
}

func TestSumBytesMatchesSum(t *testing.T) {
	s := "matching bytes and string forms"
	if Sum(s) != SumBytes([]byte(s)) {
		t.Fatal("SumBytes and Sum disagree for the same content")
	}
}

func TestEmptyString(t *testing.T) {
	// Must not panic and must be stable.
	if Sum("") != Sum("") {
		t.Fatal("Sum(\"\") is not stable")
	}
}

func TestHashMatchesUnderlyingValue(t *testing.T) {
	d := Sum("hash-accessor")
	if d.Hash() != uint64(d) {
		t.Fatalf("Hash() = %d, want %d", d.Hash(), uint64(d))
	}
}
