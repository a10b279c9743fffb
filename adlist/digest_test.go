package adlist

import (
	"testing"
)

func encodeString(s string) []byte { return []byte(s) }

func TestDigest(t *testing.T) {
	SetDigestSeed([]byte("0123456789abcdef"))

	l := Create[string]().AddNodeTail("a").AddNodeTail("bc").AddNodeTail("d")
	sum := l.Digest(encodeString)

	cp, err := l.Dup()
	if err != nil {
		t.Fatalf("Dup: %v", err)
	}
	if got := cp.Digest(encodeString); got != sum {
		t.Fatalf("dup digest = %x, want %x", got, sum)
	}

	for i := 0; i < l.Len(); i++ {
		cp.Rotate()
		if i < l.Len()-1 && cp.Digest(encodeString) == sum {
			t.Fatalf("rotation %d kept the digest", i)
		}
	}
	if got := cp.Digest(encodeString); got != sum {
		t.Fatalf("digest after full rotation = %x, want %x", got, sum)
	}

	cp.Last().SetNodeValue("e")
	if cp.Digest(encodeString) == sum {
		t.Fatal("changing a value kept the digest")
	}

	// value boundaries are part of the digest
	other := Create[string]().AddNodeTail("ab").AddNodeTail("c").AddNodeTail("d")
	if other.Digest(encodeString) == sum {
		t.Fatal("different split of the same bytes gave the same digest")
	}
}

func TestDigestSeed(t *testing.T) {
	l := Create[string]().AddNodeTail("x")

	SetDigestSeed([]byte("0123456789abcdef"))
	first := l.Digest(encodeString)
	SetDigestSeed([]byte("fedcba9876543210"))
	second := l.Digest(encodeString)
	if first == second {
		t.Fatal("seed does not affect the digest")
	}

	SetDigestSeed([]byte("short"))
	if l.Digest(encodeString) != l.Digest(encodeString) {
		t.Fatal("digest is not deterministic with a padded seed")
	}
}

func TestDigestEmpty(t *testing.T) {
	SetDigestSeed([]byte("0123456789abcdef"))
	a, b := Create[string](), Create[string]()
	if a.Digest(encodeString) != b.Digest(encodeString) {
		t.Fatal("empty lists should share a digest")
	}
	if a.Digest(encodeString) == Create[string]().AddNodeTail("").Digest(encodeString) {
		t.Fatal("a list holding an empty value should differ from an empty list")
	}
}
