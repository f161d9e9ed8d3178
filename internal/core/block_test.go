package core

import "testing"

func TestBlockXOR(t *testing.T) {
	var a, b Block
	a[0], a[1] = 0xFF, 0x0F
	b[0], b[1] = 0x0F, 0xFF

	a.XOR(&b)

	if a[0] != 0xF0 || a[1] != 0xF0 {
		t.Errorf("XOR produced [%#x, %#x], want [0xf0, 0xf0]", a[0], a[1])
	}
}

func TestBlockZero(t *testing.T) {
	var a Block
	for i := range a {
		a[i] = uint64(i + 1)
	}
	a.Zero()
	for i, v := range a {
		if v != 0 {
			t.Fatalf("word %d not zeroed: %#x", i, v)
		}
	}
}

func TestBlockRoundTrip(t *testing.T) {
	var a Block
	for i := range a {
		a[i] = uint64(i)*0x0102030405060708 + 1
	}

	buf := make([]byte, BlockSize)
	a.ToBytes(buf)

	var b Block
	b.FromBytes(buf)

	if a != b {
		t.Error("FromBytes(ToBytes(a)) != a")
	}
}

func TestBlockCopy(t *testing.T) {
	var a, b Block
	a[5] = 0xDEADBEEF
	b.Copy(&a)
	if b[5] != 0xDEADBEEF {
		t.Errorf("Copy did not propagate word 5: got %#x", b[5])
	}
	b[5] = 0
	if a[5] != 0xDEADBEEF {
		t.Error("Copy aliased the source block")
	}
}
