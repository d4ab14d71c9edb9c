package bzip2

import "testing"

// TestUpdateCRCCheckValue checks updateCRC against the standard
// "CRC-32/BZIP2" check value (poly 0x04c11db7, init/xorout all-ones,
// non-reflected), computed over the ASCII string "123456789".
func TestUpdateCRCCheckValue(t *testing.T) {
	crc := updateCRC(0xFFFFFFFF, []byte("123456789"))
	got := ^crc
	const want = 0xFC891918
	if got != want {
		t.Fatalf("got %#08x, want %#08x", got, want)
	}
}

func TestUpdateCRCIncremental(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	whole := ^updateCRC(0xFFFFFFFF, data)

	crc := uint32(0xFFFFFFFF)
	for i := range data {
		crc = updateCRC(crc, data[i:i+1])
	}
	split := ^crc

	if whole != split {
		t.Fatalf("whole-buffer crc %#08x != byte-at-a-time crc %#08x", whole, split)
	}
}

func TestCombineCRCIdentityOnZero(t *testing.T) {
	if got := combineCRC(0, 0x12345678); got != 0x12345678 {
		t.Fatalf("combineCRC(0, x) = %#08x, want x", got)
	}
}
