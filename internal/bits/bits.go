// Package bits converts between byte strings and 11-bit word indices.
//
// BIP-39 encodes entropy plus checksum as a sequence of 11-bit groups,
// most significant bit first both within each byte and within each
// group. This package is the shared arithmetic core of the encode and
// decode paths; all length bookkeeping is the caller's job.
package bits

// GroupBits is the number of bits carried by one wordlist index (2^11 = 2048).
const GroupBits = 11

// Unpack reads the first count 11-bit groups from data, MSB first, and
// returns them as indices in [0, 2047]. Trailing bits beyond the last
// group are ignored.
func Unpack(data []byte, count int) []uint16 {
	out := make([]uint16, 0, count)
	var acc uint32
	var have uint
	for _, b := range data {
		if len(out) == count {
			break
		}
		acc = acc<<8 | uint32(b)
		have += 8
		for have >= GroupBits && len(out) < count {
			have -= GroupBits
			out = append(out, uint16((acc>>have)&0x7ff))
		}
	}
	return out
}

// Pack is the inverse of Unpack: it writes the 11-bit groups back into
// a byte string, MSB first, zero-padding the final byte.
func Pack(indices []uint16) []byte {
	out := make([]byte, 0, (len(indices)*GroupBits+7)/8)
	var acc uint32
	var have uint
	for _, idx := range indices {
		acc = acc<<GroupBits | uint32(idx&0x7ff)
		have += GroupBits
		for have >= 8 {
			have -= 8
			out = append(out, byte(acc>>have))
		}
	}
	if have > 0 {
		out = append(out, byte(acc<<(8-have)))
	}
	return out
}
