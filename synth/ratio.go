package synth

import "math/bits"

// ComputeRatio interpolates linearly from from to to as elapsed goes from 0 to
// total. A zero total returns from.
//
// elapsed and total are shifted right until total fits in 15 bits, so
// (to-from)*elapsed cannot overflow 32 bits for any pair of int16 values. The
// low bits of a very long ramp are lost.
func ComputeRatio(from, to int16, elapsed, total uint32) int16 {
	if total == 0 {
		return from
	}
	if elapsed > total {
		elapsed = total
	}
	if shift := 17 - bits.LeadingZeros32(total); shift > 0 {
		elapsed >>= uint(shift)
		total >>= uint(shift)
	}
	diff := int32(to) - int32(from)
	return int16(int32(from) + diff*int32(elapsed)/int32(total))
}
