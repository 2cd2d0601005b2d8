package bitmem

func halfAdder(a, b Bit) (sum, carryOut Bit) {
	return a.Xor(b), a.And(b)
}

// fullAdder computes sum = a ^ b ^ c and carryOut = ab | ac | bc
func fullAdder(a, b, carryIn Bit) (sum, carryOut Bit) {
	sum0, carry0 := halfAdder(a, b)
	sum, carry1 := halfAdder(sum0, carryIn)
	carryOut = carry0.Or(carry1)
	return sum, carryOut
}

// fullSubtractor computes diff = a ^ b ^ w and borrowOut = (b & !a) | (w & !(a ^ b))
func fullSubtractor(a, b, borrowIn Bit) (diff, borrowOut Bit) {
	d := a.Xor(b)
	diff = d.Xor(borrowIn)
	borrowOut = b.And(a.Not()).Or(borrowIn.And(d.Not()))
	return diff, borrowOut
}

// RippleAdd adds a and b one bit at a time, starting with the least significant bit.
// The sum wraps modulo 2^Len; the carry out of the most significant position is returned separately.
func RippleAdd[A Array](a, b BitArray[A], carryIn Bit) (sum BitArray[A], carryOut Bit) {
	carry := carryIn
	for i := 0; i < len(a.bits); i++ {
		sum.bits[i], carry = fullAdder(a.bits[i], b.bits[i], carry)
	}
	return sum, carry
}

// RippleSub subtracts b from a one bit at a time, starting with the least significant bit.
// The difference wraps modulo 2^Len; the borrow out of the most significant position is returned separately.
func RippleSub[A Array](a, b BitArray[A], borrowIn Bit) (diff BitArray[A], borrowOut Bit) {
	borrow := borrowIn
	for i := 0; i < len(a.bits); i++ {
		diff.bits[i], borrow = fullSubtractor(a.bits[i], b.bits[i], borrow)
	}
	return diff, borrow
}

// RippleNeg computes the two's complement of a as ^a + 1.
func RippleNeg[A Array](a BitArray[A]) BitArray[A] {
	var zero BitArray[A]
	ret, _ := RippleAdd(a.Not(), zero, One)
	return ret
}
