package bitmem

// Bool is the outcome of a test or comparison.
// It is kept apart from Bit, which is used for stored data.
type Bool uint8

const (
	False Bool = 0
	True  Bool = 1
)

func NewBool(x bool) Bool {
	if x {
		return True
	}
	return False
}

// BoolFromBit maps Zero to False and One to True.
func BoolFromBit(b Bit) Bool {
	if b == One {
		return True
	}
	return False
}

func (x Bool) Not() Bool {
	return NewBool(x != True)
}

func (x Bool) And(y Bool) Bool {
	return NewBool(x == True && y == True)
}

func (x Bool) Or(y Bool) Bool {
	return NewBool(x == True || y == True)
}

func (x Bool) Xor(y Bool) Bool {
	return NewBool((x == True) != (y == True))
}

func (x Bool) AsBit() Bit {
	return BitFromBool(x)
}

// Go converts x to a native bool.
func (x Bool) Go() bool {
	return x == True
}

func (x Bool) String() string {
	if x == True {
		return "true"
	}
	return "false"
}
