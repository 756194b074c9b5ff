package model

// Side says whose turn it is. The zero value is white: false means white
// to move, true means black. This flag is the sole turn-order state.
type Side bool

const (
	White Side = false
	Black Side = true
)

func (s Side) Other() Side {
	return !s
}

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}
