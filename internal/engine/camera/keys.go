package camera

// Key is one of the six logical movement keys.
type Key uint8

const (
	KeyForward Key = 1 << iota
	KeyBack
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Keys is the set of movement keys held during a tick.
type Keys uint8

// With returns the set with k added.
func (ks Keys) With(k Key) Keys {
	return ks | Keys(k)
}

// Held reports whether k is in the set.
func (ks Keys) Held(k Key) bool {
	return ks&Keys(k) != 0
}

// Axis returns +1 if positive is held, -1 if negative is held, 0 if both or neither.
func (ks Keys) Axis(positive, negative Key) float32 {
	var v float32
	if ks.Held(positive) {
		v++
	}
	if ks.Held(negative) {
		v--
	}
	return v
}
