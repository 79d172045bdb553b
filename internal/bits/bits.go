// internal/bits/bits.go
package bits

// Field describes one bit range inside a byte.
// Offset is the position of the least significant bit (0 = LSB).
type Field struct {
	Offset uint8
	Width  uint8
}

// Value binds a field to the value packed into it.
type Value struct {
	Field Field
	V     uint8
}

// Mask returns the field mask already shifted into position.
func (f Field) Mask() byte {
	return byte((1<<f.Width)-1) << f.Offset
}

// Of pairs the field with a value.
func (f Field) Of(v uint8) Value {
	return Value{Field: f, V: v}
}

// Flag is a helper for single-bit fields.
func (f Field) Flag(on bool) Value {
	if on {
		return Value{Field: f, V: 1}
	}
	return Value{Field: f, V: 0}
}

// Pack ORs every value into its field.
// Callers guarantee values fit their width; the mask only keeps
// a bad value from leaking into a neighbour field.
// No clamping. No IO.
func Pack(values ...Value) byte {
	var b byte
	for _, v := range values {
		b |= (v.V << v.Field.Offset) & v.Field.Mask()
	}
	return b
}

// Unpack extracts one field as an unsigned integer.
func Unpack(b byte, f Field) uint8 {
	return (b & f.Mask()) >> f.Offset
}

// Covers reports whether fields are non-overlapping and cover all 8 bits.
func Covers(fields ...Field) bool {
	var seen byte
	for _, f := range fields {
		if f.Width == 0 || int(f.Offset)+int(f.Width) > 8 {
			return false
		}
		m := f.Mask()
		if seen&m != 0 {
			return false
		}
		seen |= m
	}
	return seen == 0xFF
}
