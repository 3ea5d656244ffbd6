package bigint

import (
	"github.com/vmihailenco/msgpack/v5"
)

// MarshalBinary implements encoding.BinaryMarshaler using the zigzag layout:
// the magnitude shifted left one bit with the sign in bit 0, big-endian.
func (x Int) MarshalBinary() (data []byte, err error) {
	m := shiftLeftMagnitude(x.magnitude(), 1)
	if x.neg {
		m[0] |= 1
	}

	return bytesOf(m), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	m := magnitudeFromBytes(data)
	neg := m[0]&1 == 1

	*x = normalize(shiftRightMagnitude(m, 1), neg)

	return nil
}

// MarshalText implements encoding.TextMarshaler. The text form is decimal.
func (x Int) MarshalText() (text []byte, err error) {
	return []byte(x.Dec()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts anything
// Parse does.
func (x *Int) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*x = v

	return nil
}

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder. The value is written as a
// msgpack bin holding the MarshalBinary form.
func (x Int) EncodeMsgpack(enc *msgpack.Encoder) (err error) {
	defer Error.WrapP(&err)

	data, err := x.MarshalBinary()
	if err != nil {
		return err
	}

	return enc.EncodeBytes(data)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	defer Error.WrapP(&err)

	data, err := dec.DecodeBytes()
	if err != nil {
		return err
	}

	return x.UnmarshalBinary(data)
}
