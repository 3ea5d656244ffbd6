package integer

import (
	"fortio.org/safecast"

	"github.com/calebcase/bigint"
	"github.com/calebcase/bigint/control"
)

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromInt returns the block holding i.
func FromInt(i bigint.Int) Block {
	return Block{
		Value:    i.Bytes(),
		Negative: i.IsNegative(),
	}
}

// Int returns the value of the block. A nil Value is zero.
func (b Block) Int() bigint.Int {
	if b.Negative {
		return bigint.FromBytes(b.Value).Neg()
	}

	return bigint.FromBytes(b.Value)
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The magnitude is shifted left one bit and the sign is stored in bit 0
// (zigzag).
func (b Block) MarshalBinary() (data []byte, err error) {
	return b.Int().MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	var i bigint.Int

	err = i.UnmarshalBinary(data)
	if err != nil {
		return err
	}

	*b = FromInt(i)

	return nil
}

// Schema for an integer.
type Schema struct {
	// Bits is the largest magnitude bit length accepted. Zero means
	// unlimited.
	Bits uint64

	Signed   bool
	Nullable bool
}

// check returns an error if the schema does not admit i.
func (s Schema) check(i bigint.Int) (err error) {
	if i.IsNegative() && !s.Signed {
		return Error.New("negative value for unsigned schema: %s", i)
	}

	if s.Bits == 0 {
		return nil
	}

	bits, err := safecast.Conv[uint64](i.BitLen())
	if err != nil {
		return Error.Wrap(err)
	}

	if bits > s.Bits {
		return Error.New("too large: bits=%d limit=%d", bits, s.Bits)
	}

	return nil
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode parses a block from the reader. A null block leaves b.Value nil.
func (d *Decoder) Decode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return d.cd.Err()
		}

		return Error.New("unexpected end of input")
	}

	t := d.cd.Type()

	switch {
	case t == control.Null && d.schema.Nullable:
		*b = Block{}

		return nil
	case !t.IsData():
		return Error.New("unexpected block: %s", t.Abbr)
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	var i bigint.Int
	if d.schema.Signed {
		err = i.UnmarshalBinary(data)
		if err != nil {
			return err
		}
	} else {
		i = bigint.FromBytes(data)
	}

	err = d.schema.check(i)
	if err != nil {
		return err
	}

	*b = FromInt(i)

	return nil
}

// DecodeInt parses an integer from the reader. ok is false for a null block.
func (d *Decoder) DecodeInt() (i bigint.Int, ok bool, err error) {
	b := &Block{}

	err = d.Decode(b)
	if err != nil {
		return bigint.Int{}, false, err
	}

	if b.Value == nil {
		return bigint.Int{}, false, nil
	}

	return b.Int(), true, nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode write a block to the writer. A nil b.Value is written as null.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b.Value == nil {
		if !e.schema.Nullable {
			return Error.New("null value for non-nullable schema")
		}

		return e.ce.Null()
	}

	i := b.Int()

	err = e.schema.check(i)
	if err != nil {
		return err
	}

	var data []byte
	if e.schema.Signed {
		data, err = i.MarshalBinary()
		if err != nil {
			return err
		}
	} else {
		data = i.Bytes()
	}

	return e.ce.Data(data)
}

// EncodeInt writes i to the writer.
func (e *Encoder) EncodeInt(i bigint.Int) (err error) {
	b := FromInt(i)

	return e.Encode(&b)
}
