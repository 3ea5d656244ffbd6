package control

import (
	"errors"
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/bigint"
)

// Decoder reads control blocks.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader
	s io.Seeker

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r. If r is also an io.Seeker
// unread data is skipped by seeking.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r: r,
	}

	d.s, _ = r.(io.Seeker)

	return d
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	if size == 0 {
		return nil
	}

	if d.s != nil {
		return d.seekStream(size)
	}

	n, err := io.CopyN(io.Discard, d.r, int64(size))
	d.consumed += uint64(n)
	if errors.Is(err, io.EOF) {
		return oops.Trace(io.ErrUnexpectedEOF)
	}
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// seekStream seeks forward by size bytes. Seeking past the end of the stream
// is allowed by io.Seeker, so the end is checked first and a short block
// leaves the position at the end.
func (d *decoder) seekStream(size uint64) (err error) {
	cur, err := d.s.Seek(0, io.SeekCurrent)
	if err != nil {
		return oops.Trace(err)
	}

	end, err := d.s.Seek(0, io.SeekEnd)
	if err != nil {
		return oops.Trace(err)
	}

	remaining := uint64(0)
	if end > cur {
		remaining = uint64(end - cur)
	}

	if size > remaining {
		d.consumed += remaining

		return oops.Trace(io.ErrUnexpectedEOF)
	}

	_, err = d.s.Seek(cur+int64(size), io.SeekStart)
	if err != nil {
		return oops.Trace(err)
	}

	d.consumed += size

	return nil
}

// skip moves the reading position to the end of the current block.
func (d *decoder) skip() (err error) {
	if d.finished || !d.t.IsData() {
		return nil
	}

	size, err := d.Size()
	if err != nil {
		return err
	}

	switch d.t {
	case Data1, Data2:
		// The first data byte is part of the control byte.
		return d.seek(size - 1)
	default:
		return d.seek(size)
	}
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current block was fully read before moving on...
	d.err = d.skip()
	if d.err != nil {
		d.err = Error.Wrap(d.err)

		return false
	}

	// Reset state for next block.
	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = nil
	d.finished = false

	_, d.err = io.ReadFull(d.r, d.value[:])
	if d.err != nil {
		if errors.Is(d.err, io.EOF) {
			d.err = nil
			return false
		}

		d.err = Error.Wrap(oops.Trace(d.err))

		return false
	}

	d.consumed += 1

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current block. If the block
// does not contain data it returns ErrInvalidOperation.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = Error.Wrap(err)
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := uint64(d.value[0]&d.t.Mask) + 1

		sizeBytes := make([]byte, sizeSize)
		_, err = io.ReadFull(d.r, sizeBytes)
		if err != nil {
			return 0, oops.Trace(err)
		}

		d.consumed += sizeSize

		size, ok := bigint.FromBytes(sizeBytes).Add(bigint.New(1)).Uint64()
		if !ok {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads data bytes from the block. If the block does not contain data it
// returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = Error.Wrap(err)
		}
	}()

	if !d.t.IsData() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	data = make([]byte, size)

	switch d.t {
	case Data:
		data[0] = d.value[0] & d.t.Mask
	case Data1, Data2:
		data[0] = d.value[0] & d.t.Mask

		_, err = io.ReadFull(d.r, data[1:])
		if err != nil {
			return nil, oops.Trace(err)
		}

		d.consumed += size - 1
	case DataSize, DataSizeSize:
		_, err = io.ReadFull(d.r, data)
		if err != nil {
			return nil, oops.Trace(err)
		}

		d.consumed += size
	}

	d.data = data
	d.finished = true

	return d.data, nil
}
