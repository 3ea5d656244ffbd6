package control

import (
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/bigint"
)

// Encoder writes control blocks. Data picks the smallest block type able to
// hold the given bytes.
type Encoder interface {
	Data(data []byte) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	e := &encoder{
		w: w,
	}

	return e
}

func (e *encoder) write(chunks ...[]byte) (err error) {
	for _, chunk := range chunks {
		_, err = e.w.Write(chunk)
		if err != nil {
			return oops.Trace(err)
		}
	}

	return nil
}

func (e *encoder) Data(data []byte) (err error) {
	defer Error.WrapP(&err)

	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{
			Data.Prefix | data[0],
		})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{
			Data1.Prefix | data[0],
			data[1],
		})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		})
	case size <= 64:
		return e.write(
			[]byte{DataSize.Prefix | byte(size-1)},
			data,
		)
	}

	// The size is stored minus one in 1 to 8 big-endian bytes.
	sb := bigint.New(uint64(size - 1)).Bytes()

	return e.write(
		[]byte{DataSizeSize.Prefix | byte(len(sb)-1)},
		sb,
		data,
	)
}

func (e *encoder) Empty() (err error) {
	defer Error.WrapP(&err)

	return e.write([]byte{
		0b_0000_0001,
	})
}

func (e *encoder) Null() (err error) {
	defer Error.WrapP(&err)

	return e.write([]byte{
		0b_0000_0000,
	})
}
