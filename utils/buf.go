package utils

import (
	"encoding/binary"
	"math/big"
)

// OutputBuf accumulates a canonical byte serialization of transcript data.
// Field elements are appended as 32-byte little-endian values so the
// serialization of a record does not depend on who writes it.
type OutputBuf struct {
	buf []byte
}

func (o *OutputBuf) AppendBigInt(x *big.Int) {
	zbuf := make([]byte, 32)
	b := x.Bytes()
	for i := 0; i < len(b); i++ {
		zbuf[i] = b[len(b)-i-1]
	}
	o.buf = append(o.buf, zbuf...)
}

func (o *OutputBuf) AppendUint64(x uint64) {
	o.buf = binary.LittleEndian.AppendUint64(o.buf, x)
}

// AppendBytes appends a length-prefixed byte string.
func (o *OutputBuf) AppendBytes(b []byte) {
	o.buf = binary.LittleEndian.AppendUint64(o.buf, uint64(len(b)))
	o.buf = append(o.buf, b...)
}

func (o *OutputBuf) Bytes() []byte {
	return o.buf
}
