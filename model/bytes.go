package model

import (
	"bytes"
	"encoding/binary"
)

// rawBytes writes fixed size data (float32/uint32 slices, packed structs) as little endian bytes so it
// can be handed to vk.Memcopy.
func rawBytes(p any) []byte {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, p); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
