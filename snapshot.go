package clist

import (
	"encoding/binary"
	"errors"
	"fmt"

	"gopkg.in/karlseguin/bytepool.v3"
	"gopkg.in/karlseguin/intset.v1"
)

var (
	Endianness = binary.LittleEndian
	bp         = bytepool.NewEndian(65536, 64, Endianness)

	ErrSnapshot = errors.New("clist: malformed snapshot")
)

// Encode serializes the list's order, head to tail, as little endian
// uint32 handles.
func Encode(l *List) []byte {
	buffer := bp.Checkout()
	defer buffer.Release()
	l.Each(func(h Handle) bool {
		buffer.WriteUint32(uint32(h))
		return true
	})
	encoded := make([]byte, buffer.Len())
	copy(encoded, buffer.Bytes())
	return encoded
}

// Decode is the inverse of Encode.
func Decode(data []byte) ([]Handle, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 4", ErrSnapshot, len(data))
	}
	ids := make([]Handle, len(data)/4)
	for i := range ids {
		h := Handle(Endianness.Uint32(data[i*4:]))
		if h == Nil {
			return nil, fmt.Errorf("%w: nil handle at position %d", ErrSnapshot, i)
		}
		ids[i] = h
	}
	return ids, nil
}

// Restore appends ids, in order, to the tail of l, claiming each one from
// the arena first. Nothing is claimed or linked if ids contains Nil, a
// handle above the arena's maximum, a handle the arena has already handed
// out, or the same handle twice.
func (l *List) Restore(ids []Handle) error {
	if len(ids) == 0 {
		return nil
	}
	seen := intset.NewSized32(uint32(len(ids)))
	for i, h := range ids {
		if h == Nil {
			return fmt.Errorf("%w: nil handle at position %d", ErrSnapshot, i)
		}
		if seen.Exists(uint32(h)) {
			return fmt.Errorf("%w: %d", ErrDuplicate, h)
		}
		seen.Set(uint32(h))
	}
	if err := l.arena.Claimable(ids); err != nil {
		return err
	}
	for _, h := range ids {
		l.arena.Claim(h)
		l.RPush(h)
	}
	return nil
}
