// Package binary provides helpers for the fixed and borsh-style account
// layouts used by on-chain programs.
package binary

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/pkg/errors"
)

var ErrUnexpectedEndOfData = errors.New("unexpected end of data")

func PutKey32(dst []byte, src []byte, offset *int) {
	copy(dst, src)
	*offset += ed25519.PublicKeySize
}

func PutOptionalKey32(dst []byte, src []byte, offset *int, optionSize int) {
	if len(src) > 0 {
		dst[0] = 1
		copy(dst[optionSize:], src)
	}

	*offset += optionSize + ed25519.PublicKeySize
}

func PutUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst, v)
	*offset += 8
}

func PutUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst, v)
	*offset += 4
}

func PutUint16(dst []byte, v uint16, offset *int) {
	binary.LittleEndian.PutUint16(dst, v)
	*offset += 2
}

func PutUint8(dst []byte, v uint8, offset *int) {
	dst[0] = v
	*offset += 1
}

func PutOptionalUint64(dst []byte, v *uint64, offset *int, optionSize int) {
	if v != nil {
		dst[0] = 1
		binary.LittleEndian.PutUint64(dst[optionSize:], *v)
	}
	*offset += optionSize + 8
}

func GetKey32(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src)
	*offset += ed25519.PublicKeySize
}

func GetOptionalKey32(src []byte, dst *ed25519.PublicKey, offset *int, optionSize int) {
	if src[0] == 1 {
		*dst = make([]byte, ed25519.PublicKeySize)
		copy(*dst, src[optionSize:])
	}
	*offset += optionSize + ed25519.PublicKeySize
}

func GetUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src)
	*offset += 8
}

func GetUint32(src []byte, dst *uint32, offset *int) {
	*dst = binary.LittleEndian.Uint32(src)
	*offset += 4
}

func GetUint16(src []byte, dst *uint16, offset *int) {
	*dst = binary.LittleEndian.Uint16(src)
	*offset += 2
}

func GetUint8(src []byte, dst *uint8, offset *int) {
	*dst = src[0]
	*offset += 1
}

func GetOptionalUint64(src []byte, dst **uint64, offset *int, optionSize int) {
	if src[0] == 1 {
		val := binary.LittleEndian.Uint64(src[optionSize:])
		*dst = &val
	}
	*offset += optionSize + 8
}

// Reader consumes a borsh-serialized buffer field by field. Unlike the
// fixed-layout helpers above, borsh data is variable length (strings and
// vectors carry a u32 length prefix, options a single tag byte), so reads
// are bounds checked and the first failure sticks.
type Reader struct {
	data   []byte
	offset int
	err    error
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Err returns the first error encountered while reading, if any.
func (r *Reader) Err() error {
	return r.err
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.offset+n > len(r.data) {
		r.err = ErrUnexpectedEndOfData
		return nil
	}

	b := r.data[r.offset : r.offset+n]
	r.offset += n
	return b
}

func (r *Reader) ReadBytes(n int) []byte {
	src := r.take(n)
	if src == nil {
		return nil
	}

	b := make([]byte, n)
	copy(b, src)
	return b
}

func (r *Reader) ReadKey32() ed25519.PublicKey {
	return ed25519.PublicKey(r.ReadBytes(ed25519.PublicKeySize))
}

func (r *Reader) ReadUint8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) ReadBool() bool {
	return r.ReadUint8() == 1
}

func (r *Reader) ReadUint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *Reader) ReadUint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *Reader) ReadUint64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *Reader) ReadInt64() int64 {
	return int64(r.ReadUint64())
}

// ReadString reads a u32 length-prefixed utf-8 string.
func (r *Reader) ReadString() string {
	n := r.ReadUint32()
	if r.err != nil {
		return ""
	}
	return string(r.take(int(n)))
}

// ReadOption reads a borsh option tag, returning whether a value follows.
func (r *Reader) ReadOption() bool {
	return r.ReadUint8() == 1
}

// Writer is the serialization counterpart to Reader, used for constructing
// account fixtures in tests and for size computation.
type Writer struct {
	data []byte
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Bytes() []byte {
	return w.data
}

func (w *Writer) WriteBytes(b []byte) {
	w.data = append(w.data, b...)
}

// WriteKey32 writes the key as a fixed 32 byte field. Shorter or unset keys
// are zero padded, mirroring PutKey32's copy semantics.
func (w *Writer) WriteKey32(k ed25519.PublicKey) {
	var b [ed25519.PublicKeySize]byte
	copy(b[:], k)
	w.data = append(w.data, b[:]...)
}

func (w *Writer) WriteUint8(v uint8) {
	w.data = append(w.data, v)
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
}

func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.data = append(w.data, b[:]...)
}

func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.data = append(w.data, b[:]...)
}

func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.data = append(w.data, b[:]...)
}

func (w *Writer) WriteInt64(v int64) {
	w.WriteUint64(uint64(v))
}

func (w *Writer) WriteString(s string) {
	w.WriteUint32(uint32(len(s)))
	w.data = append(w.data, s...)
}

func (w *Writer) WriteOption(present bool) {
	w.WriteBool(present)
}
