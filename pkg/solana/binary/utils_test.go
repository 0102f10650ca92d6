package binary

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderWriter_RoundTrip(t *testing.T) {
	key, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	w := NewWriter()
	w.WriteKey32(key)
	w.WriteUint8(7)
	w.WriteBool(true)
	w.WriteUint16(65535)
	w.WriteUint32(1 << 30)
	w.WriteUint64(1 << 40)
	w.WriteInt64(-42)
	w.WriteString("hello")
	w.WriteOption(false)
	w.WriteOption(true)
	w.WriteBytes([]byte{1, 2, 3})

	r := NewReader(w.Bytes())
	assert.EqualValues(t, key, r.ReadKey32())
	assert.EqualValues(t, 7, r.ReadUint8())
	assert.True(t, r.ReadBool())
	assert.EqualValues(t, 65535, r.ReadUint16())
	assert.EqualValues(t, 1<<30, r.ReadUint32())
	assert.EqualValues(t, 1<<40, r.ReadUint64())
	assert.EqualValues(t, -42, r.ReadInt64())
	assert.Equal(t, "hello", r.ReadString())
	assert.False(t, r.ReadOption())
	assert.True(t, r.ReadOption())
	assert.Equal(t, []byte{1, 2, 3}, r.ReadBytes(3))

	assert.NoError(t, r.Err())
	assert.Zero(t, r.Remaining())
}

func TestWriter_WriteKey32_PadsShortKeys(t *testing.T) {
	w := NewWriter()
	w.WriteKey32(nil)
	w.WriteKey32(ed25519.PublicKey{1, 2, 3})

	b := w.Bytes()
	require.Len(t, b, 2*ed25519.PublicKeySize)
	assert.Equal(t, make([]byte, ed25519.PublicKeySize), b[:ed25519.PublicKeySize])
	assert.Equal(t, []byte{1, 2, 3}, b[ed25519.PublicKeySize:ed25519.PublicKeySize+3])
	assert.Equal(t, make([]byte, ed25519.PublicKeySize-3), b[ed25519.PublicKeySize+3:])
}

func TestReader_ShortBuffer(t *testing.T) {
	r := NewReader([]byte{1, 2})

	assert.Zero(t, r.ReadUint64())
	assert.Equal(t, ErrUnexpectedEndOfData, r.Err())

	// The error sticks and later reads are inert.
	assert.Zero(t, r.ReadUint8())
	assert.Empty(t, r.ReadString())
	assert.Equal(t, ErrUnexpectedEndOfData, r.Err())
}

func TestReader_StringLengthBeyondBuffer(t *testing.T) {
	w := NewWriter()
	w.WriteUint32(1000)
	w.WriteBytes([]byte("short"))

	r := NewReader(w.Bytes())
	assert.Empty(t, r.ReadString())
	assert.Equal(t, ErrUnexpectedEndOfData, r.Err())
}
