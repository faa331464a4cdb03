package pool

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.B = append(bb.B, "frame"...)

	capBefore := cap(bb.B)
	bb.Reset()
	require.Empty(t, bb.B)
	require.Equal(t, capBefore, cap(bb.B))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.B = append(bb.B, "abc"...)

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
	require.Equal(t, "abc", out.String())

	_, err = bb.WriteTo(failingWriter{})
	require.Error(t, err)
}

func TestByteBufferPool_ResetOnPut(t *testing.T) {
	p := NewByteBufferPool(32, 0)

	bb := p.Get()
	bb.B = append(bb.B, "stale"...)
	p.Put(bb)

	again := p.Get()
	require.Empty(t, again.B)
	p.Put(nil)
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	big := NewByteBuffer(128)
	big.B = append(big.B, "payload"...)
	p.Put(big)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Empty(t, bb.B)
	require.LessOrEqual(t, cap(bb.B), 64)
}

func TestFrameBuffer_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			bb := GetFrameBuffer()
			defer PutFrameBuffer(bb)

			bb.B = append(bb.B, byte(id))
			require.Equal(t, []byte{byte(id)}, bb.B)
		}(i)
	}
	wg.Wait()
}
