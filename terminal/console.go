package terminal

import (
	"context"
	"io"
)

const keyBufferSize = 64

// Console implements vm.Console over an input and an output stream.
// A goroutine copies the input into a key buffer, so Available never blocks
// and ReadByte gives up when the context is done.
type Console struct {
	ctx     context.Context
	keys    chan byte
	readErr error // set before keys is closed
	out     io.Writer
	buf     [1]byte
}

// NewConsole starts reading in. The reader goroutine stops at the first
// read error or when ctx is done.
func NewConsole(ctx context.Context, in io.Reader, out io.Writer) *Console {
	c := &Console{
		ctx:  ctx,
		keys: make(chan byte, keyBufferSize),
		out:  out,
	}
	go c.readInput(in)
	return c
}

func (c *Console) readInput(in io.Reader) {
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			select {
			case c.keys <- buf[0]:
			case <-c.ctx.Done():
				return
			}
		}
		if err != nil {
			c.readErr = err
			close(c.keys)
			return
		}
	}
}

// Available reports whether a key is waiting in the buffer.
func (c *Console) Available() bool {
	return len(c.keys) > 0
}

// ReadByte waits for the next key. Once the input has ended it returns the
// error that ended it, usually io.EOF.
func (c *Console) ReadByte() (byte, error) {
	select {
	case b, ok := <-c.keys:
		if !ok {
			return 0, c.readErr
		}
		return b, nil
	case <-c.ctx.Done():
		return 0, c.ctx.Err()
	}
}

func (c *Console) WriteByte(b byte) error {
	c.buf[0] = b
	_, err := c.out.Write(c.buf[:])
	return err
}
