package render

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"sync"
)

var ErrSinkClosed = errors.New("write called after sink closed")

// Sink is an asynchronous buffered writer for the digit stream. Rendering
// produces thousands of 9-byte writes; the sink batches them through a
// single writer goroutine so the sequential phase is not dominated by
// console syscalls. Writes are queued in call order, so the stream stays
// in digit order.
type Sink struct {
	queue    chan *bytes.Buffer
	done     chan struct{}
	writer   *bufio.Writer
	wg       sync.WaitGroup
	flushReq chan chan error
	once     sync.Once
	pool     sync.Pool
}

func NewSink(w io.Writer) *Sink {
	s := &Sink{
		queue:    make(chan *bytes.Buffer, 16),
		done:     make(chan struct{}),
		writer:   bufio.NewWriterSize(w, 4096),
		flushReq: make(chan chan error),
		pool: sync.Pool{
			New: func() any {
				// Chunks are 9 bytes, mismatch markers a bit more.
				return bytes.NewBuffer(make([]byte, 0, 64))
			},
		},
	}
	s.wg.Add(1)
	go s.writerLoop()
	return s
}

func (s *Sink) writerLoop() {
	defer s.wg.Done()
	for {
		select {
		case data := <-s.queue:
			_, _ = s.writer.Write(data.Bytes())
			s.pool.Put(data)
		case resp := <-s.flushReq:
			s.takePending()
			resp <- s.writer.Flush()
		case <-s.done:
			s.drain()
			return
		}
	}
}

// takePending moves already-queued buffers into the writer so a flush
// covers every Write that returned before it.
func (s *Sink) takePending() {
	for {
		select {
		case data := <-s.queue:
			_, _ = s.writer.Write(data.Bytes())
			s.pool.Put(data)
		default:
			return
		}
	}
}

// drain empties the queue after close, then flushes.
func (s *Sink) drain() {
	for {
		select {
		case data := <-s.queue:
			_, _ = s.writer.Write(data.Bytes())
			s.pool.Put(data)
		case resp := <-s.flushReq:
			s.takePending()
			resp <- s.writer.Flush()
		default:
			s.writer.Flush()
			return
		}
	}
}

func (s *Sink) Write(b []byte) (int, error) {
	select {
	case <-s.done:
		return 0, ErrSinkClosed
	default:
	}

	buf := s.pool.Get().(*bytes.Buffer)
	buf.Reset()
	buf.Write(b)

	select {
	case s.queue <- buf:
		return len(b), nil
	case <-s.done:
		s.pool.Put(buf)
		return 0, ErrSinkClosed
	}
}

func (s *Sink) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

func (s *Sink) Flush() error {
	select {
	case <-s.done:
		return ErrSinkClosed
	default:
	}

	resp := make(chan error, 1)
	select {
	case s.flushReq <- resp:
		return <-resp
	case <-s.done:
		return ErrSinkClosed
	}
}

// Close drains pending writes, flushes, and stops the writer goroutine.
func (s *Sink) Close() error {
	s.once.Do(func() {
		close(s.done)
	})
	s.wg.Wait()
	return nil
}

var _ io.WriteCloser = (*Sink)(nil)
