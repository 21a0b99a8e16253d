package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/s0up4200/convai/apierr"
)

const streamChunkSize = 32 * 1024

// Stream delivers a chunked response body as an ordered, finite sequence of
// byte slices. It can be consumed once.
type Stream struct {
	body      io.ReadCloser
	chunks    chan []byte
	done      chan struct{}
	closeOnce sync.Once

	mu  sync.Mutex
	err error

	logger zerolog.Logger
	reqID  string
	start  time.Time
}

// Stream performs a request whose response is consumed incrementally. The
// status code is checked before any chunk is delivered, so HTTP failures are
// returned here rather than through Err; any status outside 2xx is an error.
//
// The client timeout bounds only the wait for response headers, so a long
// stream that keeps delivering data is not cut off. Use ctx to bound the
// whole transfer.
func (c *Client) Stream(ctx context.Context, method, path string, body any, query url.Values) (*Stream, error) {
	resp, reqID, start, err := c.roundTrip(ctx, c.streamClient, method, path, body, query)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		data, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, apierr.NewTransportError(fmt.Errorf("failed to read error body: %w", readErr))
		}
		return nil, apierr.UnexpectedStatus(resp.StatusCode, data)
	}

	c.logger.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("ElevenLabs API stream opened")

	s := &Stream{
		body:   resp.Body,
		chunks: make(chan []byte, 8),
		done:   make(chan struct{}),
		logger: c.logger,
		reqID:  reqID,
		start:  start,
	}
	go s.pump()

	return s, nil
}

func (s *Stream) pump() {
	defer close(s.chunks)
	defer s.body.Close()

	var total int
	buf := make([]byte, streamChunkSize)
	for {
		n, err := s.body.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			total += n
			select {
			case s.chunks <- chunk:
			case <-s.done:
				return
			}
		}
		if errors.Is(err, io.EOF) {
			s.logger.Debug().
				Str("request_id", s.reqID).
				Int("bytes", total).
				Dur("duration", time.Since(s.start)).
				Msg("ElevenLabs API stream finished")
			return
		}
		if err != nil {
			select {
			case <-s.done:
				// Closed by the consumer; the read error is expected.
			default:
				s.setErr(apierr.NewTransportError(err))
			}
			return
		}
	}
}

func (s *Stream) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Chunks returns the channel of body fragments. It is closed when the body is
// exhausted, the read fails, or the stream is closed.
func (s *Stream) Chunks() <-chan []byte {
	return s.chunks
}

// Err returns the read failure that ended the stream, if any. It is only
// meaningful once Chunks has been closed.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close stops the stream early and releases the connection
func (s *Stream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.body.Close()
	})
	return err
}

// Collect drains the stream, invoking onChunk for every fragment in order,
// and returns the accumulated payload. onChunk may be nil.
func (s *Stream) Collect(onChunk func([]byte)) ([]byte, error) {
	var buf bytes.Buffer
	for chunk := range s.chunks {
		if onChunk != nil {
			onChunk(chunk)
		}
		buf.Write(chunk)
	}
	if err := s.Err(); err != nil {
		return buf.Bytes(), err
	}
	return buf.Bytes(), nil
}
