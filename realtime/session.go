// Package realtime runs a live Conversational AI session over a websocket.
//
// Obtain a signed URL with Conversations.GetSignedURL, then Dial it:
//
//	signed, err := c.Conversations.GetSignedURL(ctx, agentID)
//	...
//	sess, err := realtime.Dial(ctx, signed["signed_url"].(string))
//	...
//	defer sess.Close()
//	for r := range sess.AgentResponses() {
//		fmt.Println(r.Text)
//	}
package realtime

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const defaultBuffer = 100

// TranscriptEvent is a line of the conversation transcript
type TranscriptEvent struct {
	Role      string `json:"role"` // "user" or "agent"
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// AgentResponse is an agent's text reply
type AgentResponse struct {
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// AudioChunk is decoded agent speech
type AudioChunk struct {
	EventID int    `json:"event_id"`
	Data    []byte `json:"data"`
}

// Metadata is sent by the server once the conversation starts
type Metadata struct {
	ConversationID         string `json:"conversation_id"`
	AgentOutputAudioFormat string `json:"agent_output_audio_format"`
	UserInputAudioFormat   string `json:"user_input_audio_format"`
}

// Session is an active conversation. Event channels are closed when the
// session ends; Done is closed first.
type Session struct {
	conn   *websocket.Conn
	logger zerolog.Logger

	writeMu sync.Mutex

	metaMu    sync.RWMutex
	metadata  Metadata
	started   chan struct{}
	startOnce sync.Once

	transcripts    chan TranscriptEvent
	agentResponses chan AgentResponse
	audioOut       chan AudioChunk
	done           chan struct{}
	closeOnce      sync.Once

	errMu sync.Mutex
	err   error
}

// Dial connects to a signed conversation URL and starts the read loop
func Dial(ctx context.Context, signedURL string, opts ...Option) (*Session, error) {
	o := options{
		handshakeTimeout: 10 * time.Second,
		buffer:           defaultBuffer,
		logger:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: o.handshakeTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, signedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect WebSocket: %w", err)
	}

	s := &Session{
		conn:           conn,
		logger:         o.logger,
		started:        make(chan struct{}),
		transcripts:    make(chan TranscriptEvent, o.buffer),
		agentResponses: make(chan AgentResponse, o.buffer),
		audioOut:       make(chan AudioChunk, o.buffer),
		done:           make(chan struct{}),
	}

	if o.initiation != nil {
		msg := map[string]any{"type": "conversation_initiation_client_data"}
		for k, v := range o.initiation {
			msg[k] = v
		}
		if err := s.writeJSON(msg); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to send initiation data: %w", err)
		}
	}

	// Start read loop
	go s.readLoop()

	return s, nil
}

// SendUserAudio streams a chunk of user microphone audio in the input
// format announced in Metadata
func (s *Session) SendUserAudio(audio []byte) error {
	return s.writeJSON(map[string]string{
		"user_audio_chunk": base64.StdEncoding.EncodeToString(audio),
	})
}

// SendText sends a typed user message
func (s *Session) SendText(text string) error {
	return s.writeJSON(map[string]string{"type": "user_message", "text": text})
}

// SendContextualUpdate gives the agent background information without
// prompting a reply
func (s *Session) SendContextualUpdate(text string) error {
	return s.writeJSON(map[string]string{"type": "contextual_update", "text": text})
}

func (s *Session) writeJSON(v any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	select {
	case <-s.done:
		return errors.New("session closed")
	default:
	}
	return s.conn.WriteJSON(v)
}

// Close ends the session. It is safe to call more than once.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)

		s.writeMu.Lock()
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		s.writeMu.Unlock()

		err = s.conn.Close()
	})
	return err
}

// Transcripts returns user and agent transcript lines
func (s *Session) Transcripts() <-chan TranscriptEvent {
	return s.transcripts
}

// AgentResponses returns the agent's text replies
func (s *Session) AgentResponses() <-chan AgentResponse {
	return s.agentResponses
}

// Audio returns decoded agent speech
func (s *Session) Audio() <-chan AudioChunk {
	return s.audioOut
}

// Done is closed when the session ends
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Started is closed once the conversation metadata has arrived
func (s *Session) Started() <-chan struct{} {
	return s.started
}

// Metadata returns the conversation metadata, zero until Started is closed
func (s *Session) Metadata() Metadata {
	s.metaMu.RLock()
	defer s.metaMu.RUnlock()
	return s.metadata
}

// ConversationID returns the conversation ID
func (s *Session) ConversationID() string {
	return s.Metadata().ConversationID
}

// Err returns the read error that ended the session, if it ended abnormally
func (s *Session) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}
