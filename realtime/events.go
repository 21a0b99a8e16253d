package realtime

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

// Message types
type baseMessage struct {
	Type string `json:"type"`
}

type initiationMetadataMessage struct {
	Event Metadata `json:"conversation_initiation_metadata_event"`
}

type userTranscriptMessage struct {
	Event struct {
		UserTranscript string `json:"user_transcript"`
	} `json:"user_transcription_event"`
}

type agentResponseMessage struct {
	Event struct {
		AgentResponse string `json:"agent_response"`
	} `json:"agent_response_event"`
}

type audioMessage struct {
	Event struct {
		AudioBase64 string `json:"audio_base_64"`
		EventID     int    `json:"event_id"`
	} `json:"audio_event"`
}

type pingMessage struct {
	Event struct {
		EventID int `json:"event_id"`
		PingMS  int `json:"ping_ms"`
	} `json:"ping_event"`
}

func (s *Session) readLoop() {
	defer func() {
		s.closeOnce.Do(func() {
			close(s.done)
			s.conn.Close()
		})
		close(s.transcripts)
		close(s.agentResponses)
		close(s.audioOut)
	}()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			select {
			case <-s.done:
				// Closed locally.
			default:
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.logger.Warn().Err(err).Msg("Conversation websocket closed unexpectedly")
					s.errMu.Lock()
					s.err = err
					s.errMu.Unlock()
				}
			}
			return
		}

		s.handleMessage(data)
	}
}

func (s *Session) handleMessage(data []byte) {
	var base baseMessage
	if err := json.Unmarshal(data, &base); err != nil {
		s.logger.Debug().Err(err).Msg("Failed to parse conversation event")
		return
	}

	switch base.Type {
	case "conversation_initiation_metadata":
		var msg initiationMetadataMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Debug().Err(err).Msg("Failed to parse conversation metadata")
			return
		}
		s.metaMu.Lock()
		s.metadata = msg.Event
		s.metaMu.Unlock()
		s.startOnce.Do(func() { close(s.started) })

		s.logger.Debug().
			Str("conversation_id", msg.Event.ConversationID).
			Str("output_format", msg.Event.AgentOutputAudioFormat).
			Msg("Conversation started")

	case "user_transcript":
		var msg userTranscriptMessage
		if err := json.Unmarshal(data, &msg); err == nil {
			s.emitTranscript(TranscriptEvent{
				Role:      "user",
				Text:      msg.Event.UserTranscript,
				Timestamp: time.Now().UnixMilli(),
			})
		}

	case "agent_response":
		var msg agentResponseMessage
		if err := json.Unmarshal(data, &msg); err == nil {
			now := time.Now().UnixMilli()
			select {
			case s.agentResponses <- AgentResponse{Text: msg.Event.AgentResponse, Timestamp: now}:
			default:
				s.logger.Warn().Msg("Agent response channel full, dropping event")
			}
			// Also send as transcript
			s.emitTranscript(TranscriptEvent{Role: "agent", Text: msg.Event.AgentResponse, Timestamp: now})
		}

	case "audio":
		var msg audioMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return
		}
		audio, err := base64.StdEncoding.DecodeString(msg.Event.AudioBase64)
		if err != nil {
			s.logger.Debug().Err(err).Int("event_id", msg.Event.EventID).Msg("Invalid audio payload")
			return
		}
		select {
		case s.audioOut <- AudioChunk{EventID: msg.Event.EventID, Data: audio}:
		default:
			s.logger.Warn().Int("event_id", msg.Event.EventID).Msg("Audio channel full, dropping chunk")
		}

	case "ping":
		var msg pingMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return
		}
		// Respond with pong
		if err := s.writeJSON(map[string]any{"type": "pong", "event_id": msg.Event.EventID}); err != nil {
			s.logger.Debug().Err(err).Msg("Failed to answer ping")
		}

	default:
		s.logger.Trace().Str("type", base.Type).Msg("Ignoring conversation event")
	}
}

func (s *Session) emitTranscript(ev TranscriptEvent) {
	select {
	case s.transcripts <- ev:
	default:
		s.logger.Warn().Str("role", ev.Role).Msg("Transcript channel full, dropping event")
	}
}
