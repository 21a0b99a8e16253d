// Package elevenlabs is a client for the ElevenLabs Conversational AI API.
//
// A Client exposes one service per endpoint module: Agents, Conversations,
// Tools, KnowledgeBase, Tests, PhoneNumbers, OutboundCalling, BatchCalling,
// Widgets, Workspace, MCPServers, LLMUsage, AudioIsolation, AudioNative and
// Models. Each method maps to a single documented route.
//
// # Usage
//
//	c, err := elevenlabs.NewFromEnv(client.WithTimeout(10 * time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	agents, err := c.Agents.List(ctx, elevenlabs.ListAgentsParams{
//		Pagination: elevenlabs.Pagination{PageSize: 20},
//	})
//	if apierr.IsNotFound(err) {
//		// ...
//	}
//
// # Data
//
// Remote entities are returned as Object (map[string]any) exactly as the API
// sends them. Binary payloads such as conversation audio are returned as
// []byte. Request payload contents are not validated locally; only required
// path identifiers are, and an empty one fails with ErrMissingID before any
// request is made.
//
// # Errors
//
// Failures are *apierr.Error values; use errors.Is with the apierr sentinels
// or the apierr helpers to branch on them.
package elevenlabs
