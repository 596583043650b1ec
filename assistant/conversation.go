// ABOUTME: Conversation transcript for assistant sessions
// ABOUTME: Tracks message history with generated IDs
package assistant

import (
	"github.com/google/uuid"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation pairs a responder with its transcript. The opening assistant
// greeting is always the first message.
type Conversation struct {
	responder *Responder
	messages  []Message
}

func NewConversation(r *Responder) *Conversation {
	return &Conversation{
		responder: r,
		messages: []Message{
			{ID: "seed", Role: RoleAssistant, Content: r.Greeting()},
		},
	}
}

// Ask records the user prompt and the scripted reply, returning the reply.
func (c *Conversation) Ask(prompt string) Message {
	c.messages = append(c.messages, Message{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Content: prompt,
	})

	reply := Message{
		ID:      uuid.NewString(),
		Role:    RoleAssistant,
		Content: c.responder.Respond(prompt),
	}
	c.messages = append(c.messages, reply)
	return reply
}

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}
