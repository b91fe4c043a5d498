package fridge

import (
	"context"
	"fmt"
	"time"

	"github.com/larderhq/larder/pkg/types"
)

// ChatService turns a free-text message plus the current inventory into a
// reply and ranked suggestions. A remote implementation must honor the
// same output contract as the in-process one.
type ChatService interface {
	Chat(ctx context.Context, message string, items []types.Item, condiments []types.Condiment) (*types.ChatResponse, error)
}

// LocalChat satisfies ChatService in-process by running the suggestion
// engine against the store's current shelf set. It never fails.
type LocalChat struct {
	store *Store
}

// NewLocalChat returns a chat service backed by the given store.
func NewLocalChat(store *Store) *LocalChat {
	return &LocalChat{store: store}
}

// Chat generates suggestions for the message. An empty result is a
// success with an explanatory reply, not an error.
func (c *LocalChat) Chat(_ context.Context, message string, items []types.Item, condiments []types.Condiment) (*types.ChatResponse, error) {
	engine := NewEngine(c.store.Shelves(), time.Now())
	suggestions := engine.Generate(message, items, condiments)
	if len(suggestions) == 0 {
		return &types.ChatResponse{
			Reply: "Nothing usable in the fridge yet; stock a few items first.",
		}, nil
	}

	topic := message
	if topic == "" {
		topic = "chef's pick"
	}
	return &types.ChatResponse{
		Reply:       fmt.Sprintf("Generated %d recipe ideas for %q.", len(suggestions), topic),
		Suggestions: suggestions,
	}, nil
}
