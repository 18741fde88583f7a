package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"spark-chat/backend/internal/model"
	"spark-chat/backend/internal/store"
)

// titleLimit is the maximum number of runes carried over from the first
// user message into a chat title before truncation.
const titleLimit = 50

// ChatRepository owns the in-memory chat collection and keeps it mirrored
// to the persistent store. It is the only component that mutates chats.
//
// The collection is ordered most-recently-created first: new chats are
// prepended. Every mutation rewrites the whole blob under store.KeyChats;
// there are no partial writes.
type ChatRepository struct {
	mu    sync.RWMutex
	chats []*model.Chat
	store store.Store
}

func New(st store.Store) *ChatRepository {
	return &ChatRepository{store: st}
}

// Load reads the persisted collection. An absent blob initializes an empty
// collection; a malformed blob is logged and also degrades to an empty
// collection rather than failing startup. Only a real store error is
// surfaced.
func (r *ChatRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payload, err := r.store.Get(ctx, store.KeyChats)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			r.chats = nil
			return nil
		}
		return fmt.Errorf("could not load chats: %w", err)
	}

	var chats []*model.Chat
	if err := json.Unmarshal([]byte(payload), &chats); err != nil {
		slog.Warn("Persisted chat collection is malformed, starting empty.", "error", err)
		r.chats = nil
		return nil
	}
	// A blob like `[null]` parses but yields nil entries, which every later
	// read would dereference. Treat it as malformed too.
	for _, c := range chats {
		if c == nil {
			slog.Warn("Persisted chat collection contains null entries, starting empty.")
			r.chats = nil
			return nil
		}
	}

	r.chats = chats
	return nil
}

// CreateChat constructs a new chat with no messages and prepends it to the
// collection, making it the most recent one. An empty title gets the
// placeholder.
func (r *ChatRepository) CreateChat(ctx context.Context, title string) (*model.Chat, error) {
	if title == "" {
		title = model.DefaultTitle
	}
	chat := &model.Chat{
		ID:        uuid.NewString(),
		Title:     title,
		Messages:  []model.Message{},
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.chats = append([]*model.Chat{chat}, r.chats...)
	if err := r.persistLocked(ctx); err != nil {
		return nil, err
	}
	return cloneChat(chat), nil
}

// AppendMessage appends msg to the chat's ordered sequence. If the chat has
// no messages yet, or its title is still the placeholder, a user-role
// message also sets the title (derived from its content). Returns a copy of
// the updated chat.
func (r *ChatRepository) AppendMessage(ctx context.Context, chatID string, msg model.Message) (*model.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	chat := r.findLocked(chatID)
	if chat == nil {
		return nil, ErrNotFound
	}

	if msg.Role == model.RoleUser && (len(chat.Messages) == 0 || chat.Title == model.DefaultTitle) {
		chat.Title = DeriveTitle(msg.Content)
	}
	chat.Messages = append(chat.Messages, msg)

	if err := r.persistLocked(ctx); err != nil {
		return nil, err
	}
	return cloneChat(chat), nil
}

// GetChat returns a copy of one chat with all its messages.
func (r *ChatRepository) GetChat(chatID string) (*model.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chat := r.findLocked(chatID)
	if chat == nil {
		return nil, ErrNotFound
	}
	return cloneChat(chat), nil
}

// ListChats returns copies of all chats, most recently created first.
func (r *ChatRepository) ListChats() []*model.Chat {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chats := make([]*model.Chat, len(r.chats))
	for i, c := range r.chats {
		chats[i] = cloneChat(c)
	}
	return chats
}

// Persist rewrites the stored blob from the current collection.
func (r *ChatRepository) Persist(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.persistLocked(ctx)
}

// Clear empties the collection and removes the stored blob.
func (r *ChatRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.chats = nil
	return r.store.Delete(ctx, store.KeyChats)
}

// persistLocked serializes the whole collection and overwrites the blob.
// An empty collection is never written: it must not clobber real data with
// an empty placeholder (Clear deletes the key explicitly instead).
func (r *ChatRepository) persistLocked(ctx context.Context) error {
	if len(r.chats) == 0 {
		return nil
	}
	payload, err := json.Marshal(r.chats)
	if err != nil {
		return fmt.Errorf("could not serialize chats: %w", err)
	}
	if err := r.store.Set(ctx, store.KeyChats, string(payload)); err != nil {
		return fmt.Errorf("could not persist chats: %w", err)
	}
	return nil
}

func (r *ChatRepository) findLocked(chatID string) *model.Chat {
	for _, c := range r.chats {
		if c.ID == chatID {
			return c
		}
	}
	return nil
}

// DeriveTitle builds a chat title from user text: at most titleLimit runes,
// with "..." appended when the text was longer.
func DeriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleLimit {
		return content
	}
	return string(runes[:titleLimit]) + "..."
}

func cloneChat(c *model.Chat) *model.Chat {
	out := *c
	out.Messages = make([]model.Message, len(c.Messages))
	copy(out.Messages, c.Messages)
	return &out
}
