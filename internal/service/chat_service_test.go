package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "spark-chat/backend/internal/errors"
	mock_gen "spark-chat/backend/internal/generator/mocks"
	"spark-chat/backend/internal/model"
	"spark-chat/backend/internal/repository"
	"spark-chat/backend/internal/service"
	"spark-chat/backend/internal/store"
)

// setupChatService wires a ChatService over a real repository and an
// in-memory store, with only the generator mocked: the pipeline-to-
// repository interaction is exactly what these tests are about.
func setupChatService(t *testing.T) (*service.ChatService, *repository.ChatRepository, *mock_gen.MockGenerator) {
	repo := repository.New(store.NewMemoryStore())
	gen := mock_gen.NewMockGenerator(t)
	return service.NewChatService(repo, gen), repo, gen
}

func TestChatService_Submit_NewChat(t *testing.T) {
	ctx := context.Background()
	chatService, repo, gen := setupChatService(t)

	gen.On("Generate", mock.Anything, "Hello").Return("Hi! How can I help?", nil).Once()

	result, err := chatService.Submit(ctx, "", "Hello")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Hello", result.Chat.Title)
	assert.Equal(t, model.RoleUser, result.UserMessage.Role)
	assert.Equal(t, "Hello", result.UserMessage.Content)
	require.NotNil(t, result.AssistantMessage)
	assert.Equal(t, model.RoleAssistant, result.AssistantMessage.Role)
	assert.Equal(t, "Hi! How can I help?", result.AssistantMessage.Content)

	// The chat really exists in the repository, with both messages in order.
	chat, err := repo.GetChat(result.Chat.ID)
	require.NoError(t, err)
	require.Len(t, chat.Messages, 2)
	assert.Equal(t, model.RoleUser, chat.Messages[0].Role)
	assert.Equal(t, model.RoleAssistant, chat.Messages[1].Role)
}

func TestChatService_Submit_EmptyInputIsNoOp(t *testing.T) {
	ctx := context.Background()
	chatService, repo, _ := setupChatService(t)

	for _, input := range []string{"", "   ", "\n\t "} {
		result, err := chatService.Submit(ctx, "", input)
		assert.ErrorIs(t, err, app_errors.ErrEmptyMessage)
		assert.Nil(t, result)
	}
	assert.Empty(t, repo.ListChats())
}

func TestChatService_Submit_ExistingChat(t *testing.T) {
	ctx := context.Background()
	chatService, _, gen := setupChatService(t)

	gen.On("Generate", mock.Anything, mock.AnythingOfType("string")).Return("reply", nil).Twice()

	first, err := chatService.Submit(ctx, "", "first question")
	require.NoError(t, err)

	second, err := chatService.Submit(ctx, first.Chat.ID, "second question")
	require.NoError(t, err)

	// Two sequential submits append four messages in chronological order.
	require.Len(t, second.Chat.Messages, 4)
	roles := []model.Role{model.RoleUser, model.RoleAssistant, model.RoleUser, model.RoleAssistant}
	for i, want := range roles {
		assert.Equal(t, want, second.Chat.Messages[i].Role)
	}
	assert.Equal(t, "first question", second.Chat.Messages[0].Content)
	assert.Equal(t, "second question", second.Chat.Messages[2].Content)

	// The title still comes from the first user message.
	assert.Equal(t, "first question", second.Chat.Title)
}

func TestChatService_Submit_UnknownChat(t *testing.T) {
	ctx := context.Background()
	chatService, _, _ := setupChatService(t)

	_, err := chatService.Submit(ctx, "no-such-chat", "Hello")
	assert.ErrorIs(t, err, app_errors.ErrNotFound)
}

func TestChatService_Submit_GenerationFailure(t *testing.T) {
	ctx := context.Background()
	chatService, repo, gen := setupChatService(t)

	gen.On("Generate", mock.Anything, "Hello").Return("", errors.New("model unavailable")).Once()

	result, err := chatService.Submit(ctx, "", "Hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrGeneration)

	// The user message persists without a corresponding assistant message.
	require.NotNil(t, result)
	assert.Nil(t, result.AssistantMessage)
	chat, err := repo.GetChat(result.Chat.ID)
	require.NoError(t, err)
	require.Len(t, chat.Messages, 1)
	assert.Equal(t, model.RoleUser, chat.Messages[0].Role)
}

func TestChatService_Submit_TrimsContent(t *testing.T) {
	ctx := context.Background()
	chatService, _, gen := setupChatService(t)

	gen.On("Generate", mock.Anything, "Hello").Return("reply", nil).Once()

	result, err := chatService.Submit(ctx, "", "  Hello  \n")
	require.NoError(t, err)
	assert.Equal(t, "Hello", result.UserMessage.Content)
	assert.Equal(t, "Hello", result.Chat.Title)
}

func TestChatService_BusyFlag(t *testing.T) {
	ctx := context.Background()
	chatService, _, gen := setupChatService(t)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	gen.On("Generate", mock.Anything, "Hello").
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return("reply", nil).Once()

	assert.False(t, chatService.Busy())

	go func() {
		defer close(done)
		_, err := chatService.Submit(ctx, "", "Hello")
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, chatService.Busy())

	close(release)
	<-done
	assert.False(t, chatService.Busy())
}

func TestChatService_NewChatAndListing(t *testing.T) {
	ctx := context.Background()
	chatService, _, _ := setupChatService(t)

	chat, err := chatService.NewChat(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTitle, chat.Title)

	chats, err := chatService.ListChats(ctx)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, chat.ID, chats[0].ID)

	_, err = chatService.GetChat(ctx, "missing")
	assert.ErrorIs(t, err, app_errors.ErrNotFound)
}
