package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/repository/mock"
	"promptcraft/backend/internal/service"
	"promptcraft/backend/internal/service/ai"
	aimock "promptcraft/backend/internal/service/ai/mock"
)

func newSuggestions(ctrl *gomock.Controller) (service.SuggestionService, *aimock.MockProvider, *mock.MockFolderRepository) {
	provider := aimock.NewMockProvider(ctrl)
	folders := mock.NewMockFolderRepository(ctrl)
	subtree := service.NewSubtreeService(folders, mock.NewMockPromptRepository(ctrl))
	return service.NewSuggestionService(provider, subtree), provider, folders
}

func TestSuggestionService_SuggestTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, provider, folders := newSuggestions(ctrl)

	work := int64(1)
	folders.EXPECT().ListByOwner(gomock.Any(), int64(9)).Return([]model.Folder{
		{ID: 1, Name: "Work"},
		{ID: 2, Name: "Drafts", ParentID: &work},
	}, nil)
	provider.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req ai.Request) (string, error) {
		require.True(t, req.JSON)
		require.Contains(t, req.System, "<folder>Work/Drafts</folder>")
		require.Contains(t, req.Content, "Summarize this article")
		return `{"suggestedTags": ["summary", "Summary", "summary", "writing", "news", "short", "extra"]}`, nil
	})

	folderID := int64(2)
	tags, err := svc.SuggestTags(context.Background(), 9, "Summarize this article", &folderID)
	require.NoError(t, err)
	require.Equal(t, []string{"summary", "Summary", "writing", "news", "short"}, tags)
}

func TestSuggestionService_SuggestTags_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, provider, _ := newSuggestions(ctrl)

	provider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("sure! here are tags", nil)

	_, err := svc.SuggestTags(context.Background(), 9, "content", nil)
	require.ErrorIs(t, err, ai.ErrMalformedResponse)
}

func TestSuggestionService_UnknownFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, folders := newSuggestions(ctrl)

	folders.EXPECT().ListByOwner(gomock.Any(), int64(9)).Return([]model.Folder{}, nil)

	missing := int64(3)
	_, err := svc.SuggestTitle(context.Background(), 9, "content", &missing)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestSuggestionService_SuggestTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, provider, _ := newSuggestions(ctrl)

	provider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("\"Article Summarizer\"\n", nil)

	title, err := svc.SuggestTitle(context.Background(), 9, "Summarize this article", nil)
	require.NoError(t, err)
	require.Equal(t, "Article Summarizer", title)
}

func TestSuggestionService_Refine(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, provider, _ := newSuggestions(ctrl)

	off := false
	provider.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req ai.Request) (string, error) {
		require.Equal(t, 256, req.MaxTokens)
		require.NotContains(t, req.System, "Persona:")
		require.Equal(t, "write a poem", req.Content)
		return "  You are a poet. Write a poem.  ", nil
	})

	out, err := svc.Refine(context.Background(), "write a poem", service.RefineOptions{Persona: &off, MaxTokens: 256})
	require.NoError(t, err)
	require.Equal(t, "You are a poet. Write a poem.", out)
}

func TestSuggestionService_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, provider, _ := newSuggestions(ctrl)
	boom := errors.New("upstream 500")

	provider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", boom)
	provider.EXPECT().Name().Return(ai.ProviderOpenAI)

	_, err := svc.Refine(context.Background(), "text", service.RefineOptions{})
	require.ErrorIs(t, err, boom)
}

func TestSuggestionService_Unavailable(t *testing.T) {
	svc := service.NewSuggestionService(nil, nil)
	ctx := context.Background()

	_, err := svc.SuggestTags(ctx, 1, "content", nil)
	require.ErrorIs(t, err, service.ErrAIUnavailable)
	_, err = svc.SuggestTitle(ctx, 1, "content", nil)
	require.ErrorIs(t, err, service.ErrAIUnavailable)
	_, err = svc.Refine(ctx, "content", service.RefineOptions{})
	require.ErrorIs(t, err, service.ErrAIUnavailable)
}

func TestSuggestionService_EmptyContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newSuggestions(ctrl)

	_, err := svc.SuggestTags(context.Background(), 1, "   ", nil)
	require.ErrorIs(t, err, service.ErrInvalid)
}
