package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"routehub/internal/domain/entity"
	mockSvc "routehub/internal/mocks/service"
	"routehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEnrichmentService(t *testing.T) (usecase.EnrichmentUsecase, *mockSvc.MockAuthClient) {
	authClient := mockSvc.NewMockAuthClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewEnrichmentService(logger, authClient), authClient
}

func TestEnrichRouteWithCreator_Success(t *testing.T) {
	enrichment, authClient := createTestEnrichmentService(t)
	ctx := context.Background()

	route := &entity.Route{ID: uuid.New(), CreatorID: "creator-1", Name: "Loop"}
	authClient.EXPECT().GetUserByID(ctx, "creator-1").
		Return(&entity.Creator{ID: "creator-1", Email: "c@example.com", Alias: "c"}, nil)

	enriched := enrichment.EnrichRouteWithCreator(ctx, route)

	require.NotNil(t, enriched.Creator)
	assert.Equal(t, "creator-1", enriched.Creator.ID)
	assert.Equal(t, route.Name, enriched.Name)
}

func TestEnrichRouteWithCreator_AuthFailureDegradesToNilCreator(t *testing.T) {
	enrichment, authClient := createTestEnrichmentService(t)
	ctx := context.Background()

	route := &entity.Route{ID: uuid.New(), CreatorID: "creator-1", Name: "Loop"}
	authClient.EXPECT().GetUserByID(ctx, "creator-1").Return(nil, errors.New("auth service down"))

	enriched := enrichment.EnrichRouteWithCreator(ctx, route)

	require.NotNil(t, enriched)
	assert.Nil(t, enriched.Creator)
	assert.Equal(t, route.Name, enriched.Name)
}

func TestEnrichRouteWithCreator_MissingCreatorID(t *testing.T) {
	enrichment, _ := createTestEnrichmentService(t)

	route := &entity.Route{ID: uuid.New(), Name: "Orphan"}
	enriched := enrichment.EnrichRouteWithCreator(context.Background(), route)

	assert.Nil(t, enriched.Creator)
}

func TestEnrichRoutesWithCreators_ConcurrentFanOut(t *testing.T) {
	enrichment, authClient := createTestEnrichmentService(t)
	ctx := context.Background()

	routes := []*entity.Route{
		{ID: uuid.New(), CreatorID: "creator-1", Name: "A"},
		{ID: uuid.New(), CreatorID: "creator-2", Name: "B"},
		{ID: uuid.New(), CreatorID: "creator-1", Name: "C"},
	}

	authClient.EXPECT().GetUserByID(ctx, "creator-1").
		Return(&entity.Creator{ID: "creator-1", Alias: "one"}, nil).Times(2)
	authClient.EXPECT().GetUserByID(ctx, "creator-2").
		Return(&entity.Creator{ID: "creator-2", Alias: "two"}, nil)

	enriched := enrichment.EnrichRoutesWithCreators(ctx, routes)

	require.Len(t, enriched, 3)
	// Order is preserved regardless of lookup completion order.
	assert.Equal(t, "A", enriched[0].Name)
	assert.Equal(t, "B", enriched[1].Name)
	assert.Equal(t, "C", enriched[2].Name)
	require.NotNil(t, enriched[1].Creator)
	assert.Equal(t, "creator-2", enriched[1].Creator.ID)
}

func TestEnrichRoutesWithCreators_FailuresDegrade(t *testing.T) {
	enrichment, authClient := createTestEnrichmentService(t)
	ctx := context.Background()

	routes := []*entity.Route{
		{ID: uuid.New(), CreatorID: "creator-1", Name: "A"},
		{ID: uuid.New(), CreatorID: "creator-2", Name: "B"},
	}

	authClient.EXPECT().GetUserByID(ctx, "creator-1").Return(nil, errors.New("timeout"))
	authClient.EXPECT().GetUserByID(ctx, "creator-2").Return(nil, errors.New("timeout"))

	enriched := enrichment.EnrichRoutesWithCreators(ctx, routes)

	require.Len(t, enriched, 2)
	assert.Nil(t, enriched[0].Creator)
	assert.Nil(t, enriched[1].Creator)
}

func TestGetCreatorSummary_MasksEmail(t *testing.T) {
	enrichment, authClient := createTestEnrichmentService(t)
	ctx := context.Background()

	authClient.EXPECT().GetUserByID(ctx, "creator-1").
		Return(&entity.Creator{ID: "creator-1", Email: "runner@example.com", Alias: "runner"}, nil)

	summary, err := enrichment.GetCreatorSummary(ctx, "creator-1")

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "runner@***", summary.Email)
	assert.Equal(t, "runner", summary.Alias)
}

func TestGetCreatorSummary_UnknownCreator(t *testing.T) {
	enrichment, authClient := createTestEnrichmentService(t)
	ctx := context.Background()

	authClient.EXPECT().GetUserByID(ctx, "ghost").Return(nil, nil)

	summary, err := enrichment.GetCreatorSummary(ctx, "ghost")

	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestAuthorizationHelpers(t *testing.T) {
	enrichment, _ := createTestEnrichmentService(t)

	route := &entity.Route{ID: uuid.New(), CreatorID: "creator-1"}

	assert.True(t, enrichment.CanUserModifyRoute(route, "creator-1"))
	assert.False(t, enrichment.CanUserModifyRoute(route, "someone-else"))
	assert.True(t, enrichment.CanUserViewRoute(route, "anyone"))
}
