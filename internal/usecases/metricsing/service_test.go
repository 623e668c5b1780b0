package metricsing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bizmetrics-api/infrastructure/memory"
	"github.com/vfg2006/bizmetrics-api/infrastructure/repository"
	repomocks "github.com/vfg2006/bizmetrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/bizmetrics-api/internal/config"
	"github.com/vfg2006/bizmetrics-api/internal/domain"
	"github.com/vfg2006/bizmetrics-api/internal/usecases/metricsing/mocks"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 30, 18, 0, 0, 0, time.UTC)

func newTestService(store memory.MetricsStore) *Service {
	service := NewService(&config.Config{}, store)
	service.now = func() time.Time { return testNow }
	service.parser.now = func() time.Time { return testNow }
	service.newID = func() (string, error) { return "upload0001", nil }
	return service
}

func uploadedFile(content string) domain.UploadedFile {
	return domain.UploadedFile{
		Name:    "data.json",
		Size:    int64(len(content)),
		Content: []byte(content),
	}
}

func TestService_GetMetrics_FallbackBeforeAnyUpload(t *testing.T) {
	service := newTestService(memory.NewMetricsStore())

	metrics := service.GetMetrics(context.Background())

	view, err := metrics.View()
	require.NoError(t, err)
	assert.Equal(t, 117000.0, view.KPIs.TotalRevenue)
	assert.Equal(t, testNow, metrics.LastUpdated)
}

func TestService_UploadThenGetReturnsSameData(t *testing.T) {
	service := newTestService(memory.NewMetricsStore())
	ctx := context.Background()

	result, err := service.Upload(ctx, uploadedFile(validUpload))
	require.NoError(t, err)
	assert.Equal(t, "upload0001", result.UploadID)

	stored := service.GetMetrics(ctx)

	assert.JSONEq(t, string(result.Metrics.Revenue), string(stored.Revenue))
	assert.JSONEq(t, `{"labels": ["Jan","Feb","Mar","Apr","May","Jun"], "values": [6,5,4,3,2,1]}`, string(stored.Costs))
	assert.JSONEq(t, `{"total_revenue": 21, "total_costs": 21, "profit_margin": 0, "growth_rate": 12.5}`, string(stored.KPIs))
	assert.Equal(t, testNow, stored.LastUpdated)
}

func TestService_RejectedUploadLeavesStoreUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "sem revenue", content: `{"costs": {}, "kpis": {}}`},
		{name: "sem costs", content: `{"revenue": {}, "kpis": {}}`},
		{name: "sem kpis", content: `{"revenue": {}, "costs": {}}`},
		{name: "não é JSON", content: "<html></html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewMetricsStore()
			service := newTestService(store)
			ctx := context.Background()

			_, err := service.Upload(ctx, uploadedFile(`{"revenue": 1, "costs": 2, "kpis": 3}`))
			require.NoError(t, err)

			_, err = service.Upload(ctx, uploadedFile(tt.content))
			require.Error(t, err)
			assert.True(t, IsValidationError(err))

			var uploadErr *UploadError
			require.ErrorAs(t, err, &uploadErr)
			assert.Equal(t, "data.json", uploadErr.FileName)

			stored, ok := store.Get()
			require.True(t, ok)
			assert.JSONEq(t, `3`, string(stored.KPIs))
		})
	}
}

func TestService_RejectedFirstUploadKeepsFallback(t *testing.T) {
	service := newTestService(memory.NewMetricsStore())
	ctx := context.Background()

	_, err := service.Upload(ctx, uploadedFile("not json"))
	require.Error(t, err)

	view, err := service.GetMetrics(ctx).View()
	require.NoError(t, err)
	assert.Equal(t, 117000.0, view.KPIs.TotalRevenue)
}

func TestService_SequentialUploadsLastWins(t *testing.T) {
	service := newTestService(memory.NewMetricsStore())
	ctx := context.Background()

	_, err := service.Upload(ctx, uploadedFile(`{"revenue": {"u": 1}, "costs": {"u": 1}, "kpis": {"u": 1}}`))
	require.NoError(t, err)
	_, err = service.Upload(ctx, uploadedFile(`{"revenue": {"u": 2}, "costs": {"u": 2}, "kpis": {"u": 2}}`))
	require.NoError(t, err)

	assert.JSONEq(t, `{"u": 2}`, string(service.GetMetrics(ctx).KPIs))
}

func TestService_UploadArchivesAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockArchive := repomocks.NewMockUploadArchiveRepository(ctrl)
	mockPublisher := mocks.NewMockEventPublisher(ctrl)

	service := newTestService(memory.NewMetricsStore()).
		WithArchive(mockArchive).
		WithPublisher(mockPublisher)

	mockArchive.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.UploadEntry) error {
			assert.Equal(t, "upload0001", entry.ID)
			assert.Equal(t, "data.json", entry.FileName)
			assert.Equal(t, int64(len(validUpload)), entry.SizeBytes)
			assert.Equal(t, testNow, entry.ReceivedAt)
			assert.Contains(t, string(entry.Payload), `"last_updated":"2025-06-30T18:00:00Z"`)
			return nil
		})

	mockPublisher.EXPECT().
		PublishMetricsUpdated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.MetricsUpdatedEvent) error {
			assert.Equal(t, "upload0001", event.UploadID)
			assert.JSONEq(t, `{"total_revenue": 21, "total_costs": 21, "profit_margin": 0, "growth_rate": 12.5}`, string(event.KPIs))
			return nil
		})

	_, err := service.Upload(context.Background(), uploadedFile(validUpload))
	require.NoError(t, err)
}

func TestService_ArchiveAndBrokerFailuresDoNotFailUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockArchive := repomocks.NewMockUploadArchiveRepository(ctrl)
	mockPublisher := mocks.NewMockEventPublisher(ctrl)

	store := memory.NewMetricsStore()
	service := newTestService(store).
		WithArchive(mockArchive).
		WithPublisher(mockPublisher)

	mockArchive.EXPECT().Save(gomock.Any(), gomock.Any()).Return(assert.AnError)
	mockPublisher.EXPECT().PublishMetricsUpdated(gomock.Any(), gomock.Any()).Return(assert.AnError)

	_, err := service.Upload(context.Background(), uploadedFile(validUpload))
	require.NoError(t, err)

	_, ok := store.Get()
	assert.True(t, ok)
}

func TestService_RejectedUploadIsNotArchived(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada esperada nos mocks
	service := newTestService(memory.NewMetricsStore()).
		WithArchive(repomocks.NewMockUploadArchiveRepository(ctrl)).
		WithPublisher(mocks.NewMockEventPublisher(ctrl))

	_, err := service.Upload(context.Background(), uploadedFile(`{"revenue": {}}`))
	assert.Error(t, err)
}

func TestService_ListUploads(t *testing.T) {
	ctx := context.Background()

	t.Run("arquivo desabilitado", func(t *testing.T) {
		service := newTestService(memory.NewMetricsStore())

		_, err := service.ListUploads(ctx, nil, 10)
		assert.ErrorIs(t, err, ErrArchiveDisabled)

		_, err = service.GetUpload(ctx, "abc")
		assert.ErrorIs(t, err, ErrArchiveDisabled)
	})

	tests := []struct {
		name      string
		limit     int
		wantLimit uint64
	}{
		{name: "limite padrão", limit: 0, wantLimit: DefaultListLimit},
		{name: "limite informado", limit: 5, wantLimit: 5},
		{name: "limite acima do máximo", limit: 1000, wantLimit: MaxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockArchive := repomocks.NewMockUploadArchiveRepository(ctrl)
			service := newTestService(memory.NewMetricsStore()).WithArchive(mockArchive)

			since := testNow.AddDate(0, 0, -7)
			mockArchive.EXPECT().
				List(gomock.Any(), repository.UploadFilter{Since: &since, Limit: tt.wantLimit}).
				Return([]*domain.UploadEntry{{ID: "a"}}, nil)

			entries, err := service.ListUploads(ctx, &since, tt.limit)
			require.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}

func TestService_GetUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockArchive := repomocks.NewMockUploadArchiveRepository(ctrl)
	service := newTestService(memory.NewMetricsStore()).WithArchive(mockArchive)
	ctx := context.Background()

	mockArchive.EXPECT().GetByID(gomock.Any(), "abc").Return(&domain.UploadEntry{ID: "abc"}, nil)
	mockArchive.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, nil)
	mockArchive.EXPECT().GetByID(gomock.Any(), "boom").Return(nil, assert.AnError)

	entry, err := service.GetUpload(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", entry.ID)

	_, err = service.GetUpload(ctx, "nope")
	assert.ErrorIs(t, err, ErrUploadNotFound)

	_, err = service.GetUpload(ctx, "boom")
	assert.ErrorIs(t, err, assert.AnError)
}
