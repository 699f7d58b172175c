package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func record(q domain.Quarter, year int, name string, value float64) *domain.MetricRecord {
	return &domain.MetricRecord{Quarter: q, Year: year, MetricName: name, MetricValue: value}
}

func newTestService(ctrl *gomock.Controller) (Reporter, *mocks.MockMetricRepository, *mocks.MockConfigRepository) {
	metrics := mocks.NewMockMetricRepository(ctrl)
	configs := mocks.NewMockConfigRepository(ctrl)
	return NewService(metrics, configs), metrics, configs
}

func TestService_QuarterOverQuarter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metrics, _ := newTestService(ctrl)

	current := domain.NewPeriod(domain.Q1, 2025)
	metrics.EXPECT().FindLatest(gomock.Any(), "NRR", current).Return(record(domain.Q1, 2025, "NRR", 105), nil)
	metrics.EXPECT().FindLatest(gomock.Any(), "NRR", domain.NewPeriod(domain.Q4, 2024)).Return(record(domain.Q4, 2024, "NRR", 102), nil)

	comparison, err := service.QuarterOverQuarter(context.Background(), "NRR", current)
	require.NoError(t, err)

	assert.Equal(t, 105.0, comparison.Current.MetricValue)
	assert.Equal(t, 102.0, comparison.Previous.MetricValue)
	require.NotNil(t, comparison.Change)
	assert.Equal(t, 3.0, *comparison.Change)
	require.NotNil(t, comparison.ChangePercent)
	assert.InDelta(t, 2.94, *comparison.ChangePercent, 0.01)
}

func TestService_QuarterOverQuarterWithoutPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metrics, _ := newTestService(ctrl)

	metrics.EXPECT().FindLatest(gomock.Any(), "NRR", domain.NewPeriod(domain.Q3, 2024)).Return(record(domain.Q3, 2024, "NRR", 101), nil)
	metrics.EXPECT().FindLatest(gomock.Any(), "NRR", domain.NewPeriod(domain.Q2, 2024)).Return(nil, nil)

	comparison, err := service.QuarterOverQuarter(context.Background(), "NRR", domain.NewPeriod(domain.Q3, 2024))
	require.NoError(t, err)

	assert.NotNil(t, comparison.Current)
	assert.Nil(t, comparison.Previous)
	assert.Nil(t, comparison.Change)
	assert.Nil(t, comparison.ChangePercent)
}

func TestService_QuarterOverQuarterInvalidQuarter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl)

	comparison, err := service.QuarterOverQuarter(context.Background(), "NRR", domain.Period{Quarter: "Q7", Year: 2024})
	assert.Nil(t, comparison)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestService_CompareAcrossQuartersDefaultsToLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metrics, _ := newTestService(ctrl)

	latest := []domain.Period{
		domain.NewPeriod(domain.Q1, 2024),
		domain.NewPeriod(domain.Q4, 2023),
	}
	metrics.EXPECT().LatestPeriods(gomock.Any(), DefaultComparisonPeriods).Return(latest, nil)
	metrics.EXPECT().ListByPeriods(gomock.Any(), latest).Return([]*domain.MetricRecord{
		record(domain.Q1, 2024, "ARR", 6.5),
		record(domain.Q1, 2024, "NRR", 105),
		record(domain.Q4, 2023, "ARR", 6.2),
	}, nil)

	comparison, err := service.CompareAcrossQuarters(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"2023-Q4", "2024-Q1"}, comparison.Quarters)
	require.Len(t, comparison.Metrics, 2)
	assert.Equal(t, "ARR", comparison.Metrics[0].MetricName)
	assert.Equal(t, domain.QuarterValue{Value: 6.2, Quarter: domain.Q4, Year: 2023}, comparison.Metrics[0].Quarters["2023-Q4"])
	assert.Len(t, comparison.Metrics[1].Quarters, 1)
}

func TestService_CompareAcrossQuartersEmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metrics, _ := newTestService(ctrl)
	metrics.EXPECT().LatestPeriods(gomock.Any(), DefaultComparisonPeriods).Return([]domain.Period{}, nil)

	comparison, err := service.CompareAcrossQuarters(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, comparison.Metrics)
	assert.Empty(t, comparison.Quarters)
}

func TestService_MetricsByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metrics, _ := newTestService(ctrl)

	metrics.EXPECT().List(gomock.Any(), domain.MetricFilter{Year: 2024}).Return([]*domain.MetricRecord{}, nil)
	metrics.EXPECT().List(gomock.Any(), domain.MetricFilter{Year: 2024, Category: "Sales"}).Return([]*domain.MetricRecord{}, nil)

	_, err := service.MetricsByCategory(context.Background(), "all", domain.MetricFilter{Year: 2024})
	require.NoError(t, err)

	_, err = service.MetricsByCategory(context.Background(), "Sales", domain.MetricFilter{Year: 2024})
	require.NoError(t, err)
}

func TestService_Quarters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metrics, _ := newTestService(ctrl)
	metrics.EXPECT().LatestPeriods(gomock.Any(), 0).Return([]domain.Period{
		domain.NewPeriod(domain.Q1, 2024),
		domain.NewPeriod(domain.Q4, 2023),
		domain.NewPeriod(domain.Q3, 2023),
	}, nil)

	keys, err := service.Quarters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-Q3", "2023-Q4", "2024-Q1"}, keys)
}

func TestService_TrendAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metrics, _ := newTestService(ctrl)
	metrics.EXPECT().History(gomock.Any(), "ARR", 0, 0).Return([]*domain.MetricRecord{
		record(domain.Q4, 2024, "ARR", 120),
		record(domain.Q3, 2024, "ARR", 110),
		record(domain.Q2, 2024, "ARR", 100),
	}, nil)

	analysis, err := service.TrendAnalysis(context.Background(), "ARR")
	require.NoError(t, err)

	assert.Equal(t, domain.TrendIncreasing, analysis.TrendDirection)
	require.NotNil(t, analysis.ChangePercentage)
	assert.InDelta(t, 20.0, *analysis.ChangePercentage, 0.0001)
	assert.Equal(t, domain.Q2, analysis.Data[0].Quarter)
}

func TestService_TrendDataDefaultCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metrics, _ := newTestService(ctrl)
	metrics.EXPECT().Trend(gomock.Any(), "Total ARR", DefaultTrendPeriods).Return([]*domain.MetricRecord{}, nil)
	metrics.EXPECT().Trend(gomock.Any(), "Total ARR", 2).Return([]*domain.MetricRecord{}, nil)

	_, err := service.TrendData(context.Background(), "Total ARR", 0)
	require.NoError(t, err)

	_, err = service.TrendData(context.Background(), "Total ARR", 2)
	require.NoError(t, err)
}

func TestService_Historical(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metrics, _ := newTestService(ctrl)
	metrics.EXPECT().History(gomock.Any(), "", 10, 20).Return([]*domain.MetricRecord{record(domain.Q1, 2024, "NRR", 1)}, nil)
	metrics.EXPECT().Count(gomock.Any(), "").Return(21, nil)

	page, err := service.Historical(context.Background(), "", 10, 20)
	require.NoError(t, err)
	assert.Len(t, page.Records, 1)
	assert.Equal(t, 21, page.Total)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 20, page.Offset)
}

func TestService_HistoricalStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metrics, _ := newTestService(ctrl)
	metrics.EXPECT().History(gomock.Any(), "NRR", 5, 0).Return(nil, domain.NewStorageError("metric history", errors.New("locked")))

	_, err := service.Historical(context.Background(), "NRR", 5, 0)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestService_UpsertConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, configs := newTestService(ctrl)
	configs.EXPECT().Upsert(gomock.Any(), "layout", domain.ConfigData{"a": 2.0}).Return(nil)

	require.NoError(t, service.UpsertConfig(context.Background(), " layout ", domain.ConfigData{"a": 2.0}))
}

func TestService_UpsertConfigValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl)

	tests := []struct {
		name    string
		cfgName string
		data    domain.ConfigData
		wantErr error
	}{
		{"missing name", "", domain.ConfigData{"a": 1}, ErrMissingConfigName},
		{"missing data", "layout", nil, ErrMissingConfigData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.UpsertConfig(context.Background(), tt.cfgName, tt.data)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, apiErrors.ErrMissingRequiredData, validationErr.Code)
		})
	}
}
