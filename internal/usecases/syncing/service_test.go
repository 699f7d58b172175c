package syncing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	hubspotdomain "github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot/domain"
	hubspotmocks "github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot/mocks"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/ingesting"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller, defaults config.HubSpotSync) (*Service, *hubspotmocks.MockHubSpotIntegrator, *mocks.MockMetricRepository) {
	crm := hubspotmocks.NewMockHubSpotIntegrator(ctrl)
	metrics := mocks.NewMockMetricRepository(ctrl)

	service := NewService(crm, metrics, ingesting.NewRowValidator(config.Validation{}), defaults).(*Service)
	service.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return service, crm, metrics
}

func TestService_SyncPipelineUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, crm, metrics := newTestService(ctrl, config.HubSpotSync{Quarter: "Q1"})

	crm.EXPECT().GetPipelineMetrics(gomock.Any()).Return(&hubspotdomain.PipelineMetrics{
		TotalPipelineValue: 125000.5,
		ActiveDeals:        7,
		WinRate:            42.86,
	}, nil)
	metrics.EXPECT().InsertBatch(gomock.Any(), gomock.Len(3)).Return(nil)

	result, err := service.Sync(context.Background(), SyncRequest{DataType: "pipeline"})
	require.NoError(t, err)

	assert.Equal(t, DataPipeline, result.DataType)
	assert.Equal(t, domain.NewPeriod(domain.Q1, 2025), result.Period)
	require.Len(t, result.Records, 3)

	first := result.Records[0]
	assert.Equal(t, "Pipeline Value", first.MetricName)
	assert.Equal(t, 125000.5, first.MetricValue)
	assert.Equal(t, "USD", *first.MetricUnit)
	assert.Equal(t, "Sales", *first.Category)
	assert.Equal(t, syncDescription, *first.Description)
	assert.Nil(t, first.SourceFileID)

	assert.Equal(t, 7.0, result.Records[1].MetricValue)
	assert.Equal(t, "%", *result.Records[2].MetricUnit)
}

func TestService_SyncExplicitPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, crm, metrics := newTestService(ctrl, config.HubSpotSync{Quarter: "Q1", Year: 2024})

	crm.EXPECT().GetContacts(gomock.Any()).Return(make([]hubspotdomain.Object, 12), nil)
	metrics.EXPECT().InsertBatch(gomock.Any(), gomock.Len(1)).Return(nil)

	result, err := service.Sync(context.Background(), SyncRequest{DataType: "Contacts", Quarter: "q3", Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, domain.NewPeriod(domain.Q3, 2026), result.Period)
	assert.Equal(t, "Total Contacts", result.Records[0].MetricName)
	assert.Equal(t, 12.0, result.Records[0].MetricValue)
	assert.Equal(t, "Marketing", *result.Records[0].Category)
}

func TestService_SyncConfiguredYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, crm, metrics := newTestService(ctrl, config.HubSpotSync{Quarter: "Q2", Year: 2024})

	crm.EXPECT().GetRevenueMetrics(gomock.Any()).Return(&hubspotdomain.RevenueMetrics{RevenueGrowth: -12.5}, nil)
	metrics.EXPECT().InsertBatch(gomock.Any(), gomock.Len(3)).Return(nil)

	result, err := service.Sync(context.Background(), SyncRequest{DataType: "revenue"})
	require.NoError(t, err)
	assert.Equal(t, domain.NewPeriod(domain.Q2, 2024), result.Period)
	assert.Equal(t, -12.5, result.Records[2].MetricValue)
}

func TestService_SyncRejections(t *testing.T) {
	tests := []struct {
		name    string
		request SyncRequest
		wantErr error
	}{
		{"unknown data type", SyncRequest{DataType: "tickets"}, ErrUnsupportedDataType},
		{"invalid quarter", SyncRequest{DataType: "deals", Quarter: "Q9"}, ErrInvalidQuarter},
		{"year out of range", SyncRequest{DataType: "deals", Year: 2040}, ErrInvalidRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, crm, _ := newTestService(ctrl, config.HubSpotSync{Quarter: "Q1"})
			crm.EXPECT().GetDeals(gomock.Any()).Return([]hubspotdomain.Object{}, nil).AnyTimes()

			_, err := service.Sync(context.Background(), tt.request)

			var syncErr *SyncError
			require.ErrorAs(t, err, &syncErr)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_SyncCRMFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, crm, _ := newTestService(ctrl, config.HubSpotSync{Quarter: "Q1"})
	crm.EXPECT().GetCompanies(gomock.Any()).Return(nil, &domain.ExternalServiceError{Service: "hubspot", StatusCode: 401})

	_, err := service.Sync(context.Background(), SyncRequest{DataType: "companies"})
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestService_SyncStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, crm, metrics := newTestService(ctrl, config.HubSpotSync{Quarter: "Q1"})
	crm.EXPECT().GetDeals(gomock.Any()).Return([]hubspotdomain.Object{}, nil)
	metrics.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(domain.NewStorageError("insert metric batch", errors.New("locked")))

	_, err := service.Sync(context.Background(), SyncRequest{DataType: "deals"})
	assert.ErrorIs(t, err, domain.ErrStorage)
}
