package syncing

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
)

type DataType string

const (
	DataPipeline  DataType = "pipeline"
	DataRevenue   DataType = "revenue"
	DataDeals     DataType = "deals"
	DataContacts  DataType = "contacts"
	DataCompanies DataType = "companies"
)

const (
	unitUSD     = "USD"
	unitCount   = "Count"
	unitPercent = "%"

	categorySales     = "Sales"
	categoryFinancial = "Financial"
	categoryMarketing = "Marketing"

	syncDescription = "Synced from HubSpot"
)

func ParseDataType(s string) (DataType, bool) {
	dataType := DataType(strings.ToLower(strings.TrimSpace(s)))
	switch dataType {
	case DataPipeline, DataRevenue, DataDeals, DataContacts, DataCompanies:
		return dataType, true
	}
	return "", false
}

type CRMSyncer interface {
	Sync(ctx context.Context, request SyncRequest) (*SyncResult, error)
}

// SyncRequest selects what to sync. Empty Quarter and zero Year fall back to the
// configured defaults.
type SyncRequest struct {
	DataType string `json:"dataType"`
	Quarter  string `json:"quarter,omitempty"`
	Year     int    `json:"year,omitempty"`
}

type SyncResult struct {
	DataType DataType               `json:"dataType"`
	Period   domain.Period          `json:"period"`
	Records  []*domain.MetricRecord `json:"data"`
}

// metricRow is one synthetic metric derived from CRM aggregates.
type metricRow struct {
	name     string
	value    float64
	unit     string
	category string
}

type Service struct {
	hubspot          hubspot.HubSpotIntegrator
	metricRepository repository.MetricRepository
	validator        ingesting.RowValidator
	defaults         config.HubSpotSync
	now              func() time.Time
}

func NewService(
	hubspotService hubspot.HubSpotIntegrator,
	metricRepository repository.MetricRepository,
	validator ingesting.RowValidator,
	defaults config.HubSpotSync,
) CRMSyncer {
	return &Service{
		hubspot:          hubspotService,
		metricRepository: metricRepository,
		validator:        validator,
		defaults:         defaults,
		now:              time.Now,
	}
}

// Sync reads the CRM aggregates for one data type and stores them as quarterly rows.
// Rows pass through the row validator and are inserted in one batch.
func (s *Service) Sync(ctx context.Context, request SyncRequest) (*SyncResult, error) {
	dataType, ok := ParseDataType(request.DataType)
	if !ok {
		return nil, NewSyncError(ErrUnsupportedDataType, apiErrors.ErrInvalidRequest, request.DataType, "")
	}

	period, err := s.resolvePeriod(request)
	if err != nil {
		return nil, err
	}

	rows, err := s.collect(ctx, dataType)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.MetricRecord, 0, len(rows))
	for i, row := range rows {
		record, _, err := s.validator.ValidateRow(row.raw(period), i+1)
		if err != nil {
			return nil, NewSyncError(ErrInvalidRow, apiErrors.ErrInvalidRequest, string(dataType), err.Error())
		}
		records = append(records, record)
	}

	if err := s.metricRepository.InsertBatch(ctx, records); err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sync_data_type": dataType,
		"sync_period":    period.Key(),
		"sync_rows":      len(records),
	}).Info("syncing: hubspot data stored")

	return &SyncResult{
		DataType: dataType,
		Period:   period,
		Records:  records,
	}, nil
}

func (s *Service) resolvePeriod(request SyncRequest) (domain.Period, error) {
	quarterText := request.Quarter
	if strings.TrimSpace(quarterText) == "" {
		quarterText = s.defaults.Quarter
	}

	quarter, ok := domain.ParseQuarter(quarterText)
	if !ok {
		return domain.Period{}, NewSyncError(ErrInvalidQuarter, apiErrors.ErrInvalidFormat, request.DataType, quarterText)
	}

	year := request.Year
	if year == 0 {
		year = s.defaults.Year
	}
	if year == 0 {
		year = s.now().Year()
	}

	return domain.NewPeriod(quarter, year), nil
}

func (s *Service) collect(ctx context.Context, dataType DataType) ([]metricRow, error) {
	switch dataType {
	case DataPipeline:
		metrics, err := s.hubspot.GetPipelineMetrics(ctx)
		if err != nil {
			return nil, err
		}
		return []metricRow{
			{"Pipeline Value", metrics.TotalPipelineValue, unitUSD, categorySales},
			{"Active Deals", float64(metrics.ActiveDeals), unitCount, categorySales},
			{"Win Rate", metrics.WinRate, unitPercent, categorySales},
		}, nil

	case DataRevenue:
		metrics, err := s.hubspot.GetRevenueMetrics(ctx)
		if err != nil {
			return nil, err
		}
		return []metricRow{
			{"Current Quarter Revenue", metrics.CurrentQuarterRevenue, unitUSD, categoryFinancial},
			{"Year to Date Revenue", metrics.YearToDateRevenue, unitUSD, categoryFinancial},
			{"Revenue Growth", metrics.RevenueGrowth, unitPercent, categoryFinancial},
		}, nil

	case DataDeals:
		deals, err := s.hubspot.GetDeals(ctx)
		if err != nil {
			return nil, err
		}
		return []metricRow{{"Total Deals", float64(len(deals)), unitCount, categorySales}}, nil

	case DataContacts:
		contacts, err := s.hubspot.GetContacts(ctx)
		if err != nil {
			return nil, err
		}
		return []metricRow{{"Total Contacts", float64(len(contacts)), unitCount, categoryMarketing}}, nil

	default:
		companies, err := s.hubspot.GetCompanies(ctx)
		if err != nil {
			return nil, err
		}
		return []metricRow{{"Total Companies", float64(len(companies)), unitCount, categorySales}}, nil
	}
}

func (r metricRow) raw(period domain.Period) map[string]string {
	return map[string]string{
		"quarter":      string(period.Quarter),
		"year":         strconv.Itoa(period.Year),
		"metric_name":  r.name,
		"metric_value": strconv.FormatFloat(r.value, 'f', -1, 64),
		"metric_unit":  r.unit,
		"category":     r.category,
		"description":  syncDescription,
	}
}
