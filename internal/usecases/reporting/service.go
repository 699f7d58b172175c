package reporting

import (
	"context"
	"strings"

	"github.com/vfg2006/elt-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
)

const (
	// DefaultComparisonPeriods is how many recent periods a comparison covers when none are named.
	DefaultComparisonPeriods = 4
	DefaultTrendPeriods      = 8

	categoryAll = "all"
)

type Reporter interface {
	QueryMetrics(ctx context.Context, filter domain.MetricFilter) ([]*domain.MetricRecord, error)
	MetricsByCategory(ctx context.Context, category string, filter domain.MetricFilter) ([]*domain.MetricRecord, error)
	CompareAcrossQuarters(ctx context.Context, periods []domain.Period) (*QuarterComparison, error)
	QuarterOverQuarter(ctx context.Context, metricName string, period domain.Period) (*domain.QoQComparison, error)
	Quarters(ctx context.Context) ([]string, error)
	AvailableQuarters(ctx context.Context) ([]domain.Period, error)
	QuarterMetrics(ctx context.Context, period domain.Period) ([]*domain.MetricRecord, error)
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
	TrendAnalysis(ctx context.Context, metricName string) (*domain.TrendAnalysis, error)
	TrendData(ctx context.Context, metricName string, count int) ([]*domain.MetricRecord, error)
	Historical(ctx context.Context, metricName string, limit, offset int) (*HistoricalPage, error)
	UpsertConfig(ctx context.Context, name string, data domain.ConfigData) error
	GetConfig(ctx context.Context, name string) (*domain.DashboardConfig, error)
}

// QuarterComparison groups the metrics of several periods by name.
type QuarterComparison struct {
	Metrics  []*domain.MetricComparison `json:"data"`
	Quarters []string                   `json:"quarters"`
}

type HistoricalPage struct {
	Records []*domain.MetricRecord `json:"data"`
	Total   int                    `json:"total"`
	Limit   int                    `json:"limit"`
	Offset  int                    `json:"offset"`
}

type Service struct {
	metricRepository repository.MetricRepository
	configRepository repository.ConfigRepository
}

func NewService(
	metricRepository repository.MetricRepository,
	configRepository repository.ConfigRepository,
) Reporter {
	return &Service{
		metricRepository: metricRepository,
		configRepository: configRepository,
	}
}

func (s *Service) QueryMetrics(ctx context.Context, filter domain.MetricFilter) ([]*domain.MetricRecord, error) {
	return s.metricRepository.List(ctx, filter)
}

// MetricsByCategory lists metrics of one category; "all" disables the category filter.
func (s *Service) MetricsByCategory(ctx context.Context, category string, filter domain.MetricFilter) ([]*domain.MetricRecord, error) {
	if !strings.EqualFold(category, categoryAll) {
		filter.Category = category
	}
	return s.metricRepository.List(ctx, filter)
}

// CompareAcrossQuarters groups the records of the given periods by metric name.
// With no periods it compares the most recent DefaultComparisonPeriods stored periods.
func (s *Service) CompareAcrossQuarters(ctx context.Context, periods []domain.Period) (*QuarterComparison, error) {
	if len(periods) == 0 {
		latest, err := s.metricRepository.LatestPeriods(ctx, DefaultComparisonPeriods)
		if err != nil {
			return nil, err
		}
		if len(latest) == 0 {
			return &QuarterComparison{
				Metrics:  []*domain.MetricComparison{},
				Quarters: []string{},
			}, nil
		}
		return s.CompareAcrossQuarters(ctx, latest)
	}

	records, err := s.metricRepository.ListByPeriods(ctx, periods)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for _, record := range records {
		key := record.Period().Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	domain.SortPeriodKeys(keys)

	return &QuarterComparison{
		Metrics:  domain.GroupByMetric(records),
		Quarters: keys,
	}, nil
}

// QuarterOverQuarter compares the metric in period against the previous fiscal period,
// using the most recent record on each side.
func (s *Service) QuarterOverQuarter(ctx context.Context, metricName string, period domain.Period) (*domain.QoQComparison, error) {
	if strings.TrimSpace(metricName) == "" {
		return nil, NewValidationError(ErrMissingMetricName, apiErrors.ErrMissingRequiredData, "")
	}

	previousPeriod, ok := period.Previous()
	if !ok {
		return nil, NewValidationError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, period.Quarter.String())
	}

	current, err := s.metricRepository.FindLatest(ctx, metricName, period)
	if err != nil {
		return nil, err
	}

	previous, err := s.metricRepository.FindLatest(ctx, metricName, previousPeriod)
	if err != nil {
		return nil, err
	}

	comparison := domain.CompareQuarterOverQuarter(current, previous)
	return &comparison, nil
}

// Quarters returns the keys of every stored period, oldest first.
func (s *Service) Quarters(ctx context.Context) ([]string, error) {
	periods, err := s.metricRepository.LatestPeriods(ctx, 0)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(periods))
	for _, period := range periods {
		keys = append(keys, period.Key())
	}
	domain.SortPeriodKeys(keys)

	return keys, nil
}

// AvailableQuarters returns every stored period, newest first.
func (s *Service) AvailableQuarters(ctx context.Context) ([]domain.Period, error) {
	return s.metricRepository.LatestPeriods(ctx, 0)
}

func (s *Service) QuarterMetrics(ctx context.Context, period domain.Period) ([]*domain.MetricRecord, error) {
	return s.metricRepository.ListByPeriod(ctx, period)
}

func (s *Service) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	records, err := s.metricRepository.List(ctx, domain.MetricFilter{})
	if err != nil {
		return nil, err
	}

	summary := domain.Summarize(records)
	return &summary, nil
}

// TrendAnalysis classifies the full history of a metric as increasing, decreasing or stable.
func (s *Service) TrendAnalysis(ctx context.Context, metricName string) (*domain.TrendAnalysis, error) {
	if strings.TrimSpace(metricName) == "" {
		return nil, NewValidationError(ErrMissingMetricName, apiErrors.ErrMissingRequiredData, "")
	}

	records, err := s.metricRepository.History(ctx, metricName, 0, 0)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	analysis := domain.AnalyzeTrend(metricName, records)
	return &analysis, nil
}

// TrendData returns the count most recent records of a metric, oldest first.
func (s *Service) TrendData(ctx context.Context, metricName string, count int) ([]*domain.MetricRecord, error) {
	if strings.TrimSpace(metricName) == "" {
		return nil, NewValidationError(ErrMissingMetricName, apiErrors.ErrMissingRequiredData, "")
	}
	if count == 0 {
		count = DefaultTrendPeriods
	}
	return s.metricRepository.Trend(ctx, metricName, count)
}

// Historical pages through stored records newest first. An empty metricName covers every metric.
func (s *Service) Historical(ctx context.Context, metricName string, limit, offset int) (*HistoricalPage, error) {
	if limit < 0 || offset < 0 {
		return nil, NewValidationError(ErrInvalidPaging, apiErrors.ErrInvalidRequest, "")
	}

	records, err := s.metricRepository.History(ctx, metricName, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.metricRepository.Count(ctx, metricName)
	if err != nil {
		return nil, err
	}

	return &HistoricalPage{
		Records: records,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// UpsertConfig stores data under name, replacing whatever was stored before.
func (s *Service) UpsertConfig(ctx context.Context, name string, data domain.ConfigData) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewValidationError(ErrMissingConfigName, apiErrors.ErrMissingRequiredData, "")
	}
	if data == nil {
		return NewValidationError(ErrMissingConfigData, apiErrors.ErrMissingRequiredData, name)
	}

	if err := s.configRepository.Upsert(ctx, name, data); err != nil {
		return err
	}

	log.ForContext(ctx).WithField("config_name", name).Info("reporting: dashboard config saved")
	return nil
}

// GetConfig returns the stored config, or nil when name was never saved.
func (s *Service) GetConfig(ctx context.Context, name string) (*domain.DashboardConfig, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError(ErrMissingConfigName, apiErrors.ErrMissingRequiredData, "")
	}
	return s.configRepository.Get(ctx, name)
}
