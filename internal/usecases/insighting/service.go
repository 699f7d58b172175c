package insighting

import (
	"context"
	"sort"
	"time"

	"github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/openai"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
)

type Insighter interface {
	Latest(ctx context.Context) (*domain.InsightSnapshot, error)
	Generate(ctx context.Context, request domain.InsightRequest) (*GeneratedInsight, error)
	Overwrite(ctx context.Context, edit domain.InsightEdit) (*domain.InsightSnapshot, error)
	DashboardData(ctx context.Context) (*domain.DashboardData, error)
}

type GeneratedInsight struct {
	Insights  string            `json:"insights"`
	Usage     domain.TokenUsage `json:"usage"`
	Timestamp time.Time         `json:"timestamp"`
	Saved     bool              `json:"saved"`
}

type Service struct {
	metricRepository  repository.MetricRepository
	insightRepository repository.InsightRepository
	narrator          openai.Narrator
	now               func() time.Time
}

func NewService(
	metricRepository repository.MetricRepository,
	insightRepository repository.InsightRepository,
	narrator openai.Narrator,
) Insighter {
	return &Service{
		metricRepository:  metricRepository,
		insightRepository: insightRepository,
		narrator:          narrator,
		now:               time.Now,
	}
}

// Latest returns the most recent snapshot, or nil before the first generation.
func (s *Service) Latest(ctx context.Context) (*domain.InsightSnapshot, error) {
	return s.insightRepository.Latest(ctx)
}

// Generate asks the narrator for a summary of the current period and the client's
// comparisons. The snapshot is saved on a best-effort basis: a failed save is logged
// and the narrative is still returned.
func (s *Service) Generate(ctx context.Context, request domain.InsightRequest) (*GeneratedInsight, error) {
	data, err := s.dashboardData(ctx, request.CurrentQuarter)
	if err != nil {
		return nil, err
	}

	narrative, err := s.narrator.Generate(ctx, domain.NarrativeInput{
		Period:         data.Period,
		KeyMetrics:     sortedKeyMetrics(data.Metrics),
		QoQComparisons: request.QoQComparisons,
	})
	if err != nil {
		return nil, err
	}

	result := &GeneratedInsight{
		Insights:  narrative.Text,
		Usage:     narrative.Usage,
		Timestamp: s.now().UTC(),
	}

	_, err = s.insightRepository.Save(ctx, &domain.InsightSnapshot{
		InsightsText:   narrative.Text,
		QoQData:        request.QoQComparisons,
		CurrentQuarter: request.CurrentQuarter,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("insighting: failed to save snapshot")
		return result, nil
	}

	result.Saved = true
	return result, nil
}

// Overwrite rewrites the latest snapshot in place and returns it as stored.
func (s *Service) Overwrite(ctx context.Context, edit domain.InsightEdit) (*domain.InsightSnapshot, error) {
	_, err := s.insightRepository.UpdateLatest(ctx, &domain.InsightSnapshot{
		InsightsText:   edit.Insights,
		QoQData:        edit.QoQComparisons,
		CurrentQuarter: edit.CurrentQuarter,
	})
	if err != nil {
		return nil, err
	}

	return s.insightRepository.Latest(ctx)
}

// DashboardData returns the key metrics of the latest stored period.
func (s *Service) DashboardData(ctx context.Context) (*domain.DashboardData, error) {
	return s.dashboardData(ctx, nil)
}

func (s *Service) dashboardData(ctx context.Context, period *domain.Period) (*domain.DashboardData, error) {
	if period == nil {
		latest, err := s.metricRepository.LatestPeriods(ctx, 1)
		if err != nil {
			return nil, err
		}
		if len(latest) == 0 {
			return &domain.DashboardData{Metrics: domain.KeyMetrics{}}, nil
		}
		period = &latest[0]
	}

	records, err := s.metricRepository.ListByPeriod(ctx, *period)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardData{
		Period:  period,
		Metrics: domain.ExtractKeyMetrics(records),
	}, nil
}

func sortedKeyMetrics(metrics domain.KeyMetrics) []domain.KeyMetric {
	sorted := make([]domain.KeyMetric, 0, len(metrics))
	for _, metric := range metrics {
		sorted = append(sorted, metric)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MetricName < sorted[j].MetricName
	})
	return sorted
}
