package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

func TestMetricRepository_InsertAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewMetricRepository(newTestConn(t))

	status := domain.StatusAmber
	record := &domain.MetricRecord{
		Quarter:     domain.Q1,
		Year:        2024,
		MetricName:  "NRR",
		MetricValue: 105,
		MetricUnit:  strPtr("%"),
		Category:    strPtr("Growth & Retention"),
		Description: strPtr("Net Revenue Retention"),
		TargetValue: floatPtrOf(110),
		Status:      &status,
	}

	id, err := repo.Insert(ctx, record)
	require.NoError(t, err)
	assert.NotZero(t, id)

	records, err := repo.List(ctx, domain.MetricFilter{Quarter: domain.Q1, Year: 2024})
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, domain.Q1, got.Quarter)
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, "NRR", got.MetricName)
	assert.Equal(t, 105.0, got.MetricValue)
	assert.Equal(t, "%", *got.MetricUnit)
	assert.Equal(t, 110.0, *got.TargetValue)
	assert.Equal(t, domain.StatusAmber, *got.Status)
	assert.Nil(t, got.SourceFileID)
	assert.False(t, got.CreatedAt.IsZero())

	none, err := repo.List(ctx, domain.MetricFilter{Quarter: domain.Q2, Year: 2024})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMetricRepository_ListOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewMetricRepository(newTestConn(t))

	require.NoError(t, repo.InsertBatch(ctx, []*domain.MetricRecord{
		metric(domain.Q3, 2023, "NRR", 108),
		metric(domain.Q1, 2024, "NRR", 105),
		metric(domain.Q4, 2023, "CAC", 2580),
		metric(domain.Q4, 2023, "NRR", 102),
	}))

	records, err := repo.List(ctx, domain.MetricFilter{})
	require.NoError(t, err)
	require.Len(t, records, 4)

	keys := make([]string, 0, len(records))
	for _, r := range records {
		keys = append(keys, r.Period().Key()+" "+r.MetricName)
	}
	assert.Equal(t, []string{"2024-Q1 NRR", "2023-Q4 CAC", "2023-Q4 NRR", "2023-Q3 NRR"}, keys)

	periods, err := repo.LatestPeriods(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.Period{{Quarter: domain.Q1, Year: 2024}, {Quarter: domain.Q4, Year: 2023}}, periods)
}

func TestMetricRepository_FindLatest(t *testing.T) {
	ctx := context.Background()
	repo := NewMetricRepository(newTestConn(t))

	_, err := repo.Insert(ctx, metric(domain.Q4, 2023, "NRR", 100))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, metric(domain.Q4, 2023, "NRR", 102))
	require.NoError(t, err)

	found, err := repo.FindLatest(ctx, "nrr", domain.Period{Quarter: domain.Q4, Year: 2023})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 102.0, found.MetricValue)

	missing, err := repo.FindLatest(ctx, "NRR", domain.Period{Quarter: domain.Q3, Year: 2023})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMetricRepository_Trend(t *testing.T) {
	ctx := context.Background()
	repo := NewMetricRepository(newTestConn(t))

	require.NoError(t, repo.InsertBatch(ctx, []*domain.MetricRecord{
		metric(domain.Q1, 2024, "Total ARR", 1),
		metric(domain.Q2, 2024, "Total ARR", 2),
		metric(domain.Q3, 2024, "Total ARR", 3),
		metric(domain.Q4, 2024, "Total ARR", 4),
	}))

	series, err := repo.Trend(ctx, "Total ARR", 2)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, domain.Q3, series[0].Quarter)
	assert.Equal(t, domain.Q4, series[1].Quarter)

	empty, err := repo.Trend(ctx, "Total ARR", 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMetricRepository_HistoryAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewMetricRepository(newTestConn(t))

	require.NoError(t, repo.InsertBatch(ctx, []*domain.MetricRecord{
		metric(domain.Q1, 2024, "CAC", 2340),
		metric(domain.Q4, 2023, "CAC", 2580),
		metric(domain.Q3, 2023, "CAC", 2180),
		metric(domain.Q3, 2023, "NRR", 108),
	}))

	page, err := repo.History(ctx, "", 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, domain.Period{Quarter: domain.Q4, Year: 2023}, page[0].Period())
	assert.Equal(t, domain.Period{Quarter: domain.Q3, Year: 2023}, page[1].Period())

	cac, err := repo.History(ctx, "CAC", 0, 0)
	require.NoError(t, err)
	assert.Len(t, cac, 3)

	total, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	nrr, err := repo.Count(ctx, "nrr")
	require.NoError(t, err)
	assert.Equal(t, 1, nrr)
}

func TestMetricRepository_ListByPeriods(t *testing.T) {
	ctx := context.Background()
	repo := NewMetricRepository(newTestConn(t))

	require.NoError(t, repo.InsertBatch(ctx, []*domain.MetricRecord{
		metric(domain.Q1, 2024, "NRR", 105),
		metric(domain.Q4, 2023, "NRR", 102),
		metric(domain.Q3, 2023, "NRR", 108),
	}))

	records, err := repo.ListByPeriods(ctx, []domain.Period{
		{Quarter: domain.Q1, Year: 2024},
		{Quarter: domain.Q3, Year: 2023},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 105.0, records[0].MetricValue)
	assert.Equal(t, 108.0, records[1].MetricValue)

	none, err := repo.ListByPeriods(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
