package hubspot

import (
	"context"
	"sync"
	"time"

	hubspotdomain "github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/pkg/utils"
)

type HubSpotIntegrator interface {
	GetDeals(ctx context.Context) ([]hubspotdomain.Object, error)
	GetContacts(ctx context.Context) ([]hubspotdomain.Object, error)
	GetCompanies(ctx context.Context) ([]hubspotdomain.Object, error)
	GetPipelineMetrics(ctx context.Context) (*hubspotdomain.PipelineMetrics, error)
	GetRevenueMetrics(ctx context.Context) (*hubspotdomain.RevenueMetrics, error)
	GetOverview(ctx context.Context) (*hubspotdomain.Overview, error)
}

type HubSpotService struct {
	Client hubspotclient.Client
	now    func() time.Time
}

func New(client hubspotclient.Client) HubSpotIntegrator {
	return &HubSpotService{
		Client: client,
		now:    time.Now,
	}
}

func (s *HubSpotService) GetDeals(ctx context.Context) ([]hubspotdomain.Object, error) {
	return s.Client.ListObjects(ctx, hubspotdomain.ObjectDeals, hubspotdomain.DealProperties)
}

func (s *HubSpotService) GetContacts(ctx context.Context) ([]hubspotdomain.Object, error) {
	return s.Client.ListObjects(ctx, hubspotdomain.ObjectContacts, hubspotdomain.ContactProperties)
}

func (s *HubSpotService) GetCompanies(ctx context.Context) ([]hubspotdomain.Object, error) {
	return s.Client.ListObjects(ctx, hubspotdomain.ObjectCompanies, hubspotdomain.CompanyProperties)
}

func (s *HubSpotService) GetPipelineMetrics(ctx context.Context) (*hubspotdomain.PipelineMetrics, error) {
	deals, err := s.GetDeals(ctx)
	if err != nil {
		return nil, err
	}
	return ComputePipelineMetrics(deals), nil
}

func (s *HubSpotService) GetRevenueMetrics(ctx context.Context) (*hubspotdomain.RevenueMetrics, error) {
	deals, err := s.GetDeals(ctx)
	if err != nil {
		return nil, err
	}

	companies, err := s.GetCompanies(ctx)
	if err != nil {
		return nil, err
	}

	return ComputeRevenueMetrics(deals, len(companies), s.now()), nil
}

// GetOverview reads deals, contacts and companies concurrently and derives both metric
// views from them. Any failed read fails the whole overview.
func (s *HubSpotService) GetOverview(ctx context.Context) (*hubspotdomain.Overview, error) {
	var (
		wg                         sync.WaitGroup
		deals, contacts, companies []hubspotdomain.Object
		errs                       [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		deals, errs[0] = s.GetDeals(ctx)
	}()
	go func() {
		defer wg.Done()
		contacts, errs[1] = s.GetContacts(ctx)
	}()
	go func() {
		defer wg.Done()
		companies, errs[2] = s.GetCompanies(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &hubspotdomain.Overview{
		Pipeline:  ComputePipelineMetrics(deals),
		Revenue:   ComputeRevenueMetrics(deals, len(companies), s.now()),
		Deals:     deals,
		Contacts:  contacts,
		Companies: companies,
	}, nil
}

func ComputePipelineMetrics(deals []hubspotdomain.Object) *hubspotdomain.PipelineMetrics {
	metrics := &hubspotdomain.PipelineMetrics{TotalDeals: len(deals)}

	for _, deal := range deals {
		amount := deal.Amount()
		metrics.TotalPipelineValue += amount

		if deal.IsWon() {
			metrics.WonDeals++
			metrics.WonRevenue += amount
		}
		if deal.IsActive() {
			metrics.ActiveDeals++
			metrics.ActivePipelineValue += amount
		}
	}

	if metrics.TotalDeals > 0 {
		metrics.AverageDealSize = utils.RoundWithTwoDecimalPlace(metrics.TotalPipelineValue / float64(metrics.TotalDeals))
	}
	metrics.WinRate = utils.Percent(float64(metrics.WonDeals), float64(metrics.TotalDeals))

	return metrics
}

// ComputeRevenueMetrics buckets won deals by close date relative to now. The previous
// quarter of Q1 is Q4 of the prior year.
func ComputeRevenueMetrics(deals []hubspotdomain.Object, totalCompanies int, now time.Time) *hubspotdomain.RevenueMetrics {
	metrics := &hubspotdomain.RevenueMetrics{TotalCompanies: totalCompanies}

	current := domain.CurrentPeriod(now)
	previous, _ := current.Previous()

	wonDeals := 0
	for _, deal := range deals {
		if deal.IsActive() {
			metrics.ActiveDeals++
		}

		if !deal.IsWon() {
			continue
		}
		closedAt, ok := deal.CloseDate()
		if !ok {
			continue
		}

		amount := deal.Amount()
		wonDeals++
		metrics.TotalRevenue += amount

		if closedAt.Year() == now.Year() {
			metrics.YearToDateRevenue += amount
		}

		switch {
		case current.Contains(closedAt):
			metrics.CurrentQuarterRevenue += amount
		case previous.Contains(closedAt):
			metrics.PreviousQuarterRevenue += amount
		}
	}

	if wonDeals > 0 {
		metrics.AverageDealSize = utils.RoundWithTwoDecimalPlace(metrics.TotalRevenue / float64(wonDeals))
	}
	metrics.RevenueGrowth = utils.Percent(
		metrics.CurrentQuarterRevenue-metrics.PreviousQuarterRevenue,
		metrics.PreviousQuarterRevenue,
	)

	return metrics
}
