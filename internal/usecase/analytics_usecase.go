package usecase

import (
	"context"
	"strings"
	"time"

	"homeservices_crm/internal/domain/analytics"
	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/infrastructure/logger"
	"homeservices_crm/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// IAnalyticsUseCase serves read-only rollups. Nothing is cached; every call
// recomputes from the stored records.
type IAnalyticsUseCase interface {
	CommissionSummary(ctx context.Context, userID, month string) (map[string]analytics.CommissionTotals, error)
	RevenueBySource(ctx context.Context, month string) (map[string]decimal.Decimal, error)
	Report(ctx context.Context, userID, month string) (analytics.Report, error)
	ExportWorkbook(ctx context.Context, userID, month string) ([]byte, error)
}

type AnalyticsUseCase struct {
	jobs        interfaces.IJobRepository
	estimates   interfaces.IEstimateRepository
	commissions interfaces.ICommissionRepository
	exporter    interfaces.IWorkbookExporter
	prices      interfaces.IPricingSource
	loc         *time.Location
	log         *logrus.Entry
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(
	jobs interfaces.IJobRepository,
	estimates interfaces.IEstimateRepository,
	commissions interfaces.ICommissionRepository,
	exporter interfaces.IWorkbookExporter,
	prices interfaces.IPricingSource,
	loc *time.Location,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		jobs:        jobs,
		estimates:   estimates,
		commissions: commissions,
		exporter:    exporter,
		prices:      prices,
		loc:         loc,
		log:         logger.For("analytics", "usecase"),
	}
}

func (u *AnalyticsUseCase) CommissionSummary(ctx context.Context, userID, month string) (map[string]analytics.CommissionTotals, error) {
	month, err := analytics.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	commissions, err := u.commissions.List(ctx, month)
	if err != nil {
		return nil, err
	}
	return analytics.CommissionSummary(commissions, strings.TrimSpace(userID), month), nil
}

func (u *AnalyticsUseCase) RevenueBySource(ctx context.Context, month string) (map[string]decimal.Decimal, error) {
	month, err := analytics.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	jobs, estimates, err := u.closedJobs(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.RevenueBySource(jobs, estimates, u.prices.Current().LeadSources, month, u.loc), nil
}

func (u *AnalyticsUseCase) Report(ctx context.Context, userID, month string) (analytics.Report, error) {
	month, err := analytics.ParseMonth(month)
	if err != nil {
		return analytics.Report{}, err
	}
	userID = strings.TrimSpace(userID)

	commissions, err := u.commissions.List(ctx, month)
	if err != nil {
		return analytics.Report{}, err
	}
	jobs, estimates, err := u.closedJobs(ctx)
	if err != nil {
		return analytics.Report{}, err
	}
	return analytics.Report{
		UserID:          userID,
		Month:           month,
		Commissions:     analytics.CommissionSummary(commissions, userID, month),
		RevenueBySource: analytics.RevenueBySource(jobs, estimates, u.prices.Current().LeadSources, month, u.loc),
		RevenueByMonth:  analytics.RevenueByMonth(jobs, estimates, u.loc),
	}, nil
}

func (u *AnalyticsUseCase) ExportWorkbook(ctx context.Context, userID, month string) ([]byte, error) {
	r, err := u.Report(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	out, err := u.exporter.Export(r)
	if err != nil {
		logger.LogError(u.log, "ExportWorkbook", map[string]string{"month": r.Month, "user_id": r.UserID}, err)
		return nil, err
	}
	return out, nil
}

func (u *AnalyticsUseCase) closedJobs(ctx context.Context) ([]entities.Job, []entities.Estimate, error) {
	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	estimates, err := u.estimates.ListApproved(ctx)
	if err != nil {
		return nil, nil, err
	}
	return jobs, estimates, nil
}
