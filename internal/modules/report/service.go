package report

import (
	"context"
	"strings"

	"gearshare/internal/domain"
	"gearshare/internal/repository"

	"go.uber.org/zap"
)

type Service struct {
	store repository.Store
	log   *zap.Logger
}

func NewService(store repository.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log}
}

func (s *Service) Create(ctx context.Context, reporter string, req CreateReportRequest) (*domain.Report, error) {
	if reporter == "" {
		return nil, ErrMissingPrincipal
	}

	priority := domain.DefaultPriority
	if req.Priority != nil && strings.TrimSpace(*req.Priority) != "" {
		priority = strings.TrimSpace(*req.Priority)
	}

	r := &domain.Report{
		ReporterUsername: reporter,
		ReportType:       req.ReportType,
		Subject:          req.Subject,
		Description:      req.Description,
		EquipmentID:      req.EquipmentID,
		ReservationID:    req.ReservationID,
		Status:           domain.ReportPending,
		Priority:         priority,
	}
	if err := s.store.Reports().Create(ctx, r); err != nil {
		return nil, repository.DomainError("create report", err, nil)
	}

	s.log.Info("report filed",
		zap.Int64("report_id", r.ID),
		zap.String("reporter", reporter),
		zap.String("type", r.ReportType),
		zap.String("priority", r.Priority))
	return r, nil
}

// ReportPatch: blank or nil fields leave the stored value alone.
type ReportPatch struct {
	Status   *string
	Priority *string
}

func (s *Service) Update(ctx context.Context, id int64, patch ReportPatch) (*domain.Report, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Status != nil && strings.TrimSpace(*patch.Status) != "" {
		r.Status = strings.TrimSpace(*patch.Status)
	}
	if patch.Priority != nil && strings.TrimSpace(*patch.Priority) != "" {
		r.Priority = strings.TrimSpace(*patch.Priority)
	}
	if err := s.store.Reports().Update(ctx, r); err != nil {
		return nil, repository.DomainError("update report", err, ErrReportNotFound)
	}
	s.log.Info("report updated", zap.Int64("report_id", r.ID), zap.String("status", r.Status))
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Reports().Delete(ctx, id); err != nil {
		return repository.DomainError("delete report", err, ErrReportNotFound)
	}
	s.log.Info("report deleted", zap.Int64("report_id", id))
	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Report, error) {
	r, err := s.store.Reports().GetByID(ctx, id)
	if err != nil {
		return nil, repository.DomainError("load report", err, ErrReportNotFound)
	}
	return r, nil
}

// List returns every report, or only those in status when it is non-empty.
func (s *Service) List(ctx context.Context, status string) ([]domain.Report, error) {
	rows, err := s.store.Reports().List(ctx, status)
	if err != nil {
		return nil, repository.DomainError("list reports", err, nil)
	}
	if rows == nil {
		rows = []domain.Report{}
	}
	return rows, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.store.Reports().Count(ctx)
	if err != nil {
		return 0, repository.DomainError("count reports", err, nil)
	}
	return n, nil
}
