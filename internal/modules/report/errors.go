package report

import "gearshare/internal/domain"

var (
	ErrReportNotFound   = domain.NewError(domain.ErrNotFound, "Report not found")
	ErrMissingPrincipal = domain.NewError(domain.ErrInvalidInput, "reporter_username is required")
)
