package usecase

import (
	"context"
	"time"

	"competency-matrix/internal/domain/competency"
	"competency-matrix/internal/repository"

	"go.uber.org/zap"
)

type CertificationUsecase interface {
	CertificationTracking(ctx context.Context, employeeID int64, status string) ([]competency.CertificationStatusRow, error)
}

type Certification struct {
	certifications repository.CertificationRepository
	logger         *zap.Logger

	// now is swappable so expiry classification can be pinned in tests.
	now func() time.Time
}

func NewCertificationUsecase(certifications repository.CertificationRepository, logger *zap.Logger) *Certification {
	return &Certification{
		certifications: certifications,
		logger:         logger,
		now:            time.Now,
	}
}

func (u *Certification) CertificationTracking(ctx context.Context, employeeID int64, status string) ([]competency.CertificationStatusRow, error) {
	switch status {
	case "", competency.CertStatusValid, competency.CertStatusExpiringSoon, competency.CertStatusExpired:
	default:
		return nil, ErrInvalidInput
	}

	rows, err := u.certifications.ListEmployeeCertifications(ctx, employeeID)
	if err != nil {
		u.logger.Error("list employee certifications", zap.Error(err))
		return nil, ErrInternal
	}
	return competency.CertificationStatuses(rows, u.now(), status), nil
}
