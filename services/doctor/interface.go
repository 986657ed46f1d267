package doctor

import (
	"context"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"

	"go.uber.org/zap"
)

// DirectoryService is the doctor directory API.
type DirectoryService interface {
	SearchDoctors(ctx context.Context, search models.DoctorSearch) (*models.DoctorPage, error)
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)
	RegisterDoctor(ctx context.Context, reg models.DoctorRegistration) (*models.Doctor, error)
}

type DefaultDirectoryService struct {
	Repo   doctorRepo.DoctorRepository
	Logger *zap.Logger
}

func NewDefaultDirectoryService(repo doctorRepo.DoctorRepository, logger *zap.Logger) *DefaultDirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultDirectoryService{Repo: repo, Logger: logger}
}
