package department

import (
	"log/slog"
	"strings"

	"github.com/sakshigoud44/back2campus/internal"
)

type RepositoryAPI interface {
	GetAllSortedByName() ([]*Department, error)
	Create(record *Department) (*Department, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Department, error) {
	departments, err := s.repo.GetAllSortedByName()
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, internal.NewInternalError("Error fetching departments", err)
	}
	return departments, nil
}

func (s *Service) Create(dto CreateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(&Department{
		Name:        strings.TrimSpace(dto.Name),
		Code:        strings.TrimSpace(dto.Code),
		Description: strings.TrimSpace(dto.Description),
	})
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("failed to create department", "error", err)
		return nil, internal.NewInternalError("Error creating department", err)
	}

	s.logger.Info("department created", "department_id", created.ID, "code", created.Code)
	return created, nil
}
