package announcement

import (
	"log/slog"
	"strings"

	"github.com/sakshigoud44/back2campus/internal"
	"github.com/sakshigoud44/back2campus/internal/core/common/pagination"
)

type RepositoryAPI interface {
	GetPage(limit, offset int) ([]*Announcement, error)
	Count() (int64, error)
	GetByID(announcementID int64) (*Announcement, error)
	Create(title, description string, authorID int64) (*Announcement, error)
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

// List returns one page of announcements, newest first, with the total count
// for pagination metadata.
func (s *Service) List(params pagination.Params) ([]*Announcement, int64, error) {
	announcements, err := s.repo.GetPage(params.Limit, params.Offset())
	if err != nil {
		s.logger.Error("failed to list announcements", "error", err)
		return nil, 0, internal.NewInternalError("Error fetching announcements", err)
	}

	total, err := s.repo.Count()
	if err != nil {
		s.logger.Error("failed to count announcements", "error", err)
		return nil, 0, internal.NewInternalError("Error fetching announcements", err)
	}

	return announcements, total, nil
}

func (s *Service) GetByID(announcementID int64) (*Announcement, error) {
	a, err := s.repo.GetByID(announcementID)
	if err != nil {
		s.logger.Error("failed to fetch announcement", "announcement_id", announcementID, "error", err)
		return nil, internal.NewInternalError("Error fetching announcement", err)
	}
	if a == nil {
		return nil, internal.ErrAnnouncementNotFound
	}
	return a, nil
}

// Create stores a new announcement authored by the authenticated account.
// The author id comes from the request context, never the body.
func (s *Service) Create(dto CreateAnnouncementDTO, authorID int64) (*Announcement, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(strings.TrimSpace(dto.Title), strings.TrimSpace(dto.Description), authorID)
	if err != nil {
		s.logger.Error("failed to create announcement", "author_id", authorID, "error", err)
		return nil, internal.NewInternalError("Error creating announcement", err)
	}

	s.logger.Info("announcement created", "announcement_id", created.ID, "author_id", authorID)
	return created, nil
}
