package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sakshigoud44/back2campus/internal"
)

// Service implements registration, login and profile management on top of the
// alumni repository and the token generator.
type Service struct {
	repo       RepositoryAPI
	tokenGen   TokenGeneratorAPI
	bcryptCost int
}

func NewService(repo RepositoryAPI, tokenGen TokenGeneratorAPI, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		tokenGen:   tokenGen,
		bcryptCost: bcryptCost,
	}
}

// Register creates an account and issues its first token. The duplicate email
// pre-check gives a friendly error on the common path; under a concurrent
// race the unique index in the store is the real arbiter and the repository
// reports the collision as the same ErrDuplicateEmail.
func (s *Service) Register(dto RegisterDTO) (*Alumni, string, error) {
	if err := dto.Validate(); err != nil {
		return nil, "", err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))

	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, "", internal.NewInternalError("Error registering alumni", err)
	}
	if existing != nil {
		return nil, "", internal.ErrDuplicateEmail
	}

	exists, err := s.repo.DepartmentExists(dto.Department)
	if err != nil {
		return nil, "", internal.NewInternalError("Error registering alumni", err)
	}
	if !exists {
		return nil, "", internal.ErrInvalidDepartment
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, "", internal.NewInternalError("Error registering alumni", err)
	}

	record := &Alumni{
		Name:         strings.TrimSpace(dto.Name),
		Batch:        strings.TrimSpace(dto.Batch),
		Department:   &DepartmentRef{ID: dto.Department},
		JobTitle:     strings.TrimSpace(dto.JobTitle),
		Email:        email,
		Phone:        strings.TrimSpace(dto.Phone),
		PasswordHash: hash,
	}

	created, err := s.repo.Create(record)
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, "", err
		}
		return nil, "", internal.NewInternalError("Error registering alumni", err)
	}

	token, err := s.tokenGen.GenerateToken(created.ID)
	if err != nil {
		return nil, "", internal.NewInternalError("Error registering alumni", err)
	}

	return created, token, nil
}

// Authenticate verifies credentials and issues a token. A missing account and
// a wrong password fail identically so responses cannot be used to probe
// which emails are registered.
func (s *Service) Authenticate(dto LoginDTO) (*Alumni, string, error) {
	if err := dto.Validate(); err != nil {
		return nil, "", err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))

	account, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, "", internal.NewInternalError("Error during login", err)
	}
	if account == nil {
		return nil, "", internal.ErrInvalidCredentials
	}

	if err := VerifyPassword(account.PasswordHash, dto.Password); err != nil {
		return nil, "", internal.ErrInvalidCredentials
	}

	token, err := s.tokenGen.GenerateToken(account.ID)
	if err != nil {
		return nil, "", internal.NewInternalError("Error during login", err)
	}

	return account, token, nil
}

func (s *Service) GetProfile(alumniID int64) (*Alumni, error) {
	account, err := s.repo.GetByID(alumniID)
	if err != nil {
		return nil, internal.NewInternalError("Error fetching profile", err)
	}
	if account == nil {
		return nil, internal.ErrAlumniNotFound
	}
	return account, nil
}

// UpdateProfile applies the whitelisted fields. A department change is
// re-validated against the store before the write.
func (s *Service) UpdateProfile(alumniID int64, dto UpdateProfileDTO) (*Alumni, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if dto.Department != nil {
		exists, err := s.repo.DepartmentExists(*dto.Department)
		if err != nil {
			return nil, internal.NewInternalError("Error updating profile", err)
		}
		if !exists {
			return nil, internal.ErrInvalidDepartment
		}
	}

	if dto.IsEmpty() {
		return s.GetProfile(alumniID)
	}

	updated, err := s.repo.UpdateFields(alumniID, dto)
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		return nil, internal.NewInternalError("Error updating profile", err)
	}
	return updated, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.tokenGen.ValidateToken(tokenString)
}
