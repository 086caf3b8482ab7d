package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sakshigoud44/back2campus/internal"
	alumniDatamodel "github.com/sakshigoud44/back2campus/internal/core/datamodel/alumni"
)

// Alumni is the account domain model. The password hash never serializes;
// every outbound representation relies on the json:"-" tag here.
type Alumni struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Batch        string         `json:"batch"`
	Department   *DepartmentRef `json:"department,omitempty"`
	JobTitle     string         `json:"job_title,omitempty"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone,omitempty"`
	PasswordHash string         `json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// DepartmentRef is the populated department reference embedded in alumni
// responses.
type DepartmentRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

type ServiceAPI interface {
	Register(dto RegisterDTO) (*Alumni, string, error)
	Authenticate(dto LoginDTO) (*Alumni, string, error)
	GetProfile(alumniID int64) (*Alumni, error)
	UpdateProfile(alumniID int64, dto UpdateProfileDTO) (*Alumni, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type RepositoryAPI interface {
	FindByEmail(email string) (*Alumni, error)
	GetByID(alumniID int64) (*Alumni, error)
	Create(record *Alumni) (*Alumni, error)
	UpdateFields(alumniID int64, dto UpdateProfileDTO) (*Alumni, error)
	DepartmentExists(departmentID int64) (bool, error)
}

type TokenGeneratorAPI interface {
	GenerateToken(alumniID int64) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims binds a token to its subject alumni id; nothing beyond subject and
// the registered expiry/issued-at is embedded.
type Claims struct {
	jwt.RegisteredClaims
}

func (c *Claims) AlumniID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse token subject: %w", err)
	}
	return id, nil
}

// JWTTokenGenerator signs and verifies stateless HS256 tokens. Validity is
// fully determined by signature and expiry; there is no revocation list, so an
// issued token stays usable for its whole TTL.
type JWTTokenGenerator struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		Secret: []byte(secret),
		TTL:    ttl,
	}
}

func (j *JWTTokenGenerator) GenerateToken(alumniID int64) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(alumniID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidToken
	}
	return claims, nil
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type ctxKey string

const contextAlumniKey ctxKey = "alumni"

func ContextWithAlumni(ctx context.Context, a *Alumni) context.Context {
	return context.WithValue(ctx, contextAlumniKey, a)
}

func AlumniFromContext(ctx context.Context) (*Alumni, bool) {
	a, ok := ctx.Value(contextAlumniKey).(*Alumni)
	return a, ok
}

func FromDataModel(record *alumniDatamodel.Alumni) *Alumni {
	a := &Alumni{
		ID:           record.ID,
		Name:         record.Name,
		Batch:        record.Batch,
		JobTitle:     record.JobTitle,
		Email:        record.Email,
		Phone:        record.Phone,
		PasswordHash: record.PasswordHash,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
	if record.Department != nil {
		a.Department = &DepartmentRef{
			ID:          record.Department.ID,
			Name:        record.Department.Name,
			Code:        record.Department.Code,
			Description: record.Department.Description,
		}
	} else if record.DepartmentID != 0 {
		a.Department = &DepartmentRef{ID: record.DepartmentID}
	}
	return a
}

func ToDataModel(a *Alumni) *alumniDatamodel.Alumni {
	record := &alumniDatamodel.Alumni{
		ID:           a.ID,
		Name:         a.Name,
		Batch:        a.Batch,
		JobTitle:     a.JobTitle,
		Email:        a.Email,
		Phone:        a.Phone,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.Department != nil {
		record.DepartmentID = a.Department.ID
	}
	return record
}
