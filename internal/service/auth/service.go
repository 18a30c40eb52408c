package auth

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
	"github.com/carelink/carelink-api/pkg/auth"
	apperr "github.com/carelink/carelink-api/pkg/errors"
)

const bcryptCost = 12

type Service struct {
	users      repository.UserRepository
	doctors    repository.DoctorRepository
	patients   repository.PatientRepository
	pharmacies repository.PharmacyRepository
	tokens     *auth.TokenService
}

func NewService(
	users repository.UserRepository,
	doctors repository.DoctorRepository,
	patients repository.PatientRepository,
	pharmacies repository.PharmacyRepository,
	tokens *auth.TokenService,
) *Service {
	return &Service{
		users:      users,
		doctors:    doctors,
		patients:   patients,
		pharmacies: pharmacies,
		tokens:     tokens,
	}
}

// Signup creates a user plus the role profile matching its role, then issues
// a token. The profile is created here and nowhere else.
func (s *Service) Signup(req *model.SignupRequest) (*model.TokenResponse, error) {
	if !model.ValidRole(req.Role) {
		return nil, apperr.BadRequest("invalid role", nil)
	}

	if existing, _ := s.users.FindByEmail(req.Email); existing != nil {
		return nil, apperr.BadRequest("user already exists", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	user := s.users.Create(&model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.Role(req.Role),
		Name:         req.Name,
		Phone:        req.Phone,
	})

	switch user.Role {
	case model.RoleDoctor:
		s.doctors.Create(&model.Doctor{
			UserID:         user.ID,
			LicenseNumber:  fmt.Sprintf("MD-%d", time.Now().UnixMilli()),
			Specialization: "General Medicine",
		})
	case model.RolePatient:
		s.patients.Create(&model.Patient{UserID: user.ID})
	case model.RolePharmacy:
		s.pharmacies.Create(&model.Pharmacy{
			UserID:        user.ID,
			PharmacyName:  user.Name,
			LicenseNumber: fmt.Sprintf("PH-%d", time.Now().UnixMilli()),
		})
	}

	return s.tokenResponse(user)
}

func (s *Service) Login(req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, apperr.Unauthorized("invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("invalid credentials", nil)
	}

	return s.tokenResponse(user)
}

// CurrentUser resolves the token identity against the store, so a deleted
// account is reported even while its token is still formally valid.
func (s *Service) CurrentUser(userID string) (*model.UserInfo, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperr.NotFound("user", err)
	}
	info := user.Info()
	return &info, nil
}

func (s *Service) tokenResponse(user *model.User) (*model.TokenResponse, error) {
	token, err := s.tokens.Generate(user.ID, user.Email, string(user.Role), user.Name)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to generate token: %w", err))
	}
	return &model.TokenResponse{Token: token, User: user.Info()}, nil
}
