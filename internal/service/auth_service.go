package service

import (
	"fmt"

	"github.com/adislens/medpgprep/config"
	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/model"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/adislens/medpgprep/internal/token"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(req dto.RegisterRequestDTO) (*dto.AuthResponseDTO, error)
	Login(req dto.LoginRequestDTO) (*dto.AuthResponseDTO, error)
	CurrentUser(userID uint) (*dto.UserDTO, error)
}

type authService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, profileRepo: profileRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterRequestDTO) (*dto.AuthResponseDTO, error) {
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking existing account: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := model.User{Email: req.Email, PasswordHash: string(hash)}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	profile := model.Profile{ID: user.ID, DisplayName: req.DisplayName}
	if err := s.profileRepo.Create(&profile); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Register: failed to create profile")
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	return s.authResponse(&user, req.DisplayName)
}

func (s *authService) Login(req dto.LoginRequestDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("error looking up account: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	displayName := ""
	if profile, err := s.profileRepo.FindByID(user.ID); err == nil {
		displayName = profile.DisplayName
	}
	return s.authResponse(user, displayName)
}

func (s *authService) CurrentUser(userID uint) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	displayName := ""
	if profile, err := s.profileRepo.FindByID(userID); err == nil {
		displayName = profile.DisplayName
	}
	return &dto.UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: displayName,
		CreatedAt:   user.CreatedAt,
	}, nil
}

func (s *authService) authResponse(user *model.User, displayName string) (*dto.AuthResponseDTO, error) {
	signed, err := token.Generate(user.ID, s.cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("error signing token: %w", err)
	}
	return &dto.AuthResponseDTO{
		Token: signed,
		User: dto.UserDTO{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: displayName,
			CreatedAt:   user.CreatedAt,
		},
	}, nil
}
