package service

import (
	"fmt"
	"time"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// Display names may only change once every 60 days.
const displayNameCooldown = 60 * 24 * time.Hour

type ProfileService interface {
	Get(userID uint) (*dto.ProfileResponseDTO, error)
	Update(userID uint, req dto.ProfileUpdateDTO) (*dto.ProfileResponseDTO, error)
	UpdateDisplayName(userID uint, displayName string) (*dto.ProfileResponseDTO, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get(userID uint) (*dto.ProfileResponseDTO, error) {
	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("Get: profile not found")
		return nil, fmt.Errorf("profile not found for user %d: %w", userID, err)
	}
	var resp dto.ProfileResponseDTO
	if err := copier.Copy(&resp, profile); err != nil {
		return nil, fmt.Errorf("error preparing profile response: %w", err)
	}
	return &resp, nil
}

func (s *profileService) Update(userID uint, req dto.ProfileUpdateDTO) (*dto.ProfileResponseDTO, error) {
	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("profile not found for user %d: %w", userID, err)
	}

	profile.College = req.College
	profile.Year = req.Year
	profile.Status = req.Status
	if err := s.profileRepo.Update(profile); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Update: failed to save profile")
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	var resp dto.ProfileResponseDTO
	if err := copier.Copy(&resp, profile); err != nil {
		return nil, fmt.Errorf("error preparing profile response: %w", err)
	}
	return &resp, nil
}

// UpdateDisplayName enforces the rename cooldown: allowed when the name was
// never changed or the last change is at least 60 days old. Accepting the
// change stamps the cooldown clock.
func (s *profileService) UpdateDisplayName(userID uint, displayName string) (*dto.ProfileResponseDTO, error) {
	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("profile not found for user %d: %w", userID, err)
	}

	now := time.Now()
	if profile.LastNameChange != nil && now.Sub(*profile.LastNameChange) < displayNameCooldown {
		return nil, ErrNameChangeTooSoon
	}

	profile.DisplayName = displayName
	profile.LastNameChange = &now
	if err := s.profileRepo.Update(profile); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("UpdateDisplayName: failed to save profile")
		return nil, fmt.Errorf("error updating display name: %w", err)
	}

	var resp dto.ProfileResponseDTO
	if err := copier.Copy(&resp, profile); err != nil {
		return nil, fmt.Errorf("error preparing profile response: %w", err)
	}
	return &resp, nil
}
