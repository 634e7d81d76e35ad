package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devconnect/internal/auth"
	"devconnect/internal/model"
	"devconnect/internal/repository"
)

// ErrProfileNotFound is returned when a user has no profile yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileInput carries the upsert payload. Website and social links arrive
// raw; normalization happens here.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         []string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Instagram      string
	Linkedin       string
	Facebook       string
}

// ProfileService handles profile reads, the upsert, list entries and the
// cascading account deletion.
type ProfileService interface {
	Me(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, in ProfileInput) (*model.Profile, error)
	All(ctx context.Context) ([]model.Profile, error)
	ByUserID(ctx context.Context, userID string) (*model.Profile, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	AddExperience(ctx context.Context, userID uuid.UUID, exp model.Experience) (*model.Profile, error)
	RemoveExperience(ctx context.Context, userID uuid.UUID, expID string) (*model.Profile, error)
	AddEducation(ctx context.Context, userID uuid.UUID, edu model.Education) (*model.Profile, error)
	RemoveEducation(ctx context.Context, userID uuid.UUID, eduID string) (*model.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	revocations auth.RevocationStore
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository, revocations auth.RevocationStore) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		revocations: revocations,
	}
}

func (s *profileService) Me(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	normalizeProfile(profile)
	return profile, nil
}

// Upsert merges the input into the caller's profile, creating it if absent.
func (s *profileService) Upsert(ctx context.Context, userID uuid.UUID, in ProfileInput) (*model.Profile, error) {
	fields := model.Profile{
		UserID:         userID,
		Company:        in.Company,
		Website:        NormalizeURL(in.Website),
		Location:       in.Location,
		Status:         in.Status,
		Skills:         in.Skills,
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
		Social: model.Social{
			Youtube:   NormalizeURL(in.Youtube),
			Twitter:   NormalizeURL(in.Twitter),
			Instagram: NormalizeURL(in.Instagram),
			Linkedin:  NormalizeURL(in.Linkedin),
			Facebook:  NormalizeURL(in.Facebook),
		},
	}

	existing, err := s.profileRepo.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		fields.ID = existing.ID
		fields.CreatedAt = existing.CreatedAt
		if err := s.profileRepo.Save(ctx, &fields); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
	case err == gorm.ErrRecordNotFound:
		if err := s.profileRepo.Create(ctx, &fields); err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
	default:
		return nil, fmt.Errorf("find profile: %w", err)
	}

	return s.Me(ctx, userID)
}

func (s *profileService) All(ctx context.Context) ([]model.Profile, error) {
	profiles, err := s.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	for i := range profiles {
		normalizeProfile(&profiles[i])
	}
	return profiles, nil
}

// ByUserID treats a malformed id the same as a missing profile.
func (s *profileService) ByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	return s.Me(ctx, id)
}

// DeleteAccount removes the profile and the owning user together, then marks
// the user revoked so outstanding tokens stop verifying.
func (s *profileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.profileRepo.DeleteWithUser(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	_ = s.revocations.RevokeUser(ctx, userID, auth.TokenExpiry)
	return nil
}

func (s *profileService) AddExperience(ctx context.Context, userID uuid.UUID, exp model.Experience) (*model.Profile, error) {
	profile, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	exp.ProfileID = profile.ID
	if err := s.profileRepo.AddExperience(ctx, &exp); err != nil {
		return nil, fmt.Errorf("add experience: %w", err)
	}
	return s.Me(ctx, userID)
}

// RemoveExperience filters the entry out by id. A malformed or unknown id
// leaves the list unchanged.
func (s *profileService) RemoveExperience(ctx context.Context, userID uuid.UUID, expID string) (*model.Profile, error) {
	profile, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	if id, parseErr := uuid.Parse(expID); parseErr == nil {
		if err := s.profileRepo.DeleteExperience(ctx, profile.ID, id); err != nil {
			return nil, fmt.Errorf("remove experience: %w", err)
		}
	}
	return s.Me(ctx, userID)
}

func (s *profileService) AddEducation(ctx context.Context, userID uuid.UUID, edu model.Education) (*model.Profile, error) {
	profile, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	edu.ProfileID = profile.ID
	if err := s.profileRepo.AddEducation(ctx, &edu); err != nil {
		return nil, fmt.Errorf("add education: %w", err)
	}
	return s.Me(ctx, userID)
}

// RemoveEducation mirrors RemoveExperience, silent no-op included.
func (s *profileService) RemoveEducation(ctx context.Context, userID uuid.UUID, eduID string) (*model.Profile, error) {
	profile, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	if id, parseErr := uuid.Parse(eduID); parseErr == nil {
		if err := s.profileRepo.DeleteEducation(ctx, profile.ID, id); err != nil {
			return nil, fmt.Errorf("remove education: %w", err)
		}
	}
	return s.Me(ctx, userID)
}

// NormalizeURL forces a canonical https form on non-empty values.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	u.Scheme = "https"
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u.String()
}

// SplitSkills turns a comma-delimited string into a trimmed list,
// dropping empty entries.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeProfile(p *model.Profile) {
	if p.Experience == nil {
		p.Experience = []model.Experience{}
	}
	if p.Education == nil {
		p.Education = []model.Education{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
}
