package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devconnect/internal/model"
)

// ProfileRepository defines persistence operations for profiles and their
// experience/education entries.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	Save(ctx context.Context, profile *model.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	FindAll(ctx context.Context) ([]model.Profile, error)
	DeleteWithUser(ctx context.Context, userID uuid.UUID) error
	AddExperience(ctx context.Context, exp *model.Experience) error
	DeleteExperience(ctx context.Context, profileID, expID uuid.UUID) error
	AddEducation(ctx context.Context, edu *model.Education) error
	DeleteEducation(ctx context.Context, profileID, eduID uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// newestFirst keeps list entries in prepend order.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) Save(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Omit("Experience", "Education", "User").Save(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Experience", newestFirst).
		Preload("Education", newestFirst).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindAll(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Experience", newestFirst).
		Preload("Education", newestFirst).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// DeleteWithUser removes the profile, its entries and the owning user in a
// single transaction, so a crash cannot leave an orphaned half.
func (r *profileRepository) DeleteWithUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile model.Profile
		err := tx.Where("user_id = ?", userID).First(&profile).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}
		if err == nil {
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&model.Experience{}).Error; err != nil {
				return err
			}
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&model.Education{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&profile).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", userID).Delete(&model.User{}).Error
	})
}

func (r *profileRepository) AddExperience(ctx context.Context, exp *model.Experience) error {
	return r.db.WithContext(ctx).Create(exp).Error
}

// DeleteExperience removes the matching entry; no rows affected is not an error.
func (r *profileRepository) DeleteExperience(ctx context.Context, profileID, expID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profileID, expID).
		Delete(&model.Experience{}).Error
}

func (r *profileRepository) AddEducation(ctx context.Context, edu *model.Education) error {
	return r.db.WithContext(ctx).Create(edu).Error
}

// DeleteEducation removes the matching entry; no rows affected is not an error.
func (r *profileRepository) DeleteEducation(ctx context.Context, profileID, eduID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profileID, eduID).
		Delete(&model.Education{}).Error
}
