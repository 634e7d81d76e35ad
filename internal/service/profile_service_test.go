package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"devconnect/internal/auth"
	"devconnect/internal/model"
)

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindAll(ctx context.Context) ([]model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Profile), args.Error(1)
}

func (m *MockProfileRepository) DeleteWithUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockProfileRepository) AddExperience(ctx context.Context, exp *model.Experience) error {
	args := m.Called(ctx, exp)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteExperience(ctx context.Context, profileID, expID uuid.UUID) error {
	args := m.Called(ctx, profileID, expID)
	return args.Error(0)
}

func (m *MockProfileRepository) AddEducation(ctx context.Context, edu *model.Education) error {
	args := m.Called(ctx, edu)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteEducation(ctx context.Context, profileID, eduID uuid.UUID) error {
	args := m.Called(ctx, profileID, eduID)
	return args.Error(0)
}

// MockRevocationStore is a mock implementation of auth.RevocationStore.
type MockRevocationStore struct {
	mock.Mock
}

func (m *MockRevocationStore) RevokeUser(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	args := m.Called(ctx, userID, ttl)
	return args.Error(0)
}

func (m *MockRevocationStore) IsUserRevoked(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func TestProfileService_Upsert_CreatesWhenAbsent(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(MockProfileRepository)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(nil)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(&model.Profile{UserID: userID, Status: "Developer"}, nil)

	svc := NewProfileService(mockRepo, new(MockRevocationStore))
	_, err := svc.Upsert(context.Background(), userID, ProfileInput{
		Status:  "Developer",
		Skills:  []string{"Go", "SQL"},
		Website: "example.com/about/",
		Twitter: "http://twitter.com/janedev",
	})

	assert.NoError(t, err)
	created := mockRepo.Calls[1].Arguments.Get(1).(*model.Profile)
	assert.Equal(t, "https://example.com/about", created.Website)
	assert.Equal(t, "https://twitter.com/janedev", created.Social.Twitter)
	assert.Empty(t, created.Social.Youtube)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_Upsert_UpdatesExisting(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()
	existing := &model.Profile{ID: profileID, UserID: userID, Status: "Junior Developer"}

	mockRepo := new(MockProfileRepository)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(existing, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(nil)

	svc := NewProfileService(mockRepo, new(MockRevocationStore))
	_, err := svc.Upsert(context.Background(), userID, ProfileInput{
		Status: "Senior Developer",
		Skills: []string{"Go"},
	})

	assert.NoError(t, err)
	saved := mockRepo.Calls[1].Arguments.Get(1).(*model.Profile)
	assert.Equal(t, profileID, saved.ID)
	assert.Equal(t, "Senior Developer", saved.Status)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_ByUserID_MalformedID(t *testing.T) {
	svc := NewProfileService(new(MockProfileRepository), new(MockRevocationStore))
	_, err := svc.ByUserID(context.Background(), "not-a-uuid")
	assert.Equal(t, ErrProfileNotFound, err)
}

func TestProfileService_DeleteAccount_RevokesTokens(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockProfileRepository)
	mockRepo.On("DeleteWithUser", mock.Anything, userID).Return(nil)
	mockRevocations := new(MockRevocationStore)
	mockRevocations.On("RevokeUser", mock.Anything, userID, auth.TokenExpiry).Return(nil)

	svc := NewProfileService(mockRepo, mockRevocations)
	err := svc.DeleteAccount(context.Background(), userID)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockRevocations.AssertExpectations(t)
}

func TestProfileService_AddExperience_Prepends(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()

	mockRepo := new(MockProfileRepository)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(&model.Profile{ID: profileID, UserID: userID}, nil)
	mockRepo.On("AddExperience", mock.Anything, mock.AnythingOfType("*model.Experience")).Return(nil)

	svc := NewProfileService(mockRepo, new(MockRevocationStore))
	_, err := svc.AddExperience(context.Background(), userID, model.Experience{
		Title:   "Engineer",
		Company: "Acme",
		From:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	added := mockRepo.Calls[1].Arguments.Get(1).(*model.Experience)
	assert.Equal(t, profileID, added.ProfileID)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_RemoveExperience(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()
	expID := uuid.New()
	profile := &model.Profile{ID: profileID, UserID: userID}

	t.Run("matching entry is deleted", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, userID).Return(profile, nil)
		mockRepo.On("DeleteExperience", mock.Anything, profileID, expID).Return(nil)

		svc := NewProfileService(mockRepo, new(MockRevocationStore))
		_, err := svc.RemoveExperience(context.Background(), userID, expID.String())
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("malformed id is a silent no-op", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, userID).Return(profile, nil)

		svc := NewProfileService(mockRepo, new(MockRevocationStore))
		result, err := svc.RemoveExperience(context.Background(), userID, "not-a-uuid")
		assert.NoError(t, err)
		assert.NotNil(t, result)
		mockRepo.AssertNotCalled(t, "DeleteExperience", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"bare host gains https", "example.com", "https://example.com"},
		{"http forced to https", "http://example.com", "https://example.com"},
		{"trailing slash stripped", "https://example.com/me/", "https://example.com/me"},
		{"host lowercased", "HTTPS://Example.COM/Path", "https://example.com/Path"},
		{"whitespace trimmed", "  example.com  ", "https://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.in))
		})
	}
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, SplitSkills("Go, SQL ,Docker"))
	assert.Equal(t, []string{"Go"}, SplitSkills("Go"))
	assert.Empty(t, SplitSkills(" , ,"))
}
