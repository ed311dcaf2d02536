package services

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/logger"
	"github.com/sbilibin2017/techlinker/internal/models"
)

var (
	ErrNoFieldsToUpdate    = errors.New("no fields to update")
	ErrInvalidAvailability = errors.New("availability must be available, not_available or part_time")
	ErrInvalidHourlyRate   = errors.New("hourly rate must not be negative")
	ErrSkillNotFound       = errors.New("skill not found")
	ErrUploadsDisabled     = errors.New("profile picture uploads are not configured")
)

// ProfileWriter updates public profile columns.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, id uuid.UUID, patch models.ProfilePatch) (int64, error)
	SetProfilePicture(ctx context.Context, id uuid.UUID, key string) error
}

// PicturePresigner hands out upload URLs for profile pictures.
type PicturePresigner interface {
	PresignPut(ctx context.Context, userID uuid.UUID) (key, url string, expiresAt time.Time, err error)
}

// PictureUpload is a presigned upload target.
type PictureUpload struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// ProfileService reads and edits user profiles and their skills.
type ProfileService struct {
	users       UserReader
	writer      ProfileWriter
	skillReader SkillReader
	skillWriter SkillWriter
	cache       SkillCache
	skills      *skillAttacher
	presigner   PicturePresigner
}

// NewProfileService builds the service. cache and presigner may be nil.
func NewProfileService(
	users UserReader,
	writer ProfileWriter,
	skillReader SkillReader,
	skillWriter SkillWriter,
	cache SkillCache,
	presigner PicturePresigner,
) *ProfileService {
	return &ProfileService{
		users:       users,
		writer:      writer,
		skillReader: skillReader,
		skillWriter: skillWriter,
		cache:       cache,
		skills:      &skillAttacher{writer: skillWriter, cache: cache},
		presigner:   presigner,
	}
}

// GetProfile returns the user together with their skills.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAsUser(err)
	}
	skills, err := s.skillReader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user skills", "user_id", userID, "err", err)
		return nil, err
	}
	return &models.Profile{User: *user, Skills: skills}, nil
}

// UpdateProfile writes the fields present in patch and returns the number
// of affected rows. An empty patch writes nothing.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, ErrNoFieldsToUpdate
	}
	if a := patch.Availability; a != nil {
		switch *a {
		case models.AvailabilityAvailable, models.AvailabilityNotAvailable, models.AvailabilityPartTime:
		default:
			return 0, ErrInvalidAvailability
		}
	}
	if patch.HourlyRate != nil && *patch.HourlyRate < 0 {
		return 0, ErrInvalidHourlyRate
	}

	rows, err := s.writer.UpdateProfile(ctx, userID, patch)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return 0, err
	}
	if rows == 0 {
		return 0, ErrUserNotFound
	}
	return rows, nil
}

// AddSkill attaches one skill to the user. added is false when the user
// already had it.
func (s *ProfileService) AddSkill(ctx context.Context, userID uuid.UUID, in models.SkillInput) (bool, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return false, notFoundAsUser(err)
	}
	added, err := s.skills.attach(ctx, userID, in)
	if err != nil {
		logger.Log.Errorw("failed to add skill", "user_id", userID, "skill", in.Name, "err", err)
		return false, err
	}
	return added, nil
}

// RemoveSkill detaches a skill from the user.
func (s *ProfileService) RemoveSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	if err := s.skillWriter.RemoveFromUser(ctx, userID, skillID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return ErrSkillNotFound
		}
		logger.Log.Errorw("failed to remove skill", "user_id", userID, "skill_id", skillID, "err", err)
		return err
	}
	return nil
}

// ListSkills returns the catalog ordered by name, from cache when possible.
func (s *ProfileService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	if s.cache != nil {
		if skills, err := s.cache.Get(ctx); err == nil {
			return skills, nil
		}
	}

	skills, err := s.skillReader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list skills", "err", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, skills); err != nil {
			logger.Log.Warnw("failed to cache skills", "err", err)
		}
	}
	return skills, nil
}

// CreatePictureUploadURL presigns an upload for a new picture object and
// records its key on the user.
func (s *ProfileService) CreatePictureUploadURL(ctx context.Context, userID uuid.UUID) (*PictureUpload, error) {
	if s.presigner == nil {
		return nil, ErrUploadsDisabled
	}

	key, url, expiresAt, err := s.presigner.PresignPut(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to presign picture upload", "user_id", userID, "err", err)
		return nil, err
	}

	if err := s.writer.SetProfilePicture(ctx, userID, key); err != nil {
		return nil, notFoundAsUser(err)
	}

	return &PictureUpload{Key: key, URL: url, ExpiresAt: expiresAt}, nil
}
