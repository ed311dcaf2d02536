package services

//go:generate mockgen -source=onboarding.go -destination=onboarding_mock.go -package=services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/logger"
	"github.com/sbilibin2017/techlinker/internal/models"
)

var (
	ErrSkillNameRequired  = errors.New("skill name is required")
	ErrInvalidProficiency = errors.New("proficiency must be beginner, intermediate, advanced or expert")
)

// OnboardingWriter persists the onboarding steps.
type OnboardingWriter interface {
	UpdateBasicInfo(ctx context.Context, id uuid.UUID, info models.BasicInfo) error
	UpdatePersonalDetails(ctx context.Context, id uuid.UUID, details models.PersonalDetails) error
	MarkProfileCompleted(ctx context.Context, id uuid.UUID) error
}

// SkillReader reads the skill catalog and user skills.
type SkillReader interface {
	ListAll(ctx context.Context) ([]models.Skill, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserSkill, error)
}

// SkillWriter creates skills and attaches them to users.
type SkillWriter interface {
	GetOrCreate(ctx context.Context, name string, category *string) (*models.Skill, bool, error)
	AddToUser(ctx context.Context, userID, skillID uuid.UUID, proficiency models.Proficiency, experienceYears int) (bool, error)
	RemoveFromUser(ctx context.Context, userID, skillID uuid.UUID) error
}

// SkillCache holds the skill catalog.
type SkillCache interface {
	Get(ctx context.Context) ([]models.Skill, error)
	Set(ctx context.Context, skills []models.Skill) error
	Invalidate(ctx context.Context) error
}

// OnboardingService tracks the onboarding wizard. Steps may be submitted in
// any order and repeated; each one is committed on its own.
type OnboardingService struct {
	users       UserReader
	writer      OnboardingWriter
	skillReader SkillReader
	skills      *skillAttacher
	events      EventPublisher
}

func NewOnboardingService(
	users UserReader,
	writer OnboardingWriter,
	skillReader SkillReader,
	skillWriter SkillWriter,
	cache SkillCache,
	events EventPublisher,
) *OnboardingService {
	return &OnboardingService{
		users:       users,
		writer:      writer,
		skillReader: skillReader,
		skills:      &skillAttacher{writer: skillWriter, cache: cache},
		events:      events,
	}
}

func notFoundAsUser(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// SetBasicInfo overwrites the basic_info columns.
func (s *OnboardingService) SetBasicInfo(ctx context.Context, userID uuid.UUID, info models.BasicInfo) (models.OnboardingStep, error) {
	if info.UserType != models.UserTypeTalent && info.UserType != models.UserTypeEmployer {
		return "", ErrInvalidUserType
	}
	if err := s.writer.UpdateBasicInfo(ctx, userID, info); err != nil {
		logger.Log.Errorw("failed to save basic info", "user_id", userID, "err", err)
		return "", notFoundAsUser(err)
	}
	return models.StepBasicInfo.Next(), nil
}

// SetPersonalDetails overwrites the personal_details columns.
func (s *OnboardingService) SetPersonalDetails(ctx context.Context, userID uuid.UUID, details models.PersonalDetails) (models.OnboardingStep, error) {
	if err := s.writer.UpdatePersonalDetails(ctx, userID, details); err != nil {
		logger.Log.Errorw("failed to save personal details", "user_id", userID, "err", err)
		return "", notFoundAsUser(err)
	}
	return models.StepPersonalDetails.Next(), nil
}

// SetSkills attaches every listed skill to the user, creating unknown skills.
// Skills the user already has are left as they are.
func (s *OnboardingService) SetSkills(ctx context.Context, userID uuid.UUID, skills []models.SkillInput) (models.OnboardingStep, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return "", notFoundAsUser(err)
	}

	for _, in := range skills {
		if _, err := s.skills.attach(ctx, userID, in); err != nil {
			logger.Log.Errorw("failed to attach skill", "user_id", userID, "skill", in.Name, "err", err)
			return "", err
		}
	}
	return models.StepSkills.Next(), nil
}

// Complete sets the completion flag regardless of which steps were done.
func (s *OnboardingService) Complete(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if err := s.writer.MarkProfileCompleted(ctx, userID); err != nil {
		logger.Log.Errorw("failed to complete onboarding", "user_id", userID, "err", err)
		return nil, notFoundAsUser(err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAsUser(err)
	}

	s.events.Publish(ctx, models.EventOnboardingCompleted, userID)
	return user, nil
}

// GetStatus derives the onboarding progress from the stored columns.
func (s *OnboardingService) GetStatus(ctx context.Context, userID uuid.UUID) (*models.OnboardingStatus, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAsUser(err)
	}
	skills, err := s.skillReader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user skills", "user_id", userID, "err", err)
		return nil, err
	}
	return onboardingStatus(user, len(skills)), nil
}

// GetData returns everything the wizard has collected.
func (s *OnboardingService) GetData(ctx context.Context, userID uuid.UUID) (*models.OnboardingData, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAsUser(err)
	}
	skills, err := s.skillReader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user skills", "user_id", userID, "err", err)
		return nil, err
	}

	return &models.OnboardingData{
		UserID:           user.ID.String(),
		UserType:         user.UserType,
		ProfileCompleted: user.ProfileCompleted,
		Profession:       user.Profession,
		Company:          user.Company,
		JobTitle:         user.JobTitle,
		YearsExperience:  user.YearsExperience,
		Hobbies:          user.Hobbies,
		AboutMe:          user.AboutMe,
		Goals:            user.Goals,
		Location:         user.Location,
		Skills:           skills,
	}, nil
}

func onboardingStatus(user *models.User, skillsCount int) *models.OnboardingStatus {
	done := map[models.OnboardingStep]bool{
		models.StepBasicInfo:       user.Profession != nil || user.Company != nil || user.JobTitle != nil || user.YearsExperience != nil,
		models.StepPersonalDetails: user.Hobbies != nil || user.AboutMe != nil || user.Goals != nil,
		models.StepSkills:          skillsCount > 0,
		models.StepComplete:        user.ProfileCompleted,
	}

	status := &models.OnboardingStatus{
		ProfileCompleted: user.ProfileCompleted,
		CompletedSteps:   []models.OnboardingStep{},
		SkillsCount:      skillsCount,
	}
	for _, step := range models.OnboardingSteps {
		if done[step] {
			status.CompletedSteps = append(status.CompletedSteps, step)
		} else if status.CurrentStep == "" {
			status.CurrentStep = step
		}
	}
	if user.ProfileCompleted || status.CurrentStep == "" {
		status.CurrentStep = models.StepComplete
	}
	return status
}

// skillAttacher links skills to users and keeps the catalog cache honest.
type skillAttacher struct {
	writer SkillWriter
	cache  SkillCache
}

func (a *skillAttacher) attach(ctx context.Context, userID uuid.UUID, in models.SkillInput) (bool, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return false, ErrSkillNameRequired
	}
	proficiency := in.Proficiency
	switch proficiency {
	case "":
		proficiency = models.ProficiencyIntermediate
	case models.ProficiencyBeginner, models.ProficiencyIntermediate, models.ProficiencyAdvanced, models.ProficiencyExpert:
	default:
		return false, ErrInvalidProficiency
	}
	if in.ExperienceYears < 0 {
		in.ExperienceYears = 0
	}

	skill, created, err := a.writer.GetOrCreate(ctx, name, in.Category)
	if err != nil {
		return false, err
	}
	if created {
		a.invalidate(ctx)
	}

	return a.writer.AddToUser(ctx, userID, skill.ID, proficiency, in.ExperienceYears)
}

func (a *skillAttacher) invalidate(ctx context.Context) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Invalidate(ctx); err != nil {
		logger.Log.Warnw("failed to invalidate skill cache", "err", err)
	}
}
