package models

// OnboardingStep names a step of the onboarding wizard.
type OnboardingStep string

const (
	StepBasicInfo       OnboardingStep = "basic_info"
	StepPersonalDetails OnboardingStep = "personal_details"
	StepSkills          OnboardingStep = "skills"
	StepComplete        OnboardingStep = "complete"
)

// OnboardingSteps lists the steps in their advisory order.
var OnboardingSteps = []OnboardingStep{
	StepBasicInfo,
	StepPersonalDetails,
	StepSkills,
	StepComplete,
}

// Next returns the step suggested after s, or "" after the last one.
func (s OnboardingStep) Next() OnboardingStep {
	for i, step := range OnboardingSteps {
		if step == s && i+1 < len(OnboardingSteps) {
			return OnboardingSteps[i+1]
		}
	}
	return ""
}

// BasicInfo holds the columns written by the basic_info step.
type BasicInfo struct {
	UserType        UserType
	Profession      *string
	Company         *string
	JobTitle        *string
	YearsExperience *int
}

// PersonalDetails holds the columns written by the personal_details step.
type PersonalDetails struct {
	Hobbies  *string
	AboutMe  *string
	Goals    *string
	Location *string
}

// OnboardingStatus is a read-only projection of onboarding progress.
type OnboardingStatus struct {
	ProfileCompleted bool             `json:"profile_completed"`
	CurrentStep      OnboardingStep   `json:"current_step"`
	CompletedSteps   []OnboardingStep `json:"completed_steps"`
	SkillsCount      int              `json:"skills_count"`
}

// OnboardingData is everything collected by the wizard so far.
type OnboardingData struct {
	UserID           string      `json:"user_id"`
	UserType         UserType    `json:"user_type"`
	ProfileCompleted bool        `json:"profile_completed"`
	Profession       *string     `json:"profession"`
	Company          *string     `json:"company"`
	JobTitle         *string     `json:"job_title"`
	YearsExperience  *int        `json:"years_experience"`
	Hobbies          *string     `json:"hobbies"`
	AboutMe          *string     `json:"about_me"`
	Goals            *string     `json:"goals"`
	Location         *string     `json:"location"`
	Skills           []UserSkill `json:"skills"`
}
