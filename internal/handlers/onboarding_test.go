package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/models"
	"github.com/sbilibin2017/techlinker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestOnboardingHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOnboardingManager(ctrl)
	id := uuid.New()
	params := map[string]string{"id": id.String()}
	years := 4

	tests := []struct {
		name         string
		handler      http.HandlerFunc
		method       string
		inputBody    any
		authID       uuid.UUID
		mockSetup    func()
		expectedCode int
		check        func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:      "basic info",
			handler:   NewBasicInfoHandler(mockSvc),
			method:    http.MethodPost,
			inputBody: BasicInfoRequest{UserType: "talent", Profession: strPtr("Engineer"), YearsExperience: &years},
			authID:    id,
			mockSetup: func() {
				mockSvc.EXPECT().SetBasicInfo(gomock.Any(), id, models.BasicInfo{
					UserType:        models.UserTypeTalent,
					Profession:      strPtr("Engineer"),
					YearsExperience: &years,
				}).Return(models.StepPersonalDetails, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, models.StepPersonalDetails, decodeBody[OnboardingStepResponse](t, w).NextStep)
			},
		},
		{
			name:         "basic info without user type",
			handler:      NewBasicInfoHandler(mockSvc),
			method:       http.MethodPost,
			inputBody:    BasicInfoRequest{},
			authID:       id,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "personal details for unknown user",
			handler:   NewPersonalDetailsHandler(mockSvc),
			method:    http.MethodPost,
			inputBody: PersonalDetailsRequest{Goals: strPtr("ship")},
			authID:    id,
			mockSetup: func() {
				mockSvc.EXPECT().SetPersonalDetails(gomock.Any(), id, models.PersonalDetails{Goals: strPtr("ship")}).
					Return(models.OnboardingStep(""), services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "skills",
			handler:   NewOnboardingSkillsHandler(mockSvc),
			method:    http.MethodPost,
			inputBody: SkillsRequest{Skills: []SkillRequest{{Name: "Go"}, {Name: "Go"}}},
			authID:    id,
			mockSetup: func() {
				mockSvc.EXPECT().SetSkills(gomock.Any(), id, []models.SkillInput{{Name: "Go"}, {Name: "Go"}}).
					Return(models.StepComplete, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, models.StepComplete, decodeBody[OnboardingStepResponse](t, w).NextStep)
			},
		},
		{
			name:         "skills with an invalid entry",
			handler:      NewOnboardingSkillsHandler(mockSvc),
			method:       http.MethodPost,
			inputBody:    SkillsRequest{Skills: []SkillRequest{{Name: "Go"}, {Name: ""}}},
			authID:       id,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "complete",
			handler: NewCompleteOnboardingHandler(mockSvc),
			method:  http.MethodPost,
			authID:  id,
			mockSetup: func() {
				mockSvc.EXPECT().Complete(gomock.Any(), id).
					Return(&models.User{ID: id, ProfileCompleted: true}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.True(t, decodeBody[CompleteOnboardingResponse](t, w).User.ProfileCompleted)
			},
		},
		{
			name:    "status",
			handler: NewOnboardingStatusHandler(mockSvc),
			method:  http.MethodGet,
			authID:  id,
			mockSetup: func() {
				mockSvc.EXPECT().GetStatus(gomock.Any(), id).Return(&models.OnboardingStatus{
					CurrentStep:    models.StepPersonalDetails,
					CompletedSteps: []models.OnboardingStep{models.StepBasicInfo},
				}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, models.StepPersonalDetails, decodeBody[models.OnboardingStatus](t, w).CurrentStep)
			},
		},
		{
			name:    "data store error",
			handler: NewOnboardingDataHandler(mockSvc),
			method:  http.MethodGet,
			authID:  id,
			mockSetup: func() {
				mockSvc.EXPECT().GetData(gomock.Any(), id).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "data of another user",
			handler:      NewOnboardingDataHandler(mockSvc),
			method:       http.MethodGet,
			authID:       uuid.New(),
			mockSetup:    func() {},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			tt.handler.ServeHTTP(w, newRequest(tt.method, "/", tt.inputBody, tt.authID, params))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.check != nil {
				tt.check(t, w)
			}
		})
	}
}
