package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/models"
	"github.com/sbilibin2017/techlinker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileGetter(ctrl)
	id := uuid.New()
	params := map[string]string{"id": id.String()}

	t.Run("owner", func(t *testing.T) {
		mockSvc.EXPECT().GetProfile(gomock.Any(), id).Return(&models.Profile{
			User:   models.User{ID: id, Fullname: "Jane"},
			Skills: []models.UserSkill{{Name: "Go", Proficiency: models.ProficiencyExpert}},
		}, nil)

		w := httptest.NewRecorder()
		NewGetProfileHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/", nil, id, params))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[models.Profile](t, w)
		assert.Equal(t, "Jane", resp.Fullname)
		assert.Len(t, resp.Skills, 1)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("another user", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewGetProfileHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/", nil, uuid.New(), params))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().GetProfile(gomock.Any(), id).Return(nil, services.ErrUserNotFound)

		w := httptest.NewRecorder()
		NewGetProfileHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/", nil, id, params))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileUpdater(ctrl)
	id := uuid.New()
	params := map[string]string{"id": id.String()}

	tests := []struct {
		name         string
		inputBody    any
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "partial update",
			inputBody: `{"bio":"Gopher","availability":"part_time"}`,
			mockSetup: func() {
				mockSvc.EXPECT().UpdateProfile(gomock.Any(), id, gomock.Any()).
					DoAndReturn(func(_ any, _ uuid.UUID, patch models.ProfilePatch) (int64, error) {
						assert.Equal(t, strPtr("Gopher"), patch.Bio)
						assert.Equal(t, models.AvailabilityPartTime, *patch.Availability)
						assert.Nil(t, patch.Fullname)
						assert.Nil(t, patch.HourlyRate)
						return 1, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "empty body",
			inputBody: `{}`,
			mockSetup: func() {
				mockSvc.EXPECT().UpdateProfile(gomock.Any(), id, models.ProfilePatch{}).
					Return(int64(0), services.ErrNoFieldsToUpdate)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "bad availability",
			inputBody:    `{"availability":"sometimes"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "negative rate",
			inputBody:    `{"hourly_rate":-5}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "unknown user",
			inputBody: `{"bio":"x"}`,
			mockSetup: func() {
				mockSvc.EXPECT().UpdateProfile(gomock.Any(), id, gomock.Any()).
					Return(int64(0), services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewUpdateProfileHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPut, "/", tt.inputBody, id, params))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, int64(1), decodeBody[UpdateProfileResponse](t, w).AffectedRows)
			}
		})
	}
}

func TestPictureUploadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPictureUploader(ctrl)
	id := uuid.New()
	params := map[string]string{"id": id.String()}
	expires := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("presigned", func(t *testing.T) {
		mockSvc.EXPECT().CreatePictureUploadURL(gomock.Any(), id).Return(&services.PictureUpload{
			Key:       "profile-pictures/" + id.String() + "/abc",
			URL:       "https://bucket.s3.amazonaws.com/x?X-Amz-Signature=1",
			ExpiresAt: expires,
		}, nil)

		w := httptest.NewRecorder()
		NewPictureUploadHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPost, "/", nil, id, params))

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeBody[PictureUploadResponse](t, w)
		assert.Equal(t, "https://bucket.s3.amazonaws.com/x?X-Amz-Signature=1", resp.UploadURL)
		assert.True(t, expires.Equal(resp.ExpiresAt))
	})

	t.Run("uploads disabled", func(t *testing.T) {
		mockSvc.EXPECT().CreatePictureUploadURL(gomock.Any(), id).Return(nil, services.ErrUploadsDisabled)

		w := httptest.NewRecorder()
		NewPictureUploadHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPost, "/", nil, id, params))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
