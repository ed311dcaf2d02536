package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/models"
	"github.com/sbilibin2017/techlinker/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestKafkaEventPublisher_Publish(t *testing.T) {
	userID := uuid.New()

	t.Run("writes event keyed by user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := services.NewMockKafkaWriter(ctrl)
		writer.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				assert.Equal(t, userID.String(), string(msgs[0].Key))

				var event models.UserEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, models.EventUserRegistered, event.Type)
				assert.Equal(t, userID.String(), event.UserID)
				assert.NotEmpty(t, event.EventID)
				assert.NotZero(t, event.Timestamp)
				return nil
			})

		services.NewKafkaEventPublisher(writer).Publish(context.Background(), models.EventUserRegistered, userID)
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := services.NewMockKafkaWriter(ctrl)
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.NotPanics(t, func() {
			services.NewKafkaEventPublisher(writer).Publish(context.Background(), models.EventEmailVerified, userID)
		})
	})

	t.Run("nil writer skips publishing", func(t *testing.T) {
		assert.NotPanics(t, func() {
			services.NewKafkaEventPublisher(nil).Publish(context.Background(), models.EventPasswordReset, userID)
		})
	})
}
