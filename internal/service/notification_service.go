package service

import (
	"context"
	"encoding/json"

	"buildhive-be/internal/pkg/logger"
	"buildhive-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const interestTopic = "interest.expressed"

// InterestNotification is what the interest flow hands off for
// out-of-request email delivery.
type InterestNotification struct {
	OwnerEmail    string `json:"ownerEmail"`
	ProjectTitle  string `json:"projectTitle"`
	ApplicantName string `json:"applicantName"`
	Message       string `json:"message"`
}

type INotificationService interface {
	PublishInterest(notification InterestNotification)
	Run(ctx context.Context) error
	Close() error
}

// notificationService decouples email delivery from request handling
// with an in-process pub/sub channel. A slow SMTP round trip never
// holds up the HTTP response.
type notificationService struct {
	pubsub       *gochannel.GoChannel
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewNotificationService(emailService mailer.IEmailService, log logger.ILogger) INotificationService {
	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, watermill.NopLogger{})

	return &notificationService{
		pubsub:       pubsub,
		emailService: emailService,
		log:          log,
	}
}

func (s *notificationService) PublishInterest(notification InterestNotification) {
	payload, err := json.Marshal(notification)
	if err != nil {
		s.log.Warn("notification", "failed to marshal interest notification", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubsub.Publish(interestTopic, msg); err != nil {
		s.log.Warn("notification", "failed to enqueue interest notification", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Run consumes queued notifications until the context is cancelled.
// Call it from a goroutine at startup.
func (s *notificationService) Run(ctx context.Context) error {
	messages, err := s.pubsub.Subscribe(ctx, interestTopic)
	if err != nil {
		return err
	}

	for msg := range messages {
		var notification InterestNotification
		if err := json.Unmarshal(msg.Payload, &notification); err != nil {
			s.log.Warn("notification", "dropping malformed notification", map[string]interface{}{
				"error": err.Error(),
			})
			msg.Ack()
			continue
		}

		err := s.emailService.SendInterestNotification(
			notification.OwnerEmail,
			notification.ProjectTitle,
			notification.ApplicantName,
			notification.Message,
		)
		if err != nil {
			s.log.Warn("notification", "interest email delivery failed", map[string]interface{}{
				"email": notification.OwnerEmail,
				"error": err.Error(),
			})
		}
		msg.Ack()
	}
	return nil
}

func (s *notificationService) Close() error {
	return s.pubsub.Close()
}
