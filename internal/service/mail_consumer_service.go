package service

import (
	"context"
	"encoding/json"

	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/pkg/logger"
	"notekeeper-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IMailConsumerService interface {
	Consume(ctx context.Context) error
}

// mailConsumerService drains the mail topic and hands each message to
// SMTP. Request handlers only enqueue, so a slow mail server never
// blocks an API response.
type mailConsumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewMailConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IMailConsumerService {
	return &mailConsumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		log:          log,
	}
}

func (cs *mailConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *mailConsumerService) processMessage(msg *message.Message) {
	var payload dto.MailMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("mail_consumer", "Failed to unmarshal mail message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed, retrying cannot help
		return
	}

	var err error
	switch payload.Type {
	case dto.MailTypeCollaboratorInvite:
		err = cs.emailService.SendCollaboratorInvite(payload.To, payload.OwnerEmail, payload.NoteTitle)
	case dto.MailTypePasswordReset:
		err = cs.emailService.SendResetToken(payload.To, payload.Token)
	default:
		cs.log.Warn("mail_consumer", "Unknown mail type", map[string]interface{}{
			"type": payload.Type,
		})
		msg.Ack()
		return
	}

	if err != nil {
		cs.log.Error("mail_consumer", "Failed to send mail", map[string]interface{}{
			"type":  payload.Type,
			"to":    payload.To,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
