package service

import (
	"context"
	"encoding/json"

	"intern-matching-be/internal/constant"
	"intern-matching-be/internal/dto"
	"intern-matching-be/internal/pkg/logger"
	"intern-matching-be/internal/pkg/matcherr"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the embed-trigger topic. It is the observable half
// of the fire-and-forget trigger: every message ends in an Ack or a Nack, and
// failures are logged instead of silently dropped.
type consumerService struct {
	pubSub          *gochannel.GoChannel
	topicName       string
	matchingService IMatchingService
	log             logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	matchingService IMatchingService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		topicName:       topicName,
		matchingService: matchingService,
		log:             log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedEntityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal embed message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed messages must not retry forever
		return
	}

	cs.log.Info("consumer", "processing embed trigger", map[string]interface{}{
		"kind":      payload.Kind,
		"entity_id": payload.EntityId.String(),
	})

	var err error
	switch payload.Kind {
	case constant.EntityKindIntern:
		err = cs.matchingService.EmbedIntern(ctx, payload.EntityId)
	case constant.EntityKindJob:
		err = cs.matchingService.EmbedJob(ctx, payload.EntityId)
	default:
		cs.log.Error("consumer", "unknown entity kind in embed message", map[string]interface{}{
			"kind": payload.Kind,
		})
		msg.Ack()
		return
	}

	if err == nil {
		cs.log.Info("consumer", "entity embedded", map[string]interface{}{
			"kind":      payload.Kind,
			"entity_id": payload.EntityId.String(),
		})
		msg.Ack()
		return
	}

	if matcherr.IsRetryable(err) {
		cs.log.Error("consumer", "embed failed, requeueing", map[string]interface{}{
			"kind":      payload.Kind,
			"entity_id": payload.EntityId.String(),
			"error":     err.Error(),
		})
		msg.Nack()
		return
	}

	// NotFound means the source row vanished before we got here; ModelLoad
	// will not heal without a restart. Neither benefits from redelivery.
	cs.log.Error("consumer", "embed failed permanently", map[string]interface{}{
		"kind":      payload.Kind,
		"entity_id": payload.EntityId.String(),
		"error":     err.Error(),
	})
	msg.Ack()
}
