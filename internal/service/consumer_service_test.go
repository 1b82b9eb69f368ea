package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"intern-matching-be/internal/constant"
	"intern-matching-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMatchingService struct {
	internIds chan uuid.UUID
	jobIds    chan uuid.UUID
}

func newRecordingMatchingService() *recordingMatchingService {
	return &recordingMatchingService{
		internIds: make(chan uuid.UUID, 8),
		jobIds:    make(chan uuid.UUID, 8),
	}
}

func (r *recordingMatchingService) EmbedIntern(ctx context.Context, internId uuid.UUID) error {
	r.internIds <- internId
	return nil
}

func (r *recordingMatchingService) EmbedJob(ctx context.Context, jobId uuid.UUID) error {
	r.jobIds <- jobId
	return nil
}

func (r *recordingMatchingService) GetMatchesForIntern(ctx context.Context, internId uuid.UUID) ([]*dto.JobMatchResponse, error) {
	return nil, nil
}

func (r *recordingMatchingService) GetCandidatesForJob(ctx context.Context, jobId uuid.UUID) ([]*dto.CandidateMatchResponse, error) {
	return nil, nil
}

func TestConsumerDispatchesByEntityKind(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	recorder := newRecordingMatchingService()
	consumer := NewConsumerService(pubSub, "EMBED_ENTITY_TEST", recorder, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	internId := uuid.New()
	jobId := uuid.New()

	for _, payload := range []dto.PublishEmbedEntityMessage{
		{Kind: constant.EntityKindIntern, EntityId: internId},
		{Kind: constant.EntityKindJob, EntityId: jobId},
	} {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		require.NoError(t, pubSub.Publish("EMBED_ENTITY_TEST", message.NewMessage(watermill.NewUUID(), raw)))
	}

	select {
	case got := <-recorder.internIds:
		assert.Equal(t, internId, got)
	case <-time.After(2 * time.Second):
		t.Fatal("intern embed trigger never consumed")
	}

	select {
	case got := <-recorder.jobIds:
		assert.Equal(t, jobId, got)
	case <-time.After(2 * time.Second):
		t.Fatal("job embed trigger never consumed")
	}
}

func TestConsumerAcksMalformedAndUnknownKindMessages(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	recorder := newRecordingMatchingService()
	consumer := NewConsumerService(pubSub, "EMBED_ENTITY_TEST", recorder, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	// garbage payload, then an unknown kind, then a valid trigger
	require.NoError(t, pubSub.Publish("EMBED_ENTITY_TEST", message.NewMessage(watermill.NewUUID(), []byte("not json"))))

	unknown, err := json.Marshal(dto.PublishEmbedEntityMessage{Kind: "company", EntityId: uuid.New()})
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish("EMBED_ENTITY_TEST", message.NewMessage(watermill.NewUUID(), unknown)))

	internId := uuid.New()
	valid, err := json.Marshal(dto.PublishEmbedEntityMessage{Kind: constant.EntityKindIntern, EntityId: internId})
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish("EMBED_ENTITY_TEST", message.NewMessage(watermill.NewUUID(), valid)))

	// the bad messages are acked and do not wedge the subscription
	select {
	case got := <-recorder.internIds:
		assert.Equal(t, internId, got)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer stalled on malformed messages")
	}
}
