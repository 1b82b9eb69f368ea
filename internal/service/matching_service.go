package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"intern-matching-be/internal/constant"
	"intern-matching-be/internal/dto"
	"intern-matching-be/internal/entity"
	"intern-matching-be/internal/pkg/logger"
	"intern-matching-be/internal/pkg/matcherr"
	"intern-matching-be/internal/repository/contract"
	"intern-matching-be/internal/repository/specification"
	"intern-matching-be/internal/repository/unitofwork"
	"intern-matching-be/pkg/embedding"
	"intern-matching-be/pkg/events"
	"intern-matching-be/pkg/matching"
	pktNats "intern-matching-be/pkg/nats"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

type IMatchingService interface {
	EmbedIntern(ctx context.Context, internId uuid.UUID) error
	EmbedJob(ctx context.Context, jobId uuid.UUID) error
	GetMatchesForIntern(ctx context.Context, internId uuid.UUID) ([]*dto.JobMatchResponse, error)
	GetCandidatesForJob(ctx context.Context, jobId uuid.UUID) ([]*dto.CandidateMatchResponse, error)
}

type matchingService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	eventPublisher    *pktNats.Publisher
	redisClient       *redis.Client
	configCache       *gocache.Cache
	log               logger.ILogger
	embedTimeout      time.Duration
	matchCacheTTL     time.Duration
}

func NewMatchingService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	eventPublisher *pktNats.Publisher,
	redisClient *redis.Client,
	log logger.ILogger,
	embedTimeout time.Duration,
	matchCacheTTL time.Duration,
) IMatchingService {
	return &matchingService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
		redisClient:       redisClient,
		configCache:       gocache.New(5*time.Minute, 10*time.Minute),
		log:               log,
		embedTimeout:      embedTimeout,
		matchCacheTTL:     matchCacheTTL,
	}
}

// === WRITE PATH ===

func (s *matchingService) EmbedIntern(ctx context.Context, internId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.InternProfileRepository().FindOne(ctx, specification.ByID{ID: internId})
	if err != nil {
		return fmt.Errorf("fetch intern profile %s: %w", internId, err)
	}
	if profile == nil {
		return matcherr.NewNotFoundError("intern profile", fmt.Sprintf("intern profile %s not found", internId))
	}

	doc := matching.InternDocument(profile.Summary, profile.Skills)
	if err := s.embedAndUpsert(ctx, uow, constant.EntityKindIntern, internId, doc); err != nil {
		return err
	}

	s.invalidateMatchCache(ctx, matchCacheKey(internId))
	s.publishEmbedded(ctx, constant.EntityKindIntern, internId)
	return nil
}

func (s *matchingService) EmbedJob(ctx context.Context, jobId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.JobPostRepository().FindOne(ctx, specification.ByID{ID: jobId})
	if err != nil {
		return fmt.Errorf("fetch job post %s: %w", jobId, err)
	}
	if job == nil {
		return matcherr.NewNotFoundError("job post", fmt.Sprintf("job post %s not found", jobId))
	}

	doc := matching.JobDocument(job.Title, job.Description, job.Requirements, job.Responsibilities)
	if err := s.embedAndUpsert(ctx, uow, constant.EntityKindJob, jobId, doc); err != nil {
		return err
	}

	// Intern-side match caches go stale for at most one TTL window.
	s.invalidateMatchCache(ctx, candidateCacheKey(jobId))
	s.publishEmbedded(ctx, constant.EntityKindJob, jobId)
	return nil
}

// embedAndUpsert is all-or-nothing: an inference failure leaves the previous
// embedding record untouched.
func (s *matchingService) embedAndUpsert(ctx context.Context, uow unitofwork.UnitOfWork, kind string, entityId uuid.UUID, doc string) error {
	embedCtx, cancel := context.WithTimeout(ctx, s.embedTimeout)
	defer cancel()

	vector, err := s.embeddingProvider.Generate(embedCtx, doc, embedding.TaskDocument)
	if err != nil {
		return fmt.Errorf("embed %s %s: %w", kind, entityId, err)
	}

	record := &entity.EntityEmbedding{
		Id:             uuid.New(),
		EntityKind:     kind,
		EntityId:       entityId,
		Document:       doc,
		EmbeddingValue: vector,
		CreatedAt:      time.Now(),
	}
	if err := uow.EntityEmbeddingRepository().Upsert(ctx, record); err != nil {
		return fmt.Errorf("store %s embedding %s: %w", kind, entityId, err)
	}

	return nil
}

func (s *matchingService) publishEmbedded(ctx context.Context, kind string, entityId uuid.UUID) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: "ENTITY_EMBEDDED",
		Data: map[string]interface{}{
			"kind":      kind,
			"entity_id": entityId,
		},
		OccurredAt: time.Now(),
	}
	// Matching stays best-effort: event delivery never fails the write path.
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("matching", "failed to publish ENTITY_EMBEDDED event", map[string]interface{}{
			"kind":      kind,
			"entity_id": entityId.String(),
			"error":     err.Error(),
		})
	}
}

// === READ PATH ===

func (s *matchingService) GetMatchesForIntern(ctx context.Context, internId uuid.UUID) ([]*dto.JobMatchResponse, error) {
	cacheKey := matchCacheKey(internId)
	var cached []*dto.JobMatchResponse
	if s.readMatchCache(ctx, cacheKey, &cached) {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	own, err := uow.EntityEmbeddingRepository().FindByEntity(ctx, constant.EntityKindIntern, internId)
	if err != nil {
		return nil, fmt.Errorf("load intern embedding %s: %w", internId, err)
	}
	if own == nil {
		return nil, matcherr.NewNoEmbeddingError("intern", fmt.Sprintf("intern %s has no embedding yet", internId))
	}

	threshold, limit := s.matchingParams(ctx, uow)

	scored, err := uow.EntityEmbeddingRepository().SearchSimilarWithScore(ctx, constant.EntityKindJob, own.EmbeddingValue, limit, threshold)
	if err != nil {
		return nil, err
	}

	// Cold start: no job embeddings yet.
	if len(scored) == 0 {
		return []*dto.JobMatchResponse{}, nil
	}

	ranked := rankScored(scored, limit, threshold)

	ids := make([]uuid.UUID, len(ranked))
	for i, r := range ranked {
		ids[i] = r.Id
	}

	// Single batched hydration, company names joined in.
	jobs, err := uow.JobPostRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("hydrate job posts: %w", err)
	}

	jobsById := make(map[uuid.UUID]*entity.JobPost, len(jobs))
	for _, job := range jobs {
		jobsById[job.Id] = job
	}

	// Rebuild in rank order; hydration may return rows in any order.
	response := make([]*dto.JobMatchResponse, 0, len(ranked))
	for _, r := range ranked {
		job, ok := jobsById[r.Id]
		if !ok {
			// Job row deleted between search and hydration.
			continue
		}
		response = append(response, &dto.JobMatchResponse{
			JobId:       job.Id,
			Title:       job.Title,
			Description: job.Description,
			CompanyName: job.CompanyName,
			Similarity:  r.Similarity,
			CreatedAt:   job.CreatedAt,
			UpdatedAt:   job.UpdatedAt,
		})
	}

	s.writeMatchCache(ctx, cacheKey, response)
	return response, nil
}

func (s *matchingService) GetCandidatesForJob(ctx context.Context, jobId uuid.UUID) ([]*dto.CandidateMatchResponse, error) {
	cacheKey := candidateCacheKey(jobId)
	var cached []*dto.CandidateMatchResponse
	if s.readMatchCache(ctx, cacheKey, &cached) {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	own, err := uow.EntityEmbeddingRepository().FindByEntity(ctx, constant.EntityKindJob, jobId)
	if err != nil {
		return nil, fmt.Errorf("load job embedding %s: %w", jobId, err)
	}
	if own == nil {
		return nil, matcherr.NewNoEmbeddingError("job", fmt.Sprintf("job %s has no embedding yet", jobId))
	}

	threshold, limit := s.matchingParams(ctx, uow)

	scored, err := uow.EntityEmbeddingRepository().SearchSimilarWithScore(ctx, constant.EntityKindIntern, own.EmbeddingValue, limit, threshold)
	if err != nil {
		return nil, err
	}
	if len(scored) == 0 {
		return []*dto.CandidateMatchResponse{}, nil
	}

	ranked := rankScored(scored, limit, threshold)

	ids := make([]uuid.UUID, len(ranked))
	for i, r := range ranked {
		ids[i] = r.Id
	}

	profiles, err := uow.InternProfileRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("hydrate intern profiles: %w", err)
	}

	profilesById := make(map[uuid.UUID]*entity.InternProfile, len(profiles))
	for _, p := range profiles {
		profilesById[p.Id] = p
	}

	response := make([]*dto.CandidateMatchResponse, 0, len(ranked))
	for _, r := range ranked {
		p, ok := profilesById[r.Id]
		if !ok {
			continue
		}
		response = append(response, &dto.CandidateMatchResponse{
			InternId:   p.Id,
			FullName:   p.FullName,
			Summary:    p.Summary,
			Skills:     p.Skills,
			Similarity: r.Similarity,
		})
	}

	s.writeMatchCache(ctx, cacheKey, response)
	return response, nil
}

// rankScored re-affirms ordering through the ranking seam after the SQL-side
// sort, so tie-break policy lives in one testable place.
func rankScored(scored []*contract.ScoredEntityEmbedding, limit int, threshold float64) []matching.Scored {
	candidates := make([]matching.Scored, len(scored))
	for i, sr := range scored {
		candidates[i] = matching.Scored{
			Id:         sr.Embedding.EntityId,
			Similarity: sr.Similarity,
		}
	}
	return matching.RankByScore(candidates, limit, threshold)
}

// === MATCHING PARAMETERS ===

// matchingParams reads the tunable threshold and limit from the configuration
// table, cached in-process for a few minutes.
func (s *matchingService) matchingParams(ctx context.Context, uow unitofwork.UnitOfWork) (float64, int) {
	threshold := constant.DefaultSimilarityThreshold
	if v, found := s.configCache.Get(constant.ConfigKeySimilarityThreshold); found {
		threshold = v.(float64)
	} else if row, err := uow.MatchingConfigRepository().FindByKey(ctx, constant.ConfigKeySimilarityThreshold); err == nil && row != nil {
		if parsed, err := strconv.ParseFloat(row.Value, 64); err == nil {
			threshold = parsed
		}
		s.configCache.Set(constant.ConfigKeySimilarityThreshold, threshold, gocache.DefaultExpiration)
	}

	limit := constant.DefaultMatchLimit
	if v, found := s.configCache.Get(constant.ConfigKeyMatchLimit); found {
		limit = v.(int)
	} else if row, err := uow.MatchingConfigRepository().FindByKey(ctx, constant.ConfigKeyMatchLimit); err == nil && row != nil {
		if parsed, err := strconv.Atoi(row.Value); err == nil && parsed > 0 {
			limit = parsed
		}
		s.configCache.Set(constant.ConfigKeyMatchLimit, limit, gocache.DefaultExpiration)
	}

	return threshold, limit
}

// === MATCH RESULT CACHE ===

func matchCacheKey(internId uuid.UUID) string {
	return "matches:intern:" + internId.String()
}

func candidateCacheKey(jobId uuid.UUID) string {
	return "candidates:job:" + jobId.String()
}

func (s *matchingService) readMatchCache(ctx context.Context, key string, out interface{}) bool {
	if s.redisClient == nil {
		return false
	}
	raw, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

func (s *matchingService) writeMatchCache(ctx context.Context, key string, value interface{}) {
	if s.redisClient == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, key, raw, s.matchCacheTTL).Err(); err != nil {
		s.log.Warn("matching", "failed to write match cache", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (s *matchingService) invalidateMatchCache(ctx context.Context, key string) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.log.Warn("matching", "failed to invalidate match cache", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
