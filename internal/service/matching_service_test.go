package service

import (
	"context"
	"testing"
	"time"

	"intern-matching-be/internal/constant"
	"intern-matching-be/internal/entity"
	"intern-matching-be/internal/model"
	"intern-matching-be/internal/pkg/matcherr"
	"intern-matching-be/internal/repository/contract"
	"intern-matching-be/internal/repository/specification"
	"intern-matching-be/internal/repository/unitofwork"
	"intern-matching-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// === FAKES ===

type fakeEmbeddingRepo struct {
	rows      map[string]*entity.EntityEmbedding // keyed kind+"/"+id
	scored    []*contract.ScoredEntityEmbedding
	upserts   []*entity.EntityEmbedding
	upsertErr error
}

func embKey(kind string, id uuid.UUID) string { return kind + "/" + id.String() }

func (f *fakeEmbeddingRepo) Upsert(ctx context.Context, e *entity.EntityEmbedding) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if f.rows == nil {
		f.rows = map[string]*entity.EntityEmbedding{}
	}
	f.rows[embKey(e.EntityKind, e.EntityId)] = e
	f.upserts = append(f.upserts, e)
	return nil
}

func (f *fakeEmbeddingRepo) FindByEntity(ctx context.Context, kind string, entityId uuid.UUID) (*entity.EntityEmbedding, error) {
	return f.rows[embKey(kind, entityId)], nil
}

func (f *fakeEmbeddingRepo) DeleteByEntity(ctx context.Context, kind string, entityId uuid.UUID) error {
	delete(f.rows, embKey(kind, entityId))
	return nil
}

func (f *fakeEmbeddingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeEmbeddingRepo) SearchSimilarWithScore(ctx context.Context, kind string, emb []float32, limit int, threshold float64) ([]*contract.ScoredEntityEmbedding, error) {
	return f.scored, nil
}

type fakeInternRepo struct {
	profiles []*entity.InternProfile
	findAlls int
}

func (f *fakeInternRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InternProfile, error) {
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			for _, p := range f.profiles {
				if p.Id == byId.ID {
					return p, nil
				}
			}
		}
	}
	return nil, nil
}

func (f *fakeInternRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InternProfile, error) {
	f.findAlls++
	for _, spec := range specs {
		if byIds, ok := spec.(specification.ByIDs); ok {
			var out []*entity.InternProfile
			for _, p := range f.profiles {
				for _, id := range byIds.IDs {
					if p.Id == id {
						out = append(out, p)
					}
				}
			}
			return out, nil
		}
	}
	return f.profiles, nil
}

func (f *fakeInternRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.profiles)), nil
}

type fakeJobRepo struct {
	jobs     []*entity.JobPost
	findAlls int
}

func (f *fakeJobRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JobPost, error) {
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			for _, j := range f.jobs {
				if j.Id == byId.ID {
					return j, nil
				}
			}
		}
	}
	return nil, nil
}

func (f *fakeJobRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JobPost, error) {
	f.findAlls++
	for _, spec := range specs {
		if byIds, ok := spec.(specification.ByIDs); ok {
			var out []*entity.JobPost
			// deliberately reversed, hydration order must not leak into results
			for i := len(f.jobs) - 1; i >= 0; i-- {
				for _, id := range byIds.IDs {
					if f.jobs[i].Id == id {
						out = append(out, f.jobs[i])
					}
				}
			}
			return out, nil
		}
	}
	return f.jobs, nil
}

func (f *fakeJobRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.jobs)), nil
}

type fakeConfigRepo struct {
	rows map[string]string
}

func (f *fakeConfigRepo) FindByKey(ctx context.Context, key string) (*model.MatchingConfiguration, error) {
	if v, ok := f.rows[key]; ok {
		return &model.MatchingConfiguration{Key: key, Value: v}, nil
	}
	return nil, nil
}

type fakeUow struct {
	interns    *fakeInternRepo
	jobs       *fakeJobRepo
	embeddings *fakeEmbeddingRepo
	configs    *fakeConfigRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) InternProfileRepository() contract.InternProfileRepository { return u.interns }
func (u *fakeUow) JobPostRepository() contract.JobPostRepository             { return u.jobs }
func (u *fakeUow) EntityEmbeddingRepository() contract.EntityEmbeddingRepository {
	return u.embeddings
}
func (u *fakeUow) MatchingConfigRepository() contract.MatchingConfigRepository { return u.configs }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeProvider struct {
	vector []float32
	err    error
	calls  int
}

func (f *fakeProvider) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestService(uow *fakeUow, provider embedding.Provider) IMatchingService {
	return NewMatchingService(
		&fakeUowFactory{uow: uow},
		provider,
		nil, // no NATS in unit tests
		nil, // no redis in unit tests
		nopLogger{},
		time.Second,
		time.Minute,
	)
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		interns:    &fakeInternRepo{},
		jobs:       &fakeJobRepo{},
		embeddings: &fakeEmbeddingRepo{rows: map[string]*entity.EntityEmbedding{}},
		configs:    &fakeConfigRepo{rows: map[string]string{}},
	}
}

// === WRITE PATH ===

func TestEmbedInternStoresDocumentAndVectorTogether(t *testing.T) {
	uow := newFakeUow()
	internId := uuid.New()
	uow.interns.profiles = []*entity.InternProfile{{
		Id:       internId,
		FullName: "Ayu Lestari",
		Summary:  "Frontend-focused student.",
		Skills:   []string{"React", "TypeScript"},
	}}

	provider := &fakeProvider{vector: []float32{0.6, 0.8}}
	svc := newTestService(uow, provider)

	err := svc.EmbedIntern(context.Background(), internId)
	require.NoError(t, err)

	require.Len(t, uow.embeddings.upserts, 1)
	stored := uow.embeddings.upserts[0]
	assert.Equal(t, constant.EntityKindIntern, stored.EntityKind)
	assert.Equal(t, internId, stored.EntityId)
	assert.Equal(t, "Skills: React, TypeScript\nSummary: Frontend-focused student.", stored.Document)
	assert.Equal(t, []float32{0.6, 0.8}, stored.EmbeddingValue)
}

func TestEmbedInternUnknownIdReturnsNotFound(t *testing.T) {
	uow := newFakeUow()
	svc := newTestService(uow, &fakeProvider{vector: []float32{1}})

	err := svc.EmbedIntern(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, matcherr.ErrNotFound)
	assert.Empty(t, uow.embeddings.upserts)
}

func TestEmbedJobInferenceFailureLeavesStoreUntouched(t *testing.T) {
	uow := newFakeUow()
	jobId := uuid.New()
	uow.jobs.jobs = []*entity.JobPost{{Id: jobId, Title: "Backend Intern"}}

	previous := &entity.EntityEmbedding{
		EntityKind:     constant.EntityKindJob,
		EntityId:       jobId,
		Document:       "old document",
		EmbeddingValue: []float32{0.1, 0.2},
	}
	uow.embeddings.rows[embKey(constant.EntityKindJob, jobId)] = previous

	provider := &fakeProvider{err: matcherr.NewEmbeddingError("gemini returned status 500")}
	svc := newTestService(uow, provider)

	err := svc.EmbedJob(context.Background(), jobId)
	require.Error(t, err)
	assert.ErrorIs(t, err, matcherr.ErrEmbedding)

	// previous record survives intact
	assert.Empty(t, uow.embeddings.upserts)
	kept, _ := uow.embeddings.FindByEntity(context.Background(), constant.EntityKindJob, jobId)
	require.NotNil(t, kept)
	assert.Equal(t, "old document", kept.Document)
}

// === READ PATH ===

func scoredJob(id uuid.UUID, similarity float64) *contract.ScoredEntityEmbedding {
	return &contract.ScoredEntityEmbedding{
		Embedding: &entity.EntityEmbedding{
			EntityKind: constant.EntityKindJob,
			EntityId:   id,
		},
		Similarity: similarity,
	}
}

func TestGetMatchesForInternWithoutEmbeddingFailsExplicitly(t *testing.T) {
	uow := newFakeUow()
	svc := newTestService(uow, &fakeProvider{vector: []float32{1}})

	_, err := svc.GetMatchesForIntern(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, matcherr.ErrNoEmbedding)
}

func TestGetMatchesForInternColdStartReturnsEmptyList(t *testing.T) {
	uow := newFakeUow()
	internId := uuid.New()
	uow.embeddings.rows[embKey(constant.EntityKindIntern, internId)] = &entity.EntityEmbedding{
		EntityKind:     constant.EntityKindIntern,
		EntityId:       internId,
		EmbeddingValue: []float32{0.6, 0.8},
	}
	// no scored results: no job has been embedded yet
	svc := newTestService(uow, &fakeProvider{vector: []float32{1}})

	matches, err := svc.GetMatchesForIntern(context.Background(), internId)
	require.NoError(t, err)
	require.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestGetMatchesForInternRanksAndHydratesInOrder(t *testing.T) {
	uow := newFakeUow()
	internId := uuid.New()
	uow.embeddings.rows[embKey(constant.EntityKindIntern, internId)] = &entity.EntityEmbedding{
		EntityKind:     constant.EntityKindIntern,
		EntityId:       internId,
		EmbeddingValue: []float32{0.6, 0.8},
	}

	reactJob := uuid.New()
	sqlJob := uuid.New()
	javaJob := uuid.New()
	uow.embeddings.scored = []*contract.ScoredEntityEmbedding{
		scoredJob(reactJob, 0.91),
		scoredJob(sqlJob, 0.77),
		scoredJob(javaJob, 0.52),
	}
	uow.jobs.jobs = []*entity.JobPost{
		{Id: javaJob, Title: "Java Intern", CompanyName: "Acme"},
		{Id: reactJob, Title: "React Intern", CompanyName: "Nimbus"},
		{Id: sqlJob, Title: "SQL Intern", CompanyName: "Nimbus"},
	}

	svc := newTestService(uow, &fakeProvider{vector: []float32{1}})

	matches, err := svc.GetMatchesForIntern(context.Background(), internId)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, "React Intern", matches[0].Title)
	assert.Equal(t, 0.91, matches[0].Similarity)
	assert.Equal(t, "Nimbus", matches[0].CompanyName)
	assert.Equal(t, "SQL Intern", matches[1].Title)
	assert.Equal(t, "Java Intern", matches[2].Title)

	// single batched hydration call, never one query per match
	assert.Equal(t, 1, uow.jobs.findAlls)
}

func TestGetMatchesForInternSkipsJobsDeletedMidFlight(t *testing.T) {
	uow := newFakeUow()
	internId := uuid.New()
	uow.embeddings.rows[embKey(constant.EntityKindIntern, internId)] = &entity.EntityEmbedding{
		EntityKind:     constant.EntityKindIntern,
		EntityId:       internId,
		EmbeddingValue: []float32{1, 0},
	}

	surviving := uuid.New()
	deleted := uuid.New()
	uow.embeddings.scored = []*contract.ScoredEntityEmbedding{
		scoredJob(deleted, 0.9),
		scoredJob(surviving, 0.8),
	}
	uow.jobs.jobs = []*entity.JobPost{{Id: surviving, Title: "Survivor"}}

	svc := newTestService(uow, &fakeProvider{vector: []float32{1}})

	matches, err := svc.GetMatchesForIntern(context.Background(), internId)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, surviving, matches[0].JobId)
}

func TestGetCandidatesForJobRanksInterns(t *testing.T) {
	uow := newFakeUow()
	jobId := uuid.New()
	uow.embeddings.rows[embKey(constant.EntityKindJob, jobId)] = &entity.EntityEmbedding{
		EntityKind:     constant.EntityKindJob,
		EntityId:       jobId,
		EmbeddingValue: []float32{1, 0},
	}

	strong := uuid.New()
	weak := uuid.New()
	uow.embeddings.scored = []*contract.ScoredEntityEmbedding{
		{Embedding: &entity.EntityEmbedding{EntityKind: constant.EntityKindIntern, EntityId: strong}, Similarity: 0.88},
		{Embedding: &entity.EntityEmbedding{EntityKind: constant.EntityKindIntern, EntityId: weak}, Similarity: 0.41},
	}
	uow.interns.profiles = []*entity.InternProfile{
		{Id: weak, FullName: "Weak Match", Skills: []string{"Figma"}},
		{Id: strong, FullName: "Strong Match", Skills: []string{"Go", "SQL"}},
	}

	svc := newTestService(uow, &fakeProvider{vector: []float32{1}})

	candidates, err := svc.GetCandidatesForJob(context.Background(), jobId)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Strong Match", candidates[0].FullName)
	assert.Equal(t, 0.88, candidates[0].Similarity)
	assert.Equal(t, "Weak Match", candidates[1].FullName)
	assert.Equal(t, 1, uow.interns.findAlls)
}

// === MATCHING PARAMETERS ===

func TestMatchingParamsReadConfigurationTable(t *testing.T) {
	uow := newFakeUow()
	uow.configs.rows = map[string]string{
		constant.ConfigKeySimilarityThreshold: "0.5",
		constant.ConfigKeyMatchLimit:          "2",
	}

	internId := uuid.New()
	uow.embeddings.rows[embKey(constant.EntityKindIntern, internId)] = &entity.EntityEmbedding{
		EntityKind:     constant.EntityKindIntern,
		EntityId:       internId,
		EmbeddingValue: []float32{1, 0},
	}

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	uow.embeddings.scored = []*contract.ScoredEntityEmbedding{
		scoredJob(a, 0.9),
		scoredJob(b, 0.7),
		scoredJob(c, 0.45), // below configured threshold, dropped by the ranking seam
	}
	uow.jobs.jobs = []*entity.JobPost{{Id: a, Title: "A"}, {Id: b, Title: "B"}, {Id: c, Title: "C"}}

	svc := newTestService(uow, &fakeProvider{vector: []float32{1}})

	matches, err := svc.GetMatchesForIntern(context.Background(), internId)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "A", matches[0].Title)
	assert.Equal(t, "B", matches[1].Title)
}
