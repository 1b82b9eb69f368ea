package constant

// Entity kinds stored in the entity_embeddings table. Each kind occupies its
// own similarity-search space.
const (
	EntityKindIntern = "intern"
	EntityKindJob    = "job"
)

// Matching configuration keys (matching_configurations table).
const (
	ConfigKeySimilarityThreshold = "similarity_threshold"
	ConfigKeyMatchLimit          = "match_limit"
)

// Defaults used when the configuration table has no row for a key.
const (
	DefaultSimilarityThreshold = 0.35
	DefaultMatchLimit          = 10
)

// EmbeddingDimensions is fixed by the embedding model family
// (Gemini text-embedding-004 and nomic-embed-text both emit 768).
const EmbeddingDimensions = 768
