package matching

import (
	"sort"

	"github.com/google/uuid"
)

// Scored is one candidate id with its cosine similarity to the query vector.
type Scored struct {
	Id         uuid.UUID
	Similarity float64
}

// RankByScore orders candidates by similarity descending, drops rows under
// threshold, and caps the result at k (k <= 0 means no cap). Equal scores are
// broken by id ascending so the same input set always ranks the same way.
func RankByScore(candidates []Scored, k int, threshold float64) []Scored {
	ranked := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		if c.Similarity >= threshold {
			ranked = append(ranked, c)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Similarity != ranked[j].Similarity {
			return ranked[i].Similarity > ranked[j].Similarity
		}
		return ranked[i].Id.String() < ranked[j].Id.String()
	})

	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// CosineSimilarity is the dot product of two vectors. Inputs are expected to
// be unit length, which the embedding providers guarantee.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}
