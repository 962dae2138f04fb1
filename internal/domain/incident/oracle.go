package incident

import "context"

// Match is one nearest-neighbor result from the similarity oracle: a prior
// complaint and its cosine similarity score in [0,1].
type Match struct {
	ComplaintID uint
	Score       float64
}

// SimilarityOracle returns the most similar prior complaints for a text
// embedding. Implementations must already exclude superseded normalizations
// of the same complaint. Calls cross a service boundary and may block or time
// out; callers must not hold any lock while calling.
type SimilarityOracle interface {
	FindSimilar(ctx context.Context, embedding []float64, k int) ([]Match, error)
}
