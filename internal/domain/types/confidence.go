package types

// Bucket is a discrete confidence level used for review and filtering.
type Bucket string

// Confidence buckets, highest first.
const (
	BucketExact  Bucket = "exact"
	BucketHigh   Bucket = "high"
	BucketGood   Bucket = "good"
	BucketMedium Bucket = "medium"
	BucketLow    Bucket = "low"
)

// Bucket scores.
const (
	ConfidenceExact  = 1.0
	ConfidenceHigh   = 0.9
	ConfidenceGood   = 0.75
	ConfidenceMedium = 0.6
	ConfidenceLow    = 0.4
)

// Buckets lists the buckets from most to least trusted.
func Buckets() []Bucket {
	return []Bucket{BucketExact, BucketHigh, BucketGood, BucketMedium, BucketLow}
}

// Score returns the representative score of b.
func (b Bucket) Score() float64 {
	switch b {
	case BucketExact:
		return ConfidenceExact
	case BucketHigh:
		return ConfidenceHigh
	case BucketGood:
		return ConfidenceGood
	case BucketMedium:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// BucketFor returns the highest bucket whose threshold is <= score.
// Anything below medium, including scores under 0.4, is low.
func BucketFor(score float64) Bucket {
	switch {
	case score >= ConfidenceExact:
		return BucketExact
	case score >= ConfidenceHigh:
		return BucketHigh
	case score >= ConfidenceGood:
		return BucketGood
	case score >= ConfidenceMedium:
		return BucketMedium
	default:
		return BucketLow
	}
}
