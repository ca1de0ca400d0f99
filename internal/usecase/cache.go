package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

type ResultCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const evaluateCachePrefix = "career:evaluate:"

type evaluateCacheKeyInput struct {
	Catalog         string         `json:"catalog"`
	TargetRole      string         `json:"target_role"`
	Skills          map[string]int `json:"skills"`
	ExperienceYears int            `json:"experience_years"`
	ProjectionYears int            `json:"projection_years"`
	Degree          string         `json:"degree"`
	Region          string         `json:"region"`
}

// EvaluateCacheKey hashes the normalized input together with the catalog fingerprint,
// so a reloaded catalog never serves stale results.
func EvaluateCacheKey(catalogFingerprint string, in EvaluateInput) string {
	b, _ := json.Marshal(evaluateCacheKeyInput{
		Catalog:         catalogFingerprint,
		TargetRole:      in.TargetRole,
		Skills:          in.Skills,
		ExperienceYears: in.ExperienceYears,
		ProjectionYears: in.ProjectionYears,
		Degree:          in.Degree,
		Region:          in.Region,
	})
	sum := sha256.Sum256(b)
	return evaluateCachePrefix + hex.EncodeToString(sum[:])
}

func fingerprint(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:8])
}
