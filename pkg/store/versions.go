package store

// VersionScore converts a template version to its sorted set score.
func VersionScore(version int) float64 {
	return float64(version)
}

// VersionFromScore converts a sorted set score back to a version number.
func VersionFromScore(score float64) int {
	return int(score)
}
