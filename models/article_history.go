package models

import "time"

// HistoryVersion labels a content snapshot within the editorial cycle.
// The index saturates at VersionFinal: revisions past the last defined
// stage all land on Final instead of erroring.
type HistoryVersion int

const (
	VersionOriginal HistoryVersion = iota
	VersionFirstEdit
	VersionSecondEdit
	VersionThirdEdit
	VersionCorrected
	VersionFinal
)

func (v HistoryVersion) String() string {
	switch v {
	case VersionOriginal:
		return "original"
	case VersionFirstEdit:
		return "first_edit"
	case VersionSecondEdit:
		return "second_edit"
	case VersionThirdEdit:
		return "third_edit"
	case VersionCorrected:
		return "corrected"
	case VersionFinal:
		return "final"
	}
	return "unknown"
}

// NextVersion returns the version label for the snapshot that would be
// appended after existingCount snapshots.
func NextVersion(existingCount int) HistoryVersion {
	if existingCount >= int(VersionFinal) {
		return VersionFinal
	}
	return HistoryVersion(existingCount)
}

// ArticleHistory is an immutable snapshot of an article's content at a
// revision. Snapshots are append-only.
type ArticleHistory struct {
	ID        string         `json:"id" bson:"_id"`
	ArticleID string         `json:"article_id" bson:"article_id"`
	Version   HistoryVersion `json:"version" bson:"version"`
	Content   string         `json:"content" bson:"content"`
	Media     []MediaRef     `json:"media,omitempty" bson:"media,omitempty"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
}
