package models

import "time"

type EditorialPosition string

const (
	PositionSubmitted      EditorialPosition = "submitted"
	PositionAwaitingReview EditorialPosition = "awaiting_review"
	PositionInReview       EditorialPosition = "in_review"
	PositionInCorrection   EditorialPosition = "in_correction"
	PositionReadyToPublish EditorialPosition = "ready_to_publish"
	PositionPublished      EditorialPosition = "published"
)

func ValidEditorialPosition(p EditorialPosition) bool {
	switch p {
	case PositionSubmitted, PositionAwaitingReview, PositionInReview, PositionInCorrection, PositionReadyToPublish, PositionPublished:
		return true
	}
	return false
}

// EditorialTeam holds the external user ids of everyone working the piece.
type EditorialTeam struct {
	AuthorIDs    []string `json:"author_ids" bson:"author_ids"`
	EditorIDs    []string `json:"editor_ids" bson:"editor_ids"`
	ReviewerIDs  []string `json:"reviewer_ids" bson:"reviewer_ids"`
	CorrectorIDs []string `json:"corrector_ids" bson:"corrector_ids"`
}

// Members returns every id across the team lists.
func (t EditorialTeam) Members() []string {
	out := make([]string, 0, len(t.AuthorIDs)+len(t.EditorIDs)+len(t.ReviewerIDs)+len(t.CorrectorIDs))
	out = append(out, t.AuthorIDs...)
	out = append(out, t.EditorIDs...)
	out = append(out, t.ReviewerIDs...)
	out = append(out, t.CorrectorIDs...)
	return out
}

// Contains reports whether id appears in any team list.
func (t EditorialTeam) Contains(id string) bool {
	for _, m := range t.Members() {
		if m == id {
			return true
		}
	}
	return false
}

// Editorial tracks workflow state for exactly one article.
// CurrentHistoryID always points into HistoryIDs.
type Editorial struct {
	ID               string            `json:"id" bson:"_id"`
	ArticleID        string            `json:"article_id" bson:"article_id"`
	Position         EditorialPosition `json:"position" bson:"position"`
	CurrentHistoryID string            `json:"current_history_id" bson:"current_history_id"`
	HistoryIDs       []string          `json:"history_ids" bson:"history_ids"`
	CommentIDs       []string          `json:"comment_ids" bson:"comment_ids"`
	Team             EditorialTeam     `json:"team" bson:"team"`
	CreatedAt        time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" bson:"updated_at"`
}
