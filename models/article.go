package models

import "time"

type ArticleStatus string

const (
	StatusDraft              ArticleStatus = "draft"
	StatusInReview           ArticleStatus = "in_review"
	StatusAwaitingCorrection ArticleStatus = "awaiting_correction"
	StatusReadyToPublish     ArticleStatus = "ready_to_publish"
	StatusPublished          ArticleStatus = "published"
	StatusArchived           ArticleStatus = "archived"
)

func ValidArticleStatus(s ArticleStatus) bool {
	switch s {
	case StatusDraft, StatusInReview, StatusAwaitingCorrection, StatusReadyToPublish, StatusPublished, StatusArchived:
		return true
	}
	return false
}

type ArticleType string

const (
	TypeResearch ArticleType = "research"
	TypeReview   ArticleType = "review"
	TypeOpinion  ArticleType = "opinion"
	TypeNews     ArticleType = "news"
	TypeTutorial ArticleType = "tutorial"
)

// MediaRef points at an uploaded asset kept outside this service.
type MediaRef struct {
	URL     string `json:"url" bson:"url"`
	Caption string `json:"caption,omitempty" bson:"caption,omitempty"`
}

type Article struct {
	ID                string        `json:"id" bson:"_id"`
	Title             string        `json:"title" bson:"title"`
	Summary           string        `json:"summary" bson:"summary"`
	Status            ArticleStatus `json:"status" bson:"status"`
	Type              ArticleType   `json:"type" bson:"type"`
	AuthorIDs         []string      `json:"author_ids" bson:"author_ids"`
	EditorialID       string        `json:"editorial_id" bson:"editorial_id"`
	VolumeID          string        `json:"volume_id,omitempty" bson:"volume_id,omitempty"`
	Media             []MediaRef    `json:"media,omitempty" bson:"media,omitempty"`
	TotalComments     int           `json:"total_comments" bson:"total_comments"`
	TotalInteractions int           `json:"total_interactions" bson:"total_interactions"`
	CreatedAt         time.Time     `json:"created_at" bson:"created_at"`
	LastEditedAt      time.Time     `json:"last_edited_at" bson:"last_edited_at"`
	PublishedAt       *time.Time    `json:"published_at,omitempty" bson:"published_at,omitempty"`
}
