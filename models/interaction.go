package models

import "time"

type InteractionType string

const (
	InteractionPublicComment    InteractionType = "public_comment"
	InteractionEditorialComment InteractionType = "editorial_comment"
)

// Interaction is a comment on an article, public or editorial. Public
// comments may thread onto other public comments of the same article;
// editorial comments never have a parent.
type Interaction struct {
	ID              string          `json:"id" bson:"_id"`
	ArticleID       string          `json:"article_id" bson:"article_id"`
	ExternalUserID  string          `json:"external_user_id,omitempty" bson:"external_user_id,omitempty"`
	Content         string          `json:"content" bson:"content"`
	Type            InteractionType `json:"type" bson:"type"`
	ParentCommentID *string         `json:"parent_comment_id,omitempty" bson:"parent_comment_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" bson:"updated_at"`
}
