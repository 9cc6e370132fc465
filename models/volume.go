package models

import "time"

// Volume is a published magazine issue.
type Volume struct {
	ID         string    `json:"id" bson:"_id"`
	Edition    int       `json:"edition" bson:"edition"`
	Title      string    `json:"title" bson:"title"`
	Summary    string    `json:"summary" bson:"summary"`
	Month      int       `json:"month" bson:"month"`
	Year       int       `json:"year" bson:"year"`
	ArticleIDs []string  `json:"article_ids" bson:"article_ids"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
