package models

import "time"

type ContributorRole string

const (
	RolePrincipalAuthor ContributorRole = "principal_author"
	RoleCoAuthor        ContributorRole = "co_author"
	RoleEditor          ContributorRole = "editor"
	RoleReviewer        ContributorRole = "reviewer"
	RoleCorrector       ContributorRole = "corrector"
)

type Contribution struct {
	ArticleID string          `json:"article_id" bson:"article_id"`
	Role      ContributorRole `json:"role" bson:"role"`
}

// Author bridges an external directory user to their local contribution
// history. Upserted on first contribution.
type Author struct {
	ID             string         `json:"id" bson:"_id"`
	ExternalUserID string         `json:"external_user_id" bson:"external_user_id"`
	ArticleIDs     []string       `json:"article_ids" bson:"article_ids"`
	Contributions  []Contribution `json:"contributions" bson:"contributions"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}

// HasArticle reports whether the author already has the article in their
// work history.
func (a *Author) HasArticle(articleID string) bool {
	for _, id := range a.ArticleIDs {
		if id == articleID {
			return true
		}
	}
	return false
}
