package models

type CreateArticleRequest struct {
	Title     string      `json:"title" binding:"required,min=1,max=255"`
	Summary   string      `json:"summary" binding:"max=2000"`
	Type      ArticleType `json:"type" binding:"required"`
	Content   string      `json:"content" binding:"required"`
	AuthorIDs []string    `json:"author_ids"`
	Media     []MediaRef  `json:"media"`
}

type ReviseContentRequest struct {
	Content string     `json:"content" binding:"required"`
	Media   []MediaRef `json:"media"`
}

type UpdateArticleStatusRequest struct {
	Status ArticleStatus `json:"status" binding:"required"`
}

type AdvancePositionRequest struct {
	Position EditorialPosition `json:"position" binding:"required"`
}

type AddTeamMemberRequest struct {
	ExternalUserID string          `json:"external_user_id" binding:"required"`
	Role           ContributorRole `json:"role" binding:"required"`
}

type AssignVolumeRequest struct {
	VolumeID string `json:"volume_id" binding:"required"`
}

type CreateCommentRequest struct {
	Content         string  `json:"content" binding:"required,max=4000"`
	ExternalUserID  string  `json:"external_user_id"`
	ParentCommentID *string `json:"parent_comment_id"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=4000"`
}

type CreatePendingRequest struct {
	TargetEntityID string `json:"target_entity_id" binding:"required"`
	TargetType     string `json:"target_type" binding:"required"`
	CommandType    string `json:"command_type" binding:"required"`
	Parameters     string `json:"parameters" binding:"required"`
}

type ResolvePendingRequest struct {
	Approve bool `json:"approve"`
}

type CreateStaffRequest struct {
	ExternalUserID string   `json:"external_user_id" binding:"required"`
	Job            StaffJob `json:"job" binding:"required"`
}

type UpdateStaffRequest struct {
	Job      StaffJob `json:"job"`
	IsActive *bool    `json:"is_active"`
}

type CreateVolumeRequest struct {
	Edition int    `json:"edition" binding:"required"`
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Summary string `json:"summary" binding:"max=2000"`
	Month   int    `json:"month" binding:"required,min=1,max=12"`
	Year    int    `json:"year" binding:"required"`
}

type UpdateVolumeRequest struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Month   int    `json:"month"`
	Year    int    `json:"year"`
}

// ArticleListParams follows the platform's zero-based page convention.
type ArticleListParams struct {
	Status   string `form:"status"`
	Type     string `form:"type"`
	Title    string `form:"title"`
	AuthorID string `form:"author_id"`
	VolumeID string `form:"volume_id"`
	Page     int    `form:"page,default=0"`
	PageSize int    `form:"pageSize,default=10"`
}

type ListParams struct {
	Page     int `form:"page,default=0"`
	PageSize int `form:"pageSize,default=10"`
}

// DirectoryUser is what the external user service knows about a user.
type DirectoryUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}
