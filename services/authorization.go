package services

import "revista-editorial-api/models"

// Permission predicates over entities the caller already loaded. Pure
// functions, no I/O.

// CanReadArticle: published pieces are world-readable, everything else
// only for the editorial team.
func CanReadArticle(article *models.Article, editorial *models.Editorial, actorID string) bool {
	if article == nil {
		return false
	}
	if article.Status == models.StatusPublished {
		return true
	}
	if editorial == nil || actorID == "" {
		return false
	}
	return editorial.Team.Contains(actorID)
}

func CanEditArticle(article *models.Article, editorial *models.Editorial, actorID string) bool {
	if article == nil || article.Status == models.StatusPublished {
		return false
	}
	return CanReadArticle(article, editorial, actorID)
}

// CanModifyStatus is role-based only: any active staff editor may change
// any article's status, team member or not.
func CanModifyStatus(staff *models.Staff) bool {
	if staff == nil || !staff.IsActive {
		return false
	}
	switch staff.Job {
	case models.JobJuniorEditor, models.JobChiefEditor, models.JobAdministrator:
		return true
	}
	return false
}

// CanCreateEditorialComment checks team membership only; there is no
// staff-role gate on internal comments.
func CanCreateEditorialComment(editorial *models.Editorial, actorID string) bool {
	if editorial == nil || actorID == "" {
		return false
	}
	return editorial.Team.Contains(actorID)
}

// Pending requests follow a separation-of-duties split: juniors file
// them, seniors resolve them. The sets are disjoint.

func CanCreatePending(staff *models.Staff) bool {
	return staff != nil && staff.IsActive && staff.Job == models.JobJuniorEditor
}

func CanResolvePending(staff *models.Staff) bool {
	if staff == nil || !staff.IsActive {
		return false
	}
	return staff.Job == models.JobChiefEditor || staff.Job == models.JobAdministrator
}

func CanManageStaff(staff *models.Staff) bool {
	return staff != nil && staff.IsActive && staff.Job == models.JobAdministrator
}

func CanManageVolume(staff *models.Staff) bool {
	if staff == nil || !staff.IsActive {
		return false
	}
	return staff.Job == models.JobChiefEditor || staff.Job == models.JobAdministrator
}
