package service

import "cinehub/internal/http-api/models"

// Identity is the authenticated caller, as extracted from the access token
// by the auth middleware.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// CanModify reports whether the caller may mutate a resource owned by
// ownerID: admins always, everyone else only their own.
func CanModify(caller Identity, ownerID int64) bool {
	return caller.IsAdmin() || caller.UserID == ownerID
}
