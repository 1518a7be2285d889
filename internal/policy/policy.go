// Package policy holds the pure access decisions for lessons. No I/O: the
// caller passes a resource snapshot and an optional caller identity, and gets
// back nil or one of the deny errors from pkg/utils.
package policy

import (
	"lessonhub/pkg/utils"
)

type Caller struct {
	Email     string
	Role      string
	IsPremium bool
}

// Resource is the subset of a lesson the decisions depend on.
type Resource struct {
	CreatorEmail string
	Visibility   string // "public" | "private"
	AccessLevel  string // "free" | "premium"
}

// CanView gates reads. Visibility is evaluated strictly before the access
// tier: a private premium lesson denied for visibility reports
// ErrPrivateContent, never ErrPremiumRequired. The tier check deliberately
// does not exempt the creator or admins — a non-premium creator is denied
// their own premium lesson.
func CanView(res Resource, caller *Caller) error {
	if res.Visibility == "private" {
		if caller == nil {
			return utils.ErrPrivateContent
		}
		if caller.Email != res.CreatorEmail && caller.Role != "admin" {
			return utils.ErrPrivateContent
		}
	}
	if res.AccessLevel == "premium" {
		if caller == nil || !caller.IsPremium {
			return utils.ErrPremiumRequired
		}
	}
	return nil
}

// CanMutate gates update, delete, and moderation: creator or admin only.
func CanMutate(res Resource, caller Caller) error {
	if caller.Email == res.CreatorEmail || caller.Role == "admin" {
		return nil
	}
	return utils.ErrNotOwner
}

// CanAssignAccessLevel gates setting the premium tier on a new or updated
// lesson: only premium callers may publish premium content.
func CanAssignAccessLevel(level string, caller Caller) error {
	if level == "premium" && !caller.IsPremium {
		return utils.ErrPremiumRequired
	}
	return nil
}
