package service

import (
	"socialconnect/internal/apperr"
)

// AuthorizeOwner is the owner-only mutation guard: the acting identity must
// equal the resource's author. Pure check, no state.
func AuthorizeOwner(resourceAuthorID, actingUserID int64) error {
	if resourceAuthorID != actingUserID {
		return apperr.Unauthorizedf("user %d is not the owner of this resource", actingUserID)
	}
	return nil
}
