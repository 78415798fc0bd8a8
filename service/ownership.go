package service

import (
	"net/http"

	"github.com/RigelNana/acervo/apperror"
	"github.com/RigelNana/acervo/models"
)

// AuthorizeOwner allows a mutation only when the caller created the resource.
func AuthorizeOwner(actorID, ownerID int64, resource, action string) error {
	if actorID != ownerID {
		return apperror.Business(http.StatusForbidden, "Error: You are not authorized to %s this %s.", action, resource)
	}
	return nil
}

func owned(entity any) (models.Owned, error) {
	o, ok := entity.(models.Owned)
	if !ok {
		return nil, apperror.Conversion("Error: resource has no owner", nil)
	}
	return o, nil
}
