package jwttoken

import (
	id "comply/pkg/domain"
	dErrors "comply/pkg/domain-errors"
	authmw "comply/pkg/platform/middleware/auth"
)

// ToMiddlewareClaims checks that both subject claims are well-formed ids.
// The organization id ends up in paths and cache keys, so a token carrying
// separators or other stray characters is rejected here.
func ToMiddlewareClaims(claims *Claims) (*authmw.JWTClaims, error) {
	userID, err := id.ParseUserID(claims.UserID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "token has a malformed user id")
	}
	orgID, err := id.ParseOrganizationID(claims.OrganizationID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "token has a malformed organization id")
	}
	return &authmw.JWTClaims{
		UserID:         userID.String(),
		OrganizationID: orgID.String(),
	}, nil
}

// JWTServiceAdapter satisfies authmw.JWTValidator.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*authmw.JWTClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return ToMiddlewareClaims(claims)
}
