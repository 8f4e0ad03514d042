package testutil

import (
	"context"
	"net/http"

	id "comply/pkg/domain"
	"comply/pkg/requestcontext"
)

// WithUserID adds a user ID to the request context, as the auth middleware
// would for an authenticated request.
func WithUserID(req *http.Request, userID string) *http.Request {
	ctx := requestcontext.WithUserID(req.Context(), id.UserID(userID))
	return req.WithContext(ctx)
}

// WithAuth adds the caller's user and organization to the request context.
func WithAuth(req *http.Request, userID, orgID string) *http.Request {
	ctx := requestcontext.WithUserID(req.Context(), id.UserID(userID))
	ctx = requestcontext.WithOrganizationID(ctx, id.OrganizationID(orgID))
	return req.WithContext(ctx)
}

// WithContextValue adds an arbitrary key-value pair to the request context.
func WithContextValue(req *http.Request, key, value any) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), key, value))
}
