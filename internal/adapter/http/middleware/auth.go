package middleware

import (
	"net/http"
	"strings"

	"billed_service/internal/domain/entities"
	"billed_service/internal/usecase/interfaces"
	"billed_service/pkg"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

var (
	errMissingIdentity = pkg.NewDomainErrorSimple("MISSING_IDENTITY", "Missing X-User-Email header", http.StatusUnauthorized)
	errUnknownUser     = pkg.NewDomainErrorSimple("UNKNOWN_USER", "No user record for this identity", http.StatusUnauthorized)
	errUserLookup      = pkg.NewDomainErrorSimple("USER_LOOKUP_FAILED", "Could not resolve the user record", http.StatusInternalServerError)
)

// RequireUser resolves the authenticated-user record once per request and
// injects it into the gin context. Identity comes from the X-User-Email
// header; anything beyond that single read-only lookup (sessions, tokens) is
// outside this service.
func RequireUser(users interfaces.IUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.GetHeader("X-User-Email"))
		if email == "" {
			c.AbortWithStatusJSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(errUserLookup.HTTPStatus, errUserLookup.ToHTTPError())
			return
		}
		if user.Email == "" {
			c.AbortWithStatusJSON(errUnknownUser.HTTPStatus, errUnknownUser.ToHTTPError())
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user injected by RequireUser, or the zero User
// when the middleware did not run.
func CurrentUser(c *gin.Context) entities.User {
	if v, ok := c.Get(userContextKey); ok {
		if u, ok := v.(entities.User); ok {
			return u
		}
	}
	return entities.User{}
}

// SetCurrentUser injects a user directly, for handler tests that exercise a
// route without the full middleware chain.
func SetCurrentUser(c *gin.Context, u entities.User) {
	c.Set(userContextKey, u)
}
