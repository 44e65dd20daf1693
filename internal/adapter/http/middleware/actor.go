package middleware

import (
	"net/http"
	"strings"

	"compras_xpto/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	RoleStaff = "staff"

	actorKey = "actor"
)

// Actor is the caller identity forwarded by the upstream gateway.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff
}

var (
	errMissingActor = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing caller identity", http.StatusUnauthorized)
	errStaffOnly    = pkg.NewDomainErrorSimple("FORBIDDEN", "Only procurement staff can perform this action", http.StatusForbidden)
)

// RequireActor resolves the caller from the identity headers and aborts with 401 when
// no user id is present.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := Actor{
			ID:   strings.TrimSpace(c.GetHeader(HeaderUserID)),
			Role: strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))),
		}
		if actor.ID == "" {
			c.AbortWithStatusJSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireStaff must run after RequireActor.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFrom(c).IsStaff() {
			c.AbortWithStatusJSON(errStaffOnly.HTTPStatus, errStaffOnly.ToHTTPError())
			return
		}
		c.Next()
	}
}

// ActorFrom returns the actor stored by RequireActor, or the zero Actor.
func ActorFrom(c *gin.Context) Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(Actor); ok {
			return a
		}
	}
	return Actor{}
}
