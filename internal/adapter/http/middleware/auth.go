package middleware

import (
	"net/http"
	"os"
	"strings"

	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorContextKey = "actor"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// identityClaims mirrors the token issued by the identity provider. The role
// travels in a custom claim next to the registered ones.
type identityClaims struct {
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// RequireActor resolves the caller from the Authorization bearer token and
// stores the resulting Actor in the request context.
//
// When JWT_SECRET is set the signature is verified (HMAC). Without it the
// token is only decoded, for deployments where an API gateway in front has
// already validated it.
func RequireActor() gin.HandlerFunc {
	secret := os.Getenv("JWT_SECRET")

	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims := &identityClaims{}
		var err error
		if secret != "" {
			_, err = jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
		} else {
			_, _, err = jwt.NewParser().ParseUnverified(raw, claims)
		}
		if err != nil || claims.Subject == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(actorContextKey, entities.Actor{
			ID:   claims.Subject,
			Role: entities.UserRole(claims.UserType),
		})
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// ActorFromContext returns the Actor stored by RequireActor.
func ActorFromContext(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

// SetActor injects an Actor directly; test helper for handler tests that do
// not go through RequireActor.
func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorContextKey, actor)
}
