package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AwwwRyan/coverletter-gen/internal/api/http/middleware"
	genhttp "github.com/AwwwRyan/coverletter-gen/internal/generation/http"
	genservice "github.com/AwwwRyan/coverletter-gen/internal/generation/service"
	profilehttp "github.com/AwwwRyan/coverletter-gen/internal/profile/http"
	profileservice "github.com/AwwwRyan/coverletter-gen/internal/profile/service"
)

type V1Deps struct {
	Profiles   *profileservice.ProfileService
	Generation *genservice.GenerationService
	Identity   gin.HandlerFunc // FirebaseAuthMiddleware or DevIdentity
	Limiter    *middleware.UserRateLimiter
}

// RegisterV1 mounts the profile routes under /api/v1 and the generate
// route under both /api/v1 and the legacy /api prefix.
func RegisterV1(r *gin.Engine, dep V1Deps) {
	gen := genhttp.New(dep.Generation)
	var limit []gin.HandlerFunc
	if dep.Limiter != nil {
		limit = append(limit, dep.Limiter.Middleware())
	}

	legacy := r.Group("/api", dep.Identity)
	gen.Register(legacy, limit...)

	api := r.Group("/api/v1", dep.Identity)
	gen.Register(api, limit...)
	profilehttp.New(dep.Profiles).Register(api)
}
