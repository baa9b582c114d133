package bootstrap

import (
	"github.com/gin-gonic/gin"

	httpapi "github.com/AwwwRyan/coverletter-gen/internal/api/http"
	"github.com/AwwwRyan/coverletter-gen/internal/api/http/middleware"
	"github.com/AwwwRyan/coverletter-gen/internal/api/http/routes"
	genservice "github.com/AwwwRyan/coverletter-gen/internal/generation/service"
	"github.com/AwwwRyan/coverletter-gen/internal/profile/repository"
	profileservice "github.com/AwwwRyan/coverletter-gen/internal/profile/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Store       repository.Store
	Generator   genservice.Generator
	Identity    gin.HandlerFunc
	RatePerMin  int
	RateBurst   int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORS(dep.CORSOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		Profiles:   profileservice.NewProfileService(dep.Store),
		Generation: genservice.NewGenerationService(dep.Generator),
		Identity:   dep.Identity,
		Limiter:    middleware.NewUserRateLimiter(dep.RatePerMin, dep.RateBurst),
	})

	return r
}
