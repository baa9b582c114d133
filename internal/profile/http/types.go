package http

import "github.com/AwwwRyan/coverletter-gen/internal/profile/service"

type Handler struct {
	profiles *service.ProfileService
}

func New(profiles *service.ProfileService) *Handler {
	return &Handler{profiles: profiles}
}
