package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	configHTTP "central-gpt/internal/appconfig/delivery/http"
	authHTTP "central-gpt/internal/auth/delivery/http"
	authUC "central-gpt/internal/auth/usecase"
	chatHTTP "central-gpt/internal/chat/delivery/http"
	chatUC "central-gpt/internal/chat/usecase"
	"central-gpt/internal/middleware"
	testimonialHTTP "central-gpt/internal/testimonial/delivery/http"
	testimonialRepo "central-gpt/internal/testimonial/repository/postgre"
	testimonialUC "central-gpt/internal/testimonial/usecase"
	"central-gpt/internal/user"
	userHTTP "central-gpt/internal/user/delivery/http"
	userRepo "central-gpt/internal/user/repository/postgre"
	userUC "central-gpt/internal/user/usecase"
)

// Each domain follows the same steps: repository, use case, HTTP handler, routes.

// setupUserDomain registers /api/v1/admin/users and returns the use case auth depends on.
func (srv HTTPServer) setupUserDomain(ctx context.Context, admin *gin.RouterGroup, mw middleware.Middleware) user.UseCase {
	repo := userRepo.New(srv.postgresDB, srv.l)
	uc := userUC.New(repo, srv.l)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(admin, h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return uc
}

func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, users user.UseCase) {
	uc := authUC.New(srv.l, users, srv.jwtManager, srv.adminKey)
	h := authHTTP.New(srv.l, uc)
	authHTTP.RegisterRoutes(api, h, mw)

	if srv.adminKey == "" {
		srv.l.Warnf(ctx, "Admin key not configured, admin login disabled")
	}
	srv.l.Infof(ctx, "Auth domain registered")
}

func (srv HTTPServer) setupConfigDomain(ctx context.Context, api, admin *gin.RouterGroup, mw middleware.Middleware) {
	h := configHTTP.New(srv.l, srv.configUC, srv.rotationStatus)
	configHTTP.RegisterPublicRoutes(api, h)
	configHTTP.RegisterAdminRoutes(admin, h, mw)

	srv.l.Infof(ctx, "Config domain registered")
}

func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := chatUC.New(srv.l, srv.configUC, srv.generator, srv.fallbackFactory, srv.chatOptions)
	h := chatHTTP.New(srv.l, uc)
	chatHTTP.RegisterRoutes(api, h, mw)

	if srv.fallbackFactory == nil {
		srv.l.Infof(ctx, "Chat fallback provider disabled")
	}
	srv.l.Infof(ctx, "Chat domain registered")
}

func (srv HTTPServer) setupTestimonialDomain(ctx context.Context, api, admin *gin.RouterGroup, mw middleware.Middleware) {
	repo := testimonialRepo.New(srv.postgresDB, srv.l)
	uc := testimonialUC.New(repo, srv.l)
	h := testimonialHTTP.New(srv.l, uc)
	testimonialHTTP.RegisterPublicRoutes(api, h)
	testimonialHTTP.RegisterAdminRoutes(admin, h, mw)

	srv.l.Infof(ctx, "Testimonial domain registered")
}
