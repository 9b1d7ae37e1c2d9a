package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar registers routes on a group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// PublicRegistrar registers storefront routes
type PublicRegistrar interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// AdminRegistrar registers back-office routes behind admin auth
type AdminRegistrar interface {
	RegisterAdminRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration. Public routes live under
// /api/v1, admin routes under /api/v1/admin behind the supplied
// middleware chain.
type Router struct {
	engine          *gin.Engine
	apiVersion      string
	adminMiddleware []gin.HandlerFunc
	root            []RouteRegistrar
	public          []PublicRegistrar
	admin           []AdminRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithAdminMiddleware sets the middleware chain guarding admin routes
func WithAdminMiddleware(mw ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.adminMiddleware = mw
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterRoot adds a registrar mounted at the engine root
func (r *Router) RegisterRoot(registrar RouteRegistrar) *Router {
	r.root = append(r.root, registrar)
	return r
}

// RegisterPublic adds a storefront registrar
func (r *Router) RegisterPublic(registrar PublicRegistrar) *Router {
	r.public = append(r.public, registrar)
	return r
}

// RegisterAdmin adds a back-office registrar
func (r *Router) RegisterAdmin(registrar AdminRegistrar) *Router {
	r.admin = append(r.admin, registrar)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	rootGroup := r.engine.Group("")
	for _, registrar := range r.root {
		registrar.RegisterRoutes(rootGroup)
	}

	api := r.engine.Group("/api/" + r.apiVersion)
	for _, registrar := range r.public {
		registrar.RegisterPublicRoutes(api)
	}

	admin := api.Group("/admin", r.adminMiddleware...)
	for _, registrar := range r.admin {
		registrar.RegisterAdminRoutes(admin)
	}
}
