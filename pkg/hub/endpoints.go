package hub

import (
	"github.com/certhub/certhub/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func (s *Server) SetupEndpoints(r *gin.Engine) {
	s.engine = r

	r.POST("/v1/auth/register", s.register)
	r.POST("/v1/auth/login", s.login)
	r.POST("/v1/auth/logout", s.logout)

	// Public verification lookup; no session required.
	r.GET("/v1/verify/:number", s.verify)

	authed := r.Group("/", middleware.RequireSession(s.sessions))
	authed.GET("/v1/auth/me", s.me)
	authed.PATCH("/v1/auth/profile", s.updateProfile)
	authed.GET("/v1/certificates", s.listOwnCertificates)

	admin := r.Group("/", middleware.RequireAdmin(s.sessions))
	admin.POST("/v1/events", s.createEvent)
	admin.GET("/v1/events", s.listEvents)
	admin.PATCH("/v1/events/:id", s.updateEvent)
	admin.DELETE("/v1/events/:id", s.deleteEvent)
	admin.POST("/v1/certificates", s.issueCertificate)
	admin.PATCH("/v1/certificates/:id/delivery", s.updateDelivery)
	admin.GET("/v1/admin/certificates", s.listAllCertificates)
	admin.GET("/v1/admin/accounts", s.listAccounts)
	admin.GET("/v1/stats", s.stats)
}
