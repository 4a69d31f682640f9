package api

import (
	"github.com/Domenick1991/airport/internal/auth"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/gin-gonic/gin"
)

// principal returns the authenticated caller. Routes are mounted behind
// auth.Authenticate, so a missing principal yields an anonymous non-staff one.
func principal(c *gin.Context) domain.Principal {
	p, _ := auth.PrincipalFrom(c)
	return p
}
