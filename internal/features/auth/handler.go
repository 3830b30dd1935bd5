package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/dropwatch/internal/middleware"
	session "github.com/xyz-asif/dropwatch/internal/pkg/jwt"
	"github.com/xyz-asif/dropwatch/internal/pkg/logger"
	"github.com/xyz-asif/dropwatch/internal/pkg/response"
)

// dashboardSubject names the shared passcode identity in issued tokens.
const dashboardSubject = "dashboard"

type Handler struct {
	passcode *Passcode
	jwtCfg   *session.Config
	log      *logger.Logger
}

func NewHandler(passcode *Passcode, jwtCfg *session.Config, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}
	return &Handler{passcode: passcode, jwtCfg: jwtCfg, log: log.Named("auth")}
}

// Login godoc
// @Summary Administrator login
// @Description Exchange the administrator passcode for a dashboard session token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Passcode"
// @Success 200 {object} response.SuccessResponse{data=LoginResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Router /admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if !h.passcode.Matches(req.Code) {
		h.log.Warn("failed admin login from %s", c.ClientIP())
		response.Unauthorized(c, "Invalid admin code", "INVALID_ADMIN_CODE")
		return
	}

	token, expires, err := session.GenerateTokenWithRole(dashboardSubject, middleware.RoleAdmin, h.jwtCfg)
	if err != nil {
		h.log.Error("failed to sign admin token: %v", err)
		response.InternalServerError(c, "Failed to create session", "TOKEN_ERROR")
		return
	}

	h.log.Info("admin login from %s", c.ClientIP())
	response.Success(c, LoginResponse{Token: token, ExpiresAt: expires})
}
