package admin

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/widyalab/landing-api/internal/middleware"
	"github.com/widyalab/landing-api/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, loginRateMW gin.HandlerFunc) {
	g := rg.Group("/admin")
	g.POST("/login", loginRateMW, h.login)

	a := g.Group("", authMW)
	a.GET("", h.list)
	a.GET("/:id", h.getByID)
	a.POST("", h.create)
	a.PATCH("/:id", h.update)
	a.PATCH("/:id/password", h.resetPassword)
	a.DELETE("/:id", h.delete)
}

type loginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil || dto.Username == "" || dto.Password == "" {
		response.Validation(c, "username and password are required")
		return
	}

	token, a, err := h.svc.Login(dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthenticated(c, err.Error())
			return
		}
		response.Internal(c, err)
		return
	}

	response.OK(c, gin.H{
		"message": "Login Successful",
		"token":   token,
		"admin":   gin.H{"id": a.ID, "username": a.Username},
	})
}

func (h *Handler) list(c *gin.Context) {
	admins, err := h.svc.List()
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.OK(c, admins)
}

func (h *Handler) getByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := h.svc.GetByID(id)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if a == nil {
		response.NotFound(c, "Admin not found")
		return
	}
	response.OK(c, a)
}

type createDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) create(c *gin.Context) {
	var dto createDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Validation(c, err.Error())
		return
	}

	a, err := h.svc.Create(middleware.Claims(c), dto.Username, dto.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, gin.H{"id": a.ID, "username": a.Username})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto UpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Validation(c, err.Error())
		return
	}

	a, err := h.svc.Update(middleware.Claims(c), id, dto)
	if err != nil {
		h.fail(c, err)
		return
	}
	if a == nil {
		response.NotFound(c, "Admin not found")
		return
	}
	response.OK(c, gin.H{"id": a.ID, "username": a.Username})
}

type resetPasswordDTO struct {
	NewPassword string `json:"new_password" binding:"required"`
}

func (h *Handler) resetPassword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto resetPasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Validation(c, err.Error())
		return
	}

	a, err := h.svc.ResetPassword(middleware.Claims(c), id, dto.NewPassword)
	if err != nil {
		h.fail(c, err)
		return
	}
	if a == nil {
		response.NotFound(c, "Admin not found")
		return
	}
	response.OK(c, gin.H{"message": "Password reset successfully"})
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := h.svc.Delete(middleware.Claims(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if a == nil {
		response.NotFound(c, "Admin not found")
		return
	}
	response.OK(c, gin.H{"message": "Admin deleted successfully"})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, ErrUsernameTaken):
		response.Conflict(c, err.Error())
	default:
		response.Internal(c, err)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Validation(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
