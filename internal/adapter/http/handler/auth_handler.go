package handler

import (
	"net/http"

	"github.com/Bhatia06/MEWallet/internal/adapter/http/dto"
	"github.com/Bhatia06/MEWallet/internal/adapter/http/middleware"
	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/pkg/apperror"
	"github.com/Bhatia06/MEWallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles identity endpoints for both merchants and users.
type AuthHandler struct {
	authSvc ports.AuthService
	otpSvc  ports.OTPService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService, otpSvc ports.OTPService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, otpSvc: otpSvc}
}

// RegisterMerchant handles POST /api/v1/merchants/register.
func (h *AuthHandler) RegisterMerchant(c *gin.Context) {
	var req dto.RegisterMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	merchant, err := h.authSvc.RegisterMerchant(c.Request.Context(), req.StoreName, req.Phone, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.RegisterMerchantResponse{
		MerchantID: merchant.ID,
		StoreName:  merchant.StoreName,
	})
}

// LoginMerchant handles POST /api/v1/merchants/login.
func (h *AuthHandler) LoginMerchant(c *gin.Context) {
	var req dto.MerchantLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.authSvc.LoginMerchant(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{Token: token, Expiry: expiry.Unix()})
}

// RegisterUser handles POST /api/v1/users/register.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	user, err := h.authSvc.RegisterUser(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.RegisterUserResponse{
		UserID: user.ID,
		Name:   user.Name,
	})
}

// LoginUser handles POST /api/v1/users/login.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req dto.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.authSvc.LoginUser(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{Token: token, Expiry: expiry.Unix()})
}

// DeleteAccount handles DELETE /api/v1/users/account/:user_id.
// Ownership is enforced by middleware; the service refuses while any link
// still carries a balance.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.authSvc.DeleteUserAccount(c.Request.Context(), c.Param("user_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// SendOTP handles POST /api/v1/otp/send. The code is delivered out of band;
// it is never echoed in the response.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if _, err := h.otpSvc.Generate(c.Request.Context(), req.Phone); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"sent": true})
}

// VerifyOTP handles POST /api/v1/otp/verify.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.otpSvc.Verify(c.Request.Context(), req.Phone, req.Code); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"verified": true})
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}

// callerID returns the authenticated subject or writes an invalid-token error.
func callerID(c *gin.Context) (string, bool) {
	sub, ok := middleware.Subject(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
	}
	return sub, ok
}
