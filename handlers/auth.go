package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	customerRepo "barberbook/database/repository/customer"
	"barberbook/middleware"
	"barberbook/models"
	"barberbook/services/identity"
	"barberbook/utils"
)

// AuthHandler covers the identity surface: admin-claim management, the
// LINE login bridge and the customer's own profile.
type AuthHandler struct {
	Identity  identity.IdentityService
	Customers customerRepo.CustomerRepository
}

func NewAuthHandler(idSvc identity.IdentityService, customers customerRepo.CustomerRepository) *AuthHandler {
	return &AuthHandler{Identity: idSvc, Customers: customers}
}

// CheckAdminHandler handles POST /auth/check-and-set-admin. The caller is
// already verified; this reconciles the email allowlist with the
// persisted claim and reports the result.
func (h *AuthHandler) CheckAdminHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	isAdmin, err := h.Identity.CheckAndSetAdmin(c.Request.Context(), ident.UID)
	if err != nil {
		utils.GetLogger().Error("admin check failed", zap.String("uid", ident.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "admin check failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

type setAdminClaimRequest struct {
	UID   string `json:"uid" binding:"required"`
	Admin bool   `json:"admin"`
}

// SetAdminClaimHandler handles POST /admin/set-admin-claim (admin).
func (h *AuthHandler) SetAdminClaimHandler(c *gin.Context) {
	var req setAdminClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Identity.SetAdminClaim(c.Request.Context(), req.UID, req.Admin); err != nil {
		utils.GetLogger().Error("failed to set admin claim", zap.String("uid", req.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set admin claim"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"uid": req.UID, "admin": req.Admin})
}

type lineLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LineLoginHandler handles POST /auth/line. It exchanges a LINE ID
// token for a custom sign-in token. Public by necessity: the caller is
// not signed in yet.
func (h *AuthHandler) LineLoginHandler(c *gin.Context) {
	var req lineLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	token, err := h.Identity.LineLogin(c.Request.Context(), req.IDToken)
	if err != nil {
		utils.GetLogger().Warn("line login rejected", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "line login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customToken": token})
}

// MeHandler handles GET /customers/me.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	cust, err := h.Customers.GetByID(c.Request.Context(), ident.UID)
	if err != nil {
		// First sign-in: no profile row yet. Return the bare identity.
		c.JSON(http.StatusOK, models.Customer{ID: ident.UID, Email: ident.Email})
		return
	}
	c.JSON(http.StatusOK, cust)
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateMeHandler handles PUT /customers/me.
func (h *AuthHandler) UpdateMeHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	cust := &models.Customer{ID: ident.UID, Email: ident.Email, Name: req.Name, Phone: req.Phone}
	// A field left blank keeps its stored value; the write never
	// blanks out a profile.
	if existing, err := h.Customers.GetByID(c.Request.Context(), ident.UID); err == nil {
		if cust.Name == "" {
			cust.Name = existing.Name
		}
		if cust.Phone == "" {
			cust.Phone = existing.Phone
		}
	}
	if err := h.Customers.Upsert(c.Request.Context(), cust); err != nil {
		utils.GetLogger().Error("failed to save profile", zap.String("uid", ident.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, cust)
}

type fcmTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// SetFCMTokenHandler handles PUT /customers/me/fcm-token. The token is used for
// appointment reminders.
func (h *AuthHandler) SetFCMTokenHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req fcmTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Customers.SetFCMToken(c.Request.Context(), ident.UID, req.Token); err != nil {
		utils.GetLogger().Error("failed to save fcm token", zap.String("uid", ident.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token saved"})
}
