package controller

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"yuvasabha_backend/internals/configs"
	mModel "yuvasabha_backend/internals/features/organization/mandals/model"
	rModel "yuvasabha_backend/internals/features/users/role/model"
	uDTO "yuvasabha_backend/internals/features/users/user/dto"
	uModel "yuvasabha_backend/internals/features/users/user/model"
	helper "yuvasabha_backend/internals/helpers"
)

const (
	accessTokenTTL  = 1 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ===================== AUTH ===================== */

// POST /users/register
func (h *UserController) Register(c *fiber.Ctx) error {
	var req uDTO.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	username := strings.ToLower(strings.TrimSpace(req.UserUserName))

	var existing uModel.UserModel
	if err := h.DB.Where("user_user_name = ? OR user_email = ?", username, req.UserEmail).
		First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing users")
	}

	if req.UserRoleID != nil {
		var role rModel.RoleModel
		if err := h.DB.Where("role_id = ?", *req.UserRoleID).First(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid role")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch role")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	m := &uModel.UserModel{
		UserUserName: username,
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPassword: string(hashed),
		UserRoleID:   req.UserRoleID,
		UserIsActive: true,
	}
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Something went wrong while creating the user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created successfully", uDTO.NewUserResponse(m))
}

// POST /users/login
func (h *UserController) Login(c *fiber.Ctx) error {
	var req uDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user uModel.UserModel
	if err := h.DB.Where("user_user_name = ?", strings.ToLower(strings.TrimSpace(req.UserUserName))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User doesn't exist")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid user credentials")
	}

	return h.issueTokens(c, &user)
}

// POST /users/login-google
// Accepts a Google ID token; the account must already be registered with the
// same email. Google sign-in never creates staff accounts.
func (h *UserController) LoginGoogle(c *fiber.Ctx) error {
	var req uDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to decode ID token")
	}

	var user uModel.UserModel
	if err := h.DB.Where("user_email = ?", claimSet.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No account registered for this Google email")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return h.issueTokens(c, &user)
}

// POST /users/update-password
func (h *UserController) UpdatePassword(c *fiber.Ctx) error {
	var req uDTO.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user uModel.UserModel
	if err := h.DB.Where("user_user_name = ?", strings.ToLower(strings.TrimSpace(req.UserUserName))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserNewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := h.DB.Model(&user).Update("user_password", string(hashed)).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.Success(c, "Password updated successfully", nil)
}

// GET /users
func (h *UserController) List(c *fiber.Ctx) error {
	var rows []uModel.UserModel
	if err := h.DB.Select("user_id", "user_user_name", "user_name", "user_email", "user_role_id", "user_is_active", "user_created_at").
		Order("user_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch users")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No users found.")
	}

	items := make([]*uDTO.UserResponse, 0, len(rows))
	for i := range rows {
		items = append(items, uDTO.NewUserResponse(&rows[i]))
	}
	return helper.Success(c, "Users fetched successfully.", items)
}

/* ===================== ACCESSIBLE MANDALS ===================== */

// PUT /users/accessible-mandals/add
func (h *UserController) AddAccessibleMandals(c *fiber.Ctx) error {
	var req uDTO.AccessibleMandalsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.ensureUserExists(req.UserID); err != nil {
		return err
	}

	var mandalCount int64
	if err := h.DB.Model(&mModel.MandalModel{}).Where("mandal_id IN ?", req.MandalIDs).Count(&mandalCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check mandals")
	}
	if mandalCount != int64(len(req.MandalIDs)) {
		return fiber.NewError(fiber.StatusNotFound, "One or more mandals not found.")
	}

	var existing []uuid.UUID
	if err := h.DB.Model(&uModel.UserAccessibleMandal{}).
		Where("user_id = ?", req.UserID).
		Pluck("mandal_id", &existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch accessible mandals")
	}
	existingSet := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		existingSet[id] = struct{}{}
	}

	var grants []uModel.UserAccessibleMandal
	for _, mandalID := range req.MandalIDs {
		if _, ok := existingSet[mandalID]; ok {
			continue
		}
		grants = append(grants, uModel.UserAccessibleMandal{UserID: req.UserID, MandalID: mandalID})
	}
	if len(grants) > 0 {
		if err := h.DB.Create(&grants).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to add accessible mandals")
		}
	}

	return helper.Success(c, "Mandals added to accessible mandals.", fiber.Map{
		"user_id": req.UserID,
		"added":   len(grants),
	})
}

// PUT /users/accessible-mandals/remove
func (h *UserController) RemoveAccessibleMandals(c *fiber.Ctx) error {
	var req uDTO.AccessibleMandalsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.ensureUserExists(req.UserID); err != nil {
		return err
	}

	res := h.DB.Where("user_id = ? AND mandal_id IN ?", req.UserID, req.MandalIDs).
		Delete(&uModel.UserAccessibleMandal{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove accessible mandals")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "None of the mandals are found in user's accessible mandals.")
	}

	return helper.Success(c, "Mandals removed from accessible mandals.", fiber.Map{
		"user_id": req.UserID,
		"removed": res.RowsAffected,
	})
}

// POST /users/accessible-mandals
func (h *UserController) GetAccessibleMandals(c *fiber.Ctx) error {
	var req uDTO.AccessibleMandalsQuery
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.ensureUserExists(req.UserID); err != nil {
		return err
	}

	var mandals []mModel.MandalModel
	if err := h.DB.
		Joins("JOIN user_accessible_mandals uam ON uam.mandal_id = mandals.mandal_id").
		Where("uam.user_id = ?", req.UserID).
		Find(&mandals).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch accessible mandals")
	}

	return helper.Success(c, "Accessible mandals retrieved successfully.", mandals)
}

/* ===================== HELPERS ===================== */

func (h *UserController) ensureUserExists(userID uuid.UUID) error {
	var user uModel.UserModel
	if err := h.DB.Select("user_id").Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return nil
}

func (h *UserController) issueTokens(c *fiber.Ctx, user *uModel.UserModel) error {
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}

	roleName := ""
	if user.UserRoleID != nil {
		var role rModel.RoleModel
		if err := h.DB.Select("role_name").Where("role_id = ?", *user.UserRoleID).First(&role).Error; err == nil {
			roleName = role.RoleName
		}
	}

	now := time.Now()
	accessClaims := jwt.MapClaims{
		"typ":       "access",
		"user_id":   user.UserID.String(),
		"user_name": user.UserUserName,
		"role_name": roleName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	if user.UserRoleID != nil {
		accessClaims["role_id"] = user.UserRoleID.String()
	}
	refreshClaims := jwt.MapClaims{
		"typ":     "refresh",
		"user_id": user.UserID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(refreshTokenTTL).Unix(),
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create refresh token")
	}

	if err := h.DB.Model(user).Update("user_refresh_token", refreshToken).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	cookieOpts := fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		Expires:  now.Add(accessTokenTTL),
	}
	c.Cookie(&cookieOpts)
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		Expires:  now.Add(refreshTokenTTL),
	})

	return helper.Success(c, "User logged in successfully", &uDTO.LoginResponse{
		User:         uDTO.NewUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
