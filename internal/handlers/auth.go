package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linkloom/linkloom/db"
	"github.com/linkloom/linkloom/internal/auth"
	"github.com/linkloom/linkloom/internal/models"
	"github.com/linkloom/linkloom/internal/types"
	"github.com/linkloom/linkloom/internal/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// SignUp registers the user and opens a session. When the email is already
// registered it falls back to signing in with the supplied password.
func SignUp(ctx *gin.Context) {
	var body SignUpRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	var user models.User

	err := db.DB.Where("email = ?", body.Email).First(&user).Error

	switch {
	case err == nil:
		// Already registered, try to sign in instead.
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

		if err != nil {
			logrus.WithError(err).Error("Failed to hash password")
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Internal server error"})
			return
		}

		user = models.User{
			Name:         strings.SplitN(body.Email, "@", 2)[0],
			Email:        body.Email,
			PasswordHash: string(passwordHash),
		}

		if err := db.DB.Create(&user).Error; err != nil {
			logrus.WithError(err).Error("Failed to create user")
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
	default:
		logrus.WithError(err).Error("Database error when checking existing user")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		logrus.WithError(err).Error("Failed to generate JWT")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Internal server error"})
		return
	}

	setSessionCookie(ctx, token, 60*60*24*7)

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// Session returns the authenticated user for the current token.
func Session(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:    currentUser.ID,
			Name:  currentUser.Name,
			Email: currentUser.Email,
		},
	})
}

func SignOut(ctx *gin.Context) {
	setSessionCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}

func setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}
