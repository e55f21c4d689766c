package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrSunstrike/Social-network-Yatube/internal/database"
	"github.com/MrSunstrike/Social-network-Yatube/internal/logs"
	"github.com/MrSunstrike/Social-network-Yatube/internal/user"
)

const cookieMaxAge = int(tokenLifetime / time.Second)

// Signup POST /auth/signup
func Signup(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
		return
	}

	if user.ExistsByEmail(input.Email) {
		c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
		return
	}
	if user.ExistsByUsername(input.Username) {
		c.JSON(http.StatusConflict, gin.H{"error": "username already in use"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	newUser := user.User{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		logs.LogJSON("ERROR", "Signup failed", map[string]interface{}{
			"error":    err.Error(),
			"route":    c.FullPath(),
			"username": input.Username,
		})
		return
	}

	logs.LogJSON("INFO", "User signed up", map[string]interface{}{
		"route":  c.FullPath(),
		"userID": newUser.ID,
	})
	c.JSON(http.StatusCreated, gin.H{"user": newUser})
}

// Login POST /auth/login
func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u, err := user.GetByUsername(input.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := signToken(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.SetCookie("access_token", token, cookieMaxAge, "/", "", false, true)
	logs.LogJSON("INFO", "User logged in", map[string]interface{}{
		"route":  c.FullPath(),
		"userID": u.ID,
	})
	c.JSON(http.StatusOK, gin.H{"token": token, "next": c.Query("next")})
}

// LoginPage GET /auth/login
// Landing target for the auth-required redirect; next carries the page the
// caller originally asked for.
func LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"detail": "authentication required",
		"next":   c.Query("next"),
	})
}

// Logout POST /auth/logout
func Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
