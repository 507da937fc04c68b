package controller

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/models"
	"studio/utils"
)

// Login authenticates an admin against the pre-provisioned admin_users table
// and issues a signed bearer token.
func (e *Env) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Request Body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation Failed", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()

	var user models.AdminUser
	err := e.DB.QueryRowContext(ctx,
		`SELECT id, username, password_hash, email FROM admin_users WHERE username = ?`,
		req.Username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := utils.ComparePass(req.Password, user.PasswordHash); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.SignedToken(e.JWTSecret, user.ID, user.Username)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if _, err := e.DB.ExecContext(ctx,
		`UPDATE admin_users SET last_login = CURRENT_TIMESTAMP WHERE id = ?`, user.ID,
	); err != nil {
		// Login still succeeds; last_login is informational.
		log.Println(err)
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
