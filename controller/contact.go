package controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studio/models"
)

const contactColumns = `id, name, email, phone, project_type, budget, timeline, message, read_status, submitted_at`

func scanContact(row rowScanner) (models.Contact, error) {
	var sub models.Contact
	err := row.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Phone, &sub.ProjectType,
		&sub.Budget, &sub.Timeline, &sub.Message, &sub.ReadStatus, &sub.SubmittedAt)
	return sub, err
}

// SubmitContact stores an inquiry from the public contact form.
func (e *Env) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
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

	contactID := uuid.New().String()

	_, err := e.DB.ExecContext(c.Request.Context(),
		`INSERT INTO contact_submissions (id, name, email, phone, project_type, budget, timeline, message, read_status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0)`,
		contactID, req.Name, req.Email, req.Phone, req.ProjectType, req.Budget, req.Timeline, req.Message)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "contactId": contactID})
}

// GetContactSubmissions lists the inbox, newest first. The optional read
// query parameter filters on read status.
func (e *Env) GetContactSubmissions(c *gin.Context) {
	query := `SELECT ` + contactColumns + ` FROM contact_submissions`
	args := make([]any, 0)

	if readParam := c.Query("read"); readParam != "" {
		read, err := strconv.ParseBool(readParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid read filter"})
			return
		}
		query += ` WHERE read_status = ?`
		args = append(args, read)
	}

	query += ` ORDER BY submitted_at DESC`

	rows, err := e.DB.QueryContext(c.Request.Context(), query, args...)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting submissions"})
		return
	}
	defer rows.Close()

	submissions := make([]models.Contact, 0)
	for rows.Next() {
		sub, err := scanContact(rows)
		if err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error parsing submissions"})
			return
		}
		submissions = append(submissions, sub)
	}
	if err := rows.Err(); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

// MarkContactRead sets read_status unconditionally; marking an already-read
// submission again is a harmless no-op.
func (e *Env) MarkContactRead(c *gin.Context) {
	id := c.Param("id")

	_, err := e.DB.ExecContext(c.Request.Context(),
		`UPDATE contact_submissions SET read_status = 1 WHERE id = ?`, id)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
