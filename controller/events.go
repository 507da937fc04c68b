package controller

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studio/models"
)

const eventColumns = `id, title, message, image_url, scheduled_date, scheduled_time, active, created_at, updated_at`

func scanEvent(row rowScanner) (models.Event, error) {
	var ev models.Event
	err := row.Scan(&ev.ID, &ev.Title, &ev.Message, &ev.ImageURL,
		&ev.ScheduledDate, &ev.ScheduledTime, &ev.Active, &ev.CreatedAt, &ev.UpdatedAt)
	return ev, err
}

// sweepExpiredEvents deletes every event scheduled strictly before today.
// Both event listings run it first, so listing events is deliberately not
// idempotent with respect to stored state.
func (e *Env) sweepExpiredEvents(ctx context.Context) error {
	today := time.Now().Format("2006-01-02")
	_, err := e.DB.ExecContext(ctx, `DELETE FROM scheduled_events WHERE scheduled_date < ?`, today)
	return err
}

func (e *Env) CreateEvent(c *gin.Context) {
	var req models.EventCreate
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
	eventID := uuid.New().String()

	_, err := e.DB.ExecContext(ctx,
		`INSERT INTO scheduled_events (id, title, message, image_url, scheduled_date, scheduled_time, active)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		eventID, req.Title, req.Message, req.ImageURL, req.ScheduledDate, req.ScheduledTime, req.Active)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating event"})
		return
	}

	event, err := scanEvent(e.DB.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM scheduled_events WHERE id = ?`, eventID))
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

// GetEvents is the admin listing: sweep expired rows, then return the rest,
// most recent date first.
func (e *Env) GetEvents(c *gin.Context) {
	ctx := c.Request.Context()
	if err := e.sweepExpiredEvents(ctx); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cleaning up events"})
		return
	}

	e.listEvents(c, `SELECT `+eventColumns+` FROM scheduled_events ORDER BY scheduled_date DESC, scheduled_time DESC`)
}

// GetActiveEvents is the public popup feed: sweep, then return active events
// dated today or later, soonest first. Time-of-day proximity is the caller's
// concern.
func (e *Env) GetActiveEvents(c *gin.Context) {
	ctx := c.Request.Context()
	if err := e.sweepExpiredEvents(ctx); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cleaning up events"})
		return
	}

	today := time.Now().Format("2006-01-02")
	e.listEvents(c,
		`SELECT `+eventColumns+` FROM scheduled_events WHERE active = 1 AND scheduled_date >= ? ORDER BY scheduled_date, scheduled_time`,
		today)
}

func (e *Env) listEvents(c *gin.Context, query string, args ...any) {
	rows, err := e.DB.QueryContext(c.Request.Context(), query, args...)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting events"})
		return
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error parsing events"})
			return
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// UpdateEvent applies a sparse patch: only fields present in the body are
// rewritten (contrast with UpdateImage's full overwrite).
func (e *Env) UpdateEvent(c *gin.Context) {
	id := c.Param("id")

	var updates models.EventUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Request Body"})
		return
	}

	fields := make([]string, 0)
	args := make([]any, 0)

	if updates.Title != nil {
		fields = append(fields, "title = ?")
		args = append(args, *updates.Title)
	}
	if updates.Message != nil {
		fields = append(fields, "message = ?")
		args = append(args, *updates.Message)
	}
	if updates.ImageURL != nil {
		fields = append(fields, "image_url = ?")
		args = append(args, *updates.ImageURL)
	}
	if updates.ScheduledDate != nil {
		fields = append(fields, "scheduled_date = ?")
		args = append(args, *updates.ScheduledDate)
	}
	if updates.ScheduledTime != nil {
		fields = append(fields, "scheduled_time = ?")
		args = append(args, *updates.ScheduledTime)
	}
	if updates.Active != nil {
		fields = append(fields, "active = ?")
		args = append(args, *updates.Active)
	}

	fields = append(fields, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	_, err := e.DB.ExecContext(c.Request.Context(),
		`UPDATE scheduled_events SET `+strings.Join(fields, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteEvent deletes by id unconditionally; an absent id is a no-op.
func (e *Env) DeleteEvent(c *gin.Context) {
	id := c.Param("id")

	_, err := e.DB.ExecContext(c.Request.Context(), `DELETE FROM scheduled_events WHERE id = ?`, id)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
