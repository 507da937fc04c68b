package controller

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studio/models"
	"studio/storage"
)

const imageColumns = `id, public_id, image_url, customer_number, customer_name, phone, category, tags, description, status, project_id, uploaded_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanImage(row rowScanner) (models.Image, error) {
	var img models.Image
	var tags string
	err := row.Scan(&img.ID, &img.PublicID, &img.ImageURL, &img.CustomerNumber,
		&img.CustomerName, &img.Phone, &img.Category, &tags, &img.Description,
		&img.Status, &img.ProjectID, &img.UploadedAt, &img.UpdatedAt)
	if err != nil {
		return img, err
	}
	img.Tags = parseTags(tags)
	return img, nil
}

func (e *Env) getImage(ctx context.Context, id string) (models.Image, error) {
	row := e.DB.QueryRowContext(ctx, `SELECT `+imageColumns+` FROM images WHERE id = ?`, id)
	return scanImage(row)
}

// UploadImage accepts a multipart request with a binary "file" part and a
// JSON "metadata" part, writes the blob under a derived key, then records the
// catalog row. The row is only inserted after the blob write succeeds, so a
// catalog row never points at a missing blob; a blob orphaned by a failed
// insert is accepted.
func (e *Env) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	metadataString := c.PostForm("metadata")
	if metadataString == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No metadata provided"})
		return
	}

	var metadata models.UploadMetadata
	if err := json.Unmarshal([]byte(metadataString), &metadata); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid metadata format", "details": err.Error()})
		return
	}
	if err := validate.Struct(metadata); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required fields: customerNumber, customerName, or category",
			"details": err.Error(),
		})
		return
	}

	status := metadata.Status
	if status == "" {
		status = "draft"
	}

	key := storage.BuildObjectKey(metadata.CustomerNumber, metadata.CustomerName, metadata.Category, file.Filename)
	imageURL := storage.PublicURL(e.BucketURL, key)

	src, err := file.Open()
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "details": err.Error()})
		return
	}
	defer src.Close()

	ctx := c.Request.Context()
	if err := e.Bucket.Put(ctx, key, src, file.Header.Get("Content-Type")); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading image"})
		return
	}

	projectID := storage.ProjectID(metadata.CustomerNumber, metadata.CustomerName)
	imageID := uuid.New().String()

	_, err = e.DB.ExecContext(ctx,
		`INSERT INTO images (id, public_id, image_url, customer_number, customer_name, phone, category, tags, description, status, project_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		imageID, key, imageURL, metadata.CustomerNumber, metadata.CustomerName,
		metadata.Phone, metadata.Category, marshalTags(metadata.Tags),
		metadata.Description, status, projectID)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving image metadata"})
		return
	}

	image, err := e.getImage(ctx, imageID)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "image": image})
}

// GetImages lists catalog rows, newest first. status defaults to published;
// the category filter is disabled by the "All" sentinel.
func (e *Env) GetImages(c *gin.Context) {
	status := c.DefaultQuery("status", "published")
	category := c.Query("category")

	query := `SELECT ` + imageColumns + ` FROM images WHERE status = ?`
	args := []any{status}

	if category != "" && category != "All" {
		query += ` AND category = ?`
		args = append(args, category)
	}

	query += ` ORDER BY uploaded_at DESC`

	rows, err := e.DB.QueryContext(c.Request.Context(), query, args...)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting images"})
		return
	}
	defer rows.Close()

	images := make([]models.Image, 0)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error parsing images"})
			return
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting images"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

// UpdateImage overwrites the mutable fields of a catalog row. Fields the
// caller leaves out are written as empty; this is a replace, not a patch.
func (e *Env) UpdateImage(c *gin.Context) {
	id := c.Param("id")

	var updates models.ImageUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Request Body"})
		return
	}
	if err := validate.Struct(updates); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation Failed", "details": err.Error()})
		return
	}

	_, err := e.DB.ExecContext(c.Request.Context(),
		`UPDATE images
		 SET customer_name = ?, phone = ?, category = ?, tags = ?, description = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		updates.CustomerName, updates.Phone, updates.Category,
		marshalTags(updates.Tags), updates.Description, updates.Status, id)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteImage removes the backing blob first, then the catalog row, matching
// the create ordering so a row never outlives its blob.
func (e *Env) DeleteImage(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var key string
	err := e.DB.QueryRowContext(ctx, `SELECT public_id FROM images WHERE id = ?`, id).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := e.Bucket.Delete(ctx, key); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting image"})
		return
	}

	if _, err := e.DB.ExecContext(ctx, `DELETE FROM images WHERE id = ?`, id); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
