package controller

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studio/models"
)

// GetProjectDetails rebuilds the project aggregate for a customer from the
// published rows sharing its projectId. Nothing is persisted; the projection
// is recomputed on every call.
func (e *Env) GetProjectDetails(c *gin.Context) {
	projectID := c.Param("projectId")

	rows, err := e.DB.QueryContext(c.Request.Context(),
		`SELECT `+imageColumns+` FROM images WHERE project_id = ? AND status = ? ORDER BY category, uploaded_at DESC`,
		projectID, "published")
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting project"})
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting project"})
		return
	}

	if len(images) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	// The first row (most recent upload of the first category) is the
	// representative source for the customer fields.
	first := images[0]

	imagesByCategory := make(map[string][]string)
	categories := make([]string, 0)
	allImages := make([]string, 0, len(images))
	for _, img := range images {
		if _, seen := imagesByCategory[img.Category]; !seen {
			categories = append(categories, img.Category)
		}
		imagesByCategory[img.Category] = append(imagesByCategory[img.Category], img.ImageURL)
		allImages = append(allImages, img.ImageURL)
	}

	description := first.Description
	if description == "" {
		description = fmt.Sprintf("Project for %s", first.CustomerName)
	}

	project := models.Project{
		ID:               projectID,
		CustomerNumber:   first.CustomerNumber,
		CustomerName:     first.CustomerName,
		Phone:            first.Phone,
		Description:      description,
		Categories:       categories,
		ImagesByCategory: imagesByCategory,
		AllImages:        allImages,
		Year:             strconv.Itoa(first.UploadedAt.Year()),
	}

	c.JSON(http.StatusOK, gin.H{"project": project, "images": images})
}
