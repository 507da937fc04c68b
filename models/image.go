package models

import "time"

// Image represents one uploaded portfolio asset: the binary lives in the
// object store under PublicID, the metadata row in the images table.
type Image struct {
	ID             string    `json:"id"`
	PublicID       string    `json:"publicId"`
	ImageURL       string    `json:"imageUrl"`
	CustomerNumber string    `json:"customerNumber"`
	CustomerName   string    `json:"customerName"`
	Phone          string    `json:"phone"`
	Category       string    `json:"category"`
	Tags           []string  `json:"tags"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	ProjectID      string    `json:"projectId"`
	UploadedAt     time.Time `json:"uploadedAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UploadMetadata is the JSON part of the multipart upload request.
type UploadMetadata struct {
	CustomerNumber string   `json:"customerNumber" validate:"required"`
	CustomerName   string   `json:"customerName" validate:"required"`
	Category       string   `json:"category" validate:"required"`
	Phone          string   `json:"phone"`
	Tags           []string `json:"tags"`
	Description    string   `json:"description"`
	Status         string   `json:"status" validate:"omitempty,oneof=draft published"`
}

// ImageUpdate carries the mutable image fields. The update is a full
// overwrite: fields left empty by the caller are written as empty.
type ImageUpdate struct {
	CustomerName string   `json:"customerName"`
	Phone        string   `json:"phone"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	Description  string   `json:"description"`
	Status       string   `json:"status" validate:"omitempty,oneof=draft published"`
}

// Project is the derived aggregate of a customer's published images.
// It is never persisted; it is recomputed from the images table on every read.
type Project struct {
	ID               string              `json:"id"`
	CustomerNumber   string              `json:"customerNumber"`
	CustomerName     string              `json:"customerName"`
	Phone            string              `json:"phone"`
	Description      string              `json:"description"`
	Categories       []string            `json:"categories"`
	ImagesByCategory map[string][]string `json:"imagesByCategory"`
	AllImages        []string            `json:"allImages"`
	Year             string              `json:"year"`
}
