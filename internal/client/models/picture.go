package models

import "time"

// Picture describes an uploaded photo. List endpoints return pictures with
// only the thumbnail populated; ImageData (full resolution) is present only
// in single-picture responses and is fetched lazily.
//
// Thumbnail and ImageData are base64-encoded image bytes.
type Picture struct {
	PictureID   string    `json:"pictureId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	FileSize    int64     `json:"fileSize"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	ImageData   string    `json:"imageData,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
	OwnerUUID   string    `json:"ownerUUID"`
	Author      string    `json:"author,omitempty"`
	Description string    `json:"description,omitempty"`
}
