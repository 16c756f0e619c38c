package models

import "time"

// Comment is a single comment on a picture.
type Comment struct {
	CommentID string    `json:"commentId"`
	PictureID string    `json:"pictureId"`
	UserUUID  string    `json:"userUUID"`
	Username  string    `json:"username"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
