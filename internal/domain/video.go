package domain

import "time"

// InstallationVideo is a how-to video shown in the app. VideoPath and
// Thumbnail are object-storage locations.
type InstallationVideo struct {
	VideoID     string    `json:"id" dynamodbav:"video_id"`
	Title       string    `json:"title" dynamodbav:"title"`
	Description string    `json:"description,omitempty" dynamodbav:"description"`
	ChannelName string    `json:"channelName,omitempty" dynamodbav:"channel_name"`
	VideoPath   string    `json:"videoPath" dynamodbav:"video_path"`
	Thumbnail   string    `json:"thumbnail,omitempty" dynamodbav:"thumbnail"`
	CreatedBy   string    `json:"createdBy,omitempty" dynamodbav:"created_by"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
}
