package domain

import "time"

// Feedback is a free-text note submitted by a user.
type Feedback struct {
	FeedbackID string    `json:"id" dynamodbav:"feedback_id"`
	UserID     string    `json:"userId" dynamodbav:"user_id"`
	Feedback   string    `json:"feedback" dynamodbav:"feedback"`
	CreatedAt  time.Time `json:"created" dynamodbav:"created_at"`
}

// FeedbackWithUser is the admin list view: the feedback row annotated with
// the submitter's display fields.
type FeedbackWithUser struct {
	Feedback
	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
}

type CreateFeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}
