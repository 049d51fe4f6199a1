package dto

import "time"

type PostCreateDTO struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Subject string `json:"subject"`
}

type ReplyCreateDTO struct {
	Content string `json:"content" binding:"required"`
}

type VoteRequestDTO struct {
	VoteType string `json:"vote_type" binding:"required,oneof=up down"`
}

type PostResponseDTO struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Subject    string    `json:"subject,omitempty"`
	AuthorID   uint      `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	Score      int       `json:"score"`
	MyVote     string    `json:"my_vote,omitempty"`
	ReplyCount int       `json:"reply_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ReplyResponseDTO struct {
	ID         uint      `json:"id"`
	PostID     uint      `json:"post_id"`
	Content    string    `json:"content"`
	AuthorID   uint      `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReplyPageDTO is one page of replies, oldest first.
type ReplyPageDTO struct {
	Replies    []ReplyResponseDTO `json:"replies"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalCount int                `json:"total_count"`
	HasMore    bool               `json:"has_more"`
}

// VoteStateDTO is the authoritative tally reloaded after a vote transition.
type VoteStateDTO struct {
	PostID    uint   `json:"post_id"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
	Score     int    `json:"score"`
	MyVote    string `json:"my_vote,omitempty"`
}

type UserPointsDTO struct {
	UserID uint `json:"user_id"`
	Points int  `json:"points"`
}
