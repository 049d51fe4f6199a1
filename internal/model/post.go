package model

import (
	"time"
)

type Post struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Subject    string    `json:"subject" gorm:"index"`
	AuthorID   uint      `json:"author_id" gorm:"not null;index"`
	AuthorName string    `json:"author_name"`
	Replies    []Reply   `json:"replies,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Votes      []Vote    `json:"votes,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Reply struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	PostID     uint      `json:"post_id" gorm:"not null;index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	AuthorID   uint      `json:"author_id" gorm:"not null;index"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

const (
	VoteUp   = "up"
	VoteDown = "down"
)

// Vote holds at most one row per (post, user) pair; re-voting the same type
// deletes the row, voting the opposite type flips it in place.
type Vote struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	PostID    uint      `json:"post_id" gorm:"not null;uniqueIndex:idx_votes_post_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_votes_post_user"`
	VoteType  string    `json:"vote_type" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
