package models

import (
	"time"
)

type User struct {
	ID                     int64      `json:"id" db:"id"`
	Username               string     `json:"username" db:"username"`
	Email                  string     `json:"email" db:"email"`
	PasswordHash           string     `json:"-" db:"password_hash"`
	FirstName              string     `json:"firstName" db:"first_name"`
	LastName               string     `json:"lastName" db:"last_name"`
	Bio                    string     `json:"bio" db:"bio"`
	ProfilePicture         string     `json:"profilePicture" db:"profile_picture"`
	RefreshToken           *string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime *time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time  `json:"updatedAt" db:"updated_at"`
}

type Post struct {
	ID        int64     `json:"id" db:"id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type Like struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Follow is a directed edge: the follower receives the followee's posts in
// their feed.
type Follow struct {
	ID         int64     `json:"id" db:"id"`
	FollowerID int64     `json:"followerId" db:"follower_id"`
	FolloweeID int64     `json:"followeeId" db:"followee_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// PostView is a post annotated for a specific viewer. IsLikedByViewer is
// always false when there is no viewer.
type PostView struct {
	ID              int64     `json:"id"`
	Content         string    `json:"content"`
	Author          User      `json:"author"`
	LikeCount       int64     `json:"likeCount"`
	IsLikedByViewer bool      `json:"isLikedByViewer"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CommentView is a comment with its author attached.
type CommentView struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	Content   string    `json:"content"`
	Author    User      `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
