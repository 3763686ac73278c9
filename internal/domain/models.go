// Package domain defines the persistence models for categories, users,
// reviews, and comments. These types are mapped with GORM and form the core
// data layer of the board-game reviews API.
//
// The models carry storage concerns only (columns, keys, constraints). The
// public JSON shapes live in the HTTP layer and are projected from these
// types, so a column added here never leaks into a response by accident.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// DefaultReviewImgURL is stored when a review is created without an image.
const DefaultReviewImgURL = "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"

// Category is a board-game genre addressed by its slug.
//
// Fields:
//   - Slug: unique, human-readable primary key (e.g. "euro game").
//   - Description: free-text summary of the category.
type Category struct {
	Slug        string `gorm:"type:varchar(255);primaryKey"`
	Description string `gorm:"type:text;not null"`
}

// TableName returns the database table name for Category.
func (Category) TableName() string { return "categories" }

// User is a registered reviewer or commenter, referenced by username.
type User struct {
	Username  string `gorm:"type:varchar(255);primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	AvatarURL string `gorm:"column:avatar_url;type:text"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Review is a user's write-up of a single board game.
//
// Fields:
//   - ReviewID: positive integer primary key.
//   - Owner: username of the author (FK users.username).
//   - Category: slug of the reviewed game's category (FK categories.slug).
//   - ReviewImgURL: image link; DefaultReviewImgURL when absent at creation.
//   - Votes: running vote tally; 0 when absent at creation.
//   - CreatedAt: creation timestamp, stored in UTC.
type Review struct {
	ReviewID     int64     `gorm:"column:review_id;primaryKey;autoIncrement"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Designer     string    `gorm:"type:varchar(255)"`
	Owner        string    `gorm:"type:varchar(255);not null;index"`
	ReviewImgURL string    `gorm:"column:review_img_url;type:text;not null"`
	ReviewBody   string    `gorm:"column:review_body;type:text;not null"`
	Category     string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	Votes        int       `gorm:"not null;default:0"`

	// Author and Genre are belongs-to associations that give the schema its
	// foreign keys; they are never loaded on the read path.
	Author User     `gorm:"foreignKey:Owner;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Genre  Category `gorm:"foreignKey:Category;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	// Comments is declared from this side: Comment also has a ReviewID
	// field, so a belongs-to on Comment would be parsed as has-one.
	Comments []Comment `gorm:"foreignKey:ReviewID;references:ReviewID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Review.
func (Review) TableName() string { return "reviews" }

// BeforeCreate fills storage defaults that GORM cannot express as column
// defaults across both SQLite and Postgres.
func (r *Review) BeforeCreate(*gorm.DB) error {
	if r.ReviewImgURL == "" {
		r.ReviewImgURL = DefaultReviewImgURL
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}

// Comment is a remark left by a user on a review.
type Comment struct {
	CommentID int64     `gorm:"column:comment_id;primaryKey;autoIncrement"`
	Body      string    `gorm:"type:text;not null"`
	Author    string    `gorm:"type:varchar(255);not null;index"`
	ReviewID  int64     `gorm:"column:review_id;not null;index:idx_review_comments,priority:1"`
	Votes     int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_review_comments,priority:2"`

	// Comments are cascade-deleted with their author; the review side is
	// declared on Review.Comments.
	User User `gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

// BeforeCreate stamps CreatedAt when the caller left it unset.
func (c *Comment) BeforeCreate(*gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return nil
}
