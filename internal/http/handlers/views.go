package handlers

import (
	"time"

	"github.com/tbourn/go-games-backend/internal/domain"
)

// timeLayout renders timestamps as ISO-8601 UTC with millisecond precision,
// e.g. 2021-01-18T10:00:20.514Z.
const timeLayout = "2006-01-02T15:04:05.000Z"

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

// CategoryView is the public shape of a category.
type CategoryView struct {
	Slug        string `json:"slug" example:"euro game"`
	Description string `json:"description" example:"Abstact games that involve little luck"`
}

// ReviewView is the public shape of a review. Field order is the key order
// of the serialized object.
type ReviewView struct {
	ReviewID     int64  `json:"review_id" example:"1"`
	Title        string `json:"title" example:"Agricola"`
	Designer     string `json:"designer" example:"Uwe Rosenberg"`
	Owner        string `json:"owner" example:"mallionaire"`
	ReviewImgURL string `json:"review_img_url" example:"https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"`
	ReviewBody   string `json:"review_body" example:"Farmyard fun!"`
	Category     string `json:"category" example:"euro game"`
	CreatedAt    string `json:"created_at" example:"2021-01-18T10:00:20.514Z"`
	Votes        int    `json:"votes" example:"1"`
}

// CommentView is the public shape of a comment.
type CommentView struct {
	CommentID int64  `json:"comment_id" example:"2"`
	Body      string `json:"body" example:"My dog loved this game too!"`
	Author    string `json:"author" example:"mallionaire"`
	ReviewID  int64  `json:"review_id" example:"3"`
	Votes     int    `json:"votes" example:"13"`
	CreatedAt string `json:"created_at" example:"2021-01-18T10:09:05.410Z"`
}

// UserView is the public shape of a user.
type UserView struct {
	Username  string `json:"username" example:"mallionaire"`
	Name      string `json:"name" example:"haz"`
	AvatarURL string `json:"avatar_url" example:"https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"`
}

// Response wrappers.
type (
	CategoriesResponse struct {
		Categories []CategoryView `json:"categories"`
	}
	CategoryResponse struct {
		Category CategoryView `json:"category"`
	}
	ReviewResponse struct {
		Review ReviewView `json:"review"`
	}
	CommentsResponse struct {
		Comments []CommentView `json:"comments"`
	}
	UsersResponse struct {
		Users []UserView `json:"users"`
	}
)

func categoryView(c domain.Category) CategoryView {
	return CategoryView{Slug: c.Slug, Description: c.Description}
}

func reviewView(r domain.Review) ReviewView {
	return ReviewView{
		ReviewID:     r.ReviewID,
		Title:        r.Title,
		Designer:     r.Designer,
		Owner:        r.Owner,
		ReviewImgURL: r.ReviewImgURL,
		ReviewBody:   r.ReviewBody,
		Category:     r.Category,
		CreatedAt:    formatTime(r.CreatedAt),
		Votes:        r.Votes,
	}
}

func commentView(c domain.Comment) CommentView {
	return CommentView{
		CommentID: c.CommentID,
		Body:      c.Body,
		Author:    c.Author,
		ReviewID:  c.ReviewID,
		Votes:     c.Votes,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func userView(u domain.User) UserView {
	return UserView{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL}
}

// mapViews projects items through fn. The result is never nil so empty
// collections serialize as [].
func mapViews[T, V any](items []T, fn func(T) V) []V {
	out := make([]V, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
