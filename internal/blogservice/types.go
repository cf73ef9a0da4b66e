package blogservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/bloglist/internal/userservice"
)

type Blog struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	// User is the owning user, set once at creation from the authenticated
	// caller and never reassigned.
	User      userservice.User `json:"user"`
	CreatedAt time.Time        `json:"-"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
}
