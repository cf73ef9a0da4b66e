package userservice

import (
	"database/sql"
	"time"
)

var (
	AnonymousUser = User{}
)

type UserService struct {
	m      *DBModel
	secret string
}

type DBModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Password  Password  `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Password keeps the plaintext around only for the lifetime of the request
// that supplied it. Only the hash is ever persisted.
type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}
