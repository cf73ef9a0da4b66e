package userservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sushihentaime/bloglist/internal/common"
)

var (
	ErrAuthenticationFailure = fmt.Errorf("invalid username or password")
)

func NewUserService(db *sql.DB, secret string) *UserService {
	return &UserService{
		m:      newUserModel(db),
		secret: secret,
	}
}

// RegisterUser creates a new user account. The raw password is hashed before
// anything touches the database and is never stored.
func (s *UserService) RegisterUser(ctx context.Context, username, name, password string) (*User, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Username: username,
		Name:     name,
		Password: Password{Plain: password},
	}

	err := u.Password.set(u.Password.Plain)
	if err != nil {
		return nil, err
	}

	err = s.m.insertUser(ctx, &u)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// LoginUser verifies the credentials and issues a signed token on success.
// Unknown usernames and wrong passwords both map to ErrAuthenticationFailure
// so the response does not reveal which of the two was wrong.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (string, *User, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validatePassword(v, password)
	if !v.Valid() {
		return "", nil, v.ValidationError()
	}

	user, err := s.m.getUserByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return "", nil, ErrAuthenticationFailure
		default:
			return "", nil, err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, ErrAuthenticationFailure
	}

	token, err := issueToken(s.secret, user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// GetUserByToken verifies the signed token and resolves the embedded user id
// to a live user record.
func (s *UserService) GetUserByToken(ctx context.Context, token string) (*User, error) {
	claims, err := verifyToken(s.secret, token)
	if err != nil {
		return nil, err
	}

	id, err := claims.userID()
	if err != nil {
		return nil, err
	}

	return s.m.getUserByID(ctx, id)
}

// IssueToken signs a fresh token for the user. Exposed for the test harness.
func (s *UserService) IssueToken(u *User) (string, error) {
	return issueToken(s.secret, u)
}

func (u *User) IsAnonymous() bool {
	return u == &AnonymousUser
}
