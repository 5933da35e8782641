package store

import (
	"strings"

	"local.dev/lennysocial/internal/auth"
	"local.dev/lennysocial/internal/models"
)

const (
	defaultBio        = "New here!"
	defaultProfilePic = "default.png"
)

// CreateUser appends a new user with the standard defaults. The configured
// admin username registers with the admin role; everyone else is standard.
func (s *Store) CreateUser(username, password string) (models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.doc.Users {
		if u.Username == username {
			return models.User{}, ErrDuplicateUser
		}
	}
	role := models.RoleStandard
	if username == s.admin {
		role = models.RoleAdmin
	}
	u := models.User{
		Username:     username,
		PasswordHash: hash,
		Bio:          defaultBio,
		ProfilePic:   defaultProfilePic,
		IsVerified:   false,
		Role:         role,
	}
	s.doc.Users = append(s.doc.Users, u)
	if err := s.saveLocked(); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Authenticate returns the user whose credentials match, or ErrAuthFailed.
// Usernames compare case-sensitively.
func (s *Store) Authenticate(username, password string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.doc.Users {
		if u.Username == username && auth.CheckPassword(u.PasswordHash, password) {
			return u, nil
		}
	}
	return models.User{}, ErrAuthFailed
}

func (s *Store) GetUser(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.doc.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// UpdateProfile overwrites the user's bio in place; a non-empty profilePic
// replaces the stored picture filename.
func (s *Store) UpdateProfile(username, bio, profilePic string) (models.User, error) {
	bio = sanitize(bio)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Users {
		if s.doc.Users[i].Username != username {
			continue
		}
		s.doc.Users[i].Bio = bio
		if profilePic != "" {
			s.doc.Users[i].ProfilePic = profilePic
		}
		if err := s.saveLocked(); err != nil {
			return models.User{}, err
		}
		return s.doc.Users[i], nil
	}
	return models.User{}, ErrUserNotFound
}

// SearchUsers matches the query case-insensitively against usernames,
// preserving collection order. An empty query matches everyone.
func (s *Store) SearchUsers(query string) []models.User {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0)
	for _, u := range s.doc.Users {
		if strings.Contains(strings.ToLower(u.Username), q) {
			out = append(out, u)
		}
	}
	return out
}
