package store

import (
	"local.dev/lennysocial/internal/models"
)

// CreatePost appends a post. Posts with neither content nor an attachment
// are silently dropped (ok == false), matching the observed behavior.
func (s *Store) CreatePost(author, content, fileURL string, fileType models.FileType) (models.Post, bool, error) {
	content = sanitize(content)
	if content == "" && fileURL == "" {
		return models.Post{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := models.Post{
		ID:        newPostID(),
		Author:    author,
		Content:   content,
		FileURL:   fileURL,
		FileType:  fileType,
		Timestamp: nowISO(),
	}
	s.doc.Posts = append(s.doc.Posts, p)
	if err := s.saveLocked(); err != nil {
		return models.Post{}, false, err
	}
	return p, true, nil
}

// DeletePost removes a post and cascades to its comments and likes in one
// critical section. Only the author, or a requester holding the admin role,
// may delete. The removed post is returned so the caller can clean up its
// stored media file.
func (s *Store) DeletePost(postID, requester string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.doc.Posts {
		if p.ID == postID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Post{}, ErrPostNotFound
	}
	post := s.doc.Posts[idx]

	if post.Author != requester {
		allowed := false
		for _, u := range s.doc.Users {
			if u.Username == requester && u.Role == models.RoleAdmin {
				allowed = true
				break
			}
		}
		if !allowed {
			return models.Post{}, ErrUnauthorized
		}
	}

	s.doc.Posts = append(s.doc.Posts[:idx], s.doc.Posts[idx+1:]...)

	comments := s.doc.Comments[:0]
	for _, c := range s.doc.Comments {
		if c.PostID != postID {
			comments = append(comments, c)
		}
	}
	s.doc.Comments = comments

	likes := s.doc.Likes[:0]
	for _, l := range s.doc.Likes {
		if l.PostID != postID {
			likes = append(likes, l)
		}
	}
	s.doc.Likes = likes

	if err := s.saveLocked(); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// ToggleLike removes the (post, user) like if present, else appends it.
// References are not validated on write, so a like may outlive its post
// only through this toggle, never through deletion (DeletePost cascades).
func (s *Store) ToggleLike(postID, username string) (liked bool, count int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, l := range s.doc.Likes {
		if l.PostID == postID && l.User == username {
			idx = i
			break
		}
	}
	if idx >= 0 {
		s.doc.Likes = append(s.doc.Likes[:idx], s.doc.Likes[idx+1:]...)
	} else {
		s.doc.Likes = append(s.doc.Likes, models.Like{PostID: postID, User: username})
		liked = true
	}
	for _, l := range s.doc.Likes {
		if l.PostID == postID {
			count++
		}
	}
	if err := s.saveLocked(); err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

// AddComment appends a comment; empty content is a silent no-op.
func (s *Store) AddComment(postID, username, content string) (models.Comment, bool, error) {
	content = sanitize(content)
	if content == "" {
		return models.Comment{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.Comment{
		PostID:    postID,
		User:      username,
		Content:   content,
		Timestamp: nowISO(),
	}
	s.doc.Comments = append(s.doc.Comments, c)
	if err := s.saveLocked(); err != nil {
		return models.Comment{}, false, err
	}
	return c, true, nil
}

// ListFeed returns posts in reverse insertion order, most recent first.
func (s *Store) ListFeed() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, 0, len(s.doc.Posts))
	for i := len(s.doc.Posts) - 1; i >= 0; i-- {
		out = append(out, s.doc.Posts[i])
	}
	return out
}

// DecoratedFeed is ListFeed with per-post like state for the viewer and the
// post's comments attached, one payload per post.
func (s *Store) DecoratedFeed(viewer string) []models.FeedPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FeedPost, 0, len(s.doc.Posts))
	for i := len(s.doc.Posts) - 1; i >= 0; i-- {
		out = append(out, s.decorateLocked(s.doc.Posts[i], viewer))
	}
	return out
}

// UserPosts returns one author's posts, most recent first, decorated for
// the viewer.
func (s *Store) UserPosts(author, viewer string) []models.FeedPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FeedPost, 0)
	for i := len(s.doc.Posts) - 1; i >= 0; i-- {
		if s.doc.Posts[i].Author == author {
			out = append(out, s.decorateLocked(s.doc.Posts[i], viewer))
		}
	}
	return out
}

func (s *Store) decorateLocked(p models.Post, viewer string) models.FeedPost {
	fp := models.FeedPost{Post: p, Comments: []models.Comment{}}
	for _, l := range s.doc.Likes {
		if l.PostID == p.ID {
			fp.LikeCount++
			if l.User == viewer {
				fp.LikedByMe = true
			}
		}
	}
	for _, c := range s.doc.Comments {
		if c.PostID == p.ID {
			fp.Comments = append(fp.Comments, c)
		}
	}
	return fp
}
