package store

import (
	"local.dev/lennysocial/internal/models"
)

// ToggleFollow removes the (follower, following) edge if present, else
// appends it. Self-follows are not guarded against, matching the observed
// behavior.
func (s *Store) ToggleFollow(follower, following string) (nowFollowing bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, f := range s.doc.Follows {
		if f.Follower == follower && f.Following == following {
			idx = i
			break
		}
	}
	if idx >= 0 {
		s.doc.Follows = append(s.doc.Follows[:idx], s.doc.Follows[idx+1:]...)
	} else {
		s.doc.Follows = append(s.doc.Follows, models.Follow{Follower: follower, Following: following})
		nowFollowing = true
	}
	if err := s.saveLocked(); err != nil {
		return false, err
	}
	return nowFollowing, nil
}

// ProfileStats counts a profile's followers and followings and reports
// whether viewer follows it.
func (s *Store) ProfileStats(username, viewer string) models.ProfileStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var st models.ProfileStats
	for _, f := range s.doc.Follows {
		if f.Following == username {
			st.Followers++
			if f.Follower == viewer {
				st.IsFollowing = true
			}
		}
		if f.Follower == username {
			st.Following++
		}
	}
	return st
}
