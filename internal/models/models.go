package models

// Role gates operations that cross user boundaries (post deletion).
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// FileType of a post attachment.
type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypeVideo FileType = "video"
	FileTypeNone  FileType = ""
)

type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Bio          string `json:"bio"`
	ProfilePic   string `json:"profile_pic"`
	IsVerified   bool   `json:"is_verified"`
	Role         Role   `json:"role"`
}

// PublicUser is the projection of User that may cross the HTTP boundary.
type PublicUser struct {
	Username   string `json:"username"`
	Bio        string `json:"bio"`
	ProfilePic string `json:"profilePic"`
	IsVerified bool   `json:"isVerified"`
	Role       Role   `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		Username:   u.Username,
		Bio:        u.Bio,
		ProfilePic: u.ProfilePic,
		IsVerified: u.IsVerified,
		Role:       u.Role,
	}
}

type Post struct {
	ID        string   `json:"id"`
	Author    string   `json:"author"`
	Content   string   `json:"content"`
	FileURL   string   `json:"file_url,omitempty"`
	FileType  FileType `json:"file_type,omitempty"`
	Timestamp string   `json:"timestamp"` // ISO 8601
}

type Comment struct {
	PostID    string `json:"post_id"`
	User      string `json:"user"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"` // ISO 8601
}

type Like struct {
	PostID string `json:"post_id"`
	User   string `json:"user"`
}

type Follow struct {
	Follower  string `json:"follower"`
	Following string `json:"following"`
}

type ChatMessage struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // ISO 8601
}

// Document is the whole persisted application state. Insertion order within
// each collection is chronological order; there is no separate ordering field.
type Document struct {
	Users    []User        `json:"users"`
	Posts    []Post        `json:"posts"`
	Comments []Comment     `json:"comments"`
	Likes    []Like        `json:"likes"`
	Follows  []Follow      `json:"follows"`
	Chats    []ChatMessage `json:"chats"`
}

// EmptyDocument is what Load yields when no data file exists yet.
func EmptyDocument() Document {
	return Document{
		Users:    []User{},
		Posts:    []Post{},
		Comments: []Comment{},
		Likes:    []Like{},
		Follows:  []Follow{},
		Chats:    []ChatMessage{},
	}
}

// FeedPost is a post decorated for rendering: like state for the viewer and
// the post's comments, assembled in one payload.
type FeedPost struct {
	Post
	LikeCount int       `json:"likeCount"`
	LikedByMe bool      `json:"likedByMe"`
	Comments  []Comment `json:"comments"`
}

// ProfileStats summarizes a profile's social graph for the profile page.
type ProfileStats struct {
	Followers   int  `json:"followers"`
	Following   int  `json:"following"`
	IsFollowing bool `json:"isFollowing"`
}
