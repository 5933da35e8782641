package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local.dev/lennysocial/internal/models"
)

const testAdmin = "Lenny Fisbeck"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "data.json"), testAdmin)
	require.NoError(t, s.Load())
	return s
}

func mustUser(t *testing.T, s *Store, name string) models.User {
	t.Helper()
	u, err := s.CreateUser(name, "pw-"+name)
	require.NoError(t, err)
	return u
}

func mustPost(t *testing.T, s *Store, author, content string) models.Post {
	t.Helper()
	p, ok, err := s.CreatePost(author, content, "", models.FileTypeNone)
	require.NoError(t, err)
	require.True(t, ok)
	return p
}

func TestLoadMissingFileYieldsEmptyDocument(t *testing.T) {
	s := newTestStore(t)
	doc := s.Snapshot()
	assert.Empty(t, doc.Users)
	assert.Empty(t, doc.Posts)
	assert.Empty(t, doc.Comments)
	assert.Empty(t, doc.Likes)
	assert.Empty(t, doc.Follows)
	assert.Empty(t, doc.Chats)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s := New(path, testAdmin)
	err := s.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptStore)
}

func TestCreateUserDefaultsAndDuplicate(t *testing.T) {
	s := newTestStore(t)

	u, err := s.CreateUser("alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "New here!", u.Bio)
	assert.Equal(t, "default.png", u.ProfilePic)
	assert.False(t, u.IsVerified)
	assert.Equal(t, models.RoleStandard, u.Role)
	assert.NotEqual(t, "pw1", u.PasswordHash)

	_, err = s.CreateUser("alice", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateUser)

	// The first record is unchanged.
	got, err := s.GetUser("alice")
	require.NoError(t, err)
	assert.Equal(t, u, got)
	assert.Len(t, s.Snapshot().Users, 1)
}

func TestAdminRoleGrantedByUsername(t *testing.T) {
	s := newTestStore(t)
	u := mustUser(t, s, testAdmin)
	assert.Equal(t, models.RoleAdmin, u.Role)
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")

	u, err := s.Authenticate("alice", "pw-alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = s.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrAuthFailed)

	// Usernames are case-sensitive.
	_, err = s.Authenticate("Alice", "pw-alice")
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestCreatePostRequiresContentOrFile(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")

	_, ok, err := s.CreatePost("alice", "", "", models.FileTypeNone)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, s.ListFeed())

	// A file-only post is fine.
	p, ok, err := s.CreatePost("alice", "", "/uploads/x.mp4", models.FileTypeVideo)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.FileTypeVideo, p.FileType)
	assert.NotEmpty(t, p.ID)
	assert.NotEmpty(t, p.Timestamp)
}

func TestCreatePostSanitizesContent(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")
	p := mustPost(t, s, "alice", "<b>hello</b> world")
	assert.Equal(t, "hello world", p.Content)
}

func TestListFeedReverseInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")
	mustUser(t, s, "bob")
	first := mustPost(t, s, "alice", "one")
	second := mustPost(t, s, "bob", "two")
	third := mustPost(t, s, "alice", "three")

	feed := s.ListFeed()
	require.Len(t, feed, 3)
	assert.Equal(t, third.ID, feed[0].ID)
	assert.Equal(t, second.ID, feed[1].ID)
	assert.Equal(t, first.ID, feed[2].ID)
}

func TestToggleLikePairRestoresOriginalState(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")
	mustUser(t, s, "bob")
	p := mustPost(t, s, "alice", "hello")

	liked, count, err := s.ToggleLike(p.ID, "bob")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)

	liked, count, err = s.ToggleLike(p.ID, "bob")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, count)
	assert.Empty(t, s.Snapshot().Likes)
}

func TestToggleFollowPairRestoresOriginalState(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")
	mustUser(t, s, "bob")

	following, err := s.ToggleFollow("alice", "bob")
	require.NoError(t, err)
	assert.True(t, following)
	assert.Equal(t, 1, s.ProfileStats("bob", "alice").Followers)
	assert.True(t, s.ProfileStats("bob", "alice").IsFollowing)
	assert.Equal(t, 1, s.ProfileStats("alice", "").Following)

	following, err = s.ToggleFollow("alice", "bob")
	require.NoError(t, err)
	assert.False(t, following)
	assert.Equal(t, 0, s.ProfileStats("bob", "alice").Followers)
	assert.False(t, s.ProfileStats("bob", "alice").IsFollowing)
}

func TestDeletePostUnauthorizedLeavesEverything(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")
	mustUser(t, s, "bob")
	p := mustPost(t, s, "alice", "hello")
	_, _, err := s.ToggleLike(p.ID, "bob")
	require.NoError(t, err)
	_, ok, err := s.AddComment(p.ID, "bob", "nice")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = s.DeletePost(p.ID, "bob")
	assert.ErrorIs(t, err, ErrUnauthorized)

	doc := s.Snapshot()
	assert.Len(t, doc.Posts, 1)
	assert.Len(t, doc.Comments, 1)
	assert.Len(t, doc.Likes, 1)
}

func TestDeletePostCascades(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")
	mustUser(t, s, "bob")
	p := mustPost(t, s, "alice", "hello")
	other := mustPost(t, s, "bob", "unrelated")

	_, _, err := s.ToggleLike(p.ID, "bob")
	require.NoError(t, err)
	_, _, err = s.ToggleLike(other.ID, "alice")
	require.NoError(t, err)
	_, _, err = s.AddComment(p.ID, "bob", "nice")
	require.NoError(t, err)
	_, _, err = s.AddComment(other.ID, "alice", "ok")
	require.NoError(t, err)

	deleted, err := s.DeletePost(p.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, p.ID, deleted.ID)

	doc := s.Snapshot()
	require.Len(t, doc.Posts, 1)
	assert.Equal(t, other.ID, doc.Posts[0].ID)
	require.Len(t, doc.Comments, 1)
	assert.Equal(t, other.ID, doc.Comments[0].PostID)
	require.Len(t, doc.Likes, 1)
	assert.Equal(t, other.ID, doc.Likes[0].PostID)

	_, err = s.DeletePost(p.ID, "alice")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestAdminCanDeleteAnyPost(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, testAdmin)
	mustUser(t, s, "alice")
	p := mustPost(t, s, "alice", "hello")

	_, err := s.DeletePost(p.ID, testAdmin)
	require.NoError(t, err)
	assert.Empty(t, s.ListFeed())
}

func TestAddCommentEmptyIsNoop(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")
	p := mustPost(t, s, "alice", "hello")

	_, ok, err := s.AddComment(p.ID, "alice", "   ")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, s.Snapshot().Comments)
}

func TestRegisterLikeDeleteScenario(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUser("alice", "pw1")
	require.NoError(t, err)
	_, err = s.CreateUser("bob", "pw2")
	require.NoError(t, err)

	p, ok, err := s.CreatePost("alice", "hello", "", models.FileTypeNone)
	require.NoError(t, err)
	require.True(t, ok)

	_, count, err := s.ToggleLike(p.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, count, err = s.ToggleLike(p.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = s.DeletePost(p.ID, "alice")
	require.NoError(t, err)

	assert.Empty(t, s.ListFeed())
	doc := s.Snapshot()
	assert.Empty(t, doc.Comments)
	assert.Empty(t, doc.Likes)
}

func TestConversationSymmetric(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")
	mustUser(t, s, "bob")

	m, ok, err := s.SendChatMessage("alice", "bob", "hi")
	require.NoError(t, err)
	require.True(t, ok)

	ab := s.ListConversation("alice", "bob")
	ba := s.ListConversation("bob", "alice")
	require.Len(t, ab, 1)
	assert.Equal(t, ab, ba)
	assert.Equal(t, m, ab[0])
}

func TestSendChatMessageEmptyIsNoop(t *testing.T) {
	s := newTestStore(t)
	_, ok, err := s.SendChatMessage("alice", "bob", "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, s.Snapshot().Chats)
}

func TestChatPartnersFirstContactOrder(t *testing.T) {
	s := newTestStore(t)
	for _, m := range []struct{ from, to, msg string }{
		{"alice", "bob", "1"},
		{"carol", "alice", "2"},
		{"alice", "bob", "3"},
	} {
		_, ok, err := s.SendChatMessage(m.from, m.to, m.msg)
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, []string{"bob", "carol"}, s.ChatPartners("alice"))
	assert.Len(t, s.UserChats("alice"), 3)
	assert.Len(t, s.UserChats("bob"), 2)
}

func TestSearchUsers(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "Alice")
	mustUser(t, s, "bob")
	mustUser(t, s, "malice")

	got := s.SearchUsers("ALiC")
	require.Len(t, got, 2)
	// Collection order is preserved.
	assert.Equal(t, "Alice", got[0].Username)
	assert.Equal(t, "malice", got[1].Username)

	assert.Len(t, s.SearchUsers(""), 3)
	assert.Empty(t, s.SearchUsers("zed"))
}

func TestUpdateProfile(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")

	u, err := s.UpdateProfile("alice", "hi there", "")
	require.NoError(t, err)
	assert.Equal(t, "hi there", u.Bio)
	assert.Equal(t, "default.png", u.ProfilePic)

	u, err = s.UpdateProfile("alice", "hi there", "profile_alice.png")
	require.NoError(t, err)
	assert.Equal(t, "profile_alice.png", u.ProfilePic)

	_, err = s.UpdateProfile("ghost", "x", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDecoratedFeed(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")
	mustUser(t, s, "bob")
	p := mustPost(t, s, "alice", "hello")
	_, _, err := s.ToggleLike(p.ID, "bob")
	require.NoError(t, err)
	_, _, err = s.AddComment(p.ID, "bob", "nice")
	require.NoError(t, err)

	feed := s.DecoratedFeed("bob")
	require.Len(t, feed, 1)
	assert.Equal(t, 1, feed[0].LikeCount)
	assert.True(t, feed[0].LikedByMe)
	require.Len(t, feed[0].Comments, 1)
	assert.Equal(t, "nice", feed[0].Comments[0].Content)

	feed = s.DecoratedFeed("alice")
	require.Len(t, feed, 1)
	assert.False(t, feed[0].LikedByMe)
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := New(path, testAdmin)
	require.NoError(t, s.Load())

	mustUser(t, s, "alice")
	p := mustPost(t, s, "alice", "hello")
	_, _, err := s.ToggleLike(p.ID, "alice")
	require.NoError(t, err)

	// A fresh store over the same file sees the same document.
	reopened := New(path, testAdmin)
	require.NoError(t, reopened.Load())
	assert.Equal(t, s.Snapshot(), reopened.Snapshot())
}
