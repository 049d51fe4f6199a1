package service

import (
	"testing"
	"time"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostSnapshotsAuthorNameAndGrantsPoints(t *testing.T) {
	f := newForumFixture(t)
	f.seedUser(t, 1, "Dr. Rao")

	post, err := f.posts.Create(1, dto.PostCreateDTO{
		Title:   "Brachial plexus mnemonics",
		Content: "How do you remember the cords?",
		Subject: "Anatomy",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Rao", post.AuthorName)
	assert.Equal(t, "Anatomy", post.Subject)
	assert.Equal(t, PointsPostCreated, f.userPoints(t, 1))

	// Creation is the grant event; reading the post again does not re-grant.
	_, err = f.posts.Get(post.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, PointsPostCreated, f.userPoints(t, 1))
}

func TestListPostsFiltersAndSorts(t *testing.T) {
	f := newForumFixture(t)
	f.seedUser(t, 1, "author")
	f.seedUser(t, 2, "voter")

	base := time.Now().Add(-time.Hour)
	oldest := f.seedPost(t, 1, "Cardiac cycle doubt", base)
	middle := f.seedPost(t, 1, "Renal physiology doubt", base.Add(time.Minute))
	newest := f.seedPost(t, 1, "Pharmacology tips", base.Add(2*time.Minute))
	require.NoError(t, f.db.Model(&model.Post{}).Where("id IN ?", []uint{oldest, middle}).Update("subject", "Physiology").Error)

	_, err := f.votes.Toggle(middle, 2, model.VoteUp)
	require.NoError(t, err)

	// Default sort is newest first.
	posts, err := f.posts.List(ListPostsQuery{}, 2)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, newest, posts[0].ID)
	assert.Equal(t, oldest, posts[2].ID)

	posts, err = f.posts.List(ListPostsQuery{Sort: SortOldest}, 2)
	require.NoError(t, err)
	assert.Equal(t, oldest, posts[0].ID)

	posts, err = f.posts.List(ListPostsQuery{Sort: SortMostVoted}, 2)
	require.NoError(t, err)
	assert.Equal(t, middle, posts[0].ID)
	assert.Equal(t, 1, posts[0].Score)
	assert.Equal(t, model.VoteUp, posts[0].MyVote)

	// Subject is an exact match, search a case-insensitive substring.
	posts, err = f.posts.List(ListPostsQuery{Subject: "Physiology"}, 2)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = f.posts.List(ListPostsQuery{Search: "RENAL"}, 2)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, middle, posts[0].ID)

	posts, err = f.posts.List(ListPostsQuery{Search: "renal", Subject: "Anatomy"}, 2)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestGetPostIncludesTallyAndReplyCount(t *testing.T) {
	f := newForumFixture(t)
	f.seedUser(t, 1, "author")
	f.seedUser(t, 2, "voter")
	postID := f.seedPost(t, 1, "Thread", time.Now())

	_, err := f.votes.Toggle(postID, 2, model.VoteUp)
	require.NoError(t, err)
	_, err = f.replies.Create(postID, 2, dto.ReplyCreateDTO{Content: "subscribing"})
	require.NoError(t, err)

	post, err := f.posts.Get(postID, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, post.Upvotes)
	assert.Equal(t, 1, post.ReplyCount)
	assert.Equal(t, model.VoteUp, post.MyVote)

	_, err = f.posts.Get(404, 2)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePostOwnerOnlyAndCascades(t *testing.T) {
	f := newForumFixture(t)
	f.seedUser(t, 1, "author")
	f.seedUser(t, 2, "other")
	postID := f.seedPost(t, 1, "Thread", time.Now())

	_, err := f.replies.Create(postID, 2, dto.ReplyCreateDTO{Content: "reply"})
	require.NoError(t, err)
	_, err = f.votes.Toggle(postID, 2, model.VoteDown)
	require.NoError(t, err)

	err = f.posts.Delete(postID, 2)
	assert.ErrorIs(t, err, ErrNotPostAuthor)

	require.NoError(t, f.posts.Delete(postID, 1))
	assert.EqualValues(t, 0, f.count(t, &model.Post{}, "id = ?", postID))
	assert.EqualValues(t, 0, f.count(t, &model.Reply{}, "post_id = ?", postID))
	assert.EqualValues(t, 0, f.count(t, &model.Vote{}, "post_id = ?", postID))

	// Points earned from the reply survive the deletion.
	assert.Equal(t, PointsReplyCreated, f.userPoints(t, 2))

	err = f.posts.Delete(postID, 1)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
