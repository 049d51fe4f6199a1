package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyPagination(t *testing.T) {
	f := newForumFixture(t)
	f.seedUser(t, 1, "author")
	postID := f.seedPost(t, 1, "Busy thread", time.Now())

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		require.NoError(t, f.db.Create(&model.Reply{
			PostID:    postID,
			Content:   fmt.Sprintf("reply %d", i),
			AuthorID:  1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	var seen []string

	page, err := f.replies.ListPage(postID, 0)
	require.NoError(t, err)
	assert.Len(t, page.Replies, 5)
	assert.Equal(t, 12, page.TotalCount)
	assert.True(t, page.HasMore)
	for _, r := range page.Replies {
		seen = append(seen, r.Content)
	}

	page, err = f.replies.ListPage(postID, 1)
	require.NoError(t, err)
	assert.Len(t, page.Replies, 5)
	assert.True(t, page.HasMore)
	for _, r := range page.Replies {
		seen = append(seen, r.Content)
	}

	page, err = f.replies.ListPage(postID, 2)
	require.NoError(t, err)
	assert.Len(t, page.Replies, 2)
	assert.False(t, page.HasMore)
	for _, r := range page.Replies {
		seen = append(seen, r.Content)
	}

	// Concatenating the pages walks every reply once, oldest first.
	require.Len(t, seen, 12)
	for i, content := range seen {
		assert.Equal(t, fmt.Sprintf("reply %d", i), content)
	}

	// Past the end: empty page, nothing more.
	page, err = f.replies.ListPage(postID, 3)
	require.NoError(t, err)
	assert.Empty(t, page.Replies)
	assert.False(t, page.HasMore)
}

func TestReplyNegativePageIsFirstPage(t *testing.T) {
	f := newForumFixture(t)
	f.seedUser(t, 1, "author")
	postID := f.seedPost(t, 1, "Thread", time.Now())
	require.NoError(t, f.db.Create(&model.Reply{PostID: postID, Content: "only reply", AuthorID: 1}).Error)

	page, err := f.replies.ListPage(postID, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Page)
	assert.Len(t, page.Replies, 1)
}

func TestCreateReplyGrantsPoints(t *testing.T) {
	f := newForumFixture(t)
	f.seedUser(t, 1, "author")
	f.seedUser(t, 2, "commenter")
	postID := f.seedPost(t, 1, "Thread", time.Now())

	reply, err := f.replies.Create(postID, 2, dto.ReplyCreateDTO{Content: "good question"})
	require.NoError(t, err)
	assert.Equal(t, postID, reply.PostID)
	assert.Equal(t, "commenter", reply.AuthorName)
	assert.Equal(t, PointsReplyCreated, f.userPoints(t, 2))
}

func TestCreateReplyUnknownPost(t *testing.T) {
	f := newForumFixture(t)
	f.seedUser(t, 1, "author")

	_, err := f.replies.Create(404, 1, dto.ReplyCreateDTO{Content: "into the void"})
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.EqualValues(t, 0, f.count(t, &model.Reply{}, "1 = 1"))
}
