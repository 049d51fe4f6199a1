package service

import (
	"testing"
	"time"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/model"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteAccountRemovesOwnedDataAndCascades(t *testing.T) {
	f := newForumFixture(t)
	userRepo := repository.NewUserRepository(f.db)
	resultRepo := repository.NewResultRepository(f.db)
	accounts := NewAccountService(userRepo, f.profileRepo, f.postRepo, f.replyRepo, f.voteRepo, f.pointsRepo, resultRepo)

	f.seedUser(t, 1, "leaving")
	f.seedUser(t, 2, "staying")

	// User 1 owns a post that user 2 has replied to and voted on; user 1
	// also has activity on user 2's post.
	ownPost := f.seedPost(t, 1, "Mine", time.Now())
	otherPost := f.seedPost(t, 2, "Theirs", time.Now())

	_, err := f.replies.Create(ownPost, 2, dto.ReplyCreateDTO{Content: "from user 2"})
	require.NoError(t, err)
	_, err = f.votes.Toggle(ownPost, 2, model.VoteUp)
	require.NoError(t, err)
	_, err = f.replies.Create(otherPost, 1, dto.ReplyCreateDTO{Content: "from user 1"})
	require.NoError(t, err)
	_, err = f.votes.Toggle(otherPost, 1, model.VoteDown)
	require.NoError(t, err)
	require.NoError(t, resultRepo.Create(&model.TestResult{UserID: 1, Subject: "Anatomy", TotalQuestions: 3}))

	require.NoError(t, accounts.DeleteAccount(1))

	// Everything the user owned is gone, including other users' replies and
	// votes on the deleted post.
	assert.EqualValues(t, 0, f.count(t, &model.User{}, "id = ?", 1))
	assert.EqualValues(t, 0, f.count(t, &model.Profile{}, "id = ?", 1))
	assert.EqualValues(t, 0, f.count(t, &model.Post{}, "author_id = ?", 1))
	assert.EqualValues(t, 0, f.count(t, &model.Reply{}, "post_id = ?", ownPost))
	assert.EqualValues(t, 0, f.count(t, &model.Vote{}, "post_id = ?", ownPost))
	assert.EqualValues(t, 0, f.count(t, &model.Reply{}, "author_id = ?", 1))
	assert.EqualValues(t, 0, f.count(t, &model.Vote{}, "user_id = ?", 1))
	assert.EqualValues(t, 0, f.count(t, &model.UserPoints{}, "user_id = ?", 1))
	assert.EqualValues(t, 0, f.count(t, &model.PointGrant{}, "user_id = ?", 1))
	assert.EqualValues(t, 0, f.count(t, &model.TestResult{}, "user_id = ?", 1))

	// The other user's account and post survive.
	assert.EqualValues(t, 1, f.count(t, &model.User{}, "id = ?", 2))
	assert.EqualValues(t, 1, f.count(t, &model.Post{}, "id = ?", otherPost))
}
