package service

import (
	"testing"

	"github.com/adislens/medpgprep/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardIsIdempotentPerSource(t *testing.T) {
	f := newForumFixture(t)

	require.NoError(t, f.points.Award(1, PointsPostCreated, GrantSourcePost, 42))
	// A duplicate delivery of the same event is swallowed.
	require.NoError(t, f.points.Award(1, PointsPostCreated, GrantSourcePost, 42))

	assert.Equal(t, PointsPostCreated, f.userPoints(t, 1))
	assert.EqualValues(t, 1, f.count(t, &model.PointGrant{}, "source_type = ? AND source_id = ?", GrantSourcePost, 42))
}

func TestAwardAccumulatesAcrossSources(t *testing.T) {
	f := newForumFixture(t)

	require.NoError(t, f.points.Award(1, PointsPostCreated, GrantSourcePost, 1))
	require.NoError(t, f.points.Award(1, PointsReplyCreated, GrantSourceReply, 1))
	require.NoError(t, f.points.Award(1, PointsUpvoteReceived, GrantSourceUpvote, 1))

	// Same source id under different source types counts separately.
	assert.Equal(t, PointsPostCreated+PointsReplyCreated+PointsUpvoteReceived, f.userPoints(t, 1))
	assert.EqualValues(t, 3, f.count(t, &model.PointGrant{}, "user_id = ?", 1))
}

func TestGetPointsForUnknownUserIsZero(t *testing.T) {
	f := newForumFixture(t)

	dto, err := f.points.GetPoints(77)
	require.NoError(t, err)
	assert.Equal(t, uint(77), dto.UserID)
	assert.Equal(t, 0, dto.Points)
}
