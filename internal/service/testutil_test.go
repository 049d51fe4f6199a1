package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/adislens/medpgprep/internal/model"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test and migrates every
// model except Question, whose text[] column is postgres-only; question-heavy
// tests use an in-memory fake repository instead.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Post{},
		&model.Reply{},
		&model.Vote{},
		&model.UserPoints{},
		&model.PointGrant{},
		&model.TestResult{},
	))
	return db
}

// forumFixture wires the community services over one shared test database.
type forumFixture struct {
	db          *gorm.DB
	postRepo    repository.PostRepository
	replyRepo   repository.ReplyRepository
	voteRepo    repository.VoteRepository
	profileRepo repository.ProfileRepository
	pointsRepo  repository.PointsRepository

	points   PointsService
	posts    PostService
	replies  ReplyService
	votes    VoteService
	profiles ProfileService
}

func newForumFixture(t *testing.T) *forumFixture {
	db := newTestDB(t)
	f := &forumFixture{
		db:          db,
		postRepo:    repository.NewPostRepository(db),
		replyRepo:   repository.NewReplyRepository(db),
		voteRepo:    repository.NewVoteRepository(db),
		profileRepo: repository.NewProfileRepository(db),
		pointsRepo:  repository.NewPointsRepository(db),
	}
	f.points = NewPointsService(f.pointsRepo)
	f.posts = NewPostService(f.postRepo, f.replyRepo, f.voteRepo, f.profileRepo, f.points)
	f.replies = NewReplyService(f.postRepo, f.replyRepo, f.profileRepo, f.points)
	f.votes = NewVoteService(f.postRepo, f.voteRepo, f.points)
	f.profiles = NewProfileService(f.profileRepo)
	return f
}

func (f *forumFixture) seedUser(t *testing.T, id uint, displayName string) {
	t.Helper()
	require.NoError(t, f.db.Create(&model.User{
		ID:           id,
		Email:        fmt.Sprintf("user%d@example.com", id),
		PasswordHash: "x",
	}).Error)
	require.NoError(t, f.db.Create(&model.Profile{ID: id, DisplayName: displayName}).Error)
}

func (f *forumFixture) seedPost(t *testing.T, authorID uint, title string, createdAt time.Time) uint {
	t.Helper()
	post := model.Post{
		Title:     title,
		Content:   title + " content",
		AuthorID:  authorID,
		CreatedAt: createdAt,
	}
	require.NoError(t, f.db.Create(&post).Error)
	return post.ID
}

func (f *forumFixture) userPoints(t *testing.T, userID uint) int {
	t.Helper()
	up, err := f.pointsRepo.FindByUser(userID)
	require.NoError(t, err)
	return up.Points
}

func (f *forumFixture) count(t *testing.T, value interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(value).Where(query, args...).Count(&n).Error)
	return n
}
