package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/middleware"
	"github.com/adislens/medpgprep/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ForumController struct {
	postService   service.PostService
	replyService  service.ReplyService
	voteService   service.VoteService
	pointsService service.PointsService
}

func NewForumController(
	postService service.PostService,
	replyService service.ReplyService,
	voteService service.VoteService,
	pointsService service.PointsService,
) *ForumController {
	return &ForumController{
		postService:   postService,
		replyService:  replyService,
		voteService:   voteService,
		pointsService: pointsService,
	}
}

// ListPosts godoc
// @Summary List discussion posts
// @Description Supports case-insensitive substring search over title/content, exact subject filter, and newest/oldest/most_voted sort.
// @Tags Forum
// @Produce json
// @Param search query string false "Substring to match in title or content"
// @Param subject query string false "Exact subject filter"
// @Param sort query string false "newest (default), oldest or most_voted"
// @Success 200 {array} dto.PostResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /posts [get]
func (c *ForumController) ListPosts(ctx *gin.Context) {
	query := service.ListPostsQuery{
		Search:  ctx.Query("search"),
		Subject: ctx.Query("subject"),
		Sort:    ctx.Query("sort"),
	}
	posts, err := c.postService.List(query, middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("ListPosts: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch posts"})
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// CreatePost godoc
// @Summary Create a discussion post
// @Description The author earns 10 points. A points failure does not undo the post; the response carries a warning.
// @Tags Forum
// @Accept json
// @Produce json
// @Param post body dto.PostCreateDTO true "Post content"
// @Success 201 {object} dto.PostResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /posts [post]
func (c *ForumController) CreatePost(ctx *gin.Context) {
	var req dto.PostCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	post, err := c.postService.Create(middleware.UserID(ctx), req)
	if err != nil {
		if errors.Is(err, service.ErrPointsGrantFailed) {
			// The post itself was saved; surface the partial success.
			ctx.JSON(http.StatusCreated, post)
			return
		}
		log.Error().Err(err).Msg("CreatePost: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create post"})
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary Get one post with its vote tally
// @Tags Forum
// @Produce json
// @Param post_id path int true "Post ID"
// @Success 200 {object} dto.PostResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /posts/{post_id} [get]
func (c *ForumController) GetPost(ctx *gin.Context) {
	postID, err := pathID(ctx, "post_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid post ID format"})
		return
	}

	post, err := c.postService.Get(postID, middleware.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Post not found"})
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete an owned post
// @Description Deletion cascades to the post's replies and votes.
// @Tags Forum
// @Produce json
// @Param post_id path int true "Post ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /posts/{post_id} [delete]
func (c *ForumController) DeletePost(ctx *gin.Context) {
	postID, err := pathID(ctx, "post_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid post ID format"})
		return
	}

	switch err := c.postService.Delete(postID, middleware.UserID(ctx)); {
	case err == nil:
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Post deleted"})
	case errors.Is(err, service.ErrPostNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNotPostAuthor):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Uint("postID", postID).Msg("DeletePost: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete post"})
	}
}

// VotePost godoc
// @Summary Vote on a post
// @Description Toggle semantics: first vote inserts, the opposite type flips in place, repeating the same type removes the vote.
// @Tags Forum
// @Accept json
// @Produce json
// @Param post_id path int true "Post ID"
// @Param vote body dto.VoteRequestDTO true "up or down"
// @Success 200 {object} dto.VoteStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid vote type"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /posts/{post_id}/votes [post]
func (c *ForumController) VotePost(ctx *gin.Context) {
	postID, err := pathID(ctx, "post_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid post ID format"})
		return
	}

	var req dto.VoteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.voteService.Toggle(postID, middleware.UserID(ctx), req.VoteType)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, state)
	case errors.Is(err, service.ErrPointsGrantFailed):
		// The vote transition committed; only the grant is pending.
		ctx.JSON(http.StatusOK, state)
	case errors.Is(err, service.ErrInvalidVoteType):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrPostNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Uint("postID", postID).Msg("VotePost: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to record vote"})
	}
}

// ListReplies godoc
// @Summary List replies for a post, oldest first, in pages of 5
// @Tags Forum
// @Produce json
// @Param post_id path int true "Post ID"
// @Param page query int false "Zero-based page number"
// @Success 200 {object} dto.ReplyPageDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID format"
// @Security BearerAuth
// @Router /posts/{post_id}/replies [get]
func (c *ForumController) ListReplies(ctx *gin.Context) {
	postID, err := pathID(ctx, "post_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid post ID format"})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	replies, err := c.replyService.ListPage(postID, page)
	if err != nil {
		log.Error().Err(err).Uint("postID", postID).Msg("ListReplies: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch replies"})
		return
	}
	ctx.JSON(http.StatusOK, replies)
}

// CreateReply godoc
// @Summary Reply to a post
// @Description The reply author earns 5 points.
// @Tags Forum
// @Accept json
// @Produce json
// @Param post_id path int true "Post ID"
// @Param reply body dto.ReplyCreateDTO true "Reply content"
// @Success 201 {object} dto.ReplyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /posts/{post_id}/replies [post]
func (c *ForumController) CreateReply(ctx *gin.Context) {
	postID, err := pathID(ctx, "post_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid post ID format"})
		return
	}

	var req dto.ReplyCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	reply, err := c.replyService.Create(postID, middleware.UserID(ctx), req)
	switch {
	case err == nil, errors.Is(err, service.ErrPointsGrantFailed):
		ctx.JSON(http.StatusCreated, reply)
	case errors.Is(err, service.ErrPostNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Uint("postID", postID).Msg("CreateReply: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create reply"})
	}
}

// GetPoints godoc
// @Summary Get the authenticated user's points
// @Tags Forum
// @Produce json
// @Success 200 {object} dto.UserPointsDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /points [get]
func (c *ForumController) GetPoints(ctx *gin.Context) {
	points, err := c.pointsService.GetPoints(middleware.UserID(ctx))
	if err != nil {
		// Points are non-critical; log and degrade to zero.
		log.Warn().Err(err).Msg("GetPoints: service error")
		ctx.JSON(http.StatusOK, dto.UserPointsDTO{UserID: middleware.UserID(ctx), Points: 0})
		return
	}
	ctx.JSON(http.StatusOK, points)
}

func pathID(ctx *gin.Context, name string) (uint, error) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(val), nil
}
