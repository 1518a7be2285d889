package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lessonhub/internal/models/db_models"
	"lessonhub/internal/models/request_models"
	"lessonhub/pkg/utils"
)

func newCommentServiceForTest() (CommentServiceInterface, LessonServiceInterface, *fakeAccountRepo) {
	lessonRepo := newFakeLessonRepo()
	accountRepo := newFakeAccountRepo()
	return NewCommentService(&fakeCommentRepo{}, lessonRepo),
		NewLessonService(lessonRepo, accountRepo),
		accountRepo
}

func TestAddCommentSnapshotsAuthorName(t *testing.T) {
	comments, lessons, accountRepo := newCommentServiceForTest()
	author := accountRepo.add(&db_models.Account{Name: "Alice", Email: "alice@x.com", Role: "user"})

	created, err := lessons.CreateLesson(context.Background(), author, request_models.CreateLessonRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	comment, err := comments.AddComment(context.Background(), author, created.ID, request_models.CreateCommentRequest{Text: "thanks"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", comment.AuthorName)
	assert.Equal(t, "thanks", comment.Text)

	// Renaming the account does not rewrite past comments.
	author.Name = "Alice Liddell"
	listed, err := comments.ListComments(context.Background(), author, created.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Alice", listed[0].AuthorName)
}

func TestAddCommentValidation(t *testing.T) {
	comments, lessons, accountRepo := newCommentServiceForTest()
	caller := accountRepo.add(testAccount("alice@x.com", "user", false))

	created, err := lessons.CreateLesson(context.Background(), caller, request_models.CreateLessonRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	_, err = comments.AddComment(context.Background(), caller, created.ID, request_models.CreateCommentRequest{})
	assert.ErrorIs(t, err, utils.ErrMissingField)

	_, err = comments.AddComment(context.Background(), caller, "nope", request_models.CreateCommentRequest{Text: "hi"})
	assert.ErrorIs(t, err, utils.ErrInvalidID)

	_, err = comments.AddComment(context.Background(), caller, "1b671a64-40d5-491e-99b0-da01ff1f3341", request_models.CreateCommentRequest{Text: "hi"})
	assert.ErrorIs(t, err, utils.ErrLessonNotFound)
}

func TestCommentsFollowLessonReadPolicy(t *testing.T) {
	comments, lessons, accountRepo := newCommentServiceForTest()
	creator := accountRepo.add(testAccount("creator@x.com", "user", true))
	stranger := accountRepo.add(testAccount("stranger@x.com", "user", false))

	private, err := lessons.CreateLesson(context.Background(), creator, request_models.CreateLessonRequest{
		Title: "t", Content: "c", Visibility: db_models.VisibilityPrivate,
	})
	require.NoError(t, err)
	premium, err := lessons.CreateLesson(context.Background(), creator, request_models.CreateLessonRequest{
		Title: "t", Content: "c", AccessLevel: db_models.AccessPremium,
	})
	require.NoError(t, err)

	_, err = comments.AddComment(context.Background(), stranger, private.ID, request_models.CreateCommentRequest{Text: "hi"})
	assert.ErrorIs(t, err, utils.ErrPrivateContent)

	_, err = comments.ListComments(context.Background(), stranger, premium.ID, 1, 10)
	assert.ErrorIs(t, err, utils.ErrPremiumRequired)

	// The creator still reads their own private lesson's comments.
	_, err = comments.ListComments(context.Background(), creator, private.ID, 1, 10)
	assert.NoError(t, err)
}
