package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
)

func validResourceInput() ResourceInput {
	return ResourceInput{
		Title:       "Acing the Interview",
		Description: "A short guide",
		Body:        "Practice, practice, practice.",
		Category:    "Interview Preparation",
	}
}

func TestResourceUploadValidation(t *testing.T) {
	svc := NewResourceService(newFakeResourceRepo())

	in := validResourceInput()
	in.Body = ""
	_, err := svc.Upload(context.Background(), "uploader", in)
	require.Error(t, err)
	assert.Equal(t, 400, apperr.StatusOf(err))

	in = validResourceInput()
	in.Category = "Not A Category"
	_, err = svc.Upload(context.Background(), "uploader", in)
	require.Error(t, err)
	assert.Equal(t, "Invalid category", apperr.MessageOf(err))
}

func TestResourceGetCountsAccess(t *testing.T) {
	svc := NewResourceService(newFakeResourceRepo())
	res, err := svc.Upload(context.Background(), "uploader", validResourceInput())
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), res.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 1, got.AccessCount)

	got, err = svc.Get(context.Background(), res.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 2, got.AccessCount)
}

func TestResourceDeleteOwnership(t *testing.T) {
	svc := NewResourceService(newFakeResourceRepo())
	res, err := svc.Upload(context.Background(), "uploader", validResourceInput())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), res.ID.Hex(), "stranger", models.RoleMentor)
	require.Error(t, err)
	assert.Equal(t, 403, apperr.StatusOf(err))

	require.NoError(t, svc.Delete(context.Background(), res.ID.Hex(), "someone", models.RoleAdmin))
	_, err = svc.Get(context.Background(), res.ID.Hex())
	require.Error(t, err)
	assert.Equal(t, 404, apperr.StatusOf(err))
}
