package models

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeleteImageEmptyPublicID(t *testing.T) {
	// A product saved without a hosted image has no public id to destroy.
	// The empty id short-circuits before any client call is made.
	svc := &CloudinaryService{}

	assert.NoError(t, svc.DeleteImage(context.Background(), ""))
}

func TestDeleteImageLiveAsset(t *testing.T) {
	t.Skip("Integration test - requires Cloudinary credentials")
}

func TestValidateImageFile(t *testing.T) {
	svc := &CloudinaryService{}

	assert.NoError(t, svc.ValidateImageFile(&multipart.FileHeader{Filename: "vase.jpg", Size: 1024}))
	assert.NoError(t, svc.ValidateImageFile(&multipart.FileHeader{Filename: "VASE.PNG", Size: 1024}))

	assert.Error(t, svc.ValidateImageFile(&multipart.FileHeader{Filename: "vase.jpg", Size: 11 * 1024 * 1024}))
	assert.Error(t, svc.ValidateImageFile(&multipart.FileHeader{Filename: "vase.svg", Size: 1024}))
	assert.Error(t, svc.ValidateImageFile(&multipart.FileHeader{Filename: "vase", Size: 1024}))
}
