package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"camerahive/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
)

// Camera handlers proxy the catalog API; this service holds no camera
// state of its own.

func GetCameras(ctx *gin.Context) {
	cameras, err := public().ListCameras(ctx.Request.Context(), ctx.Query("category"))
	if err != nil {
		handleRemoteError(ctx, nil, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"cameras": cameras})
}

func GetSampleCameras(ctx *gin.Context) {
	cameras, err := public().SampleCameras(ctx.Request.Context())
	if err != nil {
		handleRemoteError(ctx, nil, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"cameras": cameras})
}

func GetCamera(ctx *gin.Context) {
	camera, err := public().GetCamera(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleRemoteError(ctx, nil, err)
		return
	}
	ctx.JSON(http.StatusOK, camera)
}

func CreateCamera(ctx *gin.Context) {
	var camera models.Camera
	if err := ctx.ShouldBindJSON(&camera); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	sess := currentSession(ctx)
	created, err := remote(sess).CreateCamera(ctx.Request.Context(), camera)
	if err != nil {
		handleRemoteError(ctx, sess, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func UpdateCamera(ctx *gin.Context) {
	var camera models.Camera
	if err := ctx.ShouldBindJSON(&camera); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	sess := currentSession(ctx)
	updated, err := remote(sess).UpdateCamera(ctx.Request.Context(), ctx.Param("id"), camera)
	if err != nil {
		handleRemoteError(ctx, sess, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func DeleteCamera(ctx *gin.Context) {
	sess := currentSession(ctx)
	if err := remote(sess).DeleteCamera(ctx.Request.Context(), ctx.Param("id")); err != nil {
		handleRemoteError(ctx, sess, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Camera deleted successfully."})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadCameraImages stores admin-supplied image files in S3 and returns
// their public URLs, which the camera create/update forms embed as the
// image reference.
func UploadCameraImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No files uploaded")
		return
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Missing storage configuration")
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to configure AWS")
		return
	}

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique filename to prevent overwrites
		uniqueFilename := fmt.Sprintf("%s-%s", time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(ctx.Request.Context(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	sendJSONResponse(ctx, http.StatusOK, response)
}
