package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Service handles Cloudinary upload operations
type Service struct {
	cld          *cloudinary.Cloudinary
	uploadFolder string
}

// UploadResult contains the result of a successful upload
type UploadResult struct {
	URL          string `json:"url"`
	PublicID     string `json:"publicId"`
	ResourceType string `json:"resourceType"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	FileSize     int64  `json:"fileSize"`
	Format       string `json:"format"`
}

var (
	AllowedImageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	AllowedVideoTypes = []string{".mp4", ".mov", ".webm"}

	MaxImageSize = int64(10 * 1024 * 1024) // 10MB
	MaxVideoSize = int64(50 * 1024 * 1024) // 50MB
)

// NewService creates a new Cloudinary service instance
func NewService(cloudName, apiKey, apiSecret, uploadFolder string) (*Service, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials are required")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	if uploadFolder == "" {
		uploadFolder = "dropwatch"
	}

	return &Service{
		cld:          cld,
		uploadFolder: uploadFolder,
	}, nil
}

// UploadEvidence validates header and uploads the file as an image or a video,
// depending on its extension.
func (s *Service) UploadEvidence(ctx context.Context, file io.Reader, header *multipart.FileHeader) (*UploadResult, error) {
	kind, err := ValidateEvidenceFile(header)
	if err != nil {
		return nil, err
	}
	if kind == "video" {
		return s.UploadVideo(ctx, file, header.Filename)
	}
	return s.UploadImage(ctx, file, header.Filename)
}

// UploadImage uploads an image file to Cloudinary
func (s *Service) UploadImage(ctx context.Context, file io.Reader, filename string) (*UploadResult, error) {
	return s.upload(ctx, file, "image", s.uploadFolder+"/images")
}

// UploadVideo uploads a video clip to Cloudinary
func (s *Service) UploadVideo(ctx context.Context, file io.Reader, filename string) (*UploadResult, error) {
	return s.upload(ctx, file, "video", s.uploadFolder+"/videos")
}

func (s *Service) upload(ctx context.Context, file io.Reader, resourceType, folder string) (*UploadResult, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: resourceType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", resourceType, err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload %s: %s", resourceType, result.Error.Message)
	}

	return &UploadResult{
		URL:          result.SecureURL,
		PublicID:     result.PublicID,
		ResourceType: resourceType,
		Width:        result.Width,
		Height:       result.Height,
		FileSize:     int64(result.Bytes),
		Format:       result.Format,
	}, nil
}

// Delete removes an asset from Cloudinary
func (s *Service) Delete(ctx context.Context, publicID string, resourceType string) error {
	if publicID == "" {
		return errors.New("publicID is required")
	}

	if resourceType == "" {
		resourceType = "image"
	}

	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}

// ValidateEvidenceFile checks size and extension and returns "image" or "video".
func ValidateEvidenceFile(header *multipart.FileHeader) (string, error) {
	ext := getFileExtension(header.Filename)
	switch {
	case isAllowedExtension(ext, AllowedImageTypes):
		if header.Size > MaxImageSize {
			return "", fmt.Errorf("image file size exceeds maximum allowed size of %d MB", MaxImageSize/(1024*1024))
		}
		return "image", nil
	case isAllowedExtension(ext, AllowedVideoTypes):
		if header.Size > MaxVideoSize {
			return "", fmt.Errorf("video file size exceeds maximum allowed size of %d MB", MaxVideoSize/(1024*1024))
		}
		return "video", nil
	default:
		allowed := append(append([]string{}, AllowedImageTypes...), AllowedVideoTypes...)
		return "", fmt.Errorf("invalid evidence file type: %q. Allowed types: %s", ext, strings.Join(allowed, ", "))
	}
}

// getFileExtension returns the lowercase file extension including the dot
func getFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func isAllowedExtension(ext string, allowedTypes []string) bool {
	for _, allowed := range allowedTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}
