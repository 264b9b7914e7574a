// Package image implements the ImageService interface against the Cloudinary upload API.
// Requests are signed with SHA-1 over the sorted parameters plus the API secret,
// per Cloudinary's authentication scheme.
package image

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"ecomshop/config"
	"ecomshop/internal/domain/service"

	"github.com/pkg/errors"
)

const cloudinaryBaseURL = "https://api.cloudinary.com/v1_1"

// cloudinaryService is a concrete implementation of the ImageService interface.
type cloudinaryService struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCloudinaryService is the constructor for cloudinaryService.
func NewCloudinaryService(cfg *config.Config, logger *slog.Logger) (service.ImageService, error) {
	if cfg.Cloudinary == nil || cfg.Cloudinary.CloudName == "" || cfg.Cloudinary.APIKey == "" || cfg.Cloudinary.APISecret == "" {
		return nil, errors.New("cloudinary credentials must be provided")
	}

	return &cloudinaryService{
		cloudName: cfg.Cloudinary.CloudName,
		apiKey:    cfg.Cloudinary.APIKey,
		apiSecret: cfg.Cloudinary.APISecret,
		folder:    cfg.Cloudinary.Folder,
		baseURL:   cloudinaryBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}, nil
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload stores an image and returns its public URL and ID.
func (s *cloudinaryService) Upload(ctx context.Context, fileName string, content io.Reader) (*service.ImageUpload, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	params := map[string]string{
		"timestamp": timestamp,
	}
	if s.folder != "" {
		params["folder"] = s.folder
	}

	var body strings.Builder
	writer := multipart.NewWriter(&body)

	for key, value := range params {
		if err := writer.WriteField(key, value); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	if err := writer.WriteField("api_key", s.apiKey); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := writer.WriteField("signature", s.sign(params)); err != nil {
		return nil, errors.WithStack(err)
	}

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, errors.Wrap(err, "failed to buffer image content")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", s.baseURL, s.cloudName)
	result, err := s.post(ctx, endpoint, writer.FormDataContentType(), strings.NewReader(body.String()))
	if err != nil {
		return nil, err
	}

	s.logger.Info("Image uploaded",
		slog.String("file_name", fileName),
		slog.String("public_id", result.PublicID),
	)

	return &service.ImageUpload{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// Delete removes a previously uploaded asset by its public ID.
func (s *cloudinaryService) Delete(ctx context.Context, publicID string) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}

	form := url.Values{}
	for key, value := range params {
		form.Set(key, value)
	}
	form.Set("api_key", s.apiKey)
	form.Set("signature", s.sign(params))

	endpoint := fmt.Sprintf("%s/%s/image/destroy", s.baseURL, s.cloudName)
	if _, err := s.post(ctx, endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode())); err != nil {
		return err
	}

	s.logger.Info("Image deleted", slog.String("public_id", publicID))

	return nil
}

func (s *cloudinaryService) post(ctx context.Context, endpoint, contentType string, body io.Reader) (*uploadResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cloudinary response")
	}

	var result uploadResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.Wrap(err, "failed to decode cloudinary response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if result.Error.Message != "" {
			return nil, errors.Errorf("cloudinary: %s", result.Error.Message)
		}

		return nil, errors.Errorf("cloudinary returned status %d", resp.StatusCode)
	}

	return &result, nil
}

// sign builds the SHA-1 signature Cloudinary expects: parameters sorted by key,
// joined as key=value with '&', with the API secret appended.
func (s *cloudinaryService) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	digest := sha1.Sum([]byte(strings.Join(pairs, "&") + s.apiSecret))

	return hex.EncodeToString(digest[:])
}
