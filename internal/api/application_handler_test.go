package api_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/atulv2861/seven-healer-backend/internal/api"
	"github.com/atulv2861/seven-healer-backend/internal/model"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
	"github.com/atulv2861/seven-healer-backend/internal/service"
)

type fakeApplicationService struct {
	submitted []service.CreateApplicationDTO
}

func (f *fakeApplicationService) Submit(ctx context.Context, dto service.CreateApplicationDTO) (*model.JobApplication, error) {
	f.submitted = append(f.submitted, dto)
	return &model.JobApplication{
		ID:     uuid.New(),
		Email:  dto.Email,
		Status: model.ApplicationStatusPending,
	}, nil
}

func (f *fakeApplicationService) Get(ctx context.Context, id uuid.UUID) (*model.JobApplication, error) {
	return nil, service.ErrApplicationNotFound
}

func (f *fakeApplicationService) List(ctx context.Context, filter repository.ApplicationFilter, page, limit int) ([]model.JobApplication, int, error) {
	return []model.JobApplication{}, 0, nil
}

func (f *fakeApplicationService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.JobApplication, error) {
	return nil, service.ErrApplicationNotFound
}

func (f *fakeApplicationService) Delete(ctx context.Context, id uuid.UUID) error {
	return service.ErrApplicationNotFound
}

func newApplicationApp(svc service.ApplicationService) *fiber.App {
	app := fiber.New()
	handler := api.NewApplicationHandler(svc)
	app.Post("/careers/applications", handler.Submit)
	return app
}

func applicantFields() map[string]string {
	return map[string]string{
		"first_name":       "Asha",
		"last_name":        "Verma",
		"email":            "asha.verma@example.com",
		"phone":            "+91 98200 12345",
		"address":          "12 MG Road",
		"city":             "Pune",
		"state":            "Maharashtra",
		"country":          "India",
		"qualification":    "B.E. Civil",
		"experience_years": "4",
	}
}

func TestApplicationHandler_Submit_MultipartForm(t *testing.T) {
	svc := &fakeApplicationService{}
	app := newApplicationApp(svc)

	cvBytes := []byte("%PDF-1.4 resume body")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range applicantFields() {
		require.NoError(t, writer.WriteField(key, value))
	}
	part, err := writer.CreateFormFile("cv", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write(cvBytes)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/careers/applications", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.Len(t, svc.submitted, 1)
	dto := svc.submitted[0]
	require.Equal(t, "Asha", dto.FirstName)
	require.Equal(t, "asha.verma@example.com", dto.Email)
	require.NotNil(t, dto.CVFileName)
	require.Equal(t, "resume.pdf", *dto.CVFileName)
	require.NotNil(t, dto.CVContent)
	require.Equal(t, base64.StdEncoding.EncodeToString(cvBytes), *dto.CVContent)
}

func TestApplicationHandler_Submit_MultipartWithoutFile(t *testing.T) {
	svc := &fakeApplicationService{}
	app := newApplicationApp(svc)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range applicantFields() {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/careers/applications", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.Len(t, svc.submitted, 1)
	require.Nil(t, svc.submitted[0].CVContent)
	require.Nil(t, svc.submitted[0].CVFileName)
}

func TestApplicationHandler_Submit_JSONBody(t *testing.T) {
	svc := &fakeApplicationService{}
	app := newApplicationApp(svc)

	encoded := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 resume body"))
	payload := map[string]any{
		"cv_file_name": "resume.pdf",
		"cv_content":   encoded,
	}
	for key, value := range applicantFields() {
		payload[key] = value
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/careers/applications", bytes.NewReader(raw))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.Len(t, svc.submitted, 1)
	dto := svc.submitted[0]
	require.NotNil(t, dto.CVContent)
	require.Equal(t, encoded, *dto.CVContent)
}
