package service_test

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/atulv2861/seven-healer-backend/internal/mailer"
	"github.com/atulv2861/seven-healer-backend/internal/model"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
	"github.com/atulv2861/seven-healer-backend/internal/service"
)

func newTestTemplates(t *testing.T) *mailer.TemplateStore {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"cv_email.html":        "<p>{{first_name}} {{last_name}} applied for {{job_id}}</p>",
		"cv_confirmation.html": "<p>Dear {{first_name}}, we received your application.</p>",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return mailer.NewTemplateStore(dir)
}

func newAppService(t *testing.T) (service.ApplicationService, *fakeJobRepo, *fakeApplicationRepo, *fakeMailer, *fakePublisher) {
	t.Helper()
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	mail := &fakeMailer{}
	pub := &fakePublisher{}
	svc := service.NewApplicationService(appRepo, jobRepo, mail, newTestTemplates(t), pub, "careers@sevenhealer.com")
	return svc, jobRepo, appRepo, mail, pub
}

func seedJob(t *testing.T, repo *fakeJobRepo, jobID string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &model.JobOpening{
		JobID:  jobID,
		Title:  "Site Engineer",
		Type:   "Full Time",
		Status: model.JobStatusActive,
	}))
}

func validApplication(jobID *string) service.CreateApplicationDTO {
	return service.CreateApplicationDTO{
		FirstName:            "Jane",
		LastName:             "Doe",
		Email:                "jane@example.com",
		Phone:                "+1 555 123 4567",
		Address:              "1 Main St",
		City:                 "Pune",
		State:                "MH",
		Country:              "India",
		Qualification:        "B.E.",
		ExperienceYears:      "5",
		ApplyForAvailableJob: jobID != nil,
		SelectedJobID:        jobID,
	}
}

func TestApplicationService_Submit_RequiresJobSelection(t *testing.T) {
	svc, _, _, _, _ := newAppService(t)

	dto := validApplication(nil)
	dto.ApplyForAvailableJob = true

	_, err := svc.Submit(context.Background(), dto)
	require.ErrorIs(t, err, service.ErrJobSelectionRequired)
}

func TestApplicationService_Submit_UnknownJob(t *testing.T) {
	svc, _, _, _, _ := newAppService(t)

	jobID := "JD-9999"
	_, err := svc.Submit(context.Background(), validApplication(&jobID))
	require.ErrorIs(t, err, service.ErrUnknownJob)
}

func TestApplicationService_Submit_SendsInboxAndConfirmationMail(t *testing.T) {
	svc, jobRepo, _, mail, pub := newAppService(t)
	seedJob(t, jobRepo, "JD-0028")

	jobID := "JD-0028"
	cv := base64.StdEncoding.EncodeToString([]byte("fake pdf bytes"))
	name := "cv.pdf"
	dto := validApplication(&jobID)
	dto.CVFileName = &name
	dto.CVContent = &cv

	app, err := svc.Submit(context.Background(), dto)
	require.NoError(t, err)
	require.Equal(t, model.ApplicationStatusPending, app.Status)
	require.NotNil(t, app.CVSize)
	require.Equal(t, int64(len("fake pdf bytes")), *app.CVSize)

	require.Len(t, mail.sent, 2)
	require.Equal(t, "careers@sevenhealer.com", mail.sent[0].To)
	require.Contains(t, mail.sent[0].HTMLBody, "Jane Doe applied for JD-0028")
	require.Len(t, mail.sent[0].Attachments, 1)
	require.Equal(t, "cv.pdf", mail.sent[0].Attachments[0].Filename)
	require.Equal(t, "jane@example.com", mail.sent[1].To)
	require.True(t, strings.Contains(mail.sent[1].HTMLBody, "Dear Jane"))

	// the publish is fire-and-forget
	require.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		return pub.applications == 1
	}, time.Second, 10*time.Millisecond)
}

func TestApplicationService_Submit_InvalidBase64CV(t *testing.T) {
	svc, jobRepo, _, _, _ := newAppService(t)
	seedJob(t, jobRepo, "JD-0028")

	jobID := "JD-0028"
	bad := "not base64 !!!"
	dto := validApplication(&jobID)
	dto.CVContent = &bad

	_, err := svc.Submit(context.Background(), dto)
	require.ErrorIs(t, err, service.ErrInvalidCV)
}

func TestApplicationService_Submit_OversizedCV(t *testing.T) {
	svc, jobRepo, _, _, _ := newAppService(t)
	seedJob(t, jobRepo, "JD-0028")

	jobID := "JD-0028"
	big := base64.StdEncoding.EncodeToString(make([]byte, mailer.MaxAttachmentSize+1))
	dto := validApplication(&jobID)
	dto.CVContent = &big

	_, err := svc.Submit(context.Background(), dto)
	require.ErrorIs(t, err, service.ErrCVTooLarge)
}

func TestApplicationService_Submit_DuplicatePairConflicts(t *testing.T) {
	svc, jobRepo, _, _, _ := newAppService(t)
	seedJob(t, jobRepo, "JD-0028")

	jobID := "JD-0028"
	_, err := svc.Submit(context.Background(), validApplication(&jobID))
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), validApplication(&jobID))
	require.ErrorIs(t, err, service.ErrDuplicateApplication)
}

func TestApplicationService_Submit_MailFailureFailsRequest(t *testing.T) {
	svc, jobRepo, appRepo, mail, _ := newAppService(t)
	seedJob(t, jobRepo, "JD-0028")
	mail.err = errors.New("smtp connection refused")

	jobID := "JD-0028"
	_, err := svc.Submit(context.Background(), validApplication(&jobID))
	require.Error(t, err)

	// the stored row survives for admin follow-up
	_, total, err := appRepo.List(context.Background(), repository.ApplicationFilter{}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, total)
}

func TestApplicationService_UpdateStatus_Validates(t *testing.T) {
	svc, _, _, _, _ := newAppService(t)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "Lost")
	require.ErrorIs(t, err, service.ErrInvalidAppStatus)
}
