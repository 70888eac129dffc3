package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atulv2861/seven-healer-backend/internal/model"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
	"github.com/atulv2861/seven-healer-backend/internal/service"
)

func TestJobService_Create_DefaultsToActive(t *testing.T) {
	repo := newFakeJobRepo()
	svc := service.NewJobService(repo)

	job, err := svc.Create(context.Background(), service.CreateJobDTO{
		JobID: "JD-0028", Title: "Site Engineer", Company: "Seven Healer",
		Location: "Pune", Type: "Full Time",
	})
	require.NoError(t, err)
	require.Equal(t, model.JobStatusActive, job.Status)
}

func TestJobService_Create_RejectsBadEnums(t *testing.T) {
	repo := newFakeJobRepo()
	svc := service.NewJobService(repo)

	_, err := svc.Create(context.Background(), service.CreateJobDTO{
		JobID: "JD-1", Title: "X", Type: "Gig",
	})
	require.ErrorIs(t, err, service.ErrInvalidJobType)

	_, err = svc.Create(context.Background(), service.CreateJobDTO{
		JobID: "JD-1", Title: "X", Type: "Full Time", Status: "Open",
	})
	require.ErrorIs(t, err, service.ErrInvalidJobStatus)
}

func TestJobService_ListActive_ForcesActiveStatus(t *testing.T) {
	repo := newFakeJobRepo()
	svc := service.NewJobService(repo)

	_, err := svc.Create(context.Background(), service.CreateJobDTO{
		JobID: "JD-1", Title: "A", Type: "Full Time",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), service.CreateJobDTO{
		JobID: "JD-2", Title: "B", Type: "Full Time", Status: model.JobStatusDraft,
	})
	require.NoError(t, err)

	jobs, total, err := svc.ListActive(context.Background(), repository.JobFilter{}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "JD-1", jobs[0].JobID)
}

func TestJobService_Update_PartialKeepsOtherFields(t *testing.T) {
	repo := newFakeJobRepo()
	svc := service.NewJobService(repo)

	_, err := svc.Create(context.Background(), service.CreateJobDTO{
		JobID: "JD-1", Title: "Site Engineer", Company: "Seven Healer", Type: "Full Time",
		Remuneration: "8-10 LPA",
	})
	require.NoError(t, err)

	newTitle := "Senior Site Engineer"
	updated, err := svc.Update(context.Background(), "JD-1", service.UpdateJobDTO{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, "Senior Site Engineer", updated.Title)
	require.Equal(t, "Seven Healer", updated.Company)
	require.Equal(t, "8-10 LPA", updated.Remuneration)
}

func TestJobService_Update_RenamesJobID(t *testing.T) {
	repo := newFakeJobRepo()
	svc := service.NewJobService(repo)

	_, err := svc.Create(context.Background(), service.CreateJobDTO{
		JobID: "JD-1", Title: "Site Engineer", Type: "Full Time",
	})
	require.NoError(t, err)

	newID := "JD-2024-07"
	updated, err := svc.Update(context.Background(), "JD-1", service.UpdateJobDTO{JobID: &newID})
	require.NoError(t, err)
	require.Equal(t, "JD-2024-07", updated.JobID)
	require.Equal(t, "Site Engineer", updated.Title)

	_, err = svc.Get(context.Background(), "JD-1")
	require.ErrorIs(t, err, service.ErrJobNotFound)

	got, err := svc.Get(context.Background(), "JD-2024-07")
	require.NoError(t, err)
	require.Equal(t, "Site Engineer", got.Title)
}

func TestJobService_Update_RenameToTakenJobID(t *testing.T) {
	repo := newFakeJobRepo()
	svc := service.NewJobService(repo)

	_, err := svc.Create(context.Background(), service.CreateJobDTO{
		JobID: "JD-1", Title: "A", Type: "Full Time",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), service.CreateJobDTO{
		JobID: "JD-2", Title: "B", Type: "Full Time",
	})
	require.NoError(t, err)

	taken := "JD-2"
	_, err = svc.Update(context.Background(), "JD-1", service.UpdateJobDTO{JobID: &taken})
	require.ErrorIs(t, err, service.ErrJobIDTaken)

	kept, err := svc.Get(context.Background(), "JD-1")
	require.NoError(t, err)
	require.Equal(t, "A", kept.Title)
}

func TestJobService_UpdateStatus_Validates(t *testing.T) {
	repo := newFakeJobRepo()
	svc := service.NewJobService(repo)

	_, err := svc.UpdateStatus(context.Background(), "JD-1", "Paused")
	require.ErrorIs(t, err, service.ErrInvalidJobStatus)
}

func TestJobService_Delete_Missing(t *testing.T) {
	repo := newFakeJobRepo()
	svc := service.NewJobService(repo)

	err := svc.Delete(context.Background(), "JD-404")
	require.ErrorIs(t, err, service.ErrJobNotFound)
}
