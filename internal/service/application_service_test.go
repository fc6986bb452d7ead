package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/events"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
)

type appFixture struct {
	svc      *ApplicationService
	notif    *NotificationService
	users    *fakeUserRepo
	jobs     *fakeJobRepo
	employer *models.User
	job      *models.Job
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	users := newFakeUserRepo()
	jobs := newFakeJobRepo()
	apps := newFakeAppRepo()
	notifSvc := NewNotificationService(newFakeNotifRepo(), events.Nop{}, zap.NewNop().Sugar())

	employer := users.add(&models.User{Surname: "Boss", Role: models.RoleEmployer})
	job := &models.Job{Title: "Backend Intern", PostedBy: employer.ID.Hex()}
	require.NoError(t, jobs.Insert(context.Background(), job))

	return &appFixture{
		svc:      NewApplicationService(apps, jobs, users, notifSvc),
		notif:    notifSvc,
		users:    users,
		jobs:     jobs,
		employer: employer,
		job:      job,
	}
}

func TestApplyRoleRules(t *testing.T) {
	f := newAppFixture(t)

	_, _, err := f.svc.Apply(context.Background(), f.job.ID.Hex(), f.employer)
	require.Error(t, err)
	assert.Equal(t, 403, apperr.StatusOf(err))

	available := true
	mentor := f.users.add(&models.User{Surname: "Ment", Role: models.RoleMentor, Availability: &available})
	_, _, err = f.svc.Apply(context.Background(), f.job.ID.Hex(), mentor)
	require.Error(t, err)
	assert.Equal(t, 403, apperr.StatusOf(err))

	// a mentor who turned availability off may apply
	unavailable := false
	mentor2 := f.users.add(&models.User{Surname: "Ment2", Role: models.RoleMentor, Availability: &unavailable})
	app, already, err := f.svc.Apply(context.Background(), f.job.ID.Hex(), mentor2)
	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, models.ApplicationPending, app.Status)
}

func TestApplyDuplicateIsFriendly(t *testing.T) {
	f := newAppFixture(t)
	student := f.users.add(&models.User{Surname: "Stu", Role: models.RoleStudent})

	first, already, err := f.svc.Apply(context.Background(), f.job.ID.Hex(), student)
	require.NoError(t, err)
	assert.False(t, already)

	second, already, err := f.svc.Apply(context.Background(), f.job.ID.Hex(), student)
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, first.ID, second.ID)

	// employer got exactly one notification
	ns, err := f.notif.ListForUser(context.Background(), f.employer.ID.Hex())
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Equal(t, "New job application for Backend Intern", ns[0].Message)
}

func TestReviewApplication(t *testing.T) {
	f := newAppFixture(t)
	student := f.users.add(&models.User{Surname: "Stu", Role: models.RoleStudent})
	app, _, err := f.svc.Apply(context.Background(), f.job.ID.Hex(), student)
	require.NoError(t, err)

	err = f.svc.Review(context.Background(), app.ID.Hex(), f.employer.ID.Hex(), "maybe")
	require.Error(t, err)
	assert.Equal(t, "Invalid status value.", apperr.MessageOf(err))

	outsider := f.users.add(&models.User{Surname: "Other", Role: models.RoleEmployer})
	err = f.svc.Review(context.Background(), app.ID.Hex(), outsider.ID.Hex(), models.ApplicationAccepted)
	require.Error(t, err)
	assert.Equal(t, 403, apperr.StatusOf(err))

	require.NoError(t, f.svc.Review(context.Background(), app.ID.Hex(), f.employer.ID.Hex(), models.ApplicationAccepted))
	ns, err := f.notif.ListForUser(context.Background(), student.ID.Hex())
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Equal(t, `Your application for "Backend Intern" has been accepted.`, ns[0].Message)
}
