package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/events"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *recordingMailer) Send(_ context.Context, to, subject, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+": "+subject)
	return nil
}

type mentorshipFixture struct {
	svc    *MentorshipService
	notif  *NotificationService
	users  *fakeUserRepo
	mail   *recordingMailer
	mentee *models.User
	mentor *models.User
}

func newMentorshipFixture() *mentorshipFixture {
	users := newFakeUserRepo()
	mail := &recordingMailer{}
	notifSvc := NewNotificationService(newFakeNotifRepo(), events.Nop{}, zap.NewNop().Sugar())
	svc := NewMentorshipService(newFakeMentorshipRepo(), users, notifSvc, mail, zap.NewNop().Sugar())
	return &mentorshipFixture{
		svc:    svc,
		notif:  notifSvc,
		users:  users,
		mail:   mail,
		mentee: users.add(&models.User{Surname: "Stu", Othername: "Dent", Role: models.RoleStudent, Email: "stu@example.com"}),
		mentor: users.add(&models.User{Surname: "Men", Othername: "Tor", Role: models.RoleMentor, Email: "men@example.com"}),
	}
}

func TestMentorshipRequestRules(t *testing.T) {
	f := newMentorshipFixture()

	_, err := f.svc.Request(context.Background(), f.mentee, f.mentor.ID.Hex(), "")
	require.Error(t, err)
	assert.Equal(t, "Request message is required", apperr.MessageOf(err))

	employer := f.users.add(&models.User{Surname: "Boss", Role: models.RoleEmployer})
	_, err = f.svc.Request(context.Background(), employer, f.mentor.ID.Hex(), "hi")
	require.Error(t, err)
	assert.Equal(t, 403, apperr.StatusOf(err))

	// target must actually be a mentor
	other := f.users.add(&models.User{Surname: "Peer", Role: models.RoleStudent})
	_, err = f.svc.Request(context.Background(), f.mentee, other.ID.Hex(), "hi")
	require.Error(t, err)
	assert.Equal(t, "Mentor not found", apperr.MessageOf(err))

	m, err := f.svc.Request(context.Background(), f.mentee, f.mentor.ID.Hex(), "please mentor me")
	require.NoError(t, err)
	assert.Equal(t, models.MentorshipPending, m.Status)

	_, err = f.svc.Request(context.Background(), f.mentee, f.mentor.ID.Hex(), "again")
	require.Error(t, err)
	assert.Equal(t, "Request already sent", apperr.MessageOf(err))

	ns, err := f.notif.ListForUser(context.Background(), f.mentor.ID.Hex())
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Equal(t, "Dent Stu has sent you a mentorship request.", ns[0].Message)
}

func TestMentorshipDecision(t *testing.T) {
	f := newMentorshipFixture()
	m, err := f.svc.Request(context.Background(), f.mentee, f.mentor.ID.Hex(), "please")
	require.NoError(t, err)

	// only the addressed mentor may decide
	err = f.svc.Accept(context.Background(), m.ID.Hex(), f.mentee.ID.Hex())
	require.Error(t, err)
	assert.Equal(t, 403, apperr.StatusOf(err))

	require.NoError(t, f.svc.Accept(context.Background(), m.ID.Hex(), f.mentor.ID.Hex()))

	views, err := f.svc.List(context.Background(), f.mentee.ID.Hex())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, models.MentorshipAccepted, views[0].Status)
	assert.NotNil(t, views[0].AcceptedAt)
	require.NotNil(t, views[0].MentorInfo)
	assert.Equal(t, "Men", views[0].MentorInfo.Surname)

	ns, err := f.notif.ListForUser(context.Background(), f.mentee.ID.Hex())
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Contains(t, ns[0].Message, "accepted")

	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, "stu@example.com: Mentorship request accepted", f.mail.sent[0])
}

func TestMentorshipReject(t *testing.T) {
	f := newMentorshipFixture()
	m, err := f.svc.Request(context.Background(), f.mentee, f.mentor.ID.Hex(), "please")
	require.NoError(t, err)

	require.NoError(t, f.svc.Reject(context.Background(), m.ID.Hex(), f.mentor.ID.Hex()))

	views, err := f.svc.List(context.Background(), f.mentor.ID.Hex())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, models.MentorshipRejected, views[0].Status)
	assert.Nil(t, views[0].AcceptedAt)
}
