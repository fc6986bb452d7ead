package service

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
)

// In-memory repository fakes so the service layer can be tested without a
// running mongod.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(u *models.User) *models.User {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users[u.ID.Hex()] = u
	return u
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.add(u)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmailOrPhone(_ context.Context, email, phone string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email || u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) List(_ context.Context, role string) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListIDsByRole(_ context.Context, role string) ([]string, error) {
	var ids []string
	for id, u := range r.users {
		if u.Role == role {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id string, set bson.M) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	if v, ok := set["availability"].(bool); ok {
		u.Availability = &v
	}
	if v, ok := set["surname"].(string); ok {
		u.Surname = v
	}
	if v, ok := set["bio"].(string); ok {
		u.Bio = v
	}
	return u, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) PushPostedJob(_ context.Context, userID, jobID string) error {
	if u, ok := r.users[userID]; ok {
		u.PostedJobs = append(u.PostedJobs, jobID)
	}
	return nil
}

func (r *fakeUserRepo) PullPostedJob(_ context.Context, userID, jobID string) error {
	u, ok := r.users[userID]
	if !ok {
		return nil
	}
	var kept []string
	for _, id := range u.PostedJobs {
		if id != jobID {
			kept = append(kept, id)
		}
	}
	u.PostedJobs = kept
	return nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) SearchMentors(_ context.Context, q string, _, _ int64) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		if u.Role == models.RoleMentor && (u.Surname == q || u.Othername == q) {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeConvRepo struct {
	byKey map[string]*models.Conversation
	byID  map[string]*models.Conversation
}

func newFakeConvRepo() *fakeConvRepo {
	return &fakeConvRepo{
		byKey: make(map[string]*models.Conversation),
		byID:  make(map[string]*models.Conversation),
	}
}

func (r *fakeConvRepo) GetOrCreate(_ context.Context, a, b string) (*models.Conversation, error) {
	key := models.PairKeyOf(a, b)
	if c, ok := r.byKey[key]; ok {
		return c, nil
	}
	now := time.Now().UTC()
	c := &models.Conversation{
		ID:           primitive.NewObjectID(),
		Participants: models.ParticipantPair(a, b),
		PairKey:      key,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.byKey[key] = c
	r.byID[c.ID.Hex()] = c
	return c, nil
}

func (r *fakeConvRepo) FindByID(_ context.Context, id string) (*models.Conversation, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

func (r *fakeConvRepo) ListForUser(_ context.Context, userID string) ([]*models.Conversation, error) {
	var out []*models.Conversation
	for _, c := range r.byID {
		if c.HasParticipant(userID) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *fakeConvRepo) SetLastMessage(_ context.Context, convID, messageID string, at time.Time) error {
	c, ok := r.byID[convID]
	if !ok {
		return apperr.ErrNotFound
	}
	c.LastMessage = messageID
	c.UpdatedAt = at
	return nil
}

type fakeMsgRepo struct {
	msgs []*models.Message
}

func newFakeMsgRepo() *fakeMsgRepo { return &fakeMsgRepo{} }

func (r *fakeMsgRepo) Insert(_ context.Context, m *models.Message) error {
	m.ID = primitive.NewObjectID()
	cp := *m
	r.msgs = append(r.msgs, &cp)
	return nil
}

func (r *fakeMsgRepo) FindByID(_ context.Context, id string) (*models.Message, error) {
	for _, m := range r.msgs {
		if m.ID.Hex() == id {
			return m, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakeMsgRepo) ListForConversation(_ context.Context, convID string, limit int64) ([]*models.Message, error) {
	var out []*models.Message
	for _, m := range r.msgs {
		if m.ConversationID == convID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SentAt.Before(out[j].SentAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMsgRepo) SetRead(_ context.Context, id string) error {
	for _, m := range r.msgs {
		if m.ID.Hex() == id {
			m.Read = true
			return nil
		}
	}
	return apperr.ErrNotFound
}

type fakeNotifRepo struct {
	notifs []*models.Notification
}

func newFakeNotifRepo() *fakeNotifRepo { return &fakeNotifRepo{} }

func (r *fakeNotifRepo) Insert(_ context.Context, n *models.Notification) error {
	n.ID = primitive.NewObjectID()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	r.notifs = append(r.notifs, n)
	return nil
}

func (r *fakeNotifRepo) InsertMany(ctx context.Context, ns []*models.Notification) error {
	for _, n := range ns {
		if err := r.Insert(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeNotifRepo) FindByID(_ context.Context, id string) (*models.Notification, error) {
	for _, n := range r.notifs {
		if n.ID.Hex() == id {
			return n, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakeNotifRepo) ListForUser(_ context.Context, userID string) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range r.notifs {
		if n.User == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotifRepo) MarkRead(_ context.Context, id string) error {
	for _, n := range r.notifs {
		if n.ID.Hex() == id {
			n.IsRead = true
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (r *fakeNotifRepo) MarkAllRead(_ context.Context, userID string) error {
	for _, n := range r.notifs {
		if n.User == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotifRepo) Delete(_ context.Context, id string) error {
	for i, n := range r.notifs {
		if n.ID.Hex() == id {
			r.notifs = append(r.notifs[:i], r.notifs[i+1:]...)
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (r *fakeNotifRepo) DeleteAllForUser(_ context.Context, userID string) error {
	var kept []*models.Notification
	for _, n := range r.notifs {
		if n.User != userID {
			kept = append(kept, n)
		}
	}
	r.notifs = kept
	return nil
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo { return &fakeJobRepo{jobs: make(map[string]*models.Job)} }

func (r *fakeJobRepo) Insert(_ context.Context, j *models.Job) error {
	j.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	r.jobs[j.ID.Hex()] = j
	return nil
}

func (r *fakeJobRepo) FindByID(_ context.Context, id string) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return j, nil
}

func (r *fakeJobRepo) ListAll(_ context.Context) ([]*models.Job, error) {
	var out []*models.Job
	for _, j := range r.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (r *fakeJobRepo) ListByPoster(_ context.Context, userID string) ([]*models.Job, error) {
	var out []*models.Job
	for _, j := range r.jobs {
		if j.PostedBy == userID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Update(_ context.Context, id string, set bson.M) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	if v, ok := set["title"].(string); ok {
		j.Title = v
	}
	if v, ok := set["description"].(string); ok {
		j.Description = v
	}
	return j, nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.jobs)), nil
}

func (r *fakeJobRepo) Search(_ context.Context, q string, _, _ int64) ([]*models.Job, error) {
	var out []*models.Job
	for _, j := range r.jobs {
		if j.Title == q || j.Company == q {
			out = append(out, j)
		}
	}
	return out, nil
}

type fakeAppRepo struct {
	apps []*models.JobApplication
}

func newFakeAppRepo() *fakeAppRepo { return &fakeAppRepo{} }

func (r *fakeAppRepo) Insert(_ context.Context, a *models.JobApplication) error {
	a.ID = primitive.NewObjectID()
	if a.Status == "" {
		a.Status = models.ApplicationPending
	}
	a.AppliedAt = time.Now().UTC()
	r.apps = append(r.apps, a)
	return nil
}

func (r *fakeAppRepo) FindByID(_ context.Context, id string) (*models.JobApplication, error) {
	for _, a := range r.apps {
		if a.ID.Hex() == id {
			return a, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakeAppRepo) FindByJobAndApplicant(_ context.Context, jobID, applicantID string) (*models.JobApplication, error) {
	for _, a := range r.apps {
		if a.Job == jobID && a.Applicant == applicantID {
			return a, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakeAppRepo) ListForJob(_ context.Context, jobID string) ([]*models.JobApplication, error) {
	var out []*models.JobApplication
	for _, a := range r.apps {
		if a.Job == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) ListForApplicant(_ context.Context, applicantID string) ([]*models.JobApplication, error) {
	var out []*models.JobApplication
	for _, a := range r.apps {
		if a.Applicant == applicantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) UpdateStatus(_ context.Context, id, status string) error {
	for _, a := range r.apps {
		if a.ID.Hex() == id {
			a.Status = status
			return nil
		}
	}
	return apperr.ErrNotFound
}

type fakeResourceRepo struct {
	resources map[string]*models.Resource
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{resources: make(map[string]*models.Resource)}
}

func (r *fakeResourceRepo) Insert(_ context.Context, res *models.Resource) error {
	res.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now
	r.resources[res.ID.Hex()] = res
	return nil
}

func (r *fakeResourceRepo) FindByID(_ context.Context, id string) (*models.Resource, error) {
	res, ok := r.resources[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *fakeResourceRepo) ListAll(_ context.Context) ([]*models.Resource, error) {
	var out []*models.Resource
	for _, res := range r.resources {
		out = append(out, res)
	}
	return out, nil
}

func (r *fakeResourceRepo) ListByUploader(_ context.Context, userID string) ([]*models.Resource, error) {
	var out []*models.Resource
	for _, res := range r.resources {
		if res.UploadedBy == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeResourceRepo) IncrementAccess(_ context.Context, id string) error {
	res, ok := r.resources[id]
	if !ok {
		return apperr.ErrNotFound
	}
	res.AccessCount++
	return nil
}

func (r *fakeResourceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.resources[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.resources, id)
	return nil
}

func (r *fakeResourceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.resources)), nil
}

func (r *fakeResourceRepo) Search(_ context.Context, q string, _, _ int64) ([]*models.Resource, error) {
	var out []*models.Resource
	for _, res := range r.resources {
		if res.Title == q {
			out = append(out, res)
		}
	}
	return out, nil
}

type fakeMentorshipRepo struct {
	ms []*models.Mentorship
}

func newFakeMentorshipRepo() *fakeMentorshipRepo { return &fakeMentorshipRepo{} }

func (r *fakeMentorshipRepo) Insert(_ context.Context, m *models.Mentorship) error {
	m.ID = primitive.NewObjectID()
	if m.Status == "" {
		m.Status = models.MentorshipPending
	}
	m.RequestedAt = time.Now().UTC()
	r.ms = append(r.ms, m)
	return nil
}

func (r *fakeMentorshipRepo) FindByID(_ context.Context, id string) (*models.Mentorship, error) {
	for _, m := range r.ms {
		if m.ID.Hex() == id {
			return m, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakeMentorshipRepo) FindPending(_ context.Context, menteeID, mentorID string) (*models.Mentorship, error) {
	for _, m := range r.ms {
		if m.Mentee == menteeID && m.Mentor == mentorID && m.Status == models.MentorshipPending {
			return m, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakeMentorshipRepo) ListForUser(_ context.Context, userID string) ([]*models.Mentorship, error) {
	var out []*models.Mentorship
	for _, m := range r.ms {
		if m.Mentee == userID || m.Mentor == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMentorshipRepo) SetStatus(_ context.Context, id, status string, acceptedAt *time.Time) error {
	for _, m := range r.ms {
		if m.ID.Hex() == id {
			m.Status = status
			m.AcceptedAt = acceptedAt
			return nil
		}
	}
	return apperr.ErrNotFound
}
