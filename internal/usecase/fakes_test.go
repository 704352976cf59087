package usecase

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"corruptx/internal/domain/entity"
	"corruptx/internal/domain/repository"
	"corruptx/internal/domain/service"
	"corruptx/pkg/errors"
)

// In-memory fakes backing the use case tests. Error fields let a test
// force a failure at one step to exercise the compensation paths.

type fakeReportRepo struct {
	mu        sync.Mutex
	reports   map[string]*entity.Report
	createErr error
	updateErr error
	deleteErr error
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*entity.Report)}
}

func (f *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *report
	f.reports[report.ID] = &stored
	return nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reports[id]
	if !ok {
		return nil, errors.NotFound("Report", nil)
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReportRepo) List(ctx context.Context, filter repository.ReportFilter, limit, offset int) ([]*entity.Report, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []*entity.Report
	for _, r := range f.reports {
		if filter.CampaignID != "" && r.CampaignID != filter.CampaignID {
			continue
		}
		if filter.CorruptionType != "" && r.CorruptionType != filter.CorruptionType {
			continue
		}
		if filter.IsAnonymous != nil && r.IsAnonymous != *filter.IsAnonymous {
			continue
		}
		if filter.CampaignPending != nil && r.CampaignPending != *filter.CampaignPending {
			continue
		}
		if filter.CreatedFrom != nil && r.CreatedAt.Before(*filter.CreatedFrom) {
			continue
		}
		if filter.CreatedTo != nil && r.CreatedAt.After(*filter.CreatedTo) {
			continue
		}
		copied := *r
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset > 0 {
		if offset >= len(matched) {
			return nil, total, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (f *fakeReportRepo) ListByCampaignRequest(ctx context.Context, requestID string) ([]*entity.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.Report
	for _, r := range f.reports {
		if r.CampaignRequestID == requestID {
			copied := *r
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (f *fakeReportRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Report, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.Report
	for _, r := range f.reports {
		if r.UserID == userID {
			copied := *r
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, int64(len(matched)), nil
}

func (f *fakeReportRepo) Update(ctx context.Context, report *entity.Report) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reports[report.ID]; !ok {
		return errors.NotFound("Report", nil)
	}
	stored := *report
	f.reports[report.ID] = &stored
	return nil
}

func (f *fakeReportRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reports[id]; !ok {
		return errors.NotFound("Report", nil)
	}
	delete(f.reports, id)
	return nil
}

type fakeCampaignRepo struct {
	mu        sync.Mutex
	campaigns map[string]*entity.Campaign
	createErr error
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: make(map[string]*entity.Campaign)}
}

func (f *fakeCampaignRepo) Create(ctx context.Context, campaign *entity.Campaign) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *campaign
	f.campaigns[campaign.ID] = &stored
	return nil
}

func (f *fakeCampaignRepo) GetByID(ctx context.Context, id string) (*entity.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok {
		return nil, errors.NotFound("Campaign", nil)
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCampaignRepo) List(ctx context.Context, status string) ([]*entity.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.Campaign
	for _, c := range f.campaigns {
		if status != "" && c.Status != status {
			continue
		}
		copied := *c
		matched = append(matched, &copied)
	}
	return matched, nil
}

func (f *fakeCampaignRepo) Update(ctx context.Context, campaign *entity.Campaign) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.campaigns[campaign.ID]; !ok {
		return errors.NotFound("Campaign", nil)
	}
	stored := *campaign
	f.campaigns[campaign.ID] = &stored
	return nil
}

func (f *fakeCampaignRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.campaigns, id)
	return nil
}

type fakeCampaignRequestRepo struct {
	mu        sync.Mutex
	requests  map[string]*entity.CampaignRequest
	statusErr error
}

func newFakeCampaignRequestRepo() *fakeCampaignRequestRepo {
	return &fakeCampaignRequestRepo{requests: make(map[string]*entity.CampaignRequest)}
}

func (f *fakeCampaignRequestRepo) Create(ctx context.Context, request *entity.CampaignRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *request
	f.requests[request.ID] = &stored
	return nil
}

func (f *fakeCampaignRequestRepo) GetByID(ctx context.Context, id string) (*entity.CampaignRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[id]
	if !ok {
		return nil, errors.NotFound("Campaign request", nil)
	}
	copied := *r
	return &copied, nil
}

func (f *fakeCampaignRequestRepo) List(ctx context.Context) ([]*entity.CampaignRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.CampaignRequest
	for _, r := range f.requests {
		copied := *r
		all = append(all, &copied)
	}
	return all, nil
}

func (f *fakeCampaignRequestRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[id]
	if !ok {
		return errors.NotFound("Campaign request", nil)
	}
	r.Status = status
	return nil
}

type fakeReporterRepo struct {
	mu        sync.Mutex
	reporters map[string]*entity.Reporter
}

func newFakeReporterRepo() *fakeReporterRepo {
	return &fakeReporterRepo{reporters: make(map[string]*entity.Reporter)}
}

func (f *fakeReporterRepo) Create(ctx context.Context, reporter *entity.Reporter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *reporter
	f.reporters[reporter.ID] = &stored
	return nil
}

func (f *fakeReporterRepo) GetByID(ctx context.Context, id string) (*entity.Reporter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reporters[id]
	if !ok {
		return nil, errors.NotFound("Reporter", nil)
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReporterRepo) GetByUserID(ctx context.Context, userID string) (*entity.Reporter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reporters {
		if r.UserID == userID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Reporter", nil)
}

func (f *fakeReporterRepo) List(ctx context.Context) ([]*entity.Reporter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Reporter
	for _, r := range f.reporters {
		copied := *r
		all = append(all, &copied)
	}
	return all, nil
}

func (f *fakeReporterRepo) Update(ctx context.Context, reporter *entity.Reporter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reporters[reporter.ID]; !ok {
		return errors.NotFound("Reporter", nil)
	}
	stored := *reporter
	f.reporters[reporter.ID] = &stored
	return nil
}

type fakeAssignmentRepo struct {
	mu          sync.Mutex
	assignments map[string]*entity.ReporterAssignment
	statusErr   error
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: make(map[string]*entity.ReporterAssignment)}
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, assignment *entity.ReporterAssignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *assignment
	f.assignments[assignment.ID] = &stored
	return nil
}

func (f *fakeAssignmentRepo) GetByID(ctx context.Context, id string) (*entity.ReporterAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.assignments[id]
	if !ok {
		return nil, errors.NotFound("Assignment", nil)
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAssignmentRepo) ListByReporter(ctx context.Context, reporterID, status string) ([]*entity.ReporterAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.ReporterAssignment
	for _, a := range f.assignments {
		if a.ReporterID != reporterID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		copied := *a
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (f *fakeAssignmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.assignments[id]
	if !ok {
		return errors.NotFound("Assignment", nil)
	}
	a.Status = status
	return nil
}

type fakeProfileRepo struct {
	mu        sync.Mutex
	profiles  map[string]*entity.Profile
	createErr error
	roleErr   error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*entity.Profile)}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *profile
	f.profiles[profile.ID] = &stored
	return nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.Email == email {
			copied := *p
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Profile", nil)
}

func (f *fakeProfileRepo) List(ctx context.Context, limit, offset int) ([]*entity.Profile, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Profile
	for _, p := range f.profiles {
		copied := *p
		all = append(all, &copied)
	}
	total := int64(len(all))
	if offset > 0 && offset < len(all) {
		all = all[offset:]
	}
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (f *fakeProfileRepo) UpdateRole(ctx context.Context, id, role string) error {
	if f.roleErr != nil {
		return f.roleErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return errors.NotFound("Profile", nil)
	}
	p.Role = role
	return nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[profile.ID]; !ok {
		return errors.NotFound("Profile", nil)
	}
	stored := *profile
	f.profiles[profile.ID] = &stored
	return nil
}

type fakeMediaStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	uploadErr error
	removeErr error
	signErr   error
	removed   []string
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{objects: make(map[string][]byte)}
}

func (f *fakeMediaStore) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return nil
}

func (f *fakeMediaStore) Remove(ctx context.Context, key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[key]; !ok {
		return errors.NotFound("Object", nil)
	}
	delete(f.objects, key)
	f.removed = append(f.removed, key)
	return nil
}

func (f *fakeMediaStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	return "https://signed.example/" + key, nil
}

func (f *fakeMediaStore) PublicURL(key string) string {
	return "https://storage.example/" + key
}

func (f *fakeMediaStore) List(ctx context.Context, prefix string) ([]service.ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var infos []service.ObjectInfo
	for name, data := range f.objects {
		infos = append(infos, service.ObjectInfo{Name: name, Size: int64(len(data))})
	}
	return infos, nil
}

func (f *fakeMediaStore) Close() error {
	return nil
}

func (f *fakeMediaStore) objectCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

type fakeAuthProvider struct {
	mu          sync.Mutex
	users       map[string]string
	nextUID     string
	createErr   error
	signInErr   error
	deletedUIDs []string
}

func newFakeAuthProvider() *fakeAuthProvider {
	return &fakeAuthProvider{users: make(map[string]string), nextUID: "uid-1"}
}

func (f *fakeAuthProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[email] = f.nextUID
	return f.nextUID, nil
}

func (f *fakeAuthProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, uid := range f.users {
		if token == "token-for-"+email {
			return uid, nil
		}
	}
	return "", errors.Unauthorized("Invalid token", nil)
}

func (f *fakeAuthProvider) DeleteUser(ctx context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedUIDs = append(f.deletedUIDs, uid)
	for email, u := range f.users {
		if u == uid {
			delete(f.users, email)
		}
	}
	return nil
}

func (f *fakeAuthProvider) SignInWithEmailPassword(email, password string) (string, error) {
	if f.signInErr != nil {
		return "", f.signInErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[email]; !ok {
		return "", errors.Unauthorized("Invalid email or password", nil)
	}
	return "token-for-" + email, nil
}
