package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/boxstory/yk/internal/model"
	"github.com/boxstory/yk/internal/repository"
	"github.com/boxstory/yk/pkg/events"
)

// ── in-memory store shared by the mock repositories ──
//
// One mutex guards every map so the mocks behave like a single database,
// including the unique unit_id on vacancy statuses and FK cascades.

type memStore struct {
	mu         sync.Mutex
	seq        int
	users      map[string]*model.User
	properties map[string]*model.Property
	units      map[string]*model.Unit
	statuses   map[string]*model.VacancyStatus // key: unit_id
	inquiries  []*model.Inquiry
}

func newMemStore() *memStore {
	return &memStore{
		users:      make(map[string]*model.User),
		properties: make(map[string]*model.Property),
		units:      make(map[string]*model.Unit),
		statuses:   make(map[string]*model.VacancyStatus),
	}
}

func (s *memStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%03d", prefix, s.seq)
}

func newTestRepository(store *memStore) *repository.Repository {
	return &repository.Repository{
		User:          &mockUserRepo{store},
		Property:      &mockPropertyRepo{store},
		Unit:          &mockUnitRepo{store},
		VacancyStatus: &mockVacancyStatusRepo{store},
		Inquiry:       &mockInquiryRepo{store},
	}
}

// ── Mock UserRepository ──

type mockUserRepo struct{ s *memStore }

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	if user.UserID == "" {
		user.UserID = m.s.nextID("user")
	}
	user.CreatedAt = time.Now()
	cp := *user
	m.s.users[user.UserID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if u, ok := m.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock PropertyRepository ──

type mockPropertyRepo struct{ s *memStore }

func (m *mockPropertyRepo) Create(_ context.Context, p *model.Property) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if p.PropertyID == "" {
		p.PropertyID = m.s.nextID("prop")
	}
	cp := *p
	m.s.properties[p.PropertyID] = &cp
	return nil
}

func (m *mockPropertyRepo) GetByID(_ context.Context, id string) (*model.Property, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if p, ok := m.s.properties[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPropertyRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Property, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var result []model.Property
	for _, p := range m.s.properties {
		if p.OwnerID == ownerID {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PropertyID < result[j].PropertyID })
	return result, nil
}

func (m *mockPropertyRepo) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var n int64
	for _, p := range m.s.properties {
		if p.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (m *mockPropertyRepo) Update(_ context.Context, p *model.Property) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	existing, ok := m.s.properties[p.PropertyID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	cp.OwnerID = existing.OwnerID
	cp.UnitCount = existing.UnitCount
	m.s.properties[p.PropertyID] = &cp
	return nil
}

func (m *mockPropertyRepo) Delete(_ context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	delete(m.s.properties, id)
	for uid, u := range m.s.units {
		if u.PropertyID == id {
			delete(m.s.units, uid)
			delete(m.s.statuses, uid)
		}
	}
	return nil
}

// ── Mock UnitRepository ──

type mockUnitRepo struct{ s *memStore }

// hydrate copies the unit and attaches property and status like Preload. Caller holds the lock.
func (m *mockUnitRepo) hydrate(u *model.Unit) model.Unit {
	cp := *u
	if p, ok := m.s.properties[u.PropertyID]; ok {
		pc := *p
		cp.Property = &pc
	}
	if vs, ok := m.s.statuses[u.UnitID]; ok {
		vc := *vs
		cp.VacancyStatus = &vc
	}
	return cp
}

func (m *mockUnitRepo) Create(_ context.Context, unit *model.Unit) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	p, ok := m.s.properties[unit.PropertyID]
	if !ok {
		return repository.ErrReferenceMissing
	}
	if unit.UnitID == "" {
		unit.UnitID = m.s.nextID("unit")
	}
	cp := *unit
	cp.Property, cp.VacancyStatus = nil, nil
	m.s.units[unit.UnitID] = &cp
	p.UnitCount++
	return nil
}

func (m *mockUnitRepo) GetByID(_ context.Context, id string) (*model.Unit, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	u, ok := m.s.units[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := m.hydrate(u)
	return &cp, nil
}

func (m *mockUnitRepo) filter(match func(*model.Unit) bool) []model.Unit {
	var result []model.Unit
	for _, u := range m.s.units {
		if match(u) {
			result = append(result, m.hydrate(u))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UnitID < result[j].UnitID })
	return result
}

func (m *mockUnitRepo) ListByOwner(_ context.Context, ownerID, propertyID string) ([]model.Unit, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.filter(func(u *model.Unit) bool {
		return u.OwnerID == ownerID && (propertyID == "" || u.PropertyID == propertyID)
	}), nil
}

func (m *mockUnitRepo) Update(_ context.Context, unit *model.Unit) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	existing, ok := m.s.units[unit.UnitID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *unit
	cp.PropertyID = existing.PropertyID
	cp.OwnerID = existing.OwnerID
	cp.Property, cp.VacancyStatus = nil, nil
	m.s.units[unit.UnitID] = &cp
	return nil
}

func (m *mockUnitRepo) Delete(_ context.Context, unit *model.Unit) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	existing, ok := m.s.units[unit.UnitID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.s.units, unit.UnitID)
	delete(m.s.statuses, unit.UnitID)
	if p, ok := m.s.properties[existing.PropertyID]; ok && p.UnitCount > 0 {
		p.UnitCount--
	}
	return nil
}

func (m *mockUnitRepo) ListByOwnerAndStatus(_ context.Context, ownerID string, status model.VacancyState) ([]model.Unit, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.filter(func(u *model.Unit) bool {
		vs, ok := m.s.statuses[u.UnitID]
		return u.OwnerID == ownerID && ok && vs.Status == status
	}), nil
}

func (m *mockUnitRepo) ListUnlistedByOwner(_ context.Context, ownerID string) ([]model.Unit, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.filter(func(u *model.Unit) bool {
		_, ok := m.s.statuses[u.UnitID]
		return u.OwnerID == ownerID && !ok
	}), nil
}

func (m *mockUnitRepo) CountByStatus(_ context.Context, ownerID string) ([]repository.StatusCount, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	totals := make(map[string]int64)
	for _, u := range m.s.units {
		if u.OwnerID != ownerID {
			continue
		}
		bucket := model.BucketUnlisted
		if vs, ok := m.s.statuses[u.UnitID]; ok {
			bucket = string(vs.Status)
		}
		totals[bucket]++
	}
	var result []repository.StatusCount
	for st, n := range totals {
		result = append(result, repository.StatusCount{Status: st, Total: n})
	}
	return result, nil
}

func (m *mockUnitRepo) ListByStatuses(_ context.Context, statuses []model.VacancyState) ([]model.Unit, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	want := make(map[model.VacancyState]bool, len(statuses))
	for _, st := range statuses {
		want[st] = true
	}
	result := m.filter(func(u *model.Unit) bool {
		vs, ok := m.s.statuses[u.UnitID]
		return ok && want[vs.Status]
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].VacancyStatus.VacantDate.Before(result[j].VacancyStatus.VacantDate)
	})
	return result, nil
}

// ── Mock VacancyStatusRepository ──

type mockVacancyStatusRepo struct {
	s *memStore
}

func (m *mockVacancyStatusRepo) GetOrCreate(_ context.Context, unitID string, vacantDate time.Time) (*model.VacancyStatus, bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.units[unitID]; !ok {
		return nil, false, repository.ErrReferenceMissing
	}
	if vs, ok := m.s.statuses[unitID]; ok {
		cp := *vs
		return &cp, false, nil
	}
	vs := &model.VacancyStatus{
		VacancyStatusID: m.s.nextID("vs"),
		UnitID:          unitID,
		Status:          model.StatusNotSet,
		VacantDate:      vacantDate,
	}
	m.s.statuses[unitID] = vs
	cp := *vs
	return &cp, true, nil
}

func (m *mockVacancyStatusRepo) GetByUnitID(_ context.Context, unitID string) (*model.VacancyStatus, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if vs, ok := m.s.statuses[unitID]; ok {
		cp := *vs
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVacancyStatusRepo) UpdateStatus(_ context.Context, unitID string, status model.VacancyState, vacantDate time.Time) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	vs, ok := m.s.statuses[unitID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	vs.Status = status
	vs.VacantDate = vacantDate
	return nil
}

// ── Mock InquiryRepository ──

type mockInquiryRepo struct{ s *memStore }

func (m *mockInquiryRepo) Create(_ context.Context, inq *model.Inquiry) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if inq.InquiryID == "" {
		inq.InquiryID = m.s.nextID("inq")
	}
	cp := *inq
	m.s.inquiries = append(m.s.inquiries, &cp)
	return nil
}

func (m *mockInquiryRepo) List(_ context.Context, offset, limit int) ([]model.Inquiry, int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	// newest first: reverse insertion order
	var all []model.Inquiry
	for i := len(m.s.inquiries) - 1; i >= 0; i-- {
		all = append(all, *m.s.inquiries[i])
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// ── recording publisher ──

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.StatusChanged
	err    error
}

func (p *recordingPublisher) PublishStatusChanged(_ context.Context, evt events.StatusChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// ── fixtures ──

func seedProperty(s *memStore, ownerID, title string) *model.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &model.Property{
		PropertyID:   s.nextID("prop"),
		OwnerID:      ownerID,
		Title:        title,
		ClientCode:   "C-" + ownerID,
		BuildingCode: "BLD-TEST",
	}
	s.properties[p.PropertyID] = p
	return p
}

func seedUnit(s *memStore, prop *model.Property, number int) *model.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &model.Unit{
		UnitID:     s.nextID("unit"),
		PropertyID: prop.PropertyID,
		OwnerID:    prop.OwnerID,
		UnitNumber: number,
		Category:   model.Category2BHK,
		Price:      5000,
		Bedrooms:   2,
		Bathrooms:  2,
		Furnished:  model.Unfurnished,
	}
	s.units[u.UnitID] = u
	prop.UnitCount++
	return u
}

func seedStatus(s *memStore, unit *model.Unit, status model.VacancyState, vacantDate time.Time) *model.VacancyStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs := &model.VacancyStatus{
		VacancyStatusID: s.nextID("vs"),
		UnitID:          unit.UnitID,
		Status:          status,
		VacantDate:      vacantDate,
	}
	s.statuses[unit.UnitID] = vs
	return vs
}

func statusRowCount(s *memStore) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.statuses)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
