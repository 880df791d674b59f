package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/smartcodecheck/backend/internal/model"
	"github.com/smartcodecheck/backend/internal/repository"
)

type memUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  []*model.User
	// beforeCreate 在写入前执行，用来模拟并发写入
	beforeCreate func()
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	if hook := r.beforeCreate; hook != nil {
		r.beforeCreate = nil
		hook()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || (u.Email != nil && user.Email != nil && *u.Email == *user.Email) {
			return repository.ErrDuplicated
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users = append(r.users, user)
	return nil
}

func (r *memUserRepo) find(match func(*model.User) bool) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Username == username })
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Email != nil && *u.Email == email })
}

type memDimensionRepo struct {
	nextID       uint
	dims         []*model.CustomDimension
	beforeCreate func()
}

func (r *memDimensionRepo) Create(ctx context.Context, dim *model.CustomDimension) error {
	if hook := r.beforeCreate; hook != nil {
		r.beforeCreate = nil
		hook()
	}
	for _, d := range r.dims {
		if d.UserID == dim.UserID && d.Name == dim.Name {
			return repository.ErrDuplicated
		}
	}
	r.nextID++
	dim.ID = r.nextID
	r.dims = append(r.dims, dim)
	return nil
}

func (r *memDimensionRepo) ListByUser(ctx context.Context, userID uint) ([]*model.CustomDimension, error) {
	var out []*model.CustomDimension
	for _, d := range r.dims {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memDimensionRepo) GetByName(ctx context.Context, userID uint, name string) (*model.CustomDimension, error) {
	for _, d := range r.dims {
		if d.UserID == userID && d.Name == name {
			return d, nil
		}
	}
	return nil, repository.ErrDimensionNotFound
}

func (r *memDimensionRepo) Delete(ctx context.Context, id uint) error {
	for i, d := range r.dims {
		if d.ID == id {
			r.dims = append(r.dims[:i], r.dims[i+1:]...)
			return nil
		}
	}
	return nil
}

type memHistoryRepo struct {
	nextID    uint
	records   []*model.AnalysisHistory
	lastLimit int
}

func (r *memHistoryRepo) CreateWithLimit(ctx context.Context, record *model.AnalysisHistory, limit int) error {
	r.lastLimit = limit
	var same []*model.AnalysisHistory
	for _, h := range r.records {
		if h.UserID == record.UserID && h.Type == record.Type {
			same = append(same, h)
		}
	}
	if len(same) >= limit {
		_ = r.Delete(ctx, same[0].ID)
	}
	r.nextID++
	record.ID = r.nextID
	record.CreatedAt = time.Now()
	r.records = append(r.records, record)
	return nil
}

func (r *memHistoryRepo) List(ctx context.Context, userID uint, historyType string) ([]*model.AnalysisHistory, error) {
	var out []*model.AnalysisHistory
	for _, h := range r.records {
		if h.UserID == userID && (historyType == "" || h.Type == historyType) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memHistoryRepo) GetByID(ctx context.Context, userID, id uint) (*model.AnalysisHistory, error) {
	for _, h := range r.records {
		if h.ID == id && h.UserID == userID {
			return h, nil
		}
	}
	return nil, repository.ErrHistoryNotFound
}

func (r *memHistoryRepo) Delete(ctx context.Context, id uint) error {
	for i, h := range r.records {
		if h.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}
