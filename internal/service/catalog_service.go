package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository/selector"
)

// CatalogService defines operations on the swim session catalog.
type CatalogService interface {
	Create(ctx context.Context, session *domain.SwimSession) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.SwimSession, error)
	List(ctx context.Context, includeArchived bool) ([]domain.SwimSession, error)
	// Folders returns the distinct folder paths of the live catalog, sorted.
	Folders(ctx context.Context) ([]string, error)
	Update(ctx context.Context, session *domain.SwimSession) error
	SetArchived(ctx context.Context, id int64, archived bool) error
	Delete(ctx context.Context, id int64) error
}

type catalogService struct {
	sel    *selector.Selector
	errLog *ErrorLog
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(sel *selector.Selector, errLog *ErrorLog) CatalogService {
	return &catalogService{sel: sel, errLog: errLog}
}

func (s *catalogService) Create(ctx context.Context, session *domain.SwimSession) (int64, error) {
	if session.Name == "" {
		return 0, errors.New("catalog session name is required")
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	id, err := s.sel.Provider().SwimSessions().Create(ctx, session)
	if err != nil {
		return 0, s.errLog.Wrap("catalog create", err)
	}
	return id, nil
}

func (s *catalogService) GetByID(ctx context.Context, id int64) (*domain.SwimSession, error) {
	session, err := s.sel.Provider().SwimSessions().GetByID(ctx, id)
	if err != nil {
		return nil, s.errLog.Wrap("catalog get", err)
	}
	session.Items = OrderSwimItems(session.Items)
	return session, nil
}

func (s *catalogService) List(ctx context.Context, includeArchived bool) ([]domain.SwimSession, error) {
	sessions, err := s.sel.Provider().SwimSessions().List(ctx, includeArchived)
	if err != nil {
		return nil, s.errLog.Wrap("catalog list", err)
	}
	for i := range sessions {
		sessions[i].Items = OrderSwimItems(sessions[i].Items)
	}
	return sessions, nil
}

func (s *catalogService) Folders(ctx context.Context) ([]string, error) {
	sessions, err := s.sel.Provider().SwimSessions().List(ctx, false)
	if err != nil {
		return nil, s.errLog.Wrap("catalog folders", err)
	}
	seen := make(map[string]struct{})
	var folders []string
	for _, session := range sessions {
		if session.Folder == "" {
			continue
		}
		if _, ok := seen[session.Folder]; ok {
			continue
		}
		seen[session.Folder] = struct{}{}
		folders = append(folders, session.Folder)
	}
	sort.Strings(folders)
	return folders, nil
}

func (s *catalogService) Update(ctx context.Context, session *domain.SwimSession) error {
	if session.Name == "" {
		return errors.New("catalog session name is required")
	}
	session.UpdatedAt = time.Now()
	if err := s.sel.Provider().SwimSessions().Update(ctx, session); err != nil {
		return s.errLog.Wrap("catalog update", err)
	}
	return nil
}

func (s *catalogService) SetArchived(ctx context.Context, id int64, archived bool) error {
	session, err := s.sel.Provider().SwimSessions().GetByID(ctx, id)
	if err != nil {
		return s.errLog.Wrap("catalog archive", err)
	}
	session.Archived = archived
	session.UpdatedAt = time.Now()
	if err := s.sel.Provider().SwimSessions().Update(ctx, session); err != nil {
		return s.errLog.Wrap("catalog archive", err)
	}
	return nil
}

func (s *catalogService) Delete(ctx context.Context, id int64) error {
	if err := s.sel.Provider().SwimSessions().Delete(ctx, id); err != nil {
		return s.errLog.Wrap("catalog delete", err)
	}
	return nil
}
