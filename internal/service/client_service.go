package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/prismworks/backend/internal/model"
	"github.com/prismworks/backend/internal/repository"
)

// ClientService produces per-client summaries by folding projects, leads,
// project requests, and contact submissions into one record per email
// address.
type ClientService interface {
	// List consolidates the four stores into per-email summaries, sorted
	// by last activity (most recent first). Identity is exact raw email
	// equality; records with an empty email are skipped. Same
	// all-or-nothing failure semantics as the inbox read.
	List(ctx context.Context) ([]*model.ClientSummary, error)
}

type clientServiceImpl struct {
	projects repository.ProjectRepository
	leads    repository.LeadRepository
	requests repository.RequestRepository
	contacts repository.ContactRepository
}

// NewClientService creates a ClientService reading from the four given stores.
func NewClientService(
	projects repository.ProjectRepository,
	leads repository.LeadRepository,
	requests repository.RequestRepository,
	contacts repository.ContactRepository,
) ClientService {
	return &clientServiceImpl{
		projects: projects,
		leads:    leads,
		requests: requests,
		contacts: contacts,
	}
}

func (s *clientServiceImpl) List(ctx context.Context) ([]*model.ClientSummary, error) {
	var (
		projects []*model.Project
		leads    []*model.Lead
		requests []*model.ProjectRequest
		contacts []*model.ContactSubmission
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if projects, err = s.projects.ListAll(gctx); err != nil {
			return fmt.Errorf("read projects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if leads, err = s.leads.ListAll(gctx); err != nil {
			return fmt.Errorf("read leads: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if requests, err = s.requests.ListAll(gctx); err != nil {
			return fmt.Errorf("read project requests: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if contacts, err = s.contacts.ListAll(gctx); err != nil {
			return fmt.Errorf("read contact submissions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := newClientMerge()

	// Projects carry the client name the agency actually uses, so they are
	// folded in first: first-non-empty wins for every optional field.
	for _, p := range projects {
		c := m.get(p.ClientEmail)
		if c == nil {
			continue
		}
		mergeField(&c.Name, p.ClientName)
		m.widen(c, p.CreatedAt, p.UpdatedAt)
		c.ProjectIDs = append(c.ProjectIDs, p.ID)
	}
	for _, l := range leads {
		c := m.get(l.Email)
		if c == nil {
			continue
		}
		mergeField(&c.Name, l.Name)
		mergeField(&c.Phone, l.Phone)
		mergeField(&c.Company, l.Company)
		last := l.UpdatedAt
		if l.LastContactedAt != nil && l.LastContactedAt.After(last) {
			last = *l.LastContactedAt
		}
		m.widen(c, l.CreatedAt, last)
		c.LeadIDs = append(c.LeadIDs, l.ID)
	}
	for _, r := range requests {
		c := m.get(r.Email)
		if c == nil {
			continue
		}
		mergeField(&c.Name, r.Name)
		mergeField(&c.Company, r.BusinessName)
		m.widen(c, r.CreatedAt, r.UpdatedAt)
		c.RequestIDs = append(c.RequestIDs, r.ID)
	}
	for _, sub := range contacts {
		c := m.get(sub.Email)
		if c == nil {
			continue
		}
		mergeField(&c.Name, sub.Name)
		m.widen(c, sub.CreatedAt, sub.UpdatedAt)
		c.ContactIDs = append(c.ContactIDs, sub.ID)
	}

	out := m.summaries()
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastActivityAt.After(out[j].LastActivityAt)
	})
	return out, nil
}

// clientMerge accumulates summaries keyed by raw email.
type clientMerge struct {
	byEmail map[string]*model.ClientSummary
	order   []string
}

func newClientMerge() *clientMerge {
	return &clientMerge{byEmail: make(map[string]*model.ClientSummary)}
}

// get returns the summary for email, creating it on first sight. An empty
// email has no client identity and yields nil.
func (m *clientMerge) get(email string) *model.ClientSummary {
	if email == "" {
		return nil
	}
	if c, ok := m.byEmail[email]; ok {
		return c
	}
	c := &model.ClientSummary{
		Email:      email,
		ProjectIDs: []string{},
		LeadIDs:    []string{},
		RequestIDs: []string{},
		ContactIDs: []string{},
	}
	m.byEmail[email] = c
	m.order = append(m.order, email)
	return c
}

// widen grows the first-seen/last-activity window of c to cover the given
// created/activity pair.
func (m *clientMerge) widen(c *model.ClientSummary, created, activity time.Time) {
	if c.FirstSeenAt.IsZero() || created.Before(c.FirstSeenAt) {
		c.FirstSeenAt = created
	}
	if activity.After(c.LastActivityAt) {
		c.LastActivityAt = activity
	}
}

func (m *clientMerge) summaries() []*model.ClientSummary {
	out := make([]*model.ClientSummary, 0, len(m.order))
	for _, email := range m.order {
		out = append(out, m.byEmail[email])
	}
	return out
}

// mergeField sets *dst to v only when *dst is still empty.
func mergeField(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}
