package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/prismworks/backend/internal/model"
	"github.com/prismworks/backend/internal/repository"
)

// InboxService produces the unified admin inbox: one list spanning contact
// submissions, project requests, quote requests, and leads.
type InboxService interface {
	// List reads all four stores and returns one item per record, tagged
	// with its source and carrying a unified status. The result is grouped
	// by source but otherwise unordered; callers that need a global order
	// must sort. All-or-nothing: if any store read fails, or any record
	// carries a status outside its store's vocabulary, the whole read
	// fails and no partial list is returned.
	List(ctx context.Context) ([]*model.InboxItem, error)
}

type inboxServiceImpl struct {
	contacts repository.ContactRepository
	requests repository.RequestRepository
	quotes   repository.QuoteRepository
	leads    repository.LeadRepository
}

// NewInboxService creates an InboxService reading from the four given stores.
func NewInboxService(
	contacts repository.ContactRepository,
	requests repository.RequestRepository,
	quotes repository.QuoteRepository,
	leads repository.LeadRepository,
) InboxService {
	return &inboxServiceImpl{
		contacts: contacts,
		requests: requests,
		quotes:   quotes,
		leads:    leads,
	}
}

// List implements the aggregation. The four stores are disjoint and are read
// concurrently; there is no cross-store snapshot, so the four reads observe
// the stores at slightly different times. That staleness is accepted — the
// stores are mutated independently by their own admin screens and the inbox
// is refresh-driven.
//
// The same human submitting through two different forms yields two separate
// items: the inbox does not de-duplicate across stores.
func (s *inboxServiceImpl) List(ctx context.Context) ([]*model.InboxItem, error) {
	var (
		contacts []*model.ContactSubmission
		requests []*model.ProjectRequest
		quotes   []*model.QuoteRequest
		leads    []*model.Lead
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if contacts, err = s.contacts.ListAll(gctx); err != nil {
			return fmt.Errorf("read contact submissions: %w", err)
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
		if quotes, err = s.quotes.ListAll(gctx); err != nil {
			return fmt.Errorf("read quote requests: %w", err)
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
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]*model.InboxItem, 0, len(contacts)+len(requests)+len(quotes)+len(leads))

	for _, c := range contacts {
		unified, err := UnifyStatus(model.SourceContact, c.Status)
		if err != nil {
			return nil, err
		}
		items = append(items, &model.InboxItem{
			ID:            c.ID,
			Source:        model.SourceContact,
			Name:          c.Name,
			Email:         c.Email,
			UnifiedStatus: unified,
			CreatedAt:     c.CreatedAt,
			SourceData:    c,
		})
	}
	for _, r := range requests {
		unified, err := UnifyStatus(model.SourceRequest, r.Status)
		if err != nil {
			return nil, err
		}
		items = append(items, &model.InboxItem{
			ID:            r.ID,
			Source:        model.SourceRequest,
			Name:          r.Name,
			Email:         r.Email,
			UnifiedStatus: unified,
			CreatedAt:     r.CreatedAt,
			SourceData:    r,
		})
	}
	for _, q := range quotes {
		unified, err := UnifyStatus(model.SourceQuote, q.Status)
		if err != nil {
			return nil, err
		}
		items = append(items, &model.InboxItem{
			ID:            q.ID,
			Source:        model.SourceQuote,
			Name:          q.Name,
			Email:         q.Email,
			UnifiedStatus: unified,
			CreatedAt:     q.CreatedAt,
			SourceData:    q,
		})
	}
	for _, l := range leads {
		unified, err := UnifyStatus(model.SourceLead, l.Status)
		if err != nil {
			return nil, err
		}
		items = append(items, &model.InboxItem{
			ID:            l.ID,
			Source:        model.SourceLead,
			Name:          l.Name,
			Email:         l.Email,
			UnifiedStatus: unified,
			CreatedAt:     l.CreatedAt,
			SourceData:    l,
		})
	}

	return items, nil
}
