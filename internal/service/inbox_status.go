package service

import (
	"fmt"

	"github.com/prismworks/backend/internal/model"
)

// UnifyStatus collapses a store's native status into the shared four-value
// vocabulary used by the unified inbox. "Needs attention" maps to new,
// "actively being worked" to in_progress, a successful terminal outcome to
// converted and an unsuccessful or inactive terminal outcome to closed.
//
// The mapping is total over the native vocabularies. A native status outside
// its store's vocabulary is a data error and is returned as such; defaulting
// it silently would misclassify the record into the wrong inbox bucket and
// hide schema drift in the source store.
func UnifyStatus(source model.InboxSource, native string) (model.UnifiedStatus, error) {
	switch source {
	case model.SourceContact:
		switch native {
		case model.ContactStatusNew:
			return model.UnifiedNew, nil
		case model.ContactStatusRead:
			return model.UnifiedInProgress, nil
		case model.ContactStatusReplied:
			return model.UnifiedConverted, nil
		}
	case model.SourceRequest:
		switch native {
		case model.RequestStatusNew:
			return model.UnifiedNew, nil
		case model.RequestStatusContacted, model.RequestStatusQuoted:
			return model.UnifiedInProgress, nil
		case model.RequestStatusAccepted:
			return model.UnifiedConverted, nil
		case model.RequestStatusDeclined:
			return model.UnifiedClosed, nil
		}
	case model.SourceQuote:
		// The quote store has no explicit converted path; a won quote is
		// recorded by closing it and entering a project or lead by hand.
		switch native {
		case model.QuoteStatusNew:
			return model.UnifiedNew, nil
		case model.QuoteStatusContacted, model.QuoteStatusQuoted:
			return model.UnifiedInProgress, nil
		case model.QuoteStatusClosed:
			return model.UnifiedClosed, nil
		}
	case model.SourceLead:
		switch native {
		case model.LeadStatusNew:
			return model.UnifiedNew, nil
		case model.LeadStatusContacted, model.LeadStatusQualified:
			return model.UnifiedInProgress, nil
		case model.LeadStatusConverted:
			return model.UnifiedConverted, nil
		case model.LeadStatusLost:
			return model.UnifiedClosed, nil
		}
	default:
		return "", fmt.Errorf("unknown inbox source %q", source)
	}
	return "", fmt.Errorf("unmapped status %q for source %q", native, source)
}
