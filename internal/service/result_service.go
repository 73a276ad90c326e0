package service

import (
	"context"
	"log"

	"descentcheck/internal/cache"
	"descentcheck/internal/catalog"
	"descentcheck/internal/flow"
	"descentcheck/internal/model"
	"descentcheck/internal/repository"
)

// ResultService re-derives the eligibility verdict for the terminal view
// and persists it to the results collection, exactly once per session.
type ResultService struct {
	catalog  *catalog.Catalog
	sessions cache.SessionCache
	results  repository.ResultRepository
}

// NewResultService creates a new result service
func NewResultService(
	cat *catalog.Catalog,
	sessions cache.SessionCache,
	results repository.ResultRepository,
) *ResultService {
	return &ResultService{
		catalog:  cat,
		sessions: sessions,
		results:  results,
	}
}

// Get classifies the session's ledger. The explanation and route flag come
// from the client's navigation context; the classifier decides whether the
// forwarded explanation is usable.
func (s *ResultService) Get(ctx context.Context, sessionID, explanation string, hasRoute bool) (*model.ClassificationRecord, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	ledger := flow.NewLedger(sess.Answers, sess.CurrentStep)
	rec := flow.Classify(s.catalog, ledger, flow.NavContext{
		Explanation: explanation,
		HasRoute:    hasRoute,
	})

	s.PersistOnce(ctx, sess, &rec)
	return &rec, nil
}

// PersistOnce writes the classification record to the results collection
// unless the session already has one. The guard flag is flipped and saved
// before the write so a race cannot produce a second record; a failed write
// is logged and dropped rather than surfaced, the respondent still gets
// their verdict.
func (s *ResultService) PersistOnce(ctx context.Context, sess *model.Session, rec *model.ClassificationRecord) {
	if sess.ResultSaved {
		return
	}
	// Control outcomes are not verdicts; nothing to persist.
	if rec.Category == model.CategoryIncomplete || rec.Category == model.CategoryRestart {
		return
	}

	sess.ResultSaved = true
	if err := s.sessions.Set(ctx, sess); err != nil {
		log.Printf("failed to mark result saved for session %s: %v", sess.ID, err)
		sess.ResultSaved = false
		return
	}

	section := ""
	if len(rec.Sections) > 0 {
		section = rec.Sections[0]
	}

	record := &model.ResultRecord{
		SessionID:       sess.ID,
		EligibleSection: section,
		IsEligible:      rec.Eligible,
		NeedsReview:     rec.NeedsReview,
		Explanation:     rec.Message,
		UserData:        sess.Answers,
	}
	if err := s.results.Save(ctx, record); err != nil {
		log.Printf("failed to save result for session %s: %v", sess.ID, err)
	}
}
