package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"descentcheck/internal/cache"
	"descentcheck/internal/catalog"
	"descentcheck/internal/flow"
	"descentcheck/internal/model"
)

var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrInvalidAnswer   = errors.New("answer value does not fit the question")
)

// SessionService drives a respondent's questionnaire: starting and resuming
// sessions, serving the current question, and applying answers through the
// flow engine. Every mutation writes the full session snapshot back to the
// cache so a page reload resumes exactly where the respondent left off.
type SessionService struct {
	catalog  *catalog.Catalog
	sessions cache.SessionCache
	auth     *AuthService
	results  *ResultService
}

// NewSessionService creates a new session service
func NewSessionService(
	cat *catalog.Catalog,
	sessions cache.SessionCache,
	auth *AuthService,
	results *ResultService,
) *SessionService {
	return &SessionService{
		catalog:  cat,
		sessions: sessions,
		auth:     auth,
		results:  results,
	}
}

// QuestionView is the current-question payload served to the UI.
type QuestionView struct {
	Done     bool              `json:"done"`
	Question *catalog.Question `json:"question,omitempty"`
	Step     int               `json:"step"`
	Total    int               `json:"total"`
}

// SubmitResult is returned after an answer is applied: either the next
// question, or the terminal classification.
type SubmitResult struct {
	Done     bool                        `json:"done"`
	Result   *model.ClassificationRecord `json:"result,omitempty"`
	Question *catalog.Question           `json:"question,omitempty"`
	Step     int                         `json:"step"`
	Total    int                         `json:"total"`
}

// Start opens a new session, or resumes the one named by the given token
// when its snapshot is still alive in the cache.
func (s *SessionService) Start(ctx context.Context, token string) (*model.StartSessionResponse, error) {
	if token != "" {
		if claims, err := s.auth.ValidateSessionToken(token); err == nil {
			sess, err := s.sessions.Get(ctx, claims.SessionID)
			if err != nil {
				return nil, fmt.Errorf("failed to look up session: %w", err)
			}
			if sess != nil {
				return &model.StartSessionResponse{
					SessionID: sess.ID,
					Token:     token,
					Resumed:   true,
				}, nil
			}
		}
	}

	sessionID := "s_" + uuid.New().String()[:8]
	sess := model.NewSession(sessionID)
	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	newToken, err := s.auth.GenerateSessionToken(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &model.StartSessionResponse{
		SessionID: sessionID,
		Token:     newToken,
	}, nil
}

// Current returns the question at the cursor plus progress through the
// derived sequence.
func (s *SessionService) Current(ctx context.Context, sessionID string) (*QuestionView, error) {
	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ledger := flow.ClampCursor(s.catalog, flow.NewLedger(sess.Answers, sess.CurrentStep))
	if ledger.CurrentStep != sess.CurrentStep {
		sess.CurrentStep = ledger.CurrentStep
		if err := s.sessions.Set(ctx, sess); err != nil {
			return nil, fmt.Errorf("failed to store session: %w", err)
		}
	}

	return s.view(ledger), nil
}

// Submit applies an answer to the question at the cursor. On a terminating
// answer the classification record is persisted once and returned.
func (s *SessionService) Submit(ctx context.Context, sessionID, value string) (*SubmitResult, error) {
	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ledger := flow.ClampCursor(s.catalog, flow.NewLedger(sess.Answers, sess.CurrentStep))
	seq := flow.DeriveSequence(s.catalog, ledger)
	if ledger.CurrentStep < len(seq) && !catalog.ValidateAnswer(seq[ledger.CurrentStep], value) {
		return nil, ErrInvalidAnswer
	}

	next, action := flow.ApplyAnswer(s.catalog, ledger, value)

	sess.Answers = next.Answers
	sess.CurrentStep = next.CurrentStep
	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	if action.Kind == flow.ActionTerminate {
		s.results.PersistOnce(ctx, sess, action.Record)
		return &SubmitResult{Done: true, Result: action.Record}, nil
	}

	view := s.view(next)
	return &SubmitResult{
		Done:     view.Done,
		Question: view.Question,
		Step:     view.Step,
		Total:    view.Total,
	}, nil
}

// Back moves the cursor one step towards the start. The answers already
// given stay in the ledger; re-answering is what discards the downstream
// ones.
func (s *SessionService) Back(ctx context.Context, sessionID string) (*QuestionView, error) {
	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.CurrentStep > 0 {
		sess.CurrentStep--
		if err := s.sessions.Set(ctx, sess); err != nil {
			return nil, fmt.Errorf("failed to store session: %w", err)
		}
	}

	ledger := flow.ClampCursor(s.catalog, flow.NewLedger(sess.Answers, sess.CurrentStep))
	return s.view(ledger), nil
}

// Restart wipes the ledger and the result-saved guard but keeps the session
// id, so the respondent's token stays valid.
func (s *SessionService) Restart(ctx context.Context, sessionID string) (*QuestionView, error) {
	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	fresh := model.NewSession(sess.ID)
	fresh.StartedAt = sess.StartedAt
	if err := s.sessions.Set(ctx, fresh); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return s.view(flow.NewLedger(fresh.Answers, fresh.CurrentStep)), nil
}

func (s *SessionService) get(ctx context.Context, sessionID string) (*model.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionService) view(l flow.Ledger) *QuestionView {
	seq := flow.DeriveSequence(s.catalog, l)
	if l.CurrentStep < 0 || l.CurrentStep >= len(seq) {
		return &QuestionView{Done: true, Step: len(seq), Total: len(seq)}
	}
	q := seq[l.CurrentStep]
	return &QuestionView{
		Question: &q,
		Step:     l.CurrentStep + 1,
		Total:    len(seq),
	}
}
