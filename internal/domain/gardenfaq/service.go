package gardenfaq

import (
	"context"
	"log/slog"
	"strings"
)

// Service exposes FAQ lookups to presentation layers.
type Service interface {
	Search(ctx context.Context, req Request) (Response, error)
	Categories(ctx context.Context) ([]string, error)
	Warmup(ctx context.Context) error
}

// DatabaseLoader yields the session database.
type DatabaseLoader interface {
	Load(ctx context.Context) (*Database, error)
}

type service struct {
	loader DatabaseLoader
	logger *slog.Logger
}

// NewService wires up the FAQ domain.
func NewService(loader DatabaseLoader, logger *slog.Logger) Service {
	return &service{
		loader: loader,
		logger: logger.With("component", "gardenfaq.service"),
	}
}

func (s *service) Search(ctx context.Context, req Request) (Response, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = CategoryAll
	}
	resp := Response{
		Query:      req.Query,
		Category:   category,
		Candidates: []Candidate{},
	}

	db, err := s.loader.Load(ctx)
	if err != nil {
		return resp, err
	}

	matches := Search(req.Query, db, category)
	if len(matches) == 0 {
		s.logger.Debug("faq search returned no matches", "query", req.Query, "category", category)
		return resp, nil
	}

	for _, m := range matches {
		resp.Candidates = append(resp.Candidates, Candidate{
			ID:       m.Record.ID,
			Label:    m.Record.Label(),
			Category: m.Record.Category,
			Score:    m.Score,
		})
	}
	best := bestAnswer(Normalize(req.Query), matches[0].Record)
	resp.Best = &best
	return resp, nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	db, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Categories(db), nil
}

func (s *service) Warmup(ctx context.Context) error {
	_, err := s.loader.Load(ctx)
	return err
}

// bestAnswer picks the QA entry of rec whose question equals the query, else
// the first one overlapping it, else the first entry.
func bestAnswer(normalized string, rec Record) Answer {
	ans := Answer{RecordID: rec.ID, Label: rec.Label(), Category: rec.Category}
	if len(rec.QA) == 0 {
		return ans
	}
	chosen := -1
	if normalized != "" {
		for i, qa := range rec.QA {
			q := Normalize(qa.Q)
			if q == "" {
				continue
			}
			if q == normalized {
				chosen = i
				break
			}
			if chosen < 0 && overlaps(q, normalized) {
				chosen = i
			}
		}
	}
	if chosen < 0 {
		chosen = 0
	}
	ans.Question = rec.QA[chosen].Q
	ans.Answer = rec.QA[chosen].A
	return ans
}
