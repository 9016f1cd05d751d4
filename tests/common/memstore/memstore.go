//go:build unit || e2e

// Package memstore holds in-memory repositories that mirror the PostgreSQL
// constraints the handlers depend on.
package memstore

import (
	"context"
	"sync"

	"sendero-web/internal/domain/contact"
	"sendero-web/internal/domain/feedback"
	"sendero-web/internal/domain/waitlist"
	"sendero-web/internal/infra"
	"sendero-web/internal/pkg/errs"
)

type Store struct {
	mu        sync.Mutex
	signups   []*waitlist.Signup
	emails    map[string]bool
	contacts  []*contact.Submission
	feedbacks []*feedback.Entry
	failWith  error
}

func New() *Store {
	return &Store{emails: map[string]bool{}}
}

// FailWith makes every insert fail with a database failure wrapping err.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func (s *Store) Signups() []*waitlist.Signup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*waitlist.Signup(nil), s.signups...)
}

func (s *Store) Contacts() []*contact.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*contact.Submission(nil), s.contacts...)
}

func (s *Store) FeedbackEntries() []*feedback.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*feedback.Entry(nil), s.feedbacks...)
}

func (s *Store) WaitlistRepo() *WaitlistRepository { return &WaitlistRepository{s} }
func (s *Store) ContactRepo() *ContactRepository   { return &ContactRepository{s} }
func (s *Store) FeedbackRepo() *FeedbackRepository { return &FeedbackRepository{s} }

func (s *Store) failure() error {
	if s.failWith == nil {
		return nil
	}
	return infra.WrapRepoErr("insert failed", s.failWith, infra.KindDBFailure)
}

type WaitlistRepository struct{ s *Store }

func (r *WaitlistRepository) Insert(_ context.Context, signup *waitlist.Signup) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure(); err != nil {
		return err
	}
	if r.s.emails[signup.Email()] {
		return infra.WrapRepoErr("insert waitlist signup", errs.New("unique violation on email"), infra.KindDuplicateKey)
	}
	r.s.emails[signup.Email()] = true
	r.s.signups = append(r.s.signups, signup)
	return nil
}

type ContactRepository struct{ s *Store }

func (r *ContactRepository) Insert(_ context.Context, sub *contact.Submission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure(); err != nil {
		return err
	}
	r.s.contacts = append(r.s.contacts, sub)
	return nil
}

type FeedbackRepository struct{ s *Store }

func (r *FeedbackRepository) Insert(_ context.Context, entry *feedback.Entry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure(); err != nil {
		return err
	}
	r.s.feedbacks = append(r.s.feedbacks, entry)
	return nil
}
