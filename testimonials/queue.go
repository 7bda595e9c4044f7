// Package testimonials is the moderation queue for customer testimonials. New
// entries wait as pending until an admin approves or rejects them; only approved
// entries are shown publicly.
package testimonials

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/babagsm1/etsdiabalystore/models"
	"github.com/babagsm1/etsdiabalystore/store"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// errUnchanged aborts a mutation without writing.
var errUnchanged = errors.New("unchanged")

type Queue struct {
	store *store.Store
	now   func() time.Time
}

func NewQueue(s *store.Store) *Queue {
	return &Queue{
		store: s,
		now:   time.Now,
	}
}

// Submit records a pending testimonial dated with the current UTC day.
func (q *Queue) Submit(ctx context.Context, in models.TestimonialInput) (models.Testimonial, error) {
	testimonial := models.Testimonial{
		ID:      uuid.NewString(),
		Name:    in.Name,
		Country: in.Country,
		Comment: in.Comment,
		Rating:  in.Rating,
		Date:    q.now().UTC().Format(dateLayout),
		Status:  models.TestimonialPending,
	}

	err := store.Mutate(ctx, q.store, store.TestimonialsKey, store.DefaultTestimonials, func(list *[]models.Testimonial) error {
		*list = append(*list, testimonial)
		return nil
	})
	if err != nil {
		return models.Testimonial{}, fmt.Errorf("failed to submit testimonial: %w", err)
	}

	log.Printf("Received testimonial %s from %s", testimonial.ID, testimonial.Name)
	return testimonial, nil
}

func (q *Queue) ListAll(ctx context.Context) ([]models.Testimonial, error) {
	return store.Load(ctx, q.store, store.TestimonialsKey, store.DefaultTestimonials)
}

func (q *Queue) ListApproved(ctx context.Context) ([]models.Testimonial, error) {
	all, err := q.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	approved := make([]models.Testimonial, 0, len(all))
	for _, t := range all {
		if t.Status == models.TestimonialApproved {
			approved = append(approved, t)
		}
	}
	return approved, nil
}

// SetStatus moves a testimonial to approved or rejected. found is false, with no
// error, when id is unknown or storage is unavailable.
func (q *Queue) SetStatus(ctx context.Context, id string, status models.TestimonialStatus) (updated models.Testimonial, found bool, err error) {
	if status != models.TestimonialApproved && status != models.TestimonialRejected {
		return models.Testimonial{}, false, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	if !q.store.Available() {
		return models.Testimonial{}, false, nil
	}

	err = store.Mutate(ctx, q.store, store.TestimonialsKey, store.DefaultTestimonials, func(list *[]models.Testimonial) error {
		for i := range *list {
			if (*list)[i].ID == id {
				(*list)[i].Status = status
				updated = (*list)[i]
				found = true
				return nil
			}
		}
		return errUnchanged
	})
	if errors.Is(err, errUnchanged) {
		return models.Testimonial{}, false, nil
	}
	if err != nil {
		return models.Testimonial{}, false, err
	}

	log.Printf("Testimonial %s is now %s", id, status)
	return updated, found, nil
}
