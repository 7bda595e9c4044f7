package models

type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "pending"
	TestimonialApproved TestimonialStatus = "approved"
	TestimonialRejected TestimonialStatus = "rejected"
)

type Testimonial struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Country string            `json:"country"`
	Comment string            `json:"comment"`
	Rating  int               `json:"rating"`
	Date    string            `json:"date,omitempty"`
	Status  TestimonialStatus `json:"status,omitempty"`
}

type TestimonialInput struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required"`
	Comment string `json:"comment" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

type UpdateTestimonialStatusRequest struct {
	Status TestimonialStatus `json:"status" binding:"required,oneof=approved rejected"`
}
