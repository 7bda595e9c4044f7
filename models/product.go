package models

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	OldPrice    *int64   `json:"oldPrice,omitempty"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Featured    bool     `json:"featured,omitempty"`
	Stock       int      `json:"stock"`
}

// ProductInput is a product without its id. The binding tags carry the admin form
// rules; the catalog itself does not validate.
type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       int64    `json:"price" binding:"required,gt=0"`
	OldPrice    *int64   `json:"oldPrice,omitempty" binding:"omitempty,gtefield=Price"`
	Images      []string `json:"images" binding:"required,min=1,dive,required"`
	Category    string   `json:"category" binding:"required"`
	Featured    bool     `json:"featured,omitempty"`
	Stock       int      `json:"stock" binding:"gte=0"`
}

// WithID builds the stored product for this input.
func (in ProductInput) WithID(id string) Product {
	p := Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Images:      append([]string(nil), in.Images...),
		Category:    in.Category,
		Featured:    in.Featured,
		Stock:       in.Stock,
	}
	if in.OldPrice != nil {
		v := *in.OldPrice
		p.OldPrice = &v
	}
	return p
}

// Clone returns a copy that shares no memory with p.
func (p Product) Clone() Product {
	c := p
	if p.Images != nil {
		c.Images = append([]string(nil), p.Images...)
	}
	if p.OldPrice != nil {
		v := *p.OldPrice
		c.OldPrice = &v
	}
	return c
}
