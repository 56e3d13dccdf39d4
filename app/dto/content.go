package dto

type GalleryItemRequest struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Caption   string `json:"caption"`
	ImageKey  string `json:"image_key"`
	ImageURL  string `json:"image_url"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
	Published bool   `json:"published"`
}

type UploadImageResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type TestimonialRequest struct {
	ID       uint   `json:"id"`
	Author   string `json:"author"`
	Location string `json:"location"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
	Approved bool   `json:"approved"`
}

type ApproveRequest struct {
	ID       uint `json:"id"`
	Approved bool `json:"approved"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

type HandledRequest struct {
	ID      uint `json:"id"`
	Handled bool `json:"handled"`
}

type BlogPostRequest struct {
	ID        uint   `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

type IDRequest struct {
	ID uint `json:"id"`
}
