package contentdto

// GalleryImageCreateInput đầu vào thêm ảnh vào thư viện.
type GalleryImageCreateInput struct {
	Title       string `json:"title" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}
