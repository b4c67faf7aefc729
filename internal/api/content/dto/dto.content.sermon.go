package contentdto

// SermonCreateInput đầu vào tạo bài giảng.
type SermonCreateInput struct {
	Title       string `json:"title" validate:"required"`
	Speaker     string `json:"speaker" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Series      string `json:"series,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	AudioURL    string `json:"audioUrl,omitempty"`
}

// SermonUpdateInput đầu vào cập nhật bài giảng. Chỉ các trường có giá trị mới được cập nhật.
type SermonUpdateInput struct {
	Title       string `json:"title,omitempty"`
	Speaker     string `json:"speaker,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Series      string `json:"series,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	AudioURL    string `json:"audioUrl,omitempty"`
}
