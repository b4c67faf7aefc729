// Package contentdto - các DTO đầu vào của domain content.
package contentdto

// EventCreateInput đầu vào tạo sự kiện.
type EventCreateInput struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Category    string `json:"category,omitempty"`
}

// EventUpdateInput đầu vào cập nhật sự kiện. Chỉ các trường có giá trị mới được cập nhật.
type EventUpdateInput struct {
	Title       string `json:"title,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category,omitempty"`
}
