package authdto

// AdminRegisterInput đầu vào đăng ký quản trị viên.
type AdminRegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AdminLoginInput đầu vào đăng nhập quản trị viên.
type AdminLoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminInfo thông tin quản trị viên trả về cho client (không chứa mật khẩu).
type AdminInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AdminLoginResult kết quả đăng nhập: token kèm thông tin quản trị viên.
type AdminLoginResult struct {
	Token string    `json:"token"`
	Admin AdminInfo `json:"admin"`
}
