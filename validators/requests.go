package validators

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateCourseRequest is the body of POST /api/courses. Course fields sans id.
type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
	Duration    string `json:"duration" validate:"required"`
	Level       string `json:"level" validate:"required"`
	Rating      string `json:"rating" validate:"required"`
	RatingCount int    `json:"ratingCount" validate:"gte=0"`
	IsPopular   *bool  `json:"isPopular"`
}

// EnrollRequest is the body of POST /api/enrollments.
type EnrollRequest struct {
	UserID   uint `json:"userId" validate:"required"`
	CourseID uint `json:"courseId" validate:"required"`
}
