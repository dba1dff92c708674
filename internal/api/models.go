package api

import "time"

// Role determines route and feature visibility. Issued by the server inside
// the access token; immutable on the client once issued.
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleInstructor Role = "INSTRUCTOR"
	RoleAdmin      Role = "ADMIN"
)

// Valid reports whether the role is one the platform knows about.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User is the platform account as returned by the API.
type User struct {
	ID        int64  `json:"id"`
	Role      Role   `json:"role"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	IsActive  bool   `json:"is_active,omitempty"`
}

// FullName returns the display name, falling back to the email address.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}

// TokenPair is the credential pair issued on login and register. The access
// token is short-lived and presented on every call; the refresh token is an
// opaque longer-lived credential used only to obtain a new access token.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthPayload is the server response for login and register.
type AuthPayload struct {
	User   *User     `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// Page is the paginated list envelope the API wraps collection results in.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type Course struct {
	ID              int64     `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category,omitempty"`
	Level           string    `json:"level,omitempty"`
	Price           string    `json:"price,omitempty"`
	InstructorName  string    `json:"instructor_name,omitempty"`
	Status          string    `json:"status,omitempty"`
	IsFeatured      bool      `json:"is_featured,omitempty"`
	Rating          float64   `json:"rating,omitempty"`
	EnrollmentCount int       `json:"enrollment_count,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
}

type Lesson struct {
	ID              int64  `json:"id"`
	CourseID        int64  `json:"course"`
	Title           string `json:"title"`
	Content         string `json:"content,omitempty"`
	VideoURL        string `json:"video_url,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Order           int    `json:"order,omitempty"`
	IsCompleted     bool   `json:"is_completed,omitempty"`
}

type Quiz struct {
	ID               int64  `json:"id"`
	CourseID         int64  `json:"course"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	PassingScore     int    `json:"passing_score,omitempty"`
	TimeLimitMinutes int    `json:"time_limit_minutes,omitempty"`
	QuestionCount    int    `json:"question_count,omitempty"`
}

type Question struct {
	ID            int64    `json:"id"`
	QuizID        int64    `json:"quiz"`
	Text          string   `json:"text"`
	Choices       []string `json:"choices"`
	CorrectChoice int      `json:"correct_choice,omitempty"`
	Points        int      `json:"points,omitempty"`
}

// Answer is a single response inside a quiz submission.
type Answer struct {
	Question int64 `json:"question"`
	Selected int   `json:"selected"`
}

type QuizAttempt struct {
	ID          int64      `json:"id"`
	QuizID      int64      `json:"quiz"`
	QuizTitle   string     `json:"quiz_title,omitempty"`
	Score       float64    `json:"score,omitempty"`
	Passed      bool       `json:"passed,omitempty"`
	StartedAt   time.Time  `json:"started_at,omitzero"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Enrollment struct {
	ID         int64     `json:"id"`
	Course     Course    `json:"course"`
	EnrolledAt time.Time `json:"enrolled_at,omitzero"`
	Progress   float64   `json:"progress,omitempty"`
	Completed  bool      `json:"completed,omitempty"`
}

type CourseProgress struct {
	CourseID         int64   `json:"course"`
	CompletedLessons int     `json:"completed_lessons"`
	TotalLessons     int     `json:"total_lessons"`
	Percent          float64 `json:"percent"`
}

type Review struct {
	ID         int64     `json:"id"`
	CourseID   int64     `json:"course"`
	AuthorName string    `json:"author_name,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
}

type Discussion struct {
	ID         int64     `json:"id"`
	CourseID   int64     `json:"course"`
	AuthorName string    `json:"author_name,omitempty"`
	Title      string    `json:"title"`
	Body       string    `json:"body,omitempty"`
	ReplyCount int       `json:"reply_count,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
}

type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}
