package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID    string `gorm:"primaryKey;size:10" json:"id"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	PasswordHash string `json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         Role   `gorm:"type:text;not null;index" json:"role"`

	Phone   string `json:"phone"`
	College string `json:"college"`
	Bio     string `gorm:"type:text" json:"bio"`

	Skills   datatypes.JSON    `gorm:"type:jsonb" json:"skills"`  // array of strings
	Profile  datatypes.JSONMap `gorm:"type:jsonb" json:"profile"` // linkedin, github, website, city, state
	Progress datatypes.JSONMap `gorm:"type:jsonb" json:"progress"`

	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type Resume struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"index;size:10;not null" json:"user_id"`

	Title    string `json:"title"`
	Template string `json:"template"` // modern | classic | minimal

	Personal       datatypes.JSONMap `gorm:"type:jsonb" json:"personal"`
	Education      datatypes.JSON    `gorm:"type:jsonb" json:"education"`
	Experience     datatypes.JSON    `gorm:"type:jsonb" json:"experience"`
	Skills         datatypes.JSON    `gorm:"type:jsonb" json:"skills"`
	Projects       datatypes.JSON    `gorm:"type:jsonb" json:"projects"`
	Certifications datatypes.JSON    `gorm:"type:jsonb" json:"certifications"`

	// Version increments by exactly one on every successful update, in the
	// same statement as the field write. Lost updates are detectable after
	// the fact by comparing versions.
	Version  int  `gorm:"not null;default:1" json:"version"`
	IsPublic bool `gorm:"default:false" json:"is_public"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Record struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"index;size:10;not null" json:"user_id"`

	Type        string         `gorm:"index" json:"type"` // certificate | achievement | project | internship
	Title       string         `json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Issuer      string         `json:"issuer"`
	Date        string         `json:"date"`
	FileURL     string         `json:"file_url"` // R2 object key
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`

	CreatedAt time.Time `json:"created_at"`
}

// ProgressReport is the per-user progress document. One row per user,
// written with upsert semantics (update by owner id, insert on no match).
type ProgressReport struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"uniqueIndex;size:10;not null" json:"user_id"`

	CareerReadiness  int               `json:"career_readiness"` // 0-100
	Skills           datatypes.JSONMap `gorm:"type:jsonb" json:"skills"`
	SessionsAttended int               `json:"sessions_attended"`
	JobsApplied      int               `json:"jobs_applied"`
	ResumeViews      int               `json:"resume_views"`
	WeeklyGoals      datatypes.JSON    `gorm:"type:jsonb" json:"weekly_goals"`

	UpdatedAt time.Time `json:"updated_at"`
}

type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

type Contact struct {
	ID      string        `gorm:"primaryKey;type:uuid" json:"id"`
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Role    string        `json:"role"`
	Message string        `gorm:"type:text" json:"message"`
	Status  ContactStatus `gorm:"type:text;default:new;index" json:"status"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

type NewsletterSubscriber struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `json:"name"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

type BlogPost struct {
	ID         string         `gorm:"primaryKey;type:uuid" json:"id"`
	Title      string         `json:"title"`
	Slug       string         `gorm:"index" json:"slug"`
	Content    string         `gorm:"type:text" json:"content"`
	Excerpt    string         `json:"excerpt"`
	Tags       datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	AuthorID   string         `gorm:"size:10" json:"author_id"`
	AuthorName string         `json:"author_name"`
	Published  bool           `gorm:"default:false;index" json:"published"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Testimonial struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID   string `gorm:"index;size:10" json:"user_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Text     string `gorm:"type:text" json:"text"`
	Rating   int    `gorm:"default:5" json:"rating"` // 1-5
	Approved bool   `gorm:"default:false;index" json:"approved"`

	CreatedAt time.Time `json:"created_at"`
}

type SessionStatus string

const (
	SessionStatusBooked    SessionStatus = "booked"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

type MentorSession struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	StudentID string `gorm:"index;size:10;not null" json:"student_id"`
	MentorID  string `gorm:"index;size:10" json:"mentor_id"`

	ScheduledAt time.Time     `gorm:"index" json:"scheduled_at"`
	Duration    int           `json:"duration"` // minutes
	Type        string        `json:"type"`     // career | resume | mock_interview | general
	Status      SessionStatus `gorm:"type:text;default:booked;index" json:"status"`
	Notes       string        `gorm:"type:text" json:"notes"`
	Feedback    string        `gorm:"type:text" json:"feedback"`
	Rating      int           `json:"rating"`

	CreatedAt time.Time `json:"created_at"`
}
