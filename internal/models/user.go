package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleStudent  = "student"
	RoleMentor   = "mentor"
	RoleEmployer = "employer"
	RoleAdmin    = "admin"
)

type Education struct {
	School string `bson:"school,omitempty" json:"school,omitempty"`
	Degree string `bson:"degree,omitempty" json:"degree,omitempty"`
	Year   string `bson:"year,omitempty" json:"year,omitempty"`
}

type Certification struct {
	Name string `bson:"name,omitempty" json:"name,omitempty"`
	Year string `bson:"year,omitempty" json:"year,omitempty"`
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Surname      string             `bson:"surname" json:"surname"`
	Othername    string             `bson:"othername" json:"othername"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Department   string             `bson:"department,omitempty" json:"department,omitempty"`

	Education      []Education     `bson:"education,omitempty" json:"education,omitempty"`
	Certifications []Certification `bson:"certifications,omitempty" json:"certifications,omitempty"`

	// students
	Level             string   `bson:"level,omitempty" json:"level,omitempty"`
	Skills            []string `bson:"skills,omitempty" json:"skills,omitempty"`
	YearsOfExperience int      `bson:"years_of_experience,omitempty" json:"yearsOfExperience,omitempty"`

	// mentors
	YearOfGraduation int    `bson:"year_of_graduation,omitempty" json:"yearOfGraduation,omitempty"`
	JobTitle         string `bson:"job_title,omitempty" json:"jobTitle,omitempty"`
	Availability     *bool  `bson:"availability,omitempty" json:"availability,omitempty"`

	// mentors and employers
	Industry    string `bson:"industry,omitempty" json:"industry,omitempty"`
	CompanyName string `bson:"company_name,omitempty" json:"companyName,omitempty"`
	Website     string `bson:"website,omitempty" json:"website,omitempty"`

	PostedJobs []string `bson:"posted_jobs,omitempty" json:"postedJobs,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserSummary is the participant projection embedded in conversation and
// mentorship reads.
type UserSummary struct {
	ID        string `bson:"_id" json:"id"`
	Surname   string `bson:"surname" json:"surname"`
	Othername string `bson:"othername" json:"othername"`
	Role      string `bson:"role" json:"role"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID.Hex(),
		Surname:   u.Surname,
		Othername: u.Othername,
		Role:      u.Role,
	}
}

func (u *User) FullName() string {
	return u.Othername + " " + u.Surname
}
