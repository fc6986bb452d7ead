package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	JobLocations        = []string{"On-Campus", "Off-Campus", "Remote"}
	JobTypes            = []string{"Full-time", "Part-time", "Contract", "Internship"}
	JobExperienceLevels = []string{"Entry", "Intermediate", "Mid-level", "Senior"}
	JobCurrencies       = []string{"NGN", "USD", "EUR", "GBP"}
	ApplicationMethods  = []string{"careerconnect", "external", "email"}
)

type Job struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title             string             `bson:"title" json:"title"`
	Company           string             `bson:"company" json:"company"`
	Description       string             `bson:"description" json:"description"`
	Location          string             `bson:"location" json:"location"`
	LocationDetails   string             `bson:"location_details,omitempty" json:"locationDetails,omitempty"`
	Type              string             `bson:"type" json:"type"`
	ExperienceLevel   string             `bson:"experience_level" json:"experienceLevel"`
	MinSalary         int                `bson:"min_salary,omitempty" json:"minSalary,omitempty"`
	MaxSalary         int                `bson:"max_salary,omitempty" json:"maxSalary,omitempty"`
	Currency          string             `bson:"currency" json:"currency"`
	ApplicationMethod string             `bson:"application_method" json:"applicationMethod"`
	ApplicationLink   string             `bson:"application_link,omitempty" json:"applicationLink,omitempty"`
	PostedBy          string             `bson:"posted_by" json:"postedBy"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}

func OneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
