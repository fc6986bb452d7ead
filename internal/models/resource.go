package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ResourceCategories = []string{
	"Interview Preparation",
	"Resume & Cover Letter Writing",
	"Career Growth Strategies",
	"Networking & Personal Branding",
	"Internship & Job Search Tips",
	"Time Management & Productivity",
	"Public Speaking & Communication Skills",
	"Freelancing & Side Hustles",
	"Leadership & Teamwork",
	"Technical Skills & Certifications",
	"Soft Skills Development",
	"Entrepreneurship & Startups",
	"Work-Life Balance & Mental Well-being",
	"Industry Insights & Trends",
	"Scholarships & Study Abroad Tips",
	"Others",
}

type Resource struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Body        string             `bson:"body" json:"body"`
	Price       int                `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	AccessCount int                `bson:"access_count" json:"accessCount"`
	UploadedBy  string             `bson:"uploaded_by" json:"uploadedBy"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
