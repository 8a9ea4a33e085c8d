package models

import "time"

// Directory records: read-only reference data about who is studying where.
// Content authoring and enrollment management live elsewhere; this service
// only serves them.

type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role" json:"role"`
	CampusID  string    `bson:"campus_id,omitempty" json:"campus_id,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type Campus struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Name     string `bson:"name" json:"name"`
	Location string `bson:"location" json:"location"`
}

type Class struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Name     string `bson:"name" json:"name"`
	CampusID string `bson:"campus_id" json:"campus_id"`
	Term     string `bson:"term" json:"term"`
}

type ClassEnrollment struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	ClassID    string    `bson:"class_id" json:"class_id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	EnrolledAt time.Time `bson:"enrolled_at" json:"enrolled_at"`
}

// Benchmark is a per-category reference score cohorts are measured against.
type Benchmark struct {
	ID           string  `bson:"_id,omitempty" json:"id"`
	Category     string  `bson:"category" json:"category"`
	TargetScore  float64 `bson:"target_score" json:"target_score"`
	CohortMean   float64 `bson:"cohort_mean" json:"cohort_mean"`
}
