package model

import "time"

// Profile is the singleton Techfolio document together with its owned child
// collections. Child slices are kept in stored display order.
type Profile struct {
	FullName   string
	Role       string
	Bio        string
	ProfilePic string
	Phone      string
	Email      string
	LinkedIn   string
	Address    string
	UpdatedAt  time.Time

	SocialMedia []SocialMediaLink
	Skills      []Skill
	Experience  []Experience
	Services    []Service
}

type SocialMediaLink struct {
	Platform string
	Link     string
	Active   bool
}

type Skill struct {
	SkillName string
	Rating    float64
	Logo      string
	IsActive  bool
}

type Experience struct {
	CompanyName        string
	JobRole            string
	KeySkill           string
	DateOfJoining      time.Time
	IsCurrentCompany   bool
	LeavingDate        *time.Time
	ProjectDescription string
	CompanyLogo        string
}

type Service struct {
	ServiceName string
	Description string
	Logo        string
}
