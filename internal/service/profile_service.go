package service

import (
	"context"
	"fmt"

	"github.com/techfolio/api/internal/assets"
	"github.com/techfolio/api/internal/model"
)

// ProfileStore abstracts the repository the read projections pull from.
type ProfileStore interface {
	Get(ctx context.Context) (*model.Profile, error)
}

// ProfileCache abstracts the read-through cache of the singleton profile.
type ProfileCache interface {
	Get(ctx context.Context) (*model.Profile, error)
	Set(ctx context.Context, p *model.Profile) error
}

// ProfileService shapes the singleton techfolio profile into the six public
// read projections. All projections are all-or-nothing: a store failure
// never yields a partial result.
type ProfileService struct {
	Repo   ProfileStore
	Cache  ProfileCache
	Assets *assets.Resolver
}

// TechfolioView is the public techfolio projection.
type TechfolioView struct {
	FullName    string           `json:"full_name"`
	Role        string           `json:"role"`
	Bio         string           `json:"bio"`
	ProfilePic  *string          `json:"profile_pic"`
	SocialMedia []SocialLinkView `json:"social_media"`
}

type SocialLinkView struct {
	Platform string `json:"platform"`
	Link     string `json:"link"`
	Active   bool   `json:"active"`
}

// ContactCard is the public contact projection.
type ContactCard struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	Address  string `json:"address"`
}

type SkillView struct {
	SkillName string  `json:"skill_name"`
	Rating    float64 `json:"rating"`
	Logo      *string `json:"logo"`
	IsActive  bool    `json:"is_active"`
}

type ExperienceView struct {
	CompanyName        string  `json:"company_name"`
	JobRole            string  `json:"job_role"`
	KeySkill           string  `json:"key_skill"`
	DateOfJoining      string  `json:"date_of_joining"`
	IsCurrentCompany   bool    `json:"is_current_company"`
	LeavingDate        *string `json:"leaving_date"`
	ProjectDescription string  `json:"project_description"`
	CompanyLogo        *string `json:"company_logo"`
}

type ServiceView struct {
	ServiceName string  `json:"service_name"`
	Description string  `json:"description"`
	Logo        *string `json:"logo"`
}

// SocialMediaItem renames the stored "active" flag to "is_active" for
// frontend consistency. The rename is part of the external contract.
type SocialMediaItem struct {
	SocialMedia string `json:"social_media"`
	Link        string `json:"link"`
	IsActive    bool   `json:"is_active"`
}

const dateLayout = "2006-01-02"

// fetch returns the singleton profile, checking the cache first.
func (s *ProfileService) fetch(ctx context.Context) (*model.Profile, error) {
	if p, err := s.Cache.Get(ctx); err == nil {
		return p, nil
	}
	p, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	_ = s.Cache.Set(ctx, p)
	return p, nil
}

// Techfolio returns the profile header with only the active social links.
func (s *ProfileService) Techfolio(ctx context.Context) (*TechfolioView, error) {
	p, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	links := make([]SocialLinkView, 0, len(p.SocialMedia))
	for _, sm := range p.SocialMedia {
		if !sm.Active {
			continue
		}
		links = append(links, SocialLinkView{
			Platform: sm.Platform,
			Link:     sm.Link,
			Active:   sm.Active,
		})
	}

	return &TechfolioView{
		FullName:    p.FullName,
		Role:        p.Role,
		Bio:         p.Bio,
		ProfilePic:  s.Assets.Resolve(p.ProfilePic),
		SocialMedia: links,
	}, nil
}

// Contact returns the contact card, unfiltered.
func (s *ProfileService) Contact(ctx context.Context) (*ContactCard, error) {
	p, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return &ContactCard{
		Phone:    p.Phone,
		Email:    p.Email,
		LinkedIn: p.LinkedIn,
		Address:  p.Address,
	}, nil
}

// Skills returns only the active skills, names and ratings passed through
// unchanged.
func (s *ProfileService) Skills(ctx context.Context) ([]SkillView, error) {
	p, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SkillView, 0, len(p.Skills))
	for _, sk := range p.Skills {
		if !sk.IsActive {
			continue
		}
		out = append(out, SkillView{
			SkillName: sk.SkillName,
			Rating:    sk.Rating,
			Logo:      s.Assets.Resolve(sk.Logo),
			IsActive:  sk.IsActive,
		})
	}
	return out, nil
}

// Experiences returns every experience row in stored order. Unlike skills
// and social media there is no activity filter.
func (s *ProfileService) Experiences(ctx context.Context) ([]ExperienceView, error) {
	p, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ExperienceView, 0, len(p.Experience))
	for _, e := range p.Experience {
		var leaving *string
		if e.LeavingDate != nil {
			d := e.LeavingDate.Format(dateLayout)
			leaving = &d
		}
		out = append(out, ExperienceView{
			CompanyName:        e.CompanyName,
			JobRole:            e.JobRole,
			KeySkill:           e.KeySkill,
			DateOfJoining:      e.DateOfJoining.Format(dateLayout),
			IsCurrentCompany:   e.IsCurrentCompany,
			LeavingDate:        leaving,
			ProjectDescription: e.ProjectDescription,
			CompanyLogo:        s.Assets.Resolve(e.CompanyLogo),
		})
	}
	return out, nil
}

// Services returns every service row in stored order, unfiltered.
func (s *ProfileService) Services(ctx context.Context) ([]ServiceView, error) {
	p, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ServiceView, 0, len(p.Services))
	for _, sv := range p.Services {
		out = append(out, ServiceView{
			ServiceName: sv.ServiceName,
			Description: sv.Description,
			Logo:        s.Assets.Resolve(sv.Logo),
		})
	}
	return out, nil
}

// SocialMedia returns only the active social links under the renamed keys.
func (s *ProfileService) SocialMedia(ctx context.Context) ([]SocialMediaItem, error) {
	p, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SocialMediaItem, 0, len(p.SocialMedia))
	for _, sm := range p.SocialMedia {
		if !sm.Active {
			continue
		}
		out = append(out, SocialMediaItem{
			SocialMedia: sm.Platform,
			Link:        sm.Link,
			IsActive:    sm.Active,
		})
	}
	return out, nil
}
