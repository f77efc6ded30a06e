package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/techfolio/api/internal/model"
)

// ProfileRepo reads the singleton techfolio row and its child tables.
type ProfileRepo struct{ DB *sql.DB }

// Get fetches the singleton profile with all four child collections
// populated. A missing singleton row is a configuration error, not a
// transient one.
func (r *ProfileRepo) Get(ctx context.Context) (*model.Profile, error) {
	p := &model.Profile{}
	var profilePic, phone, email, linkedin, address sql.NullString
	err := r.DB.QueryRowContext(ctx,
		`SELECT full_name, role, bio, profile_pic, phone, email, linkedin, address, updated_at
		 FROM techfolio WHERE id = 1`).
		Scan(&p.FullName, &p.Role, &p.Bio, &profilePic, &phone, &email, &linkedin, &address, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, model.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch techfolio: %w", err)
	}

	p.ProfilePic = profilePic.String
	p.Phone = phone.String
	p.Email = email.String
	p.LinkedIn = linkedin.String
	p.Address = address.String

	if p.SocialMedia, err = r.socialMedia(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch social media links: %w", err)
	}
	if p.Skills, err = r.skills(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	if p.Experience, err = r.experiences(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch experiences: %w", err)
	}
	if p.Services, err = r.services(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	return p, nil
}

func (r *ProfileRepo) socialMedia(ctx context.Context) ([]model.SocialMediaLink, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT platform, link, active FROM social_media_links ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SocialMediaLink
	for rows.Next() {
		var l model.SocialMediaLink
		var active any
		if err := rows.Scan(&l.Platform, &l.Link, &active); err != nil {
			return nil, err
		}
		// Legacy rows store the flag as smallint; coerce once here.
		l.Active = model.Truthy(active)
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *ProfileRepo) skills(ctx context.Context) ([]model.Skill, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT skill_name, rating, logo, is_active FROM skills ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Skill
	for rows.Next() {
		var s model.Skill
		var logo sql.NullString
		var active any
		if err := rows.Scan(&s.SkillName, &s.Rating, &logo, &active); err != nil {
			return nil, err
		}
		s.Logo = logo.String
		s.IsActive = model.Truthy(active)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ProfileRepo) experiences(ctx context.Context) ([]model.Experience, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT company_name, job_role, key_skill, date_of_joining, is_current_company,
		        leaving_date, project_description, company_logo
		 FROM experiences ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Experience
	for rows.Next() {
		var e model.Experience
		var leaving sql.NullTime
		var logo sql.NullString
		var current any
		if err := rows.Scan(&e.CompanyName, &e.JobRole, &e.KeySkill, &e.DateOfJoining,
			&current, &leaving, &e.ProjectDescription, &logo); err != nil {
			return nil, err
		}
		e.IsCurrentCompany = model.Truthy(current)
		if leaving.Valid {
			t := leaving.Time
			e.LeavingDate = &t
		}
		e.CompanyLogo = logo.String
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ProfileRepo) services(ctx context.Context) ([]model.Service, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT service_name, description, logo FROM services ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Service
	for rows.Next() {
		var s model.Service
		var logo sql.NullString
		if err := rows.Scan(&s.ServiceName, &s.Description, &logo); err != nil {
			return nil, err
		}
		s.Logo = logo.String
		out = append(out, s)
	}
	return out, rows.Err()
}
