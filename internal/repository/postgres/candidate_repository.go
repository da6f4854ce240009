package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

// uniqueViolation is the Postgres error code for duplicate keys.
const uniqueViolation = "23505"

// defaultCitySearch is used when the submission carries no location.
const defaultCitySearch = "Bangalore"

func (r *candidateRepository) Create(ctx context.Context, orgID string, in *domain.CandidateInput) (*domain.CandidateSummary, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cityID := r.resolveCity(ctx, tx, in.Location)

	insertQuery := `
		INSERT INTO candidates (
			organization_id, first_name, last_name, email, phone,
			current_title, current_company, city_id, linkedin_url, portfolio_url,
			profile_summary, resume_url, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'active', NOW(), NOW())
		RETURNING id, first_name, last_name, email`

	var summary domain.CandidateSummary
	err = tx.QueryRow(ctx, insertQuery,
		orgID, in.FirstName, in.LastName, in.Email, nullable(in.Phone),
		nullable(in.CurrentTitle), nullable(in.CurrentCompany), cityID,
		nullable(in.LinkedinURL), nullable(in.PortfolioURL),
		nullable(in.Summary), nullable(in.ResumeURL),
	).Scan(&summary.ID, &summary.FirstName, &summary.LastName, &summary.Email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to insert candidate: %w", err)
	}

	for i, skill := range in.Skills {
		if skill.Blank() {
			continue
		}
		if err := r.insertSkill(ctx, tx, summary.ID, skill, i); err != nil {
			logger.Log.Warn("skipping skill", "skill", skill.Name, "candidate_id", summary.ID, "error", err)
		}
	}

	for i, edu := range in.Education {
		if strings.TrimSpace(edu.InstitutionName) == "" {
			continue
		}
		if err := r.insertEducation(ctx, tx, summary.ID, edu, i); err != nil {
			logger.Log.Warn("skipping education", "institution", edu.InstitutionName, "candidate_id", summary.ID, "error", err)
		}
	}

	for i, exp := range in.Experience {
		if strings.TrimSpace(exp.CompanyName) == "" || strings.TrimSpace(exp.Title) == "" {
			continue
		}
		if err := r.insertExperience(ctx, tx, summary.ID, exp, i); err != nil {
			logger.Log.Warn("skipping experience", "company", exp.CompanyName, "candidate_id", summary.ID, "error", err)
		}
	}

	for i, proj := range in.Projects {
		if strings.TrimSpace(proj.Name) == "" {
			continue
		}
		if err := r.insertProject(ctx, tx, summary.ID, proj, i); err != nil {
			logger.Log.Warn("skipping project", "project", proj.Name, "candidate_id", summary.ID, "error", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &summary, nil
}

// resolveCity does a best-effort case-insensitive substring match against the
// reference city table. Unresolved locations stay null, never an error.
func (r *candidateRepository) resolveCity(ctx context.Context, tx pgx.Tx, location string) *string {
	search := strings.TrimSpace(location)
	if search == "" {
		search = defaultCitySearch
	}

	var cityID string
	err := tx.QueryRow(ctx,
		`SELECT id FROM cities WHERE LOWER(name) LIKE LOWER($1) LIMIT 1`,
		"%"+search+"%",
	).Scan(&cityID)
	if err != nil {
		return nil
	}
	return &cityID
}

// insertSkill resolves or creates the dictionary entry, then links it to the
// candidate. Runs inside a savepoint so a bad entry can be discarded without
// poisoning the surrounding transaction.
func (r *candidateRepository) insertSkill(ctx context.Context, tx pgx.Tx, candidateID string, skill domain.SkillEntry, sortOrder int) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return err
	}
	defer sp.Rollback(ctx)

	name := strings.TrimSpace(skill.Name)

	var skillID string
	err = sp.QueryRow(ctx,
		`SELECT id FROM skills WHERE LOWER(canonical_name) = LOWER($1) LIMIT 1`, name,
	).Scan(&skillID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = sp.QueryRow(ctx,
			`INSERT INTO skills (canonical_name, display_name, is_active, created_at, updated_at)
			 VALUES ($1, $2, true, NOW(), NOW()) RETURNING id`,
			strings.ToLower(name), name,
		).Scan(&skillID)
	}
	if err != nil {
		return fmt.Errorf("resolve skill: %w", err)
	}

	level := skill.ProficiencyLevel
	if level == "" {
		level = domain.ProficiencyIntermediate
	}

	_, err = sp.Exec(ctx,
		`INSERT INTO candidate_skills (id, candidate_id, skill_id, proficiency_level, years_of_experience, source, sort_order, is_visible, created_at, updated_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, 'resume', $5, true, NOW(), NOW())
		 ON CONFLICT DO NOTHING`,
		candidateID, skillID, level, skill.YearsOfExperience, sortOrder,
	)
	if err != nil {
		return fmt.Errorf("link skill: %w", err)
	}

	return sp.Commit(ctx)
}

func (r *candidateRepository) insertEducation(ctx context.Context, tx pgx.Tx, candidateID string, edu domain.EducationEntry, sortOrder int) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return err
	}
	defer sp.Rollback(ctx)

	start := NormalizeDate(edu.StartDate)
	end := NormalizeDate(edu.EndDate)

	_, err = sp.Exec(ctx,
		`INSERT INTO candidate_education (
			id, candidate_id, institution_name, degree_name, field_of_study_text,
			start_date, end_date, is_current, gpa, percentage, honors, description,
			sort_order, is_visible, created_at, updated_at
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, true, NOW(), NOW())`,
		candidateID, edu.InstitutionName, nullable(edu.DegreeName), nullable(edu.FieldOfStudy),
		start, end, end == nil, edu.GPA, edu.Percentage,
		nullable(edu.Honors), nullable(edu.Description), sortOrder,
	)
	if err != nil {
		return err
	}
	return sp.Commit(ctx)
}

func (r *candidateRepository) insertExperience(ctx context.Context, tx pgx.Tx, candidateID string, exp domain.ExperienceEntry, sortOrder int) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return err
	}
	defer sp.Rollback(ctx)

	start := NormalizeDate(exp.StartDate)
	end := NormalizeDate(exp.EndDate)

	_, err = sp.Exec(ctx,
		`INSERT INTO candidate_experience (
			id, candidate_id, company_name, title, location_text,
			start_date, end_date, is_current, description, responsibilities, achievements,
			sort_order, is_visible, created_at, updated_at
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, NOW(), NOW())`,
		candidateID, exp.CompanyName, exp.Title, nullable(exp.Location),
		start, end, exp.IsCurrent || end == nil,
		nullable(exp.Description), joinLines(exp.Responsibilities), joinLines(exp.Achievements), sortOrder,
	)
	if err != nil {
		return err
	}
	return sp.Commit(ctx)
}

func (r *candidateRepository) insertProject(ctx context.Context, tx pgx.Tx, candidateID string, proj domain.ProjectEntry, sortOrder int) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return err
	}
	defer sp.Rollback(ctx)

	technologies := proj.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	_, err = sp.Exec(ctx,
		`INSERT INTO candidate_projects (
			id, candidate_id, name, description, role, url, technologies,
			start_date, end_date, sort_order, is_visible, created_at, updated_at
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, true, NOW(), NOW())`,
		candidateID, proj.Name, nullable(proj.Description), nullable(proj.Role),
		nullable(proj.URL), pq.Array(technologies),
		NormalizeDate(proj.StartDate), NormalizeDate(proj.EndDate), sortOrder,
	)
	if err != nil {
		return err
	}
	return sp.Commit(ctx)
}

// =================================================================================================
// Replace-all update
// =================================================================================================

func (r *candidateRepository) Update(ctx context.Context, orgID, candidateID string, in *domain.CandidateUpdateInput) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var cityID *string
	if strings.TrimSpace(in.Location) != "" {
		cityID = r.resolveCity(ctx, tx, in.Location)
	}

	cmdTag, err := tx.Exec(ctx, `
		UPDATE candidates SET
			first_name = $1, last_name = $2, email = $3, phone = $4,
			current_title = $5, current_company = $6, city_id = $7,
			linkedin_url = $8, portfolio_url = $9, profile_summary = $10,
			updated_at = NOW()
		WHERE id = $11 AND organization_id = $12`,
		in.FirstName, in.LastName, in.Email, nullable(in.Phone),
		nullable(in.CurrentTitle), nullable(in.CurrentCompany), cityID,
		nullable(in.LinkedinURL), nullable(in.PortfolioURL), nullable(in.Summary),
		candidateID, orgID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	// Skills: delete pivot rows, reinsert per submitted order
	if _, err := tx.Exec(ctx, `DELETE FROM candidate_skills WHERE candidate_id = $1`, candidateID); err != nil {
		return fmt.Errorf("failed to clear skills: %w", err)
	}
	for i, skill := range in.Skills {
		if strings.TrimSpace(skill.SkillName) == "" {
			continue
		}
		if err := r.reinsertSkill(ctx, tx, candidateID, skill, i); err != nil {
			logger.Log.Warn("skipping skill on update", "skill", skill.SkillName, "candidate_id", candidateID, "error", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM candidate_experience WHERE candidate_id = $1`, candidateID); err != nil {
		return fmt.Errorf("failed to clear experience: %w", err)
	}
	for i, exp := range in.Experience {
		if strings.TrimSpace(exp.Title) == "" && strings.TrimSpace(exp.CompanyName) == "" {
			continue
		}
		if err := r.reinsertExperience(ctx, tx, candidateID, exp, i); err != nil {
			logger.Log.Warn("skipping experience on update", "company", exp.CompanyName, "candidate_id", candidateID, "error", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM candidate_education WHERE candidate_id = $1`, candidateID); err != nil {
		return fmt.Errorf("failed to clear education: %w", err)
	}
	for i, edu := range in.Education {
		if strings.TrimSpace(edu.InstitutionName) == "" && strings.TrimSpace(edu.DegreeName) == "" {
			continue
		}
		if err := r.reinsertEducation(ctx, tx, candidateID, edu, i); err != nil {
			logger.Log.Warn("skipping education on update", "institution", edu.InstitutionName, "candidate_id", candidateID, "error", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM candidate_projects WHERE candidate_id = $1`, candidateID); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}
	for i, proj := range in.Projects {
		if strings.TrimSpace(proj.Name) == "" {
			continue
		}
		if err := r.reinsertProject(ctx, tx, candidateID, proj, i); err != nil {
			logger.Log.Warn("skipping project on update", "project", proj.Name, "candidate_id", candidateID, "error", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *candidateRepository) reinsertSkill(ctx context.Context, tx pgx.Tx, candidateID string, skill domain.SkillUpdate, sortOrder int) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return err
	}
	defer sp.Rollback(ctx)

	name := strings.TrimSpace(skill.SkillName)

	var skillID string
	err = sp.QueryRow(ctx,
		`SELECT id FROM skills WHERE LOWER(display_name) = LOWER($1) OR LOWER(canonical_name) = LOWER($1) LIMIT 1`,
		name,
	).Scan(&skillID)
	if errors.Is(err, pgx.ErrNoRows) {
		canonical := strings.ReplaceAll(strings.ToLower(name), " ", "-")
		err = sp.QueryRow(ctx,
			`INSERT INTO skills (display_name, canonical_name, is_active, created_at, updated_at)
			 VALUES ($1, $2, true, NOW(), NOW()) RETURNING id`,
			name, canonical,
		).Scan(&skillID)
	}
	if err != nil {
		return fmt.Errorf("resolve skill: %w", err)
	}

	level := skill.ProficiencyLevel
	if level == "" {
		level = domain.ProficiencyIntermediate
	}

	_, err = sp.Exec(ctx,
		`INSERT INTO candidate_skills (id, candidate_id, skill_id, proficiency_level, years_of_experience, source, sort_order, is_visible, created_at, updated_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, 'resume', $5, true, NOW(), NOW())
		 ON CONFLICT DO NOTHING`,
		candidateID, skillID, level, skill.YearsOfExperience, sortOrder,
	)
	if err != nil {
		return fmt.Errorf("link skill: %w", err)
	}
	return sp.Commit(ctx)
}

func (r *candidateRepository) reinsertExperience(ctx context.Context, tx pgx.Tx, candidateID string, exp domain.ExperienceUpdate, sortOrder int) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return err
	}
	defer sp.Rollback(ctx)

	_, err = sp.Exec(ctx,
		`INSERT INTO candidate_experience (
			id, candidate_id, title, company_name, location_text,
			start_date, end_date, is_current, description,
			sort_order, is_visible, created_at, updated_at
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, true, NOW(), NOW())`,
		candidateID, exp.Title, exp.CompanyName, nullable(exp.Location),
		NormalizeDate(exp.StartDate), NormalizeDate(exp.EndDate), exp.IsCurrent,
		nullable(exp.Description), sortOrder,
	)
	if err != nil {
		return err
	}
	return sp.Commit(ctx)
}

func (r *candidateRepository) reinsertEducation(ctx context.Context, tx pgx.Tx, candidateID string, edu domain.EducationUpdate, sortOrder int) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return err
	}
	defer sp.Rollback(ctx)

	_, err = sp.Exec(ctx,
		`INSERT INTO candidate_education (
			id, candidate_id, institution_name, degree_name, field_of_study_text,
			start_date, end_date, is_current, sort_order, is_visible, created_at, updated_at
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, true, NOW(), NOW())`,
		candidateID, trimmed(edu.InstitutionName), trimmed(edu.DegreeName), nullable(edu.FieldOfStudy),
		NormalizeDate(edu.StartDate), NormalizeDate(edu.EndDate), edu.IsCurrent, sortOrder,
	)
	if err != nil {
		return err
	}
	return sp.Commit(ctx)
}

func (r *candidateRepository) reinsertProject(ctx context.Context, tx pgx.Tx, candidateID string, proj domain.ProjectUpdate, sortOrder int) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return err
	}
	defer sp.Rollback(ctx)

	technologies := proj.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	_, err = sp.Exec(ctx,
		`INSERT INTO candidate_projects (
			id, candidate_id, name, role, description, technologies,
			sort_order, is_visible, created_at, updated_at
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, true, NOW(), NOW())`,
		candidateID, proj.Name, nullable(proj.Role), nullable(proj.Description),
		pq.Array(technologies), sortOrder,
	)
	if err != nil {
		return err
	}
	return sp.Commit(ctx)
}

// =================================================================================================
// Full graph read
// =================================================================================================

func (r *candidateRepository) GetByID(ctx context.Context, candidateID string) (*domain.CandidateGraph, error) {
	query := `
		SELECT
			c.id, c.organization_id, c.first_name, c.last_name, c.email, c.phone,
			c.current_title, c.current_company, c.city_id, ci.name, co.name,
			c.linkedin_url, c.portfolio_url, c.profile_summary, c.resume_url,
			c.status, c.total_experience_years, c.created_at, c.updated_at
		FROM candidates c
		LEFT JOIN cities ci ON c.city_id = ci.id
		LEFT JOIN countries co ON c.country_id = co.id
		WHERE c.id = $1`

	graph := &domain.CandidateGraph{
		Skills:     []domain.CandidateSkillRow{},
		Education:  []domain.CandidateEducationRow{},
		Experience: []domain.CandidateExperienceRow{},
		Projects:   []domain.CandidateProjectRow{},
	}

	err := r.db.QueryRow(ctx, query, candidateID).Scan(
		&graph.ID, &graph.OrganizationID, &graph.FirstName, &graph.LastName, &graph.Email, &graph.Phone,
		&graph.CurrentTitle, &graph.CurrentCompany, &graph.CityID, &graph.CityName, &graph.CountryName,
		&graph.LinkedinURL, &graph.PortfolioURL, &graph.ProfileSummary, &graph.ResumeURL,
		&graph.Status, &graph.TotalExperienceYears, &graph.CreatedAt, &graph.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	skillRows, err := r.db.Query(ctx, `
		SELECT cs.id, cs.skill_id, s.display_name, s.canonical_name,
		       cs.proficiency_level, cs.years_of_experience, cs.source, cs.sort_order
		FROM candidate_skills cs
		JOIN skills s ON cs.skill_id = s.id
		WHERE cs.candidate_id = $1
		ORDER BY cs.sort_order, s.display_name`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer skillRows.Close()
	for skillRows.Next() {
		var row domain.CandidateSkillRow
		if err := skillRows.Scan(
			&row.ID, &row.SkillID, &row.SkillName, &row.CanonicalName,
			&row.ProficiencyLevel, &row.YearsOfExperience, &row.Source, &row.SortOrder,
		); err != nil {
			return nil, err
		}
		graph.Skills = append(graph.Skills, row)
	}

	eduRows, err := r.db.Query(ctx, `
		SELECT id, institution_name, degree_name, field_of_study_text,
		       start_date, end_date, is_current, gpa, percentage, honors, description, sort_order
		FROM candidate_education
		WHERE candidate_id = $1
		ORDER BY sort_order, end_date DESC NULLS FIRST`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch education: %w", err)
	}
	defer eduRows.Close()
	for eduRows.Next() {
		var row domain.CandidateEducationRow
		if err := eduRows.Scan(
			&row.ID, &row.InstitutionName, &row.DegreeName, &row.FieldOfStudy,
			&row.StartDate, &row.EndDate, &row.IsCurrent, &row.GPA, &row.Percentage,
			&row.Honors, &row.Description, &row.SortOrder,
		); err != nil {
			return nil, err
		}
		graph.Education = append(graph.Education, row)
	}

	expRows, err := r.db.Query(ctx, `
		SELECT id, company_name, title, location_text,
		       start_date, end_date, is_current, description, responsibilities, achievements, sort_order
		FROM candidate_experience
		WHERE candidate_id = $1
		ORDER BY sort_order, end_date DESC NULLS FIRST`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experience: %w", err)
	}
	defer expRows.Close()
	for expRows.Next() {
		var row domain.CandidateExperienceRow
		if err := expRows.Scan(
			&row.ID, &row.CompanyName, &row.Title, &row.Location,
			&row.StartDate, &row.EndDate, &row.IsCurrent, &row.Description,
			&row.Responsibilities, &row.Achievements, &row.SortOrder,
		); err != nil {
			return nil, err
		}
		graph.Experience = append(graph.Experience, row)
	}

	projRows, err := r.db.Query(ctx, `
		SELECT id, name, description, role, url, technologies, start_date, end_date, sort_order
		FROM candidate_projects
		WHERE candidate_id = $1
		ORDER BY sort_order`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer projRows.Close()
	for projRows.Next() {
		var row domain.CandidateProjectRow
		var technologies []string
		if err := projRows.Scan(
			&row.ID, &row.Name, &row.Description, &row.Role, &row.URL,
			pq.Array(&technologies), &row.StartDate, &row.EndDate, &row.SortOrder,
		); err != nil {
			return nil, err
		}
		row.Technologies = technologies
		if row.Technologies == nil {
			row.Technologies = []string{}
		}
		graph.Projects = append(graph.Projects, row)
	}

	return graph, nil
}

// nullable converts "" to a NULL parameter.
func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// trimmed keeps empty strings as empty (NOT NULL columns with '' default shape,
// matching the edit form's round-trip behavior).
func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func joinLines(items []string) *string {
	if len(items) == 0 {
		return nil
	}
	joined := strings.Join(items, "\n")
	return &joined
}
