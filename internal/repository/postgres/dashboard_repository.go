package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-ats-backend/internal/domain"
)

type dashboardRepository struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) domain.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) Stats(ctx context.Context, orgID string) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM candidates WHERE organization_id = $1) AS total_candidates,
			(SELECT COUNT(*) FROM jobs WHERE organization_id = $1 AND status = 'open') AS active_jobs,
			(SELECT COUNT(*) FROM interviews i
			 JOIN applications a ON i.application_id = a.id
			 WHERE a.organization_id = $1
			 AND DATE(i.scheduled_at) = CURRENT_DATE) AS interviews_today,
			(SELECT COUNT(*) FROM offers o
			 JOIN applications a ON o.application_id = a.id
			 WHERE a.organization_id = $1
			 AND o.status IN ('sent', 'pending_approval')) AS offers_sent`,
		orgID,
	).Scan(&stats.TotalCandidates, &stats.ActiveJobs, &stats.InterviewsToday, &stats.OffersSent)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}
	return &stats, nil
}

func (r *dashboardRepository) TopCandidates(ctx context.Context, orgID string, limit int) ([]domain.CandidateRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			c.id,
			c.first_name || ' ' || c.last_name AS name,
			c.current_title,
			c.current_company,
			ci.name AS location,
			a.overall_score,
			c.total_experience_years,
			a.status,
			a.applied_at
		FROM candidates c
		LEFT JOIN cities ci ON c.city_id = ci.id
		LEFT JOIN applications a ON a.candidate_id = c.id
		WHERE c.organization_id = $1
		ORDER BY a.overall_score DESC NULLS LAST, c.created_at DESC
		LIMIT $2`,
		orgID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}
	defer rows.Close()

	var candidates []domain.CandidateRow
	for rows.Next() {
		var c domain.CandidateRow
		if err := rows.Scan(&c.ID, &c.Name, &c.Title, &c.Company, &c.Location,
			&c.Score, &c.Years, &c.Status, &c.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *dashboardRepository) Jobs(ctx context.Context, orgID string) ([]domain.JobRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			j.id,
			j.title,
			d.name AS department,
			l.name AS location,
			j.job_type,
			j.status,
			j.total_applications,
			j.new_applications,
			j.published_at,
			j.salary_min,
			j.salary_max,
			cur.symbol AS currency_symbol
		FROM jobs j
		LEFT JOIN organization_departments d ON j.department_id = d.id
		LEFT JOIN organization_locations l ON j.location_id = l.id
		LEFT JOIN currencies cur ON j.salary_currency_id = cur.id
		WHERE j.organization_id = $1
		AND j.deleted_at IS NULL
		ORDER BY j.published_at DESC`,
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.JobRow
	for rows.Next() {
		var j domain.JobRow
		if err := rows.Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.JobType,
			&j.Status, &j.Applicants, &j.NewApplicants, &j.PublishedAt,
			&j.SalaryMin, &j.SalaryMax, &j.CurrencySymbol); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *dashboardRepository) UpcomingInterviews(ctx context.Context, orgID string, limit int) ([]domain.InterviewRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			i.id,
			c.first_name || ' ' || c.last_name AS candidate,
			j.title AS position,
			it.name AS interview_type,
			i.scheduled_at,
			i.status,
			u.first_name || ' ' || u.last_name AS interviewer
		FROM interviews i
		JOIN applications a ON i.application_id = a.id
		JOIN candidates c ON a.candidate_id = c.id
		JOIN jobs j ON a.job_id = j.id
		LEFT JOIN interview_types it ON i.interview_type_id = it.id
		LEFT JOIN interview_participants ip ON i.id = ip.interview_id
		LEFT JOIN users u ON ip.user_id = u.id
		WHERE a.organization_id = $1
		AND i.scheduled_at >= NOW() - INTERVAL '1 day'
		ORDER BY i.scheduled_at ASC
		LIMIT $2`,
		orgID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interviews: %w", err)
	}
	defer rows.Close()

	var interviews []domain.InterviewRow
	for rows.Next() {
		var iv domain.InterviewRow
		if err := rows.Scan(&iv.ID, &iv.Candidate, &iv.Position, &iv.InterviewType,
			&iv.ScheduledAt, &iv.Status, &iv.Interviewer); err != nil {
			return nil, fmt.Errorf("failed to scan interview row: %w", err)
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}

func (r *dashboardRepository) PipelineCounts(ctx context.Context, orgID string) ([]domain.StageCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			ps.stage_type,
			COUNT(a.id) AS count
		FROM job_pipeline_stages ps
		LEFT JOIN applications a ON a.current_stage_id = ps.id
		JOIN jobs j ON ps.job_id = j.id
		WHERE j.organization_id = $1
		GROUP BY ps.stage_type`,
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pipeline counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.StageCount
	for rows.Next() {
		var sc domain.StageCount
		if err := rows.Scan(&sc.StageType, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan stage count: %w", err)
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

func (r *dashboardRepository) RecentActivity(ctx context.Context, orgID string, limit int) ([]domain.ActivityRow, error) {
	rows, err := r.db.Query(ctx, `
		(SELECT
			'application' AS type,
			'New application received' AS action,
			c.first_name || ' ' || c.last_name || ' applied for ' || j.title AS detail,
			a.applied_at AS timestamp
		FROM applications a
		JOIN candidates c ON a.candidate_id = c.id
		JOIN jobs j ON a.job_id = j.id
		WHERE a.organization_id = $1
		ORDER BY a.applied_at DESC
		LIMIT 3)
		UNION ALL
		(SELECT
			'interview' AS type,
			'Interview scheduled' AS action,
			c.first_name || ' ' || c.last_name || ' - ' || COALESCE(it.name, 'Interview') AS detail,
			i.created_at AS timestamp
		FROM interviews i
		JOIN applications a ON i.application_id = a.id
		JOIN candidates c ON a.candidate_id = c.id
		LEFT JOIN interview_types it ON i.interview_type_id = it.id
		WHERE a.organization_id = $1
		ORDER BY i.created_at DESC
		LIMIT 2)
		ORDER BY timestamp DESC
		LIMIT $2`,
		orgID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent activity: %w", err)
	}
	defer rows.Close()

	var items []domain.ActivityRow
	for rows.Next() {
		var a domain.ActivityRow
		if err := rows.Scan(&a.Type, &a.Action, &a.Detail, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
