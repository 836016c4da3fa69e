package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/collegedex/collegedex-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/collegedex/collegedex-cli/internal/core/domain"
	"github.com/collegedex/collegedex-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.EntityStore = (*Store)(nil)

// Store is the SQLite-backed entity store for the college directory.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store in the given data directory.
// If dataDir is empty, defaults to ~/.collegedex/data/directory.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".collegedex", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "directory.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ListColleges returns all college records ordered by name.
func (s *Store) ListColleges(ctx context.Context) ([]domain.Entity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, city, state, college_type, management_type, total_courses
		FROM colleges
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("listing colleges: %w", err)
	}
	defer rows.Close()

	var colleges []domain.Entity
	for rows.Next() {
		var id, name, city, state, collegeType, managementType string
		var totalCourses int64
		if err := rows.Scan(&id, &name, &city, &state, &collegeType, &managementType, &totalCourses); err != nil {
			return nil, fmt.Errorf("scanning college: %w", err)
		}
		colleges = append(colleges, domain.Entity{
			domain.FieldID:             id,
			domain.FieldName:           name,
			domain.FieldCity:           city,
			domain.FieldState:          state,
			domain.FieldCollegeType:    collegeType,
			domain.FieldManagementType: managementType,
			domain.FieldTotalCourses:   int(totalCourses),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating colleges: %w", err)
	}

	return colleges, nil
}

// ListCourses returns the course records for a college.
func (s *Store) ListCourses(ctx context.Context, collegeID string) ([]domain.Entity, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM colleges WHERE id = ?", collegeID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking college %s: %w", collegeID, err)
	}
	if exists == 0 {
		return nil, domain.ErrNotFound
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT course_name, course_type, branch, total_seats, duration
		FROM courses
		WHERE college_id = ?
		ORDER BY course_name, branch
	`, collegeID)
	if err != nil {
		return nil, fmt.Errorf("listing courses for %s: %w", collegeID, err)
	}
	defer rows.Close()

	var courses []domain.Entity
	for rows.Next() {
		var courseName, courseType, branch, duration string
		var totalSeats int64
		if err := rows.Scan(&courseName, &courseType, &branch, &totalSeats, &duration); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		courses = append(courses, domain.Entity{
			domain.FieldCourseName: courseName,
			domain.FieldCourseType: courseType,
			domain.FieldBranch:     branch,
			domain.FieldTotalSeats: int(totalSeats),
			domain.FieldDuration:   duration,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}

	return courses, nil
}

// UpsertCollege stores or updates a college and, when courses is
// non-nil, replaces its course list.
func (s *Store) UpsertCollege(ctx context.Context, college domain.Entity, courses []domain.Entity) error {
	id := college.ID()
	if id == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	_, err = tx.ExecContext(ctx, `
		INSERT INTO colleges (id, name, city, state, college_type, management_type, total_courses)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			city = excluded.city,
			state = excluded.state,
			college_type = excluded.college_type,
			management_type = excluded.management_type,
			total_courses = excluded.total_courses,
			updated_at = CURRENT_TIMESTAMP
	`,
		id,
		college.Str(domain.FieldName),
		college.Str(domain.FieldCity),
		college.Str(domain.FieldState),
		college.Str(domain.FieldCollegeType),
		college.Str(domain.FieldManagementType),
		college.Int(domain.FieldTotalCourses),
	)
	if err != nil {
		return fmt.Errorf("upserting college %s: %w", id, err)
	}

	if courses != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM courses WHERE college_id = ?", id); err != nil {
			return fmt.Errorf("clearing courses for %s: %w", id, err)
		}
		for _, course := range courses {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO courses (id, college_id, course_name, course_type, branch, total_seats, duration)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`,
				uuid.New().String(),
				id,
				course.Str(domain.FieldCourseName),
				course.Str(domain.FieldCourseType),
				course.Str(domain.FieldBranch),
				course.Int(domain.FieldTotalSeats),
				course.Str(domain.FieldDuration),
			)
			if err != nil {
				return fmt.Errorf("inserting course for %s: %w", id, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// DeleteCollege removes a college and its courses.
func (s *Store) DeleteCollege(ctx context.Context, collegeID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM colleges WHERE id = ?", collegeID)
	if err != nil {
		return fmt.Errorf("deleting college %s: %w", collegeID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
