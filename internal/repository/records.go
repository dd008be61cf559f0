package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// RecentDirectorsLimit caps GetLast100Records.
const RecentDirectorsLimit = 100

const (
	directorBusinessRecordsQuery = `
		SELECT
			d.id,
			d.first_name,
			d.last_name,
			b.name,
			b.registered_address,
			b.registration_number
		FROM directors d
		JOIN director_businesses db
			ON d.id = db.director_id
		JOIN businesses b
			ON b.id = db.business_id
		ORDER BY d.id, b.id`

	directorsQuery = `
		SELECT id, first_name, last_name
		FROM directors
		ORDER BY id`

	// ids are INTEGER columns; the cast lets ids past the int4 range match
	// nothing instead of failing to encode.
	directorByIDQuery = `
		SELECT id, first_name, last_name
		FROM directors
		WHERE directors.id = $1::bigint`

	businessesQuery = `
		SELECT id, name, registered_address, registration_number, registration_date
		FROM businesses
		ORDER BY id`

	businessByIDQuery = `
		SELECT id, name, registered_address, registration_number, registration_date
		FROM businesses
		WHERE businesses.id = $1::bigint`

	businessesInYearQuery = `
		SELECT id, name, registered_address, registration_number, registration_date
		FROM businesses
		WHERE EXTRACT(YEAR FROM businesses.registration_date) = $1
		ORDER BY id`

	recentDirectorsQuery = `
		SELECT id, first_name, last_name
		FROM directors
		ORDER BY id DESC
		LIMIT $1`

	// || yields NULL when the left join found no director, unlike CONCAT
	// which would return a lone space.
	businessDirectorsQuery = `
		SELECT
			b.name AS business_name,
			d.first_name || ' ' || d.last_name AS director_name
		FROM businesses b
		LEFT JOIN director_businesses db
			ON b.id = db.business_id
		LEFT JOIN directors d
			ON d.id = db.director_id
		ORDER BY b.id, d.id`
)

// RecordsRepository runs the registry's read-only queries.
type RecordsRepository struct {
	db DBTX
}

// NewRecordsRepository returns a repository bound to db for its lifetime.
func NewRecordsRepository(db DBTX) *RecordsRepository {
	return &RecordsRepository{db: db}
}

func scanDirector(row pgx.CollectableRow) (Director, error) {
	var d Director
	err := row.Scan(&d.ID, &d.FirstName, &d.LastName)
	return d, err
}

func scanBusiness(row pgx.CollectableRow) (Business, error) {
	var b Business
	err := row.Scan(&b.ID, &b.Name, &b.RegisteredAddress, &b.RegistrationNumber, &b.RegistrationDate)
	return b, err
}

func scanDirectorBusinessRecord(row pgx.CollectableRow) (DirectorBusinessRecord, error) {
	var r DirectorBusinessRecord
	err := row.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Name, &r.RegisteredAddress, &r.RegistrationNumber)
	return r, err
}

func scanBusinessDirector(row pgx.CollectableRow) (BusinessDirector, error) {
	var bd BusinessDirector
	err := row.Scan(&bd.BusinessName, &bd.DirectorName)
	return bd, err
}

// queryAll runs a multi-row query and always returns a non-nil slice.
func queryAll[T any](ctx context.Context, db DBTX, name string, fn pgx.RowToFunc[T], sql string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}

	items, err := pgx.CollectRows(rows, fn)
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", name, err)
	}

	if items == nil {
		items = []T{}
	}
	return items, nil
}

// queryOne runs a single-row lookup. A missing row is (nil, nil).
func queryOne[T any](ctx context.Context, db DBTX, name string, fn pgx.RowToFunc[T], sql string, args ...any) (*T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}

	item, err := pgx.CollectOneRow(rows, fn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("collect %s: %w", name, err)
	}

	return &item, nil
}

// ListDirectorBusinessRecords returns every director joined to each business
// they are linked to.
func (r *RecordsRepository) ListDirectorBusinessRecords(ctx context.Context) ([]DirectorBusinessRecord, error) {
	return queryAll(ctx, r.db, "director business records", scanDirectorBusinessRecord, directorBusinessRecordsQuery)
}

// GetRecords returns ListDirectorBusinessRecords encoded as a JSON array.
//
// It is the only accessor returning encoded text; existing consumers read
// the blob directly. An empty result encodes as [].
func (r *RecordsRepository) GetRecords(ctx context.Context) ([]byte, error) {
	records, err := r.ListDirectorBusinessRecords(ctx)
	if err != nil {
		return nil, err
	}

	out, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode director business records: %w", err)
	}
	return out, nil
}

// GetDirectorRecords returns every director.
func (r *RecordsRepository) GetDirectorRecords(ctx context.Context) ([]Director, error) {
	return queryAll(ctx, r.db, "directors", scanDirector, directorsQuery)
}

// GetSingleDirectorRecord returns the director with id, or nil when there is none.
func (r *RecordsRepository) GetSingleDirectorRecord(ctx context.Context, id int64) (*Director, error) {
	return queryOne(ctx, r.db, "director", scanDirector, directorByIDQuery, id)
}

// GetBusinessRecords returns every business.
func (r *RecordsRepository) GetBusinessRecords(ctx context.Context) ([]Business, error) {
	return queryAll(ctx, r.db, "businesses", scanBusiness, businessesQuery)
}

// GetSingleBusinessRecord returns the business with id, or nil when there is none.
func (r *RecordsRepository) GetSingleBusinessRecord(ctx context.Context, id int64) (*Business, error) {
	return queryOne(ctx, r.db, "business", scanBusiness, businessByIDQuery, id)
}

// GetBusinessesRegisteredInYear returns businesses whose registration date
// falls in year.
func (r *RecordsRepository) GetBusinessesRegisteredInYear(ctx context.Context, year int) ([]Business, error) {
	return queryAll(ctx, r.db, "businesses by year", scanBusiness, businessesInYearQuery, year)
}

// GetLast100Records returns the RecentDirectorsLimit directors with the
// highest ids, highest first.
func (r *RecordsRepository) GetLast100Records(ctx context.Context) ([]Director, error) {
	return queryAll(ctx, r.db, "recent directors", scanDirector, recentDirectorsQuery, RecentDirectorsLimit)
}

// GetBusinessNameWithDirectorFullName returns one row per business/director
// link, plus one row with a null director name for each unlinked business.
func (r *RecordsRepository) GetBusinessNameWithDirectorFullName(ctx context.Context) ([]BusinessDirector, error) {
	return queryAll(ctx, r.db, "business directors", scanBusinessDirector, businessDirectorsQuery)
}
