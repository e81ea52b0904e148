package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"travelbook/internal/domain"
)

// Drafts persists itinerary drafts locally. A draft never touches the
// backend until the planner submits it, so it survives offline use and
// process restarts.
type Drafts struct{ db *sql.DB }

// Open opens (and migrates) the drafts database at path. ":memory:"
// gives an ephemeral store for tests.
func Open(path string) (*Drafts, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	// SQLite handles one writer at a time.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, err
	}
	return &Drafts{db: db}, nil
}

func (d *Drafts) Close() error { return d.db.Close() }

const dateFmt = time.RFC3339

func valCityID(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func (d *Drafts) CreateDraft(ctx context.Context, in domain.TripInput) (domain.TripDraft, error) {
	draft := domain.TripDraft{
		ID:        uuid.NewString(),
		Name:      in.Name,
		CityID:    in.CityID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Units:     []domain.DraftUnit{},
		CreatedAt: time.Now().UTC(),
	}
	_, err := d.db.ExecContext(ctx, insertDraftSQL,
		draft.ID,
		draft.Name,
		valCityID(draft.CityID),
		draft.StartDate.Format(dateFmt),
		draft.EndDate.Format(dateFmt),
		draft.CreatedAt.Format(dateFmt),
	)
	if err != nil {
		return domain.TripDraft{}, err
	}
	return draft, nil
}

func (d *Drafts) GetDraft(ctx context.Context, id string) (domain.TripDraft, error) {
	draft, err := d.scanDraft(d.db.QueryRowContext(ctx, getDraftSQL, id))
	if err != nil {
		return domain.TripDraft{}, err
	}
	draft.Units, err = d.units(ctx, draft.ID)
	if err != nil {
		return domain.TripDraft{}, err
	}
	return draft, nil
}

func (d *Drafts) ListDrafts(ctx context.Context) ([]domain.TripDraft, error) {
	rows, err := d.db.QueryContext(ctx, listDraftsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drafts := []domain.TripDraft{}
	for rows.Next() {
		draft, err := d.scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range drafts {
		if drafts[i].Units, err = d.units(ctx, drafts[i].ID); err != nil {
			return nil, err
		}
	}
	return drafts, nil
}

func (d *Drafts) DeleteDraft(ctx context.Context, id string) error {
	res, err := d.db.ExecContext(ctx, deleteDraftSQL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (d *Drafts) AddUnit(ctx context.Context, draftID string, in domain.TripStayUnitInput) (domain.TripDraft, error) {
	// Verify the draft exists before inserting the unit.
	if _, err := d.scanDraft(d.db.QueryRowContext(ctx, getDraftSQL, draftID)); err != nil {
		return domain.TripDraft{}, err
	}
	_, err := d.db.ExecContext(ctx, insertUnitSQL,
		draftID,
		in.StayUnitID,
		in.StartDate.Format(dateFmt),
		in.EndDate.Format(dateFmt),
	)
	if err != nil {
		return domain.TripDraft{}, err
	}
	return d.GetDraft(ctx, draftID)
}

func (d *Drafts) RemoveUnit(ctx context.Context, draftID string, unitID int64) error {
	res, err := d.db.ExecContext(ctx, deleteUnitSQL, draftID, unitID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (d *Drafts) scanDraft(row rowScanner) (domain.TripDraft, error) {
	var draft domain.TripDraft
	var cityID sql.NullInt64
	var start, end, created string

	if err := row.Scan(&draft.ID, &draft.Name, &cityID, &start, &end, &created); err != nil {
		if err == sql.ErrNoRows {
			return domain.TripDraft{}, domain.ErrNotFound
		}
		return domain.TripDraft{}, err
	}
	if cityID.Valid {
		draft.CityID = &cityID.Int64
	}
	draft.StartDate, _ = time.Parse(dateFmt, start)
	draft.EndDate, _ = time.Parse(dateFmt, end)
	draft.CreatedAt, _ = time.Parse(dateFmt, created)
	return draft, nil
}

func (d *Drafts) units(ctx context.Context, draftID string) ([]domain.DraftUnit, error) {
	rows, err := d.db.QueryContext(ctx, listUnitsSQL, draftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := []domain.DraftUnit{}
	for rows.Next() {
		var u domain.DraftUnit
		var start, end string
		if err := rows.Scan(&u.ID, &u.StayUnitID, &start, &end); err != nil {
			return nil, err
		}
		u.StartDate, _ = time.Parse(dateFmt, start)
		u.EndDate, _ = time.Parse(dateFmt, end)
		units = append(units, u)
	}
	return units, rows.Err()
}
