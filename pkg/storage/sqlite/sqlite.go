package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/wversluys/fetcharr/pkg/logger"
	"github.com/wversluys/fetcharr/pkg/storage"
	"github.com/wversluys/fetcharr/pkg/storage/sqlite/schema/gen/model"
	"github.com/wversluys/fetcharr/pkg/storage/sqlite/schema/gen/table"
)

type SQLite struct {
	db *sql.DB
}

// New creates a new sqlite database given a path to the database file
func New(filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	return SQLite{
		db: db,
	}, nil
}

// RunMigrations brings the database schema up to date
func (s SQLite) RunMigrations(ctx context.Context) error {
	return runMigrations(s.db)
}

// CreateGrab records a download handed to the download client
func (s SQLite) CreateGrab(ctx context.Context, grab model.Grab) (int64, error) {
	if grab.State == "" {
		grab.State = string(storage.GrabStatePending)
	}
	stmt := table.Grab.INSERT(table.Grab.ImdbID, table.Grab.Title, table.Grab.Season, table.Grab.Episode, table.Grab.SeasonPack, table.Grab.ReleaseName, table.Grab.InfoHash, table.Grab.State).MODEL(grab).RETURNING(table.Grab.AllColumns)
	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// GetGrab fetches a single grab by id
func (s SQLite) GetGrab(ctx context.Context, id int64) (*model.Grab, error) {
	stmt := table.Grab.SELECT(table.Grab.AllColumns).FROM(table.Grab).WHERE(table.Grab.ID.EQ(sqlite.Int64(id)))

	grab := new(model.Grab)
	err := stmt.QueryContext(ctx, s.db, grab)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get grab: %w", err)
	}

	return grab, nil
}

// ListGrabs lists recorded grabs, newest first
// If limit is 0, returns all grabs without pagination
func (s SQLite) ListGrabs(ctx context.Context, offset, limit int) ([]*model.Grab, error) {
	log := logger.FromCtx(ctx)

	grabs := make([]*model.Grab, 0)

	stmt := table.Grab.SELECT(table.Grab.AllColumns).FROM(table.Grab).ORDER_BY(table.Grab.ID.DESC())
	if limit > 0 {
		stmt = stmt.LIMIT(int64(limit)).OFFSET(int64(offset))
	}

	err := stmt.QueryContext(ctx, s.db, &grabs)
	if err != nil {
		log.Errorf("failed to list grabs: %v", err)
		return nil, err
	}

	return grabs, nil
}

// CountGrabs returns the total number of recorded grabs
func (s SQLite) CountGrabs(ctx context.Context) (int, error) {
	stmt := table.Grab.SELECT(sqlite.COUNT(table.Grab.ID).AS("count")).FROM(table.Grab)

	var result struct {
		Count int64
	}
	err := stmt.QueryContext(ctx, s.db, &result)
	if err != nil {
		return 0, fmt.Errorf("failed to count grabs: %w", err)
	}

	return int(result.Count), nil
}

// ListPendingGrabs lists the pending grabs for a media item
func (s SQLite) ListPendingGrabs(ctx context.Context, imdbID string) ([]*model.Grab, error) {
	log := logger.FromCtx(ctx)

	grabs := make([]*model.Grab, 0)

	stmt := table.Grab.SELECT(table.Grab.AllColumns).FROM(table.Grab).WHERE(
		table.Grab.ImdbID.EQ(sqlite.String(imdbID)).AND(table.Grab.State.EQ(sqlite.String(string(storage.GrabStatePending)))),
	)
	err := stmt.QueryContext(ctx, s.db, &grabs)
	if err != nil {
		log.Errorf("failed to list pending grabs: %v", err)
		return nil, err
	}

	return grabs, nil
}

// UpdateGrabState moves a grab to the given state
func (s SQLite) UpdateGrabState(ctx context.Context, id int64, state storage.GrabState) error {
	grab, err := s.GetGrab(ctx, id)
	if err != nil {
		return err
	}

	if err := storage.GrabState(grab.State).Machine().ToState(state); err != nil {
		return fmt.Errorf("grab %d cannot move from %s to %s: %w", id, grab.State, state, err)
	}

	stmt := table.Grab.UPDATE(table.Grab.State).SET(sqlite.String(string(state))).WHERE(table.Grab.ID.EQ(sqlite.Int64(id)))
	if _, err := s.handleUpdate(ctx, stmt); err != nil {
		return err
	}

	return nil
}

func (s SQLite) handleInsert(ctx context.Context, stmt sqlite.InsertStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s SQLite) handleUpdate(ctx context.Context, stmt sqlite.UpdateStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debug("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}
