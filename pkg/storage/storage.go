// Package storage persists the grabs submitted to a download client so a
// run can tell what is already on its way down.
package storage

import (
	"context"
	"errors"

	"github.com/wversluys/fetcharr/pkg/machine"
	"github.com/wversluys/fetcharr/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")

// GrabState tracks a grab through its lifetime. A grab is pending from
// the moment it is handed to the download client until the library
// reports the media as present.
type GrabState string

const (
	GrabStatePending   GrabState = "pending"
	GrabStateCompleted GrabState = "completed"
)

// Machine returns the allowed transitions out of the given state.
// Completed is terminal; a settled grab never goes back on the wire.
func (s GrabState) Machine() *machine.StateMachine[GrabState] {
	return machine.New(s,
		machine.From(GrabStatePending).To(GrabStateCompleted),
	)
}

type Storage interface {
	RunMigrations(ctx context.Context) error
	GrabStorage
}

// GrabStorage is the ledger of submitted downloads.
type GrabStorage interface {
	CreateGrab(ctx context.Context, grab model.Grab) (int64, error)
	GetGrab(ctx context.Context, id int64) (*model.Grab, error)
	// ListGrabs lists recorded grabs newest first. A limit of 0 returns
	// all of them.
	ListGrabs(ctx context.Context, offset, limit int) ([]*model.Grab, error)
	CountGrabs(ctx context.Context) (int, error)
	// ListPendingGrabs returns the pending grabs recorded for the media
	// item with the given IMDb id.
	ListPendingGrabs(ctx context.Context, imdbID string) ([]*model.Grab, error)
	UpdateGrabState(ctx context.Context, id int64, state GrabState) error
}
