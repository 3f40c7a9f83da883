package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"smallbrave/internal/challenge"
	"smallbrave/internal/dateutil"
	"smallbrave/internal/storage"
	"smallbrave/internal/tracker"
	"smallbrave/internal/ui"
)

func newCalendar() (dateutil.Calendar, error) {
	if flagTZ == "" {
		return dateutil.Local(), nil
	}
	loc, err := time.LoadLocation(flagTZ)
	if err != nil {
		return dateutil.Calendar{}, fmt.Errorf("load time zone %q: %w", flagTZ, err)
	}
	return dateutil.New(loc, time.Sunday), nil
}

func loadTable() ([]challenge.Challenge, error) {
	if flagChallenges == "" {
		return challenge.Default(), nil
	}
	return challenge.LoadFile(flagChallenges)
}

// openService wires the tracker over the sqlite store. When the store
// cannot be opened the session degrades to in-memory state with a
// warning; today's challenge must always render.
func openService(ctx context.Context, cmd *cobra.Command) (*tracker.Service, func(), error) {
	cal, err := newCalendar()
	if err != nil {
		return nil, nil, err
	}
	table, err := loadTable()
	if err != nil {
		return nil, nil, err
	}

	var kv storage.KV
	cleanup := func() {}

	path, err := storage.ResolveDBPath(flagDB)
	if err == nil {
		db, openErr := storage.Open(ctx, path)
		if openErr == nil {
			kv = storage.NewSQLiteKV(db)
			cleanup = func() { _ = db.Close() }
		} else {
			err = openErr
		}
	}
	if kv == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconWarn+" store unavailable, using session-only state: "+err.Error()))
		kv = storage.NewMemKV()
	}

	return tracker.NewService(kv, cal, table), cleanup, nil
}

func printWarning(cmd *cobra.Command, warning string) {
	if warning != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconWarn+" "+warning))
	}
}
