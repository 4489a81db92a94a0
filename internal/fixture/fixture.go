// Package fixture builds the encrypted test database consumed by the
// WASM-hosted reader. The build is a fixed sequence of non-retriable
// steps: the first engine error aborts the whole run and the file is
// left in whatever state the earlier steps produced.
package fixture

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/maloquacious/fixturedb/internal/logger"
	"github.com/maloquacious/fixturedb/internal/report"
	"github.com/maloquacious/fixturedb/internal/store"
	"github.com/maloquacious/fixturedb/internal/store/sqlite"
)

// Builder produces, verifies, and dumps the fixture at DBPath.
type Builder struct {
	DBPath string
	Key    string
	Log    logger.Logger
	Out    io.Writer
}

// New creates a Builder. Query output goes to out; progress markers go
// through log.
func New(dbPath, key string, log logger.Logger, out io.Writer) *Builder {
	return &Builder{
		DBPath: dbPath,
		Key:    key,
		Log:    log,
		Out:    out,
	}
}

// Build destroys any pre-existing fixture and regenerates it from
// scratch: schema, seed rows, index, then the two verification queries.
func (b *Builder) Build(ctx context.Context) error {
	if err := store.Remove(b.DBPath); err != nil {
		return err
	}

	st := sqlite.New(b.DBPath, b.Key)
	if err := st.Open(); err != nil {
		return err
	}
	defer st.Close()
	b.Log.Info("encrypted database created: %s", b.DBPath)

	if err := st.Exec(ctx, sqlite.CreateEmployeesSQL); err != nil {
		return fmt.Errorf("creating employees table: %w", err)
	}
	b.Log.Info("employees table created")

	if err := st.Exec(ctx, sqlite.CreateProjectsSQL); err != nil {
		return fmt.Errorf("creating projects table: %w", err)
	}
	b.Log.Info("projects table created")

	if err := st.Exec(ctx, insertEmployeesSQL); err != nil {
		return fmt.Errorf("inserting employees: %w", err)
	}
	b.Log.Info("seed data inserted: %d employees", wantEmployees)

	if err := st.Exec(ctx, insertProjectsSQL); err != nil {
		return fmt.Errorf("inserting projects: %w", err)
	}
	b.Log.Info("seed data inserted: %d projects", wantProjects)

	if err := st.Exec(ctx, sqlite.CreateDepartmentIndexSQL); err != nil {
		return fmt.Errorf("creating department index: %w", err)
	}
	b.Log.Info("department index created")

	if err := b.runVerificationQueries(ctx, st); err != nil {
		return err
	}

	if err := st.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	b.Log.Info("fixture complete: %s", b.DBPath)
	return nil
}

// Verify opens an existing fixture read-only, classifies its state, and
// checks that the seed rows survived intact.
func (b *Builder) Verify(ctx context.Context) error {
	st := sqlite.New(b.DBPath, b.Key)
	if err := st.OpenReadOnly(); err != nil {
		return err
	}
	defer st.Close()

	state, err := st.CheckState(ctx)
	if err != nil {
		return err
	}
	switch state {
	case store.StateMissing:
		return fmt.Errorf("fixture missing: %s", b.DBPath)
	case store.StateUnreadable:
		return fmt.Errorf("fixture unreadable, wrong key?: %s", b.DBPath)
	case store.StateIncomplete:
		return fmt.Errorf("fixture schema incomplete: %s", b.DBPath)
	}

	employees, err := b.countRows(ctx, st, countEmployeesSQL)
	if err != nil {
		return err
	}
	if employees != wantEmployees {
		return fmt.Errorf("employees table has %d rows, want %d", employees, wantEmployees)
	}

	projects, err := b.countRows(ctx, st, countProjectsSQL)
	if err != nil {
		return err
	}
	if projects != wantProjects {
		return fmt.Errorf("projects table has %d rows, want %d", projects, wantProjects)
	}

	if err := b.runVerificationQueries(ctx, st); err != nil {
		return err
	}

	b.Log.Info("fixture verified: %d employees, %d projects", employees, projects)
	return nil
}

// Dump opens the fixture read-only and prints the full contents of both
// tables in the named format ("text" or "json").
func (b *Builder) Dump(ctx context.Context, format string) error {
	printer, err := report.NewPrinter(format, b.Out)
	if err != nil {
		return err
	}

	st := sqlite.New(b.DBPath, b.Key)
	if err := st.OpenReadOnly(); err != nil {
		return err
	}
	defer st.Close()

	if err := st.Query(ctx, dumpEmployeesSQL, printer.Row); err != nil {
		return fmt.Errorf("dumping employees: %w", err)
	}
	if err := st.Query(ctx, dumpProjectsSQL, printer.Row); err != nil {
		return fmt.Errorf("dumping projects: %w", err)
	}

	return printer.Flush()
}

// runVerificationQueries streams the per-employee project counts and
// the per-department stats to the output writer.
func (b *Builder) runVerificationQueries(ctx context.Context, st store.Store) error {
	printer := report.NewText(b.Out)

	b.Log.Info("verifying data: per-employee project counts")
	if err := st.Query(ctx, employeeProjectsSQL, printer.Row); err != nil {
		return fmt.Errorf("verification query failed: %w", err)
	}

	b.Log.Info("verifying data: department statistics")
	if err := st.Query(ctx, departmentStatsSQL, printer.Row); err != nil {
		return fmt.Errorf("verification query failed: %w", err)
	}

	return printer.Flush()
}

// countRows runs a single-value COUNT(*) query.
func (b *Builder) countRows(ctx context.Context, st store.Store, sqlText string) (int, error) {
	n := -1
	err := st.Query(ctx, sqlText, func(_, values []string) error {
		v, err := strconv.Atoi(values[0])
		if err != nil {
			return fmt.Errorf("unexpected count value %q: %w", values[0], err)
		}
		n = v
		return nil
	})
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("count query returned no rows")
	}
	return n, nil
}
