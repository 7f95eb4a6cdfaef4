package db

import (
	"context"
	"database/sql"
	"embed"

	"emperror.dev/errors"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/starshine-sys/rsvp/common/log"

	migrate "github.com/rubenv/sql-migrate"

	// pgx driver for migrations
	_ "github.com/jackc/pgx/v4/stdlib"
)

// sq is a squirrel builder for postgres
var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type DB struct {
	*pgxpool.Pool
}

// New connects to the database. If autoMigrate is true, migrations are run first.
func New(postgres string, autoMigrate bool) (*DB, error) {
	if autoMigrate {
		err := RunMigrations(postgres)
		if err != nil {
			return nil, errors.Wrap(err, "running migrations")
		}
	}

	pool, err := pgxpool.Connect(context.Background(), postgres)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to postgres")
	}

	return &DB{Pool: pool}, nil
}

//go:embed migrations
var fs embed.FS

// RunMigrations runs all of the migrations in migrations/.
func RunMigrations(postgres string) (err error) {
	db, err := sql.Open("pgx", postgres)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}

	// we close this because we end up using pgx's native driver for all other queries.
	defer db.Close()

	err = db.Ping()
	if err != nil {
		return errors.Wrap(err, "pinging database")
	}

	migrations := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: fs,
		Root:       "migrations",
	}

	migrate.SetTable("migration_history")

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return errors.Wrap(err, "running migrations")
	}

	if n != 0 {
		log.Debugf("Performed %v migrations!", n)
	}
	return nil
}
