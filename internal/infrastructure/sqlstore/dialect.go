package sqlstore

import (
	"fmt"

	"github.com/pressly/goose/v3"
)

type dialect struct {
	name       string // config name: sqlite, postgres, mysql
	driverName string // database/sql driver
	goose      goose.Dialect
	returning  bool   // INSERT ... RETURNING id instead of LastInsertId
}

var dialects = map[string]dialect{
	DriverSQLite:   {name: DriverSQLite, driverName: "sqlite", goose: goose.DialectSQLite3},
	DriverPostgres: {name: DriverPostgres, driverName: "pgx", goose: goose.DialectPostgres, returning: true},
	DriverMySQL:    {name: DriverMySQL, driverName: "mysql", goose: goose.DialectMySQL},
}

func dialectFor(driver string) (dialect, error) {
	if driver == "" {
		driver = DriverSQLite
	}
	d, ok := dialects[driver]
	if !ok {
		return dialect{}, fmt.Errorf("unsupported db driver: %s (expected sqlite, postgres or mysql)", driver)
	}
	return d, nil
}
