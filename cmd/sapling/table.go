package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pbanos/sapling/dataset/csv"
	"github.com/pbanos/sapling/dataset/mongodataset"
	"github.com/pbanos/sapling/dataset/sqlset"
	"github.com/pbanos/sapling/dataset/sqlset/pgadapter"
	"github.com/pbanos/sapling/dataset/sqlset/sqlite3adapter"
)

// tableFlags are the flags shared by commands reading or writing tables.
type tableFlags struct {
	delimiter  string
	maxDBConns int
}

const tableLocations = "a CSV (.csv) or SQLite3 (.db) file, a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL"

func (tf *tableFlags) Validate() error {
	if utf8.RuneCountInString(tf.delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", tf.delimiter)
	}
	return nil
}

func (tf *tableFlags) delimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(tf.delimiter)
	return r
}

/*
readTable reads the table at the given location, which is taken to be a CSV
stream on STDIN when empty.
*/
func (rcc *rootCmdConfig) readTable(location string, tf *tableFlags) ([][]string, error) {
	ctx := rcc.Context()
	switch {
	case location == "":
		rcc.Logf("Reading table from STDIN...")
		return csv.ReadTable(os.Stdin, tf.delimiterRune())
	case strings.HasPrefix(location, "postgresql://"):
		rcc.Logf("Creating PostgreSQL adapter for url %s to read table...", location)
		adapter, err := pgadapter.New(location)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqlset.ReadTable(ctx, adapter)
	case strings.HasPrefix(location, "mongodb://"):
		rcc.Logf("Connecting to MongoDB at %s to read table...", location)
		session, err := mongodataset.Dial(location)
		if err != nil {
			return nil, err
		}
		defer session.Close()
		return mongodataset.ReadTable(ctx, session)
	case strings.HasSuffix(location, ".db"):
		rcc.Logf("Creating SQLite3 adapter for file %s to read table...", location)
		adapter, err := sqlite3adapter.New(location, tf.maxDBConns)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqlset.ReadTable(ctx, adapter)
	}
	rcc.Logf("Opening %s to read table...", location)
	return csv.ReadTableFromFilePath(location, tf.delimiterRune())
}

/*
writeTable writes the table onto the given location, which is taken to be a
CSV stream on STDOUT when empty.
*/
func (rcc *rootCmdConfig) writeTable(location string, tf *tableFlags, table [][]string) error {
	ctx := rcc.Context()
	switch {
	case location == "":
		rcc.Logf("Using STDOUT to dump table...")
		return csv.WriteTable(os.Stdout, tf.delimiterRune(), table)
	case strings.HasPrefix(location, "postgresql://"):
		rcc.Logf("Creating PostgreSQL adapter for url %s to dump table...", location)
		adapter, err := pgadapter.New(location)
		if err != nil {
			return err
		}
		defer adapter.Close()
		_, err = sqlset.WriteTable(ctx, adapter, table)
		return err
	case strings.HasPrefix(location, "mongodb://"):
		rcc.Logf("Connecting to MongoDB at %s to dump table...", location)
		session, err := mongodataset.Dial(location)
		if err != nil {
			return err
		}
		defer session.Close()
		_, err = mongodataset.WriteTable(ctx, session, table)
		return err
	case strings.HasSuffix(location, ".db"):
		rcc.Logf("Creating SQLite3 adapter for file %s to dump table...", location)
		adapter, err := sqlite3adapter.New(location, tf.maxDBConns)
		if err != nil {
			return err
		}
		defer adapter.Close()
		_, err = sqlset.WriteTable(ctx, adapter, table)
		return err
	}
	rcc.Logf("Creating %s to dump table...", location)
	f, err := os.Create(location)
	if err != nil {
		return err
	}
	defer f.Close()
	return csv.WriteTable(f, tf.delimiterRune(), table)
}
