/*
Package mongodataset provides methods to read and write tables of
categorical tokens using a MongoDB database as backend.

Rows are stored as documents on the samples collection of the default
database for the session, with a field for each attribute in header order
and the position of the row in the table as _id, so tables are read back in
the order they were written.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	samplesCollectionName = "samples"
)

/*
Dial takes a MongoDB connection URL and returns a session on it or an
error if the server cannot be reached.
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB at %s: %v", url, err)
	}
	return session, nil
}

/*
ReadTable takes a context and a MongoDB session and returns the table stored
on the samples collection: a header with the attribute fields of the first
document followed by a row for every document in _id order. It returns an
error if the collection cannot be queried, is empty or a document lacks an
attribute of the header.
*/
func ReadTable(ctx context.Context, session *mgo.Session) ([][]string, error) {
	iter := samplesCollection(session).Find(nil).Sort("_id").Iter()
	defer iter.Close()
	var table [][]string
	var doc bson.D
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if table == nil {
			table = [][]string{header(doc)}
		}
		row, err := documentRow(doc, table[0])
		if err != nil {
			return nil, fmt.Errorf("reading table: row %d: %v", len(table), err)
		}
		table = append(table, row)
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %v", err)
	}
	if table == nil {
		return nil, fmt.Errorf("reading table: %s collection is empty", samplesCollectionName)
	}
	return table, nil
}

/*
WriteTable takes a context, a MongoDB session and a table whose first row is
the header and appends its rows to the samples collection. It returns the
number of rows written, header excluded, or an error if an attribute name
cannot be used as a field name, a row has a different number of fields than
the header or the documents cannot be inserted.
*/
func WriteTable(ctx context.Context, session *mgo.Session, table [][]string) (int, error) {
	if len(table) == 0 {
		return 0, fmt.Errorf("writing table: no header")
	}
	for _, name := range table[0] {
		if err := validFieldName(name); err != nil {
			return 0, fmt.Errorf("writing table: %v", err)
		}
	}
	c := samplesCollection(session)
	offset, err := c.Count()
	if err != nil {
		return 0, fmt.Errorf("writing table: counting samples: %v", err)
	}
	docs := make([]interface{}, 0, len(table)-1)
	for i, row := range table[1:] {
		if len(row) != len(table[0]) {
			return 0, fmt.Errorf("writing table: row %d has %d fields, header has %d", i+1, len(row), len(table[0]))
		}
		doc := make(bson.D, 0, len(row)+1)
		doc = append(doc, bson.DocElem{Name: "_id", Value: offset + i + 1})
		for j, v := range row {
			doc = append(doc, bson.DocElem{Name: table[0][j], Value: v})
		}
		docs = append(docs, doc)
	}
	if err = ctx.Err(); err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, nil
	}
	err = c.Insert(docs...)
	if err != nil {
		return 0, fmt.Errorf("writing table: inserting samples: %v", err)
	}
	return len(docs), nil
}

func header(doc bson.D) []string {
	var header []string
	for _, e := range doc {
		if e.Name != "_id" {
			header = append(header, e.Name)
		}
	}
	return header
}

func documentRow(doc bson.D, header []string) ([]string, error) {
	values := doc.Map()
	if len(values)-1 != len(header) {
		return nil, fmt.Errorf("document has %d fields, header has %d", len(values)-1, len(header))
	}
	row := make([]string, len(header))
	for i, name := range header {
		v, ok := values[name]
		if !ok {
			return nil, fmt.Errorf("document has no field %s", name)
		}
		row[i] = fmt.Sprintf("%v", v)
	}
	return row, nil
}

func validFieldName(name string) error {
	if name == "_id" {
		return fmt.Errorf("invalid attribute name %q: reserved collection field", "_id")
	}
	if name == "" {
		return fmt.Errorf("empty attribute names cannot be used as fields")
	}
	if strings.ContainsAny(name, ".$") {
		return fmt.Errorf("invalid attribute name %q: contains reserved characters %q or %q", name, ".", "$")
	}
	return nil
}

func samplesCollection(session *mgo.Session) *mgo.Collection {
	return session.DB("").C(samplesCollectionName)
}
