package mongodataset

import (
	"testing"

	"gopkg.in/mgo.v2/bson"
)

func TestDocumentRow(t *testing.T) {
	doc := bson.D{{Name: "_id", Value: 1}, {Name: "outlook", Value: "sunny"}, {Name: "play", Value: "no"}}
	h := header(doc)
	if len(h) != 2 || h[0] != "outlook" || h[1] != "play" {
		t.Fatal("expected header [outlook play], got:", h)
	}
	row, err := documentRow(doc, h)
	if err != nil {
		t.Fatal("unexpected error reading document:", err)
	}
	if row[0] != "sunny" || row[1] != "no" {
		t.Error("expected row [sunny no], got:", row)
	}
}

func TestDocumentRowMissingField(t *testing.T) {
	doc := bson.D{{Name: "_id", Value: 2}, {Name: "outlook", Value: "rain"}, {Name: "wind", Value: "weak"}}
	if _, err := documentRow(doc, []string{"outlook", "play"}); err == nil {
		t.Error("expected error for document without play field")
	}
}

func TestValidFieldName(t *testing.T) {
	for _, name := range []string{"_id", "", "a.b", "$a"} {
		if err := validFieldName(name); err == nil {
			t.Errorf("expected error for field name %q", name)
		}
	}
	if err := validFieldName("outlook"); err != nil {
		t.Error("unexpected error for field name outlook:", err)
	}
}
