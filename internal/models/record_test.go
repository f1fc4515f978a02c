package models

import "testing"

func TestRecordValues_MatchColumns(t *testing.T) {
	r := Record{ID: "1", Lawyers: "last"}

	values := r.Values()
	if len(values) != len(Columns) {
		t.Fatalf("Values has %d fields, Columns has %d", len(values), len(Columns))
	}

	if values[0] != "1" || values[len(values)-1] != "last" {
		t.Errorf("Values order mismatch: %v", values)
	}
}

func TestReportTable(t *testing.T) {
	var nilTable *ReportTable
	if !nilTable.IsEmpty() || nilTable.Len() != 0 {
		t.Error("nil table should be empty")
	}

	table := &ReportTable{}
	table.Append(Record{ID: "b"})
	table.Append(Record{ID: "a"})

	rows := table.Rows()
	if len(rows) != 2 || rows[0][0] != "b" || rows[1][0] != "a" {
		t.Errorf("Rows should keep insertion order, got %v", rows)
	}
}

func TestPayloadIsSuccess(t *testing.T) {
	var p *Payload
	if p.IsSuccess() {
		t.Error("nil payload is not a success")
	}

	if !(&Payload{Status: StatusSuccess}).IsSuccess() {
		t.Error("status success should be a success")
	}
}
