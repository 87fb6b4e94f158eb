package query_test

import (
	"testing"

	"github.com/veridoc-co/veridoc/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "validation_records", "r").
		Project("id", "ID").
		Project("session_id", "SessionID").
		Project("document_type", "DocumentType").
		Project("label", "Label").
		Project("created_at", "CreatedAt")
}

func ptr(s string) *string { return &s }

func TestBuildPage(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "CreatedAt", Descending: true})

	sql, args := b.
		WhereEquals("SessionID", ptr("sess-1")).
		BuildPage(2, 20)

	want := "SELECT r.id, r.session_id, r.document_type, r.label, r.created_at " +
		"FROM public.validation_records r " +
		"WHERE r.session_id = $1 " +
		"ORDER BY r.created_at DESC LIMIT 20 OFFSET 20"
	if sql != want {
		t.Errorf("sql:\ngot  %s\nwant %s", sql, want)
	}
	if len(args) != 1 {
		t.Fatalf("args: got %d, want 1", len(args))
	}
}

func TestBuildCount(t *testing.T) {
	b := query.NewBuilder(testProjection())

	sql, args := b.
		WhereContains("Label", ptr("cliente")).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.validation_records r WHERE r.label ILIKE $1"
	if sql != want {
		t.Errorf("sql: got %s, want %s", sql, want)
	}
	if args[0] != "%cliente%" {
		t.Errorf("arg: got %v, want %%cliente%%", args[0])
	}
}

func TestNilFiltersAreNoOps(t *testing.T) {
	b := query.NewBuilder(testProjection())

	sql, args := b.
		WhereEquals("SessionID", nil).
		WhereContains("Label", nil).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.validation_records r"
	if sql != want {
		t.Errorf("sql: got %s, want %s", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args: got %d, want 0", len(args))
	}
}

func TestParameterNumbering(t *testing.T) {
	b := query.NewBuilder(testProjection())

	sql, args := b.
		WhereEquals("SessionID", ptr("sess-1")).
		WhereEquals("DocumentType", ptr("cedula_ciudadania")).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.validation_records r " +
		"WHERE r.session_id = $1 AND r.document_type = $2"
	if sql != want {
		t.Errorf("sql: got %s, want %s", sql, want)
	}
	if len(args) != 2 {
		t.Errorf("args: got %d, want 2", len(args))
	}
}

func TestBuildSingle(t *testing.T) {
	b := query.NewBuilder(testProjection())

	sql, args := b.BuildSingle("ID", "abc-123")

	want := "SELECT r.id, r.session_id, r.document_type, r.label, r.created_at " +
		"FROM public.validation_records r WHERE r.id = $1"
	if sql != want {
		t.Errorf("sql: got %s, want %s", sql, want)
	}
	if args[0] != "abc-123" {
		t.Errorf("arg: got %v, want abc-123", args[0])
	}
}

func TestParseSortFields(t *testing.T) {
	fields := query.ParseSortFields("DocumentType,-CreatedAt")

	if len(fields) != 2 {
		t.Fatalf("fields: got %d, want 2", len(fields))
	}
	if fields[0].Field != "DocumentType" || fields[0].Descending {
		t.Errorf("first: got %+v, want DocumentType ASC", fields[0])
	}
	if fields[1].Field != "CreatedAt" || !fields[1].Descending {
		t.Errorf("second: got %+v, want CreatedAt DESC", fields[1])
	}
}
