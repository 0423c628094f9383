package main

import (
	"testing"
)

func TestSourceFilesStableOrder(t *testing.T) {
	sources := map[string]string{
		"dataclass":   "dc",
		"django":      "dj",
		"pydantic":    "py",
		"marshmallow": "ma",
	}

	want := []sourceFile{
		{name: "employee_django_serializer.py", code: "dj"},
		{name: "employee_marshmallow_serializer.py", code: "ma"},
		{name: "employee_pydantic_serializer.py", code: "py"},
		{name: "employee_dataclass_serializer.py", code: "dc"},
	}

	// map iteration order must not leak into the file list
	for i := 0; i < 10; i++ {
		got := sourceFiles("employee", sources)
		if len(got) != len(want) {
			t.Fatalf("got %d files, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("file %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	}
}

func TestSourceFilesSkipsAbsentKinds(t *testing.T) {
	got := sourceFiles("row", map[string]string{"pydantic": "py"})
	if len(got) != 1 || got[0].name != "row_pydantic_serializer.py" {
		t.Fatalf("unexpected files: %+v", got)
	}
}
