package utils

import "testing"

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(101, 2, 50)
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages)
	}
	if p.CurrentPage != 2 || p.PageSize != 50 {
		t.Fatalf("unexpected pagination %+v", p)
	}
}

func TestCreatePaginationDefaults(t *testing.T) {
	p := CreatePagination(10, 0, 0)
	if p.CurrentPage != 1 || p.PageSize != 50 {
		t.Fatalf("expected defaults, got %+v", p)
	}
}

func TestPageBounds(t *testing.T) {
	start, end := PageBounds(101, 3, 50)
	if start != 100 || end != 101 {
		t.Fatalf("expected last partial page [100,101), got [%d,%d)", start, end)
	}

	start, end = PageBounds(10, 5, 50)
	if start != 10 || end != 10 {
		t.Fatalf("expected empty out-of-range page, got [%d,%d)", start, end)
	}
}

func TestParseFlexibleDate(t *testing.T) {
	for _, value := range []string{
		"2024-07-15",
		"2024-07-15T10:30:00Z",
		"2024-07-15T10:30:00",
		"7/15/2024",
	} {
		got, err := ParseFlexibleDate(value)
		if err != nil {
			t.Fatalf("ParseFlexibleDate(%q): %v", value, err)
		}
		if got.Year() != 2024 || got.Month() != 7 || got.Day() != 15 {
			t.Fatalf("ParseFlexibleDate(%q) = %v", value, got)
		}
	}

	if _, err := ParseFlexibleDate("not a date"); err == nil {
		t.Fatalf("expected error for garbage input")
	}
}
