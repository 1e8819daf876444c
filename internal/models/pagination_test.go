package models

import "testing"

func TestNewPaginationResult(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		totalCount int64
		wantPages  int
	}{
		{"exact division", 1, 10, 30, 3},
		{"partial last page", 1, 10, 31, 4},
		{"single short page", 1, 10, 3, 1},
		{"empty set", 1, 10, 0, 0},
		{"page size one", 1, 1, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewPaginationResult(tt.page, tt.pageSize, tt.totalCount)
			if result.TotalPages != tt.wantPages {
				t.Errorf("total_pages = %d, want %d", result.TotalPages, tt.wantPages)
			}
			if result.TotalCount != tt.totalCount {
				t.Errorf("total_count = %d, want %d", result.TotalCount, tt.totalCount)
			}
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	if got := CalculateOffset(1, 10); got != 0 {
		t.Errorf("offset for page 1 = %d, want 0", got)
	}
	if got := CalculateOffset(3, 7); got != 14 {
		t.Errorf("offset for page 3 size 7 = %d, want 14", got)
	}
}

func TestCustomerFilterNormalize(t *testing.T) {
	f := CustomerFilter{}
	if err := f.Normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Page != 1 || f.PageSize != DefaultPageSize {
		t.Errorf("defaults not applied: page=%d page_size=%d", f.Page, f.PageSize)
	}

	neg := CustomerFilter{Page: -2}
	if err := neg.Normalize(); err == nil {
		t.Error("expected error for negative page")
	}

	negSize := CustomerFilter{PageSize: -5}
	if err := negSize.Normalize(); err == nil {
		t.Error("expected error for negative page_size")
	}
}
