package pagination

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{1, 10, 1, 10},
		{0, 10, 1, 10},
		{-3, 10, 1, 10},
		{2, 0, 2, DefaultLimit},
		{2, -1, 2, DefaultLimit},
		{1, 100, 1, 100},
		{1, 101, 1, MaxLimit},
		{1, 100000, 1, MaxLimit},
	}
	for _, c := range cases {
		p := Normalize(c.page, c.limit)
		if p.Page != c.wantPage || p.Limit != c.wantLimit {
			t.Errorf("Normalize(%d, %d) = %+v, want page=%d limit=%d", c.page, c.limit, p, c.wantPage, c.wantLimit)
		}
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 1, Limit: 10}).Offset(); got != 0 {
		t.Errorf("page 1 offset = %d, want 0", got)
	}
	if got := (Params{Page: 2, Limit: 10}).Offset(); got != 10 {
		t.Errorf("page 2 offset = %d, want 10", got)
	}
	if got := (Params{Page: 99, Limit: 25}).Offset(); got != 2450 {
		t.Errorf("page 99 offset = %d, want 2450", got)
	}
}

func TestNewMeta(t *testing.T) {
	cases := []struct {
		page, limit, total int
		wantPages          int
	}{
		{1, 10, 0, 0},
		{1, 10, 1, 1},
		{1, 10, 10, 1},
		{1, 10, 11, 2},
		{2, 10, 15, 2},
		{99, 10, 15, 2}, // out-of-range page still reports the true total
	}
	for _, c := range cases {
		m := NewMeta(Params{Page: c.page, Limit: c.limit}, c.total)
		if m.TotalPages != c.wantPages {
			t.Errorf("NewMeta(page=%d limit=%d total=%d).TotalPages = %d, want %d",
				c.page, c.limit, c.total, m.TotalPages, c.wantPages)
		}
		if m.Total != c.total {
			t.Errorf("Total = %d, want %d", m.Total, c.total)
		}
	}
}
