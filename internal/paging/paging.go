// Package paging derives pagination state from server-reported counts and
// renders the two pagination control variants.
package paging

// TotalPages is ceil(count/size) floored at 1. Size must be positive.
func TotalPages(count, size int) int {
	if size <= 0 {
		return 1
	}
	n := (count + size - 1) / size
	if n < 1 {
		return 1
	}
	return n
}

// Ellipsis is the gap marker emitted by the compact window.
const Ellipsis = -1

// Window returns the compact page-number sequence for the classic control:
// all pages when totalPages <= 5, otherwise first and last page with a
// current±1 window between, compressed by Ellipsis where the gap to a
// boundary exceeds one page.
func Window(current, totalPages int) []int {
	const maxVisible = 5
	if totalPages <= maxVisible {
		out := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			out = append(out, i)
		}
		return out
	}

	start := max(2, current-1)
	end := min(totalPages-1, current+1)

	out := []int{1}
	if start > 2 {
		out = append(out, Ellipsis)
	}
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	if end < totalPages-1 {
		out = append(out, Ellipsis)
	}
	return append(out, totalPages)
}

// Pager is the navigation state shared by both control variants. Moves to
// pages outside [1, totalPages] are no-ops.
type Pager struct {
	Current    int
	TotalPages int
}

// NewPager starts at page 1 of the given count/size.
func NewPager(count, size int) Pager {
	return Pager{Current: 1, TotalPages: TotalPages(count, size)}
}

// CanPrev reports whether backward navigation is enabled.
func (p Pager) CanPrev() bool { return p.Current > 1 }

// CanNext reports whether forward navigation is enabled.
func (p Pager) CanNext() bool { return p.Current < p.TotalPages }

// GoTo moves to page n and reports whether the move happened.
func (p *Pager) GoTo(n int) bool {
	if n < 1 || n > p.TotalPages || n == p.Current {
		return false
	}
	p.Current = n
	return true
}

func (p *Pager) First() bool { return p.GoTo(1) }
func (p *Pager) Prev() bool  { return p.GoTo(p.Current - 1) }
func (p *Pager) Next() bool  { return p.GoTo(p.Current + 1) }
func (p *Pager) Last() bool  { return p.GoTo(p.TotalPages) }
