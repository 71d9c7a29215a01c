package dashboard

// Stats is the snapshot returned by GET /api/dashboard/stats
type Stats struct {
	TotalEmployees         int64 `json:"totalEmployees"`
	PresentToday           int64 `json:"presentToday"`
	OnLeave                int64 `json:"onLeave"`
	PendingApprovals       int64 `json:"pendingApprovals"`
	PendingReimbursements  int64 `json:"pendingReimbursements"`
	PendingRegularizations int64 `json:"pendingRegularizations"`
}

// PendingTotal sums every pending category
func (s Stats) PendingTotal() int64 {
	return s.PendingApprovals + s.PendingReimbursements + s.PendingRegularizations
}

// orZero replaces an absent snapshot with zero counts
func orZero(s *Stats) Stats {
	if s == nil {
		return Stats{}
	}
	return *s
}
