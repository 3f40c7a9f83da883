package storage

import "context"

const lastReportKey = "last-weekly-report-date"

// ReportRepo persists the day key the weekly report was last shown on.
// The value is a bare day key string, not JSON.
type ReportRepo struct {
	kv KV
}

func NewReportRepo(kv KV) *ReportRepo {
	return &ReportRepo{kv: kv}
}

// LastShown returns the stored key, or "" when never shown or unreadable.
func (r *ReportRepo) LastShown(ctx context.Context) string {
	raw, ok, err := r.kv.Get(ctx, lastReportKey)
	if err != nil || !ok {
		return ""
	}
	return raw
}

// MarkShown records dayKey without validation.
func (r *ReportRepo) MarkShown(ctx context.Context, dayKey string) error {
	return r.kv.Set(ctx, lastReportKey, dayKey)
}
