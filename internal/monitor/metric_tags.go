package monitor

type MetricTag string

const (
	HTTPRequestDurationTag MetricTag = "requests_duration_seconds"
	// Verifications:
	VerificationsTotalTag   MetricTag = "verifications_total"
	VerificationDurationTag MetricTag = "verification_duration_seconds"
	// CBE receipt endpoint requests
	CBEFetchDurationTag MetricTag = "cbe_fetch_duration_seconds"
	CBEFetchTotalTag    MetricTag = "cbe_fetch_total"
	// Result cache
	ResultCacheLookupsTotalTag MetricTag = "result_cache_lookups_total"
)

func (m MetricTag) ListAll() []MetricTag {
	return []MetricTag{
		HTTPRequestDurationTag,
		VerificationsTotalTag,
		VerificationDurationTag,
		CBEFetchDurationTag,
		CBEFetchTotalTag,
		ResultCacheLookupsTotalTag,
	}
}
