package interfaces

// CacheStatus describes how much of a response was served from cache
type CacheStatus string

const (
	CacheStatusFull    CacheStatus = "full"
	CacheStatusPartial CacheStatus = "partial"
	CacheStatusMiss    CacheStatus = "miss"
)

func (cs CacheStatus) String() string {
	return string(cs)
}
