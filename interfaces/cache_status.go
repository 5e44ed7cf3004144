package interfaces

type CacheStatus string

const (
	CacheStatusHit  CacheStatus = "hit"
	CacheStatusMiss CacheStatus = "miss"
)

func (cs CacheStatus) String() string {
	return string(cs)
}
