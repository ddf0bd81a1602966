package redisutils

const (
	KeyPages       string = "pages"
	KeyLinksPrefix string = "links:"
)

// KeyLinks() returns the Redis key of the set of links of page.
func KeyLinks(page string) string {
	return KeyLinksPrefix + page
}

// FormatPages() converts pages to the variadic members accepted by SADD.
func FormatPages(pages []string) []interface{} {
	members := make([]interface{}, len(pages))
	for i, page := range pages {
		members[i] = page
	}
	return members
}
