// Command pagerank estimates the pagerank of every page of an HTML corpus, by
// sampling a random surfer and by iterating the pagerank recurrence.
//
// Usage:
//
//	pagerank <corpus-dir>
//	pagerank --redis
//
// See --help for all available options.
package main

func main() {
	Execute()
}
