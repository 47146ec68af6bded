package domain

// Result is the per-query display model handed to the renderer.
//
// It is built fresh for every lookup and never persisted: either a
// reachable instance with its normalized metadata, or an unreachable
// one with the terminal error text.
type Result struct {
	// Host is the hostname the user asked about.
	Host string

	// Online is true when a usable metadata response was obtained.
	Online bool

	// Meta is the normalized metadata; nil when Online is false.
	Meta *Metadata

	// Err is the terminal failure message; empty when Online is true.
	Err string
}

// OnlineResult builds a successful result from fetched metadata.
func OnlineResult(host string, meta *Metadata) *Result {
	return &Result{Host: host, Online: true, Meta: meta}
}

// OfflineResult builds a failed result carrying the fetch error text.
func OfflineResult(host string, err error) *Result {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return &Result{Host: host, Online: false, Err: msg}
}

// StatusText returns the human status label for the result.
func (r *Result) StatusText() string {
	if r.Online {
		return "Online"
	}
	return "Offline"
}
